package catalog

import "errors"

var (
	// ErrEmptyTypeID indicates a catalog entry or palette item without a type id.
	ErrEmptyTypeID = errors.New("catalog: empty type id")

	// ErrNegativeDimension indicates a bounding box with a negative dimension.
	ErrNegativeDimension = errors.New("catalog: negative bounding box dimension")

	// ErrBadVector indicates a vector field without exactly three components.
	ErrBadVector = errors.New("catalog: vector must have 3 components")

	// ErrEmptyPalette indicates a palette document without any ITEMID.
	ErrEmptyPalette = errors.New("catalog: palette has no items")
)
