package analysis

import "errors"

// ErrNilCatalog is returned by New without a catalog.
var ErrNilCatalog = errors.New("analysis: catalog is nil")
