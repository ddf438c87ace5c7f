package catalog

import (
	"fmt"

	"github.com/katalvlaran/lvdesign/geom"
)

// Entry is one immutable catalog record.
//
// Color is the LDraw color the record is specific to; nil marks a
// color-agnostic record. BrickColor is the BrickLink color the record
// describes, used to tell head- from taillights and to identify plates.
// A nil ForwardAxes means the part has no orientation constraint.
type Entry struct {
	ID          string     `json:"id"`
	TypeID      string     `json:"bl_id"`
	Color       *int       `json:"ld_color,omitempty"`
	BrickColor  *int       `json:"bl_color,omitempty"`
	Name        string     `json:"name"`
	Offset      geom.Vec   `json:"offset"`
	Dimensions  geom.Vec   `json:"dimensions"`
	Cost        float64    `json:"cost"`
	Mass        float64    `json:"mass"`
	Safety      float64    `json:"safety"`
	Coolness    float64    `json:"coolness"`
	ForwardAxes []geom.Vec `json:"valid_forward_axes,omitempty"`
}

// Volume returns the product of the bounding box dimensions (LDU³).
func (e Entry) Volume() float64 {
	return e.Dimensions.X * e.Dimensions.Y * e.Dimensions.Z
}

// validate checks the invariants every catalog entry must hold.
func (e Entry) validate() error {
	if e.TypeID == "" {
		return ErrEmptyTypeID
	}
	if e.Dimensions.X < 0 || e.Dimensions.Y < 0 || e.Dimensions.Z < 0 {
		return fmt.Errorf("entry %q: %w", e.TypeID, ErrNegativeDimension)
	}

	return nil
}

// rawEntry mirrors the on-disk record; vectors arrive as plain number lists.
type rawEntry struct {
	ID          string      `yaml:"id"`
	TypeID      string      `yaml:"bl_id"`
	Color       *int        `yaml:"ld_color"`
	BrickColor  *int        `yaml:"bl_color"`
	Name        string      `yaml:"name"`
	Offset      []float64   `yaml:"offset"`
	Dimensions  []float64   `yaml:"dimensions"`
	Cost        float64     `yaml:"cost"`
	Mass        float64     `yaml:"mass"`
	Safety      float64     `yaml:"safety"`
	Coolness    float64     `yaml:"coolness"`
	ForwardAxes [][]float64 `yaml:"valid_forward_axes"`
}

func (r rawEntry) entry() (Entry, error) {
	e := Entry{
		ID:         r.ID,
		TypeID:     r.TypeID,
		Color:      r.Color,
		BrickColor: r.BrickColor,
		Name:       r.Name,
		Cost:       r.Cost,
		Mass:       r.Mass,
		Safety:     r.Safety,
		Coolness:   r.Coolness,
	}
	var err error
	// missing offset/dimensions default to the origin, as in the upstream dataset
	if e.Offset, err = vec(r.Offset, true); err != nil {
		return Entry{}, fmt.Errorf("entry %q offset: %w", r.TypeID, err)
	}
	if e.Dimensions, err = vec(r.Dimensions, true); err != nil {
		return Entry{}, fmt.Errorf("entry %q dimensions: %w", r.TypeID, err)
	}
	if r.ForwardAxes != nil {
		e.ForwardAxes = make([]geom.Vec, 0, len(r.ForwardAxes))
		for _, a := range r.ForwardAxes {
			v, err := vec(a, false)
			if err != nil {
				return Entry{}, fmt.Errorf("entry %q forward axis: %w", r.TypeID, err)
			}
			e.ForwardAxes = append(e.ForwardAxes, v)
		}
	}

	return e, e.validate()
}

func vec(xs []float64, allowEmpty bool) (geom.Vec, error) {
	if len(xs) == 0 && allowEmpty {
		return geom.Vec{}, nil
	}
	if len(xs) != 3 {
		return geom.Vec{}, ErrBadVector
	}

	return geom.Vec{X: xs[0], Y: xs[1], Z: xs[2]}, nil
}
