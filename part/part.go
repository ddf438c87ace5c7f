package part

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvdesign/catalog"
	"github.com/katalvlaran/lvdesign/geom"
)

// Raw is a parsed placement record before catalog resolution.
type Raw struct {
	TypeID   string        `json:"bl_id"`
	Color    int           `json:"ld_color"`
	Position geom.Vec      `json:"position"`
	Rotation geom.Rotation `json:"rotation"`
}

// Resolved holds everything derived from a catalog match.
type Resolved struct {
	EntryID     string      `json:"id"`
	Name        string      `json:"name"`
	BrickColor  *int        `json:"bl_color,omitempty"`
	Cost        float64     `json:"cost"`
	Mass        float64     `json:"mass"`
	Safety      float64     `json:"safety"`
	Coolness    float64     `json:"coolness"`
	Volume      float64     `json:"volume"`
	ForwardAxes []geom.Vec  `json:"valid_forward_axes,omitempty"`
	Vertices    [8]geom.Vec `json:"vertices"`
	Bounds      geom.Bounds `json:"-"`
	// Valid is true when the type id is also listed in the ValidTypeSet.
	Valid bool `json:"is_valid"`
}

// Part is a placed part, resolved or not.
type Part struct {
	Raw
	Resolved *Resolved `json:"resolved,omitempty"`
}

// Resolve derives a Part from raw using cat and valid.
//
// The catalog box (offset o, dimensions d) is expanded to its eight corners
// between o and o−d, each corner mapped to round(R·c + position).
//
// Complexity: O(1) plus one catalog lookup.
func Resolve(raw Raw, cat *catalog.Catalog, valid catalog.ValidTypeSet) Part {
	e, ok := cat.Lookup(raw.TypeID, raw.Color)
	if !ok {
		return Part{Raw: raw}
	}
	verts := geom.Transform(geom.Box(e.Offset, e.Dimensions), raw.Rotation, raw.Position)

	return Part{
		Raw: raw,
		Resolved: &Resolved{
			EntryID:     e.ID,
			Name:        e.Name,
			BrickColor:  e.BrickColor,
			Cost:        e.Cost,
			Mass:        e.Mass,
			Safety:      e.Safety,
			Coolness:    e.Coolness,
			Volume:      e.Volume(),
			ForwardAxes: e.ForwardAxes,
			Vertices:    verts,
			Bounds:      geom.BoundsOf(verts[:]),
			Valid:       valid.Contains(raw.TypeID),
		},
	}
}

// ResolveAll resolves every record, keeping input order.
func ResolveAll(raws []Raw, cat *catalog.Catalog, valid catalog.ValidTypeSet) []Part {
	out := make([]Part, len(raws))
	for i, r := range raws {
		out[i] = Resolve(r, cat, valid)
	}

	return out
}

// IsResolved reports whether the part matched a catalog entry.
func (p Part) IsResolved() bool { return p.Resolved != nil }

// IsValid reports whether the part resolved and its type is recognized.
func (p Part) IsValid() bool { return p.Resolved != nil && p.Resolved.Valid }

// Vertices returns the world-space vertices, or nil for an unresolved part.
func (p Part) Vertices() []geom.Vec {
	if p.Resolved == nil {
		return nil
	}

	return p.Resolved.Vertices[:]
}

// BrickColor returns the catalog BrickLink color, if any.
func (p Part) BrickColor() (int, bool) {
	if p.Resolved == nil || p.Resolved.BrickColor == nil {
		return 0, false
	}

	return *p.Resolved.BrickColor, true
}

// Name returns the catalog name, falling back to the type id.
func (p Part) Name() string {
	if p.Resolved == nil || p.Resolved.Name == "" {
		return p.TypeID
	}

	return p.Resolved.Name
}

// Intersects reports whether a and b overlap on all three world axes.
// inclusive selects <=/>= instead of the default strict </> comparisons.
func Intersects(a, b Part, inclusive bool) bool {
	if a.Resolved == nil || b.Resolved == nil {
		return false
	}

	return geom.Overlaps(a.Resolved.Bounds, b.Resolved.Bounds, inclusive)
}

// IsAligned reports whether any permitted forward axis of p, rotated into
// the world frame, points the same way as forward (rounded dot product > 0).
// Parts without permitted axes are always aligned.
func (p Part) IsAligned(forward geom.Vec) bool {
	if p.Resolved == nil || p.Resolved.ForwardAxes == nil {
		return true
	}
	for _, f := range p.Resolved.ForwardAxes {
		if math.RoundToEven(r3.Dot(forward, p.Rotation.Apply(f))) > 0 {
			return true
		}
	}

	return false
}
