package design

import (
	"math"
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvdesign/catalog"
	"github.com/katalvlaran/lvdesign/connectivity"
	"github.com/katalvlaran/lvdesign/geom"
	"github.com/katalvlaran/lvdesign/part"
)

// Local directions rotated by the steering wheel to obtain the design frame.
var (
	localForward    = geom.Vec{Z: -1}
	localDriverSide = geom.Vec{X: 1}
)

// Default axes used when the design has no steering wheel.
var (
	DefaultForward    = geom.Vec{X: 1}
	DefaultDriverSide = geom.Vec{Z: 1}
	Top               = geom.Vec{Y: -1}
)

// closeRelTol is the relative term of the IsCloseToAxis comparison.
const closeRelTol = 1e-5

// Design is an assembly: identity plus an ordered list of placed parts.
// It is immutable after New; every measurement is derived on demand.
type Design struct {
	ID        string      `json:"id"`
	Name      string      `json:"name"`
	Designer  string      `json:"designer"`
	Timestamp time.Time   `json:"timestamp"`
	Parts     []part.Part `json:"parts"`
}

// New resolves raws against cat and valid and returns the aggregate.
// Unresolvable records are kept, in order, as unresolved parts.
func New(id, name, designer string, ts time.Time, raws []part.Raw, cat *catalog.Catalog, valid catalog.ValidTypeSet) *Design {
	return &Design{
		ID:        id,
		Name:      name,
		Designer:  designer,
		Timestamp: ts,
		Parts:     part.ResolveAll(raws, cat, valid),
	}
}

// ValidParts returns the valid parts in design order.
func (d *Design) ValidParts() []part.Part {
	out := make([]part.Part, 0, len(d.Parts))
	for _, p := range d.Parts {
		if p.IsValid() {
			out = append(out, p)
		}
	}

	return out
}

// InvalidParts returns the parts that failed resolution or are not
// recognized, in design order.
func (d *Design) InvalidParts() []part.Part {
	var out []part.Part
	for _, p := range d.Parts {
		if !p.IsValid() {
			out = append(out, p)
		}
	}

	return out
}

// Points returns the world vertices of every valid part (the hull input).
func (d *Design) Points() []geom.Vec {
	pts := make([]geom.Vec, 0, 8*len(d.Parts))
	for _, p := range d.Parts {
		if p.IsValid() {
			pts = append(pts, p.Vertices()...)
		}
	}

	return pts
}

// HullVolume returns the convex-hull volume of the valid parts (LDU³).
func (d *Design) HullVolume() float64 { return geom.HullVolume(d.Points()) }

// steering returns the first steering wheel in the part list.
func (d *Design) steering() (part.Part, bool) {
	for _, p := range d.Parts {
		if p.TypeID == SteeringWheelID {
			return p, true
		}
	}

	return part.Part{}, false
}

// ForwardAxis returns the travel direction: the first steering wheel's
// rotation applied to [0, 0, −1], or DefaultForward without one.
func (d *Design) ForwardAxis() geom.Vec {
	if s, ok := d.steering(); ok {
		return s.Rotation.Apply(localForward)
	}

	return DefaultForward
}

// TopAxis returns the fixed up direction [0, −1, 0].
func (d *Design) TopAxis() geom.Vec { return Top }

// DriverSideAxis returns the first steering wheel's rotation applied to
// [1, 0, 0], or DefaultDriverSide without one.
func (d *Design) DriverSideAxis() geom.Vec {
	if s, ok := d.steering(); ok {
		return s.Rotation.Apply(localDriverSide)
	}

	return DefaultDriverSide
}

// Size returns the per-axis extent of the valid vertices.
func (d *Design) Size() geom.Vec { return geom.BoundsOf(d.Points()).Extent() }

// Width is the size measured along the driver-side axis.
func (d *Design) Width() float64 { return math.Abs(r3.Dot(d.DriverSideAxis(), d.Size())) }

// Length is the size measured along the forward axis.
func (d *Design) Length() float64 { return math.Abs(r3.Dot(d.ForwardAxis(), d.Size())) }

// Height is the size measured along the top axis.
func (d *Design) Height() float64 { return math.Abs(r3.Dot(d.TopAxis(), d.Size())) }

// Mass sums the mass of the valid parts.
func (d *Design) Mass() float64 {
	var m float64
	for _, p := range d.Parts {
		if p.IsValid() {
			m += p.Resolved.Mass
		}
	}

	return m
}

// Cost sums the unit cost of the valid parts, one per instance.
func (d *Design) Cost() float64 {
	var c float64
	for _, p := range d.Parts {
		if p.IsValid() {
			c += p.Resolved.Cost
		}
	}

	return c
}

// Wheelbase is the spread of wheel positions along the forward axis,
// or 0 with fewer than four wheels.
func (d *Design) Wheelbase() float64 { return d.wheelSpread(d.ForwardAxis()) }

// Track is the spread of wheel positions along the driver-side axis,
// or 0 with fewer than four wheels.
func (d *Design) Track() float64 { return d.wheelSpread(d.DriverSideAxis()) }

func (d *Design) wheelSpread(axis geom.Vec) float64 {
	var (
		n        int
		min, max float64
	)
	for _, p := range d.Parts {
		if p.TypeID != WheelID {
			continue
		}
		x := r3.Dot(p.Position, axis)
		if n == 0 || x < min {
			min = x
		}
		if n == 0 || x > max {
			max = x
		}
		n++
	}
	if n < 4 {
		return 0
	}

	return math.RoundToEven(max - min)
}

// SeatCount counts the valid seats.
func (d *Design) SeatCount() int {
	var n int
	for _, p := range d.Parts {
		if p.IsValid() && p.TypeID == SeatID {
			n++
		}
	}

	return n
}

// CargoVolume sums the catalog box volume of the valid cargo containers (LDU³).
func (d *Design) CargoVolume() float64 {
	var v float64
	for _, p := range d.Parts {
		if p.IsValid() && IsCargo(p.TypeID) {
			v += p.Resolved.Volume
		}
	}

	return v
}

// IsCloseToAxis reports whether any vertex of p projects onto axis within
// tol of the design's outermost projection along the same axis, i.e. p
// touches the assembly boundary in that direction.
//
// The comparison is |x − m| <= tol + 1e-5·|m|. It is false for an
// unresolved part and for a design with no valid parts.
func (d *Design) IsCloseToAxis(p part.Part, axis geom.Vec, tol float64) bool {
	if !p.IsResolved() {
		return false
	}
	m, ok := geom.MaxProjection(d.Points(), axis)
	if !ok {
		return false
	}
	for _, v := range p.Vertices() {
		if math.Abs(r3.Dot(v, axis)-m) <= tol+closeRelTol*math.Abs(m) {
			return true
		}
	}

	return false
}

// intersectionGraph adapts the valid parts to the connectivity analyzer.
func intersectionGraph(valid []part.Part) connectivity.AdjacencyFunc {
	return func(i, j int) bool { return part.Intersects(valid[i], valid[j], false) }
}

// Components partitions the valid parts into intersection-connected groups.
// Indices refer to ValidParts.
func (d *Design) Components() [][]int {
	valid := d.ValidParts()

	return connectivity.Components(len(valid), intersectionGraph(valid))
}

// ComponentCount returns the number of intersection-connected groups.
func (d *Design) ComponentCount() int {
	valid := d.ValidParts()

	return connectivity.Count(len(valid), intersectionGraph(valid))
}
