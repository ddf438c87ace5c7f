package requirements

import (
	"github.com/katalvlaran/lvdesign/design"
	"github.com/katalvlaran/lvdesign/geom"
	"github.com/katalvlaran/lvdesign/part"
)

// Version tags stored requirement results.
const Version = "2.0.0"

// OnlyValidParts is rule 1.
type OnlyValidParts struct {
	Value        bool     `json:"value"`
	InvalidParts []string `json:"invalid_bricks"`
}

// FullyConnected is rule 2.
type FullyConnected struct {
	Value bool `json:"value"`
	Count int  `json:"count"`
}

// SteeringWheel is rule 3.
type SteeringWheel struct {
	Value bool `json:"value"`
	Count int  `json:"count"`
}

// Seat is rule 4.
type Seat struct {
	Value     bool   `json:"value"`
	Count     int    `json:"count"`
	Alignment []bool `json:"alignment"`
}

// Placed is a rule over fixtures that must be aligned and sit on a face
// (rules 5 to 8). Alignment and Positioning are indexed alike, in design order.
type Placed struct {
	Value       bool   `json:"value"`
	Count       int    `json:"count"`
	Alignment   []bool `json:"alignment"`
	Positioning []bool `json:"positioning"`
}

// Result is the requirements snapshot.
type Result struct {
	Version       string         `json:"version"`
	OnlyValid     OnlyValidParts `json:"is_only_valid_bricks"`
	Connected     FullyConnected `json:"is_fully_connected"`
	SteeringWheel SteeringWheel  `json:"is_one_steering_wheel"`
	Seat          Seat           `json:"is_min_one_seat_aligned"`
	Wheels        Placed         `json:"is_min_four_wheels_aligned_on_bottom"`
	Headlights    Placed         `json:"is_min_two_headlights_aligned_on_front"`
	Taillights    Placed         `json:"is_min_two_taillights_aligned_on_back"`
	LicensePlate  Placed         `json:"is_one_license_plate_aligned_on_back"`
	IsValid       bool           `json:"is_valid"`
}

// Analyze evaluates every rule against d.
func Analyze(d *design.Design, opts ...Option) Result {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	forward := d.ForwardAxis()
	bottom := geom.Negate(d.TopAxis())
	back := geom.Negate(forward)

	r := Result{Version: Version}

	// 1.
	for _, p := range d.InvalidParts() {
		r.OnlyValid.InvalidParts = append(r.OnlyValid.InvalidParts, p.TypeID)
	}
	r.OnlyValid.Value = len(r.OnlyValid.InvalidParts) == 0
	if r.OnlyValid.InvalidParts == nil {
		r.OnlyValid.InvalidParts = []string{}
	}

	// 2.
	r.Connected.Count = d.ComponentCount()
	r.Connected.Value = r.Connected.Count == 1

	// 3.
	for _, p := range d.Parts {
		if p.TypeID == design.SteeringWheelID {
			r.SteeringWheel.Count++
		}
	}
	r.SteeringWheel.Value = r.SteeringWheel.Count == 1

	// 4.
	seats := placed(d, isType(design.SeatID), nil, o.Tolerance)
	r.Seat = Seat{Count: seats.Count, Alignment: seats.Alignment, Value: countTrue(seats.Alignment) >= 1}

	// 5–8.
	r.Wheels = placed(d, isType(design.WheelID), &bottom, o.Tolerance)
	r.Wheels.Value = r.Wheels.satisfied() >= 4

	r.Headlights = placed(d, isLight(design.HeadlightColor), &forward, o.Tolerance)
	r.Headlights.Value = r.Headlights.satisfied() >= 2

	r.Taillights = placed(d, isLight(design.TaillightColor), &back, o.Tolerance)
	r.Taillights.Value = r.Taillights.satisfied() >= 2

	r.LicensePlate = placed(d, isColored(design.LicensePlateID, design.LicensePlateColor), &back, o.Tolerance)
	r.LicensePlate.Value = r.LicensePlate.satisfied() == 1

	r.IsValid = r.OnlyValid.Value && r.Connected.Value && r.SteeringWheel.Value && r.Seat.Value &&
		r.Wheels.Value && r.Headlights.Value && r.Taillights.Value && r.LicensePlate.Value

	return r
}

// Failed lists the JSON names of the rules that did not pass, in rule order.
func (r Result) Failed() []string {
	var out []string
	for _, c := range []struct {
		name string
		ok   bool
	}{
		{"is_only_valid_bricks", r.OnlyValid.Value},
		{"is_fully_connected", r.Connected.Value},
		{"is_one_steering_wheel", r.SteeringWheel.Value},
		{"is_min_one_seat_aligned", r.Seat.Value},
		{"is_min_four_wheels_aligned_on_bottom", r.Wheels.Value},
		{"is_min_two_headlights_aligned_on_front", r.Headlights.Value},
		{"is_min_two_taillights_aligned_on_back", r.Taillights.Value},
		{"is_one_license_plate_aligned_on_back", r.LicensePlate.Value},
	} {
		if !c.ok {
			out = append(out, c.name)
		}
	}

	return out
}

// satisfied counts fixtures that are both aligned and positioned.
func (p Placed) satisfied() int {
	var n int
	for i := range p.Alignment {
		if p.Alignment[i] && p.Positioning[i] {
			n++
		}
	}

	return n
}

// placed collects count, alignment and (when axis is set) positioning of
// the parts matching match.
func placed(d *design.Design, match func(part.Part) bool, axis *geom.Vec, tol float64) Placed {
	out := Placed{Alignment: []bool{}}
	if axis != nil {
		out.Positioning = []bool{}
	}
	forward := d.ForwardAxis()
	for _, p := range d.Parts {
		if !match(p) {
			continue
		}
		out.Count++
		out.Alignment = append(out.Alignment, p.IsAligned(forward))
		if axis != nil {
			out.Positioning = append(out.Positioning, d.IsCloseToAxis(p, *axis, tol))
		}
	}

	return out
}

func isType(id string) func(part.Part) bool {
	return func(p part.Part) bool { return p.TypeID == id }
}

func isColored(id string, color int) func(part.Part) bool {
	return func(p part.Part) bool {
		c, ok := p.BrickColor()
		return p.TypeID == id && ok && c == color
	}
}

func isLight(color int) func(part.Part) bool {
	return func(p part.Part) bool {
		c, ok := p.BrickColor()
		return design.IsLight(p.TypeID) && ok && c == color
	}
}

func countTrue(xs []bool) int {
	var n int
	for _, x := range xs {
		if x {
			n++
		}
	}

	return n
}
