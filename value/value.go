package value

import (
	"math"

	"github.com/katalvlaran/lvdesign/design"
)

// Version tags stored value results.
const Version = "2.0.0"

// Curve parameterizes one logistic transform.
type Curve struct {
	Min, Max float64
	Midpoint float64
	Rate     float64
}

// Apply evaluates the curve at x.
func (c Curve) Apply(x float64) float64 { return Logistic(x, c.Min, c.Max, c.Midpoint, c.Rate) }

// Sub-score and price curves.
var (
	PassengerCurve    = Curve{Min: 0, Max: 100, Midpoint: 200, Rate: 0.02}
	CargoCurve        = Curve{Min: 0, Max: 100, Midpoint: 125, Rate: 0.03}
	HandlingCurve     = Curve{Min: 100, Max: 0, Midpoint: 75, Rate: 0.075}
	AccelerationCurve = Curve{Min: 100, Max: 0, Midpoint: 160, Rate: 0.1}
	SafetyCurve       = Curve{Min: 0, Max: 100, Midpoint: 80, Rate: 0.04}
	CoolnessCurve     = Curve{Min: 0, Max: 100, Midpoint: 30, Rate: 0.09}
	PriceCurve        = Curve{Min: 2, Max: 20, Midpoint: 50, Rate: 0.1}
)

// Sub-score weights of Total.
const (
	PassengerWeight    = 0.2
	CargoWeight        = 0.2
	HandlingWeight     = 0.1
	AccelerationWeight = 0.15
	SafetyWeight       = 0.15
	CoolnessWeight     = 0.2
)

// Logistic returns min + (max−min)/(1+e^(−k(x−x0))).
func Logistic(x, min, max, x0, k float64) float64 {
	return min + (max-min)/(1+math.Exp(-k*(x-x0)))
}

// Result is the value snapshot.
type Result struct {
	Version      string  `json:"version"`
	Passenger    float64 `json:"passenger"`
	Cargo        float64 `json:"cargo"`
	Handling     float64 `json:"handling"`
	Acceleration float64 `json:"acceleration"`
	Safety       float64 `json:"safety"`
	Coolness     float64 `json:"coolness"`
	Total        float64 `json:"total"`
	Price        float64 `json:"price"`
}

// Passenger scores seating and cabin volume.
func Passenger(d *design.Design) float64 {
	return PassengerCurve.Apply(float64(d.SeatCount())*50 + design.CubicCentimetres(d.HullVolume()))
}

// Cargo scores container and overall volume.
func Cargo(d *design.Design) float64 {
	return CargoCurve.Apply(design.CubicCentimetres(d.CargoVolume())*4 + design.CubicCentimetres(d.HullVolume()))
}

// Handling decreases with mass and wheelbase.
func Handling(d *design.Design) float64 {
	return HandlingCurve.Apply(d.Mass() + design.Millimetres(d.Wheelbase()))
}

// Acceleration decreases with mass and height.
func Acceleration(d *design.Design) float64 {
	return AccelerationCurve.Apply(d.Mass()*5 + design.Millimetres(d.Height()))
}

// Safety scores mass plus the safety rating of aligned valid parts.
func Safety(d *design.Design) float64 {
	forward := d.ForwardAxis()
	var s float64
	for _, p := range d.ValidParts() {
		if p.IsAligned(forward) {
			s += p.Resolved.Safety
		}
	}

	return SafetyCurve.Apply(d.Mass()*2 + s)
}

// Coolness scores the summed coolness rating of valid parts.
func Coolness(d *design.Design) float64 {
	var c float64
	for _, p := range d.ValidParts() {
		c += p.Resolved.Coolness
	}

	return CoolnessCurve.Apply(c)
}

// Analyze computes every sub-score, the total and the price of d.
func Analyze(d *design.Design) Result {
	r := Result{
		Version:      Version,
		Passenger:    Passenger(d),
		Cargo:        Cargo(d),
		Handling:     Handling(d),
		Acceleration: Acceleration(d),
		Safety:       Safety(d),
		Coolness:     Coolness(d),
	}
	r.Total = PassengerWeight*r.Passenger +
		CargoWeight*r.Cargo +
		HandlingWeight*r.Handling +
		AccelerationWeight*r.Acceleration +
		SafetyWeight*r.Safety +
		CoolnessWeight*r.Coolness
	r.Price = PriceCurve.Apply(r.Total)

	return r
}
