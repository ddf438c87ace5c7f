package design

// Measurements are the reporting figures of a design in physical units.
type Measurements struct {
	Width       float64 `json:"width_mm"`
	Length      float64 `json:"length_mm"`
	Height      float64 `json:"height_mm"`
	Wheelbase   float64 `json:"wheelbase_mm"`
	Track       float64 `json:"track_mm"`
	Volume      float64 `json:"volume_cm3"`
	CargoVolume float64 `json:"cargo_volume_cm3"`
	Seats       int     `json:"seats"`
	Mass        float64 `json:"mass"`
	Components  int     `json:"components"`
}

// Millimetres converts a length in LDU to millimetres.
func Millimetres(ldu float64) float64 { return ldu * LDU }

// CubicCentimetres converts a volume in LDU³ to cm³.
func CubicCentimetres(ldu3 float64) float64 { return ldu3 / 1000 * LDU * LDU * LDU }

// Measurements derives every reporting figure of d.
func (d *Design) Measurements() Measurements {
	return Measurements{
		Width:       Millimetres(d.Width()),
		Length:      Millimetres(d.Length()),
		Height:      Millimetres(d.Height()),
		Wheelbase:   Millimetres(d.Wheelbase()),
		Track:       Millimetres(d.Track()),
		Volume:      CubicCentimetres(d.HullVolume()),
		CargoVolume: CubicCentimetres(d.CargoVolume()),
		Seats:       d.SeatCount(),
		Mass:        d.Mass(),
		Components:  d.ComponentCount(),
	}
}
