package design

// Part type ids (BrickLink) that carry vehicle semantics.
const (
	SteeringWheelID = "3829c01"
	SeatID          = "4079b"
	WheelID         = "30027bc01"
	LicensePlateID  = "3069b"
)

// CargoIDs lists the container ids counted towards cargo volume.
var CargoIDs = []string{"4345", "4345b"}

// LightIDs lists the light fixture ids; the BrickLink color tells head from tail.
var LightIDs = []string{"54200", "98138"}

// BrickLink colors qualifying the colored fixtures.
const (
	HeadlightColor    = 12
	TaillightColor    = 17
	LicensePlateColor = 3
)

// DefaultTolerance is the positioning tolerance of IsCloseToAxis (LDU).
const DefaultTolerance = 12.0

// LDU is the length of one LDraw unit in millimetres.
const LDU = 0.4

func oneOf(id string, ids []string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}

	return false
}

// IsCargo reports whether typeID is a cargo container.
func IsCargo(typeID string) bool { return oneOf(typeID, CargoIDs) }

// IsLight reports whether typeID is a light fixture.
func IsLight(typeID string) bool { return oneOf(typeID, LightIDs) }
