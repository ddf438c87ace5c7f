// Package fixture builds a small reference catalog and a minimal road-legal
// vehicle shared by package tests.
//
// Frame: LDraw world axes, −Y up, the steering wheel unrotated so the
// vehicle's forward axis is −Z and its driver side is +X.
//
// Vehicle layout (LDU, centers):
//
//	chassis      (0, 0, 0)      80×8×200 plate, everything touches it
//	wheels       (±44, 8, ±70)  16×24×24, lowest points at y = 20
//	seat         (0, -12, 0)
//	steering     (0, -12, -20)
//	headlights   (±30, 0, -100) reach z = -104 (front)
//	taillights   (±30, 0, 100)  reach z = 104 (back)
//	plate        (0, 0, 101)    reaches z = 103, within tolerance of the back
package fixture

import (
	"github.com/katalvlaran/lvdesign/catalog"
	"github.com/katalvlaran/lvdesign/geom"
	"github.com/katalvlaran/lvdesign/part"
)

// LDraw colors used by the colored records.
const (
	HeadlightLDColor = 46
	TaillightLDColor = 36
	PlateLDColor     = 14
)

// Type ids of the non-functional fixture parts.
const (
	ChassisID = "3034"
	BrickID   = "3001"
	CargoID   = "4345b"
)

func intp(v int) *int { return &v }

func box(dx, dy, dz float64) (offset, dims geom.Vec) {
	return geom.Vec{X: dx / 2, Y: dy / 2, Z: dz / 2}, geom.Vec{X: dx, Y: dy, Z: dz}
}

func entry(id, typeID, name string, ld, bl *int, dx, dy, dz, cost, mass, safety, coolness float64, axes []geom.Vec) catalog.Entry {
	o, d := box(dx, dy, dz)

	return catalog.Entry{
		ID: id, TypeID: typeID, Name: name, Color: ld, BrickColor: bl,
		Offset: o, Dimensions: d,
		Cost: cost, Mass: mass, Safety: safety, Coolness: coolness,
		ForwardAxes: axes,
	}
}

var (
	ahead  = geom.Vec{Z: -1}
	astern = geom.Vec{Z: 1}
)

// Entries returns the fixture catalog records.
func Entries() []catalog.Entry {
	return []catalog.Entry{
		entry(ChassisID, ChassisID, "Plate 2 x 8", nil, nil, 80, 8, 200, 0.5, 20, 2, 0, nil),
		entry("30027bc01", "30027bc01", "Wheel", nil, nil, 16, 24, 24, 0.75, 3, 1, 2, []geom.Vec{ahead, astern}),
		entry("4079b", "4079b", "Seat", nil, nil, 20, 20, 20, 0.3, 1.5, 3, 1, []geom.Vec{ahead}),
		entry("3829c01", "3829c01", "Steering Wheel", nil, nil, 20, 20, 8, 0.4, 1, 0, 3, nil),
		entry("54200-12", "54200", "Headlight", intp(HeadlightLDColor), intp(12), 8, 8, 8, 0.1, 0.2, 1, 1, []geom.Vec{ahead}),
		entry("54200-17", "54200", "Taillight", intp(TaillightLDColor), intp(17), 8, 8, 8, 0.1, 0.2, 1, 1, []geom.Vec{ahead}),
		entry("3069b-3", "3069b", "License Plate", intp(PlateLDColor), intp(3), 16, 8, 4, 0.05, 0.3, 0, 1, []geom.Vec{ahead}),
		entry(CargoID, CargoID, "Container", nil, nil, 16, 20, 16, 0.2, 1, 0, 0, nil),
		entry(BrickID, BrickID, "Brick 2 x 4", nil, nil, 80, 24, 40, 3.0, 2.3, 0, 0, nil),
	}
}

// Catalog returns the fixture catalog.
func Catalog() *catalog.Catalog {
	c, err := catalog.New(Entries())
	if err != nil {
		panic(err) // fixture data is static
	}

	return c
}

// Palette returns a ValidTypeSet recognizing every fixture type.
func Palette() catalog.ValidTypeSet {
	return catalog.NewValidTypeSet(ChassisID, BrickID, "30027bc01", "4079b", "3829c01", "54200", "3069b")
}

// At places typeID at (x, y, z) with the identity rotation.
func At(typeID string, color int, x, y, z float64) part.Raw {
	return part.Raw{TypeID: typeID, Color: color, Position: geom.Vec{X: x, Y: y, Z: z}, Rotation: geom.Identity}
}

// Vehicle returns the placements of a vehicle that satisfies every requirement.
func Vehicle() []part.Raw {
	return []part.Raw{
		At(ChassisID, 0, 0, 0, 0),
		At("30027bc01", 0, -44, 8, -70),
		At("30027bc01", 0, 44, 8, -70),
		At("30027bc01", 0, -44, 8, 70),
		At("30027bc01", 0, 44, 8, 70),
		At("4079b", 0, 0, -12, 0),
		At("3829c01", 0, 0, -12, -20),
		At("54200", HeadlightLDColor, -30, 0, -100),
		At("54200", HeadlightLDColor, 30, 0, -100),
		At("54200", TaillightLDColor, -30, 0, 100),
		At("54200", TaillightLDColor, 30, 0, 100),
		At("3069b", PlateLDColor, 0, 0, 101),
	}
}

// Detached returns a brick far away from the vehicle.
func Detached() part.Raw { return At(BrickID, 0, 500, 0, 0) }
