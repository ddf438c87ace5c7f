package design_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdesign/design"
	"github.com/katalvlaran/lvdesign/geom"
	"github.com/katalvlaran/lvdesign/internal/fixture"
	"github.com/katalvlaran/lvdesign/part"
)

var ts = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func build(raws ...part.Raw) *design.Design {
	return design.New("d-1", "roadster", "ada", ts, raws, fixture.Catalog(), fixture.Palette())
}

func TestDesign_VehicleMeasurements(t *testing.T) {
	d := build(fixture.Vehicle()...)

	require.Len(t, d.Parts, 12)
	assert.Len(t, d.ValidParts(), 12)
	assert.Empty(t, d.InvalidParts())
	assert.Len(t, d.Points(), 96)

	assert.Equal(t, geom.Vec{Z: -1}, d.ForwardAxis())
	assert.Equal(t, geom.Vec{X: 1}, d.DriverSideAxis())
	assert.Equal(t, geom.Vec{Y: -1}, d.TopAxis())

	assert.Equal(t, geom.Vec{X: 104, Y: 42, Z: 208}, d.Size())
	assert.Equal(t, 104.0, d.Width())
	assert.Equal(t, 208.0, d.Length())
	assert.Equal(t, 42.0, d.Height())
	assert.Equal(t, 140.0, d.Wheelbase())
	assert.Equal(t, 88.0, d.Track())

	assert.InDelta(t, 35.6, d.Mass(), 1e-9)
	assert.InDelta(t, 4.65, d.Cost(), 1e-9)
	assert.Equal(t, 1, d.SeatCount())
	assert.Zero(t, d.CargoVolume())
	assert.Equal(t, 1, d.ComponentCount())

	vol := d.HullVolume()
	assert.Greater(t, vol, 0.0)
	assert.LessOrEqual(t, vol, 104.0*42*208)
}

func TestDesign_IsCloseToAxis(t *testing.T) {
	d := build(fixture.Vehicle()...)
	bottom := geom.Negate(d.TopAxis())
	front := d.ForwardAxis()
	back := geom.Negate(front)

	wheel, seat := d.Parts[1], d.Parts[5]
	headlight, taillight, plate := d.Parts[7], d.Parts[9], d.Parts[11]

	assert.True(t, d.IsCloseToAxis(wheel, bottom, design.DefaultTolerance))
	assert.False(t, d.IsCloseToAxis(seat, bottom, design.DefaultTolerance))
	assert.True(t, d.IsCloseToAxis(headlight, front, design.DefaultTolerance))
	assert.False(t, d.IsCloseToAxis(headlight, back, design.DefaultTolerance))
	assert.True(t, d.IsCloseToAxis(taillight, back, design.DefaultTolerance))
	// the plate stops 1 LDU short of the back face
	assert.True(t, d.IsCloseToAxis(plate, back, design.DefaultTolerance))
	assert.False(t, d.IsCloseToAxis(plate, back, 0.5))

	ghost := part.Part{Raw: fixture.At("9999", 0, 0, 0, 0)}
	assert.False(t, d.IsCloseToAxis(ghost, back, design.DefaultTolerance))
}

func TestDesign_RotatedSteering(t *testing.T) {
	raw := fixture.At(design.SteeringWheelID, 0, 0, 0, 0)
	raw.Rotation = geom.Rotation{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}}
	d := build(raw)

	assert.Equal(t, geom.Vec{X: 1}, d.ForwardAxis())
	assert.Equal(t, geom.Vec{Z: 1}, d.DriverSideAxis())
}

func TestDesign_Empty(t *testing.T) {
	d := build()

	assert.Empty(t, d.ValidParts())
	assert.Equal(t, design.DefaultForward, d.ForwardAxis())
	assert.Equal(t, design.DefaultDriverSide, d.DriverSideAxis())
	assert.Equal(t, geom.Vec{}, d.Size())
	assert.Zero(t, d.HullVolume())
	assert.Zero(t, d.Width())
	assert.Zero(t, d.Mass())
	assert.Zero(t, d.Wheelbase())
	assert.Zero(t, d.ComponentCount())
	assert.Nil(t, d.Components())
	assert.Equal(t, design.Measurements{}, d.Measurements())
}

func TestDesign_FewerThanFourWheels(t *testing.T) {
	raws := fixture.Vehicle()
	d := build(append(raws[:1:1], raws[2:]...)...)

	assert.Zero(t, d.Wheelbase())
	assert.Zero(t, d.Track())
}

func TestDesign_InvalidAndDetached(t *testing.T) {
	raws := append(fixture.Vehicle(), fixture.At("9999", 0, 0, 0, 0), fixture.Detached())
	d := build(raws...)

	require.Len(t, d.InvalidParts(), 1)
	assert.Equal(t, "9999", d.InvalidParts()[0].TypeID)
	assert.Len(t, d.ValidParts(), 13)
	assert.Equal(t, 2, d.ComponentCount())

	groups := d.Components()
	require.Len(t, groups, 2)
	assert.Len(t, groups[0], 12)
	assert.Equal(t, []int{12}, groups[1])
}

func TestDesign_Cargo(t *testing.T) {
	d := build(fixture.At(fixture.CargoID, 0, 0, 0, 0), fixture.At(fixture.CargoID, 0, 0, 0, 40))

	assert.Equal(t, 2*16.0*20*16, d.CargoVolume())
	assert.InDelta(t, design.CubicCentimetres(10240), d.Measurements().CargoVolume, 1e-12)
}

func TestMeasurements_Units(t *testing.T) {
	m := build(fixture.Vehicle()...).Measurements()

	assert.InDelta(t, 41.6, m.Width, 1e-9)
	assert.InDelta(t, 83.2, m.Length, 1e-9)
	assert.InDelta(t, 16.8, m.Height, 1e-9)
	assert.InDelta(t, 56.0, m.Wheelbase, 1e-9)
	assert.InDelta(t, 35.2, m.Track, 1e-9)
	assert.Equal(t, 1, m.Seats)
	assert.Equal(t, 1, m.Components)
	assert.InDelta(t, 0.064, design.CubicCentimetres(1000), 1e-12)
}
