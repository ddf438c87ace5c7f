package ldraw_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdesign/geom"
	"github.com/katalvlaran/lvdesign/internal/fixture"
	"github.com/katalvlaran/lvdesign/ldraw"
	"github.com/katalvlaran/lvdesign/part"
)

func TestParseFile_Roadster(t *testing.T) {
	m, err := ldraw.ParseFile("testdata/roadster.ldr")
	require.NoError(t, err)

	assert.Equal(t, "roadster.ldr", m.Name)
	assert.Equal(t, "Ada Lovelace", m.Author)
	assert.Equal(t, fixture.Vehicle(), m.Parts)
}

func TestParse_RotationAndColour(t *testing.T) {
	src := "1 15 1.5 -8 20 0 0 -1 0 1 0 1 0 0 4079b.dat\n"
	m, err := ldraw.Parse(strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, m.Parts, 1)
	assert.Equal(t, part.Raw{
		TypeID:   "4079b",
		Color:    15,
		Position: geom.Vec{X: 1.5, Y: -8, Z: 20},
		Rotation: geom.Rotation{{0, 0, -1}, {0, 1, 0}, {1, 0, 0}},
	}, m.Parts[0])
}

func TestParse_IgnoresOtherLines(t *testing.T) {
	src := strings.Join([]string{
		"0 just a comment",
		"1 0 0 0 0 1 0 0 0 1 0 0 0 1",           // too short
		"1 0 0 0 0 1 0 0 0 1 0 0 0 1 3001.ldr",  // not a part file
		"1 0 0 0 0 1 0 0 0 1 0 0 0 1 3001 .dat", // 16 fields
		"3 16 0 0 0 1 1 1 2 2 2",
		"",
	}, "\n")
	m, err := ldraw.Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Empty(t, m.Parts)
	assert.Empty(t, m.Name)
}

func TestParse_BadLine(t *testing.T) {
	src := "0 Name: x\n1 red 0 0 0 1 0 0 0 1 0 0 0 1 3001.dat\n"
	_, err := ldraw.Parse(strings.NewReader(src))
	require.ErrorIs(t, err, ldraw.ErrBadLine)
	assert.Contains(t, err.Error(), "line 2")

	src = "1 4 0 0 zero 1 0 0 0 1 0 0 0 1 3001.dat\n"
	_, err = ldraw.Parse(strings.NewReader(src))
	assert.ErrorIs(t, err, ldraw.ErrBadLine)
}

func TestParseFile_Missing(t *testing.T) {
	_, err := ldraw.ParseFile("testdata/nope.ldr")
	assert.Error(t, err)
}
