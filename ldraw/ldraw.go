// Package ldraw reads LDraw model files into raw part placements.
//
// Only sub-file reference lines (type 1) naming a part file "<id>.dat" become
// placements:
//
//	1 <colour> x y z a b c d e f g h i <id>.dat
//
// where (x, y, z) is the position and a..i is the row-major rotation.
// Meta lines "0 Name:" and "0 Author:" fill the model header; every other
// line (comments, primitives, sub-models) is ignored.
package ldraw

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvdesign/geom"
	"github.com/katalvlaran/lvdesign/part"
)

// ErrBadLine is returned for a part reference line with a malformed number.
var ErrBadLine = errors.New("ldraw: malformed part line")

// partFile matches the part reference of a type 1 line.
var partFile = regexp.MustCompile(`^(\w+)\.dat$`)

// maxLine bounds the length of a single line.
const maxLine = 1 << 20

// Model is a parsed LDraw file.
type Model struct {
	Name   string
	Author string
	Parts  []part.Raw
}

// Parse reads a model from r.
func Parse(r io.Reader) (*Model, error) {
	m := &Model{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLine)

	for n := 1; sc.Scan(); n++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "0" {
			m.meta(fields[1:])
			continue
		}
		if len(fields) != 15 || fields[0] != "1" {
			continue
		}
		id := partFile.FindStringSubmatch(fields[14])
		if id == nil {
			continue
		}
		raw, err := placement(id[1], fields[1:14])
		if err != nil {
			return nil, fmt.Errorf("Parse: line %d: %w", n, err)
		}
		m.Parts = append(m.Parts, raw)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Parse: %w", err)
	}

	return m, nil
}

// ParseFile reads the model stored at path.
func ParseFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ParseFile: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

func (m *Model) meta(fields []string) {
	if len(fields) < 2 {
		return
	}
	value := strings.Join(fields[1:], " ")
	switch fields[0] {
	case "Name:":
		if m.Name == "" {
			m.Name = value
		}
	case "Author:":
		if m.Author == "" {
			m.Author = value
		}
	}
}

// placement decodes colour, position and rotation (13 fields).
func placement(typeID string, f []string) (part.Raw, error) {
	color, err := strconv.Atoi(f[0])
	if err != nil {
		return part.Raw{}, fmt.Errorf("%w: colour %q", ErrBadLine, f[0])
	}
	var x [12]float64
	for i := range x {
		if x[i], err = strconv.ParseFloat(f[i+1], 64); err != nil {
			return part.Raw{}, fmt.Errorf("%w: field %d %q", ErrBadLine, i+3, f[i+1])
		}
	}

	return part.Raw{
		TypeID:   typeID,
		Color:    color,
		Position: geom.Vec{X: x[0], Y: x[1], Z: x[2]},
		Rotation: geom.Rotation{
			{x[3], x[4], x[5]},
			{x[6], x[7], x[8]},
			{x[9], x[10], x[11]},
		},
	}, nil
}
