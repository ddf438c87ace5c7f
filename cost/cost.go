package cost

import (
	"sort"

	"github.com/katalvlaran/lvdesign/design"
	"github.com/katalvlaran/lvdesign/dsm"
)

// Version tags stored cost results.
const Version = "2.0.1"

// Overhead rates applied to materials plus assembly.
const (
	EngineeringRate    = 0.35
	MarketingRate      = 0.20
	FacilitiesRate     = 0.30
	AdministrationRate = 0.25
	OverheadRate       = 1.10
)

// assemblyScale converts complexity units to dollars.
const assemblyScale = 100.0

// Line is one bill-of-materials entry.
type Line struct {
	Name     string  `json:"name"`
	Cost     float64 `json:"cost"`
	Quantity int     `json:"quantity"`
}

// Assembly is the complexity-driven assembly cost.
type Assembly struct {
	Components  float64 `json:"components"`
	Integration float64 `json:"integration"`
	Total       float64 `json:"total"`
}

// Overhead is the staff and facility cost.
type Overhead struct {
	Engineering    float64 `json:"engineering"`
	Marketing      float64 `json:"marketing"`
	Facilities     float64 `json:"facilities"`
	Administration float64 `json:"administration"`
	Total          float64 `json:"total"`
}

// Result is the cost snapshot.
type Result struct {
	Version   string          `json:"version"`
	Materials float64         `json:"materials"`
	BOM       map[string]Line `json:"bom"`
	Assembly  Assembly        `json:"assembly"`
	Overhead  Overhead        `json:"overhead"`
	Total     float64         `json:"total"`
}

// BillOfMaterials groups the valid parts of d by catalog entry id.
func BillOfMaterials(d *design.Design) map[string]Line {
	bom := make(map[string]Line)
	for _, p := range d.ValidParts() {
		l, ok := bom[p.Resolved.EntryID]
		if !ok {
			l = Line{Name: p.Name(), Cost: p.Resolved.Cost}
		}
		l.Quantity++
		bom[p.Resolved.EntryID] = l
	}

	return bom
}

// SortedIDs returns the BOM keys in ascending order.
func SortedIDs(bom map[string]Line) []string {
	ids := make([]string, 0, len(bom))
	for id := range bom {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// AssemblyCost converts DSM complexity into assembly dollars.
func AssemblyCost(c dsm.Complexity) Assembly {
	return Assembly{
		Components:  c.C1 / assemblyScale,
		Integration: c.C2 * c.C3 / assemblyScale,
		Total:       c.Total / assemblyScale,
	}
}

// OverheadCost applies the overhead rates to base = materials + assembly.
func OverheadCost(base float64) Overhead {
	return Overhead{
		Engineering:    base * EngineeringRate,
		Marketing:      base * MarketingRate,
		Facilities:     base * FacilitiesRate,
		Administration: base * AdministrationRate,
		Total:          base * OverheadRate,
	}
}

// Analyze computes the cost of d; opts tune the complexity weights.
func Analyze(d *design.Design, opts ...dsm.Option) Result {
	return FromComplexity(d, dsm.Compute(dsm.Build(d.Parts), opts...))
}

// FromComplexity computes the cost of d from an already computed complexity.
func FromComplexity(d *design.Design, c dsm.Complexity) Result {
	materials := d.Cost()
	assembly := AssemblyCost(c)
	overhead := OverheadCost(materials + assembly.Total)

	return Result{
		Version:   Version,
		Materials: materials,
		BOM:       BillOfMaterials(d),
		Assembly:  assembly,
		Overhead:  overhead,
		Total:     materials + assembly.Total + overhead.Total,
	}
}
