package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvdesign/catalog"
	"github.com/katalvlaran/lvdesign/cost"
	"github.com/katalvlaran/lvdesign/design"
	"github.com/katalvlaran/lvdesign/dsm"
	"github.com/katalvlaran/lvdesign/part"
	"github.com/katalvlaran/lvdesign/requirements"
	"github.com/katalvlaran/lvdesign/value"
)

// Namespace is the UUID namespace of design identifiers.
var Namespace = uuid.MustParse("6f1b8f0e-4d5c-5a7e-9b1d-2c3e4f5a6b7c")

// Input is one design submission.
type Input struct {
	Name     string
	Designer string
	Parts    []part.Raw
	// Source is the original file content; it keys the design id when set.
	Source []byte
}

// Report is the composite analysis of one design.
type Report struct {
	ID           string              `json:"design_id"`
	Name         string              `json:"name"`
	Designer     string              `json:"designer"`
	Timestamp    time.Time           `json:"timestamp"`
	Parts        []part.Part         `json:"bricks"`
	Measurements design.Measurements `json:"measurements"`
	DSM          dsm.Result          `json:"dsm"`
	Complexity   dsm.Complexity      `json:"complexity"`
	GraphEnergy  float64             `json:"graph_energy"`
	Requirements requirements.Result `json:"requirements"`
	Cost         cost.Result         `json:"cost"`
	Value        value.Result        `json:"value"`
	IsValid      bool                `json:"is_valid"`
	TotalCost    float64             `json:"total_cost"`
	TotalRevenue float64             `json:"total_revenue"`
	TotalProfit  float64             `json:"total_profit"`
	TotalROI     float64             `json:"total_roi"`
}

// Analyzer runs analyses against one catalog and palette.
type Analyzer struct {
	catalog *catalog.Catalog
	valid   catalog.ValidTypeSet
	opts    Options
}

// New returns an Analyzer over the given reference data.
func New(cat *catalog.Catalog, valid catalog.ValidTypeSet, opts ...Option) (*Analyzer, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return &Analyzer{catalog: cat, valid: valid, opts: o}, nil
}

// DesignID derives the deterministic id of in: a name-based SHA-1 UUID of
// the source bytes, or of the JSON form of the placements without source.
func DesignID(in Input) string {
	key := in.Source
	if len(key) == 0 {
		key, _ = json.Marshal(in.Parts) // plain values, cannot fail
	}

	return uuid.NewSHA1(Namespace, key).String()
}

// Design resolves in into a design aggregate. A design without a name is
// named after its id.
func (a *Analyzer) Design(in Input) *design.Design {
	id := DesignID(in)
	name := in.Name
	if name == "" {
		name = DesignName(id)
	}

	return design.New(id, name, in.Designer, a.opts.now().UTC(), in.Parts, a.catalog, a.valid)
}

// Analyze runs every model over in. A design without valid parts is not an
// error: its measurements are zero and its requirements fail.
//
// Steps:
//  1. Check ctx.
//  2. Resolve the design and derive its measurements.
//  3. Build the DSM and its complexity.
//  4. Evaluate requirements, cost and value.
//  5. Combine the totals.
func (a *Analyzer) Analyze(ctx context.Context, in Input) (*Report, error) {
	// 1.
	if err := ctx.Err(); err != nil {
		a.opts.recorder.RecordError("canceled")
		return nil, fmt.Errorf("Analyze: %w", err)
	}
	start := time.Now()

	// 2.
	d := a.Design(in)
	log := a.opts.logger.With(zap.String("design_id", d.ID), zap.String("name", d.Name))
	valid := d.ValidParts()
	log.Debug("design resolved",
		zap.Int("parts", len(d.Parts)),
		zap.Int("valid_parts", len(valid)),
	)

	// 3.
	dr := dsm.Analyze(valid)
	complexity := dsm.Compute(dr.Matrix, a.opts.complexity...)
	log.Debug("dsm built",
		zap.Float64("complexity", complexity.Total),
		zap.Ints("order", dr.Order),
	)

	// 4.
	req := requirements.Analyze(d, a.opts.requirements...)
	cr := cost.FromComplexity(d, complexity)
	vr := value.Analyze(d)
	m := d.Measurements()
	log.Debug("models evaluated",
		zap.Int("components", m.Components),
		zap.Bool("valid", req.IsValid),
		zap.Strings("failed", req.Failed()),
	)

	// 5.
	r := &Report{
		ID:           d.ID,
		Name:         d.Name,
		Designer:     d.Designer,
		Timestamp:    d.Timestamp,
		Parts:        d.Parts,
		Measurements: m,
		DSM:          dr,
		Complexity:   complexity,
		GraphEnergy:  dsm.GraphEnergy(dr.Matrix),
		Requirements: req,
		Cost:         cr,
		Value:        vr,
		IsValid:      req.IsValid,
		TotalCost:    cr.Total,
		TotalRevenue: vr.Price,
		TotalProfit:  vr.Price - cr.Total,
	}
	if cr.Total != 0 {
		r.TotalROI = r.TotalProfit / cr.Total
	}

	elapsed := time.Since(start)
	a.opts.recorder.RecordAnalysis(r.IsValid, len(d.Parts), elapsed)
	log.Info("design analyzed",
		zap.Bool("valid", r.IsValid),
		zap.Float64("total_cost", r.TotalCost),
		zap.Float64("total_revenue", r.TotalRevenue),
		zap.Duration("duration", elapsed),
	)

	return r, nil
}

// AnalyzeAll analyzes inputs with at most limit concurrent workers
// (limit <= 0 means one per input). Reports keep input order. The first
// error cancels the remaining work and is returned.
func (a *Analyzer) AnalyzeAll(ctx context.Context, inputs []Input, limit int) ([]*Report, error) {
	reports := make([]*Report, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range inputs {
		i := i // per-iteration copy; go.mod targets go 1.21 loop semantics
		g.Go(func() error {
			r, err := a.Analyze(ctx, inputs[i])
			if err != nil {
				return fmt.Errorf("AnalyzeAll: input %d: %w", i, err)
			}
			reports[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reports, nil
}
