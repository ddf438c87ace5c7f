package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdesign/analysis"
	"github.com/katalvlaran/lvdesign/ldraw"
)

var (
	analyzeJSON     bool
	analyzeDesigner string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE...",
	Short: "Analyze LDraw designs",
	Long:  `Check requirements and estimate cost and value for one or more LDraw models.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, rec := newRecorder()
		a, err := newAnalyzer(rec)
		if err != nil {
			return err
		}
		inputs, err := readInputs(args, analyzeDesigner)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		reports, err := a.AnalyzeAll(ctx, inputs, cfg.Workers)
		if werr := writeMetrics(reg); werr != nil && err == nil {
			err = werr
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if analyzeJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(reports)
		}
		for _, r := range reports {
			printReport(out, r)
		}

		return nil
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "print full reports as JSON")
	analyzeCmd.Flags().StringVar(&analyzeDesigner, "designer", "", "designer name (default: model author)")
	rootCmd.AddCommand(analyzeCmd)
}

// readInputs parses every LDraw file into an analysis input.
func readInputs(paths []string, designer string) ([]analysis.Input, error) {
	inputs := make([]analysis.Input, 0, len(paths))
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read design: %w", err)
		}
		m, err := ldraw.Parse(bytes.NewReader(src))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		// Without a Name: line the analyzer names the design after its id.
		in := analysis.Input{Name: m.Name, Designer: designer, Parts: m.Parts, Source: src}
		if in.Designer == "" {
			in.Designer = m.Author
		}
		inputs = append(inputs, in)
	}

	return inputs, nil
}

func printReport(w io.Writer, r *analysis.Report) {
	cyan := color.New(color.FgCyan, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed, color.Bold).SprintFunc()

	fmt.Fprintf(w, "%s  %s\n", cyan(r.Name), r.ID)
	if r.IsValid {
		fmt.Fprintf(w, "  %s all requirements met\n", green("✓"))
	} else {
		fmt.Fprintf(w, "  %s failed: %s\n", red("✗"), strings.Join(r.Requirements.Failed(), ", "))
	}

	m := r.Measurements
	fmt.Fprintf(w, "  parts:      %d (%d invalid), %d component(s)\n",
		len(r.Parts), len(r.Requirements.OnlyValid.InvalidParts), m.Components)
	fmt.Fprintf(w, "  size:       %.1f x %.1f x %.1f mm (W x L x H)\n", m.Width, m.Length, m.Height)
	fmt.Fprintf(w, "  wheelbase:  %.1f mm, track %.1f mm\n", m.Wheelbase, m.Track)
	fmt.Fprintf(w, "  complexity: %.2f (C1 %.0f, C2 %.0f, C3 %.3f)\n",
		r.Complexity.Total, r.Complexity.C1, r.Complexity.C2, r.Complexity.C3)
	fmt.Fprintf(w, "  cost:       $%.2f  price $%.2f  profit $%.2f  ROI %.1f%%\n",
		r.TotalCost, r.TotalRevenue, r.TotalProfit, r.TotalROI*100)
}
