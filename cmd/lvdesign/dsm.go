package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvdesign/dsm"
)

var dsmNative bool

var dsmCmd = &cobra.Command{
	Use:   "dsm FILE",
	Short: "Print the design structure matrix of a model",
	Long:  `Print which parts intersect, clustered for display, followed by the complexity metrics.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newAnalyzer(nil)
		if err != nil {
			return err
		}
		inputs, err := readInputs(args, "")
		if err != nil {
			return err
		}

		d := a.Design(inputs[0])
		r := dsm.Analyze(d.ValidParts())
		order := r.Order
		if dsmNative {
			order = make([]int, r.Matrix.Len())
			for i := range order {
				order[i] = i
			}
		}
		printMatrix(cmd.OutOrStdout(), r, order)

		c := dsm.Compute(r.Matrix, cfg.ComplexityOptions()...)
		fmt.Fprintf(cmd.OutOrStdout(), "\nC1 %.0f  C2 %.0f  C3 %.4f  total %.4f  energy %.4f\n",
			c.C1, c.C2, c.C3, c.Total, dsm.GraphEnergy(r.Matrix))

		return nil
	},
}

func init() {
	dsmCmd.Flags().BoolVar(&dsmNative, "native", false, "keep design order instead of the clustered order")
	rootCmd.AddCommand(dsmCmd)
}

func printMatrix(w io.Writer, r dsm.Result, order []int) {
	width := 0
	for _, l := range r.Labels {
		if len(l) > width {
			width = len(l)
		}
	}
	mark := color.New(color.FgGreen).Sprint("■")
	m := r.Matrix.Reordered(order)
	for i, row := range m {
		var b strings.Builder
		for _, v := range row {
			if v {
				b.WriteString(mark)
			} else {
				b.WriteString("·")
			}
		}
		fmt.Fprintf(w, "%3d %-*s %s\n", order[i], width, r.Labels[order[i]], b.String())
	}
}
