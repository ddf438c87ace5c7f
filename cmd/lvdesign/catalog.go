package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog [TYPE-ID]",
	Short: "List catalog entries",
	Long:  `List the part catalog, or only the entries of one type id, with their palette status.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, valid, err := loadReference()
		if err != nil {
			return err
		}

		yes := color.GreenString("yes")
		no := color.RedString("no")
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTYPE\tNAME\tCOST\tMASS\tVALID")
		n := 0
		for _, e := range cat.Entries() {
			if len(args) == 1 && e.TypeID != args[0] {
				continue
			}
			ok := no
			if valid.Contains(e.TypeID) {
				ok = yes
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%.2f\t%s\n", e.ID, e.TypeID, e.Name, e.Cost, e.Mass, ok)
			n++
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if n == 0 && len(args) == 1 {
			return fmt.Errorf("no catalog entry for type %q", args[0])
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
