package cmd

import (
	"fmt"

	"meamap/internal/elecmap"

	"github.com/spf13/cobra"
)

var layoutWells string

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Print the canonical index grid of one or more wells",
	Long: `Prints each well's 16x16 grid of canonical indices, rows top to bottom (y)
and columns left to right (x). --wells accepts lists and ranges such as 1,3,7 or 1-4.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		wells, err := elecmap.ParseWellList(layoutWells)
		if err != nil {
			return err
		}
		if len(wells) == 0 {
			wells = elecmap.Wells()
		}

		out := cmd.OutOrStdout()
		for i, w := range wells {
			grid, err := elecmap.Layout(w)
			if err != nil {
				return err
			}
			start, end, _ := elecmap.Block(w)
			o, _ := elecmap.OrientationOf(w)
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "%s: canonical %d-%d, %s\n", w, start, end, o)

			fmt.Fprintf(out, "%4s", "y\\x")
			for x := 1; x <= elecmap.WellSize; x++ {
				fmt.Fprintf(out, " %4d", x)
			}
			fmt.Fprintln(out)
			for y, row := range grid {
				fmt.Fprintf(out, "%4d", y+1)
				for _, c := range row {
					fmt.Fprintf(out, " %4d", c)
				}
				fmt.Fprintln(out)
			}
		}
		return nil
	},
}

func init() {
	layoutCmd.Flags().StringVar(&layoutWells, "wells", "", "wells to print, e.g. 1,3,7 or 1-4 (default all)")
	rootCmd.AddCommand(layoutCmd)
}
