package cmd

import (
	"fmt"

	"meamap/internal/elecmap"
	"meamap/internal/prefs"

	"github.com/spf13/cobra"
)

var locateFlags struct {
	well int
	x, y int
}

// locateCmd is the inverse of resolve.
var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Find the canonical index of a well coordinate",
	Long: `Prints the canonical index and pixel range of a local (x, y) coordinate.
x is the column and y the row, both 1-16. Without --well the last well used is assumed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		well := locateFlags.well
		if !cmd.Flags().Changed("well") {
			well = userPrefs.Int(prefs.KeyLastWell, 0)
			if well == 0 {
				return fmt.Errorf("--well is required")
			}
		}

		idx, err := elecmap.FromCoordinate(elecmap.WellID(well), elecmap.Coord{X: locateFlags.x, Y: locateFlags.y})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printIndexHeader(out)
		if err := printIndex(out, idx); err != nil {
			return err
		}

		userPrefs.SetInt(prefs.KeyLastWell, well)
		savePrefs()
		return nil
	},
}

func init() {
	locateCmd.Flags().IntVar(&locateFlags.well, "well", 0, "well number (1-16)")
	locateCmd.Flags().IntVar(&locateFlags.x, "x", 0, "column inside the well (1-16)")
	locateCmd.Flags().IntVar(&locateFlags.y, "y", 0, "row inside the well (1-16)")
	_ = locateCmd.MarkFlagRequired("x")
	_ = locateCmd.MarkFlagRequired("y")
	rootCmd.AddCommand(locateCmd)
}
