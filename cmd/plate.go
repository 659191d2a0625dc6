package cmd

import (
	"fmt"

	"meamap/internal/elecmap"

	"github.com/spf13/cobra"
)

var plateFlags struct {
	x, y int
}

var plateCmd = &cobra.Command{
	Use:   "plate",
	Short: "Locate a cell of the 64x64 plate grid",
	Long: `Converts a 0-based plate coordinate (wells arranged 1 3 7 5 / 2 4 8 6 /
10 12 16 14 / 9 11 15 13) into its well, local coordinate and canonical index.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w, c, err := elecmap.PlateToLocal(plateFlags.x, plateFlags.y)
		if err != nil {
			return err
		}
		idx, err := elecmap.FromCoordinate(w, c)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Plate (%d, %d)\n", plateFlags.x, plateFlags.y)
		printIndexHeader(out)
		return printIndex(out, idx)
	},
}

func init() {
	plateCmd.Flags().IntVar(&plateFlags.x, "x", 0, "plate column (0-63)")
	plateCmd.Flags().IntVar(&plateFlags.y, "y", 0, "plate row (0-63)")
	_ = plateCmd.MarkFlagRequired("x")
	_ = plateCmd.MarkFlagRequired("y")
	rootCmd.AddCommand(plateCmd)
}
