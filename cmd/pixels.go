package cmd

import (
	"fmt"

	"meamap/internal/elecmap"

	"github.com/spf13/cobra"
)

var pixelsFlags struct {
	well      int
	canonical int
	pixel     int
}

var pixelsCmd = &cobra.Command{
	Use:   "pixels",
	Short: "Convert between canonical indices and multiplexed pixel indices",
	Long: `With --well and --canonical, prints the four pixel indices of the cell.
With --pixel, prints the cell and multiplexer channel that own a pixel index.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if cmd.Flags().Changed("pixel") {
			idx, ch, err := elecmap.PixelToAddress(pixelsFlags.pixel)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Pixel %d: %s channel %d\n", pixelsFlags.pixel, idx, ch)
			return nil
		}

		if !cmd.Flags().Changed("well") || !cmd.Flags().Changed("canonical") {
			return fmt.Errorf("either --pixel or both --well and --canonical are required")
		}
		px, err := elecmap.PixelIndicesFor(elecmap.WellID(pixelsFlags.well), pixelsFlags.canonical)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-8s %s\n", "Channel", "Pixel")
		for ch, p := range px {
			fmt.Fprintf(out, "%-8d %d\n", ch, p)
		}
		return nil
	},
}

func init() {
	pixelsCmd.Flags().IntVar(&pixelsFlags.well, "well", 0, "well number (1-16)")
	pixelsCmd.Flags().IntVar(&pixelsFlags.canonical, "canonical", 0, "canonical index (1-4096)")
	pixelsCmd.Flags().IntVar(&pixelsFlags.pixel, "pixel", 0, "pixel index to resolve")
	rootCmd.AddCommand(pixelsCmd)
}
