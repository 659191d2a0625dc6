package cmd

import (
	"fmt"
	"io"

	"meamap/internal/channelmap"
	"meamap/internal/elecmap"
	"meamap/internal/prefs"

	"github.com/spf13/cobra"
)

var channelFlags struct {
	mapPath   string
	electrode int
	pixel     int
	x, y      int
}

var channelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Look up the vendor channel map",
	Long: `Looks up an acquisition electrode (--electrode), a driver pixel (--pixel) or a
plate coordinate (--x and --y) in the vendor channel remapping file.

The map file comes from --map, then $MEAMAP_CHANNEL_MAP, then the last map used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := channelFlags.mapPath
		if path == "" {
			path = cfg.ChannelMapPath
		}
		if path == "" {
			path = userPrefs.String(prefs.KeyChannelMap)
		}
		if path == "" {
			return fmt.Errorf("no channel map: pass --map or set $%s", "MEAMAP_CHANNEL_MAP")
		}

		m, err := channelmap.Load(path)
		if err != nil {
			return err
		}
		userPrefs.SetString(prefs.KeyChannelMap, path)
		savePrefs()

		var entry channelmap.Entry
		flags := cmd.Flags()
		switch {
		case flags.Changed("electrode"):
			entry, err = m.ByElectrode(channelFlags.electrode)
		case flags.Changed("pixel"):
			entry, err = m.ByPixel(channelFlags.pixel)
		case flags.Changed("x") && flags.Changed("y"):
			entry, err = m.ByCoord(channelFlags.x, channelFlags.y)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d mapped coordinates\n", path, m.Len())
			return nil
		}
		if err != nil {
			return err
		}
		printEntry(cmd.OutOrStdout(), entry)
		return nil
	},
}

func printEntry(w io.Writer, e channelmap.Entry) {
	electrode := "---"
	if e.Electrode != nil {
		electrode = fmt.Sprint(*e.Electrode)
	}
	fmt.Fprintf(w, "%-10s %8s %10s\n", "Electrode", "Pixel", "Grid")
	fmt.Fprintf(w, "%-10s %8d %10s\n", electrode, e.Pixel, e.Coord())

	// coordinates outside the 64x64 plate have no well
	if well, local, err := elecmap.PlateToLocal(e.X, e.Y); err == nil {
		fmt.Fprintf(w, "Grid %d (%d, %d)\n", int(well), local.X-1, local.Y-1)
	}
}

func init() {
	channelCmd.Flags().StringVar(&channelFlags.mapPath, "map", "", "vendor channel map JSON file")
	channelCmd.Flags().IntVar(&channelFlags.electrode, "electrode", 0, "acquisition electrode number")
	channelCmd.Flags().IntVar(&channelFlags.pixel, "pixel", 0, "driver pixel number")
	channelCmd.Flags().IntVar(&channelFlags.x, "x", 0, "plate column")
	channelCmd.Flags().IntVar(&channelFlags.y, "y", 0, "plate row")
	channelCmd.MarkFlagsMutuallyExclusive("electrode", "pixel", "x")
	channelCmd.MarkFlagsRequiredTogether("x", "y")
	rootCmd.AddCommand(channelCmd)
}
