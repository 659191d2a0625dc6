// Package cmd implements the meamap command line.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"meamap/internal/config"
	"meamap/internal/elecmap"
	"meamap/internal/prefs"

	"github.com/spf13/cobra"
)

var (
	cfg       *config.Config
	userPrefs *prefs.Prefs
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "meamap",
	Short: "Electrode addressing for the 16-well MEA chip",
	Long: `meamap converts between canonical sweep indices, (well, x, y) coordinates
and multiplexed pixel indices, and looks up the vendor channel map.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if verbose || cfg.Verbose {
			log.SetOutput(cmd.ErrOrStderr())
		} else {
			log.SetOutput(io.Discard)
		}
		userPrefs = prefs.Load(cfg.PrefsDir)
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
}

// savePrefs persists preferences, logging rather than failing the command.
func savePrefs() {
	if userPrefs == nil {
		return
	}
	if err := userPrefs.Save(); err != nil {
		log.Printf("Prefs: save failed: %v", err)
	}
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", a)
		}
		out[i] = n
	}
	return out, nil
}

func printIndexHeader(w io.Writer) {
	fmt.Fprintf(w, "%-10s %6s %4s %4s %-22s %s\n", "Canonical", "Well", "X", "Y", "Orientation", "Pixels")
}

func printIndex(w io.Writer, idx elecmap.Index) error {
	px, err := elecmap.PixelIndicesFor(idx.Well, idx.Canonical)
	if err != nil {
		return err
	}
	o, err := elecmap.OrientationOf(idx.Well)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%-10d %6d %4d %4d %-22s %d-%d\n",
		idx.Canonical, int(idx.Well), idx.Coord.X, idx.Coord.Y, o, px[0], px[len(px)-1])
	return nil
}
