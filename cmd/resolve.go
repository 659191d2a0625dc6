package cmd

import (
	"meamap/internal/elecmap"

	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <canonical>...",
	Short: "Resolve canonical indices to well coordinates",
	Long:  `Prints the well, local (x, y) and pixel range of each canonical index (1-4096).`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		indices, err := parseInts(args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		printIndexHeader(out)
		for _, c := range indices {
			idx, err := elecmap.FromCanonical(c)
			if err != nil {
				return err
			}
			if err := printIndex(out, idx); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
