package cmd

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"strconv"

	"meamap/internal/prefs"
	"meamap/internal/selection"
	"meamap/pkg/colorutil"

	"github.com/spf13/cobra"
)

const defaultSelectionFile = "selections.json"

var (
	selectionFile  string
	selectionColor string
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Manage named coordinate selection lists",
	Long: `Selection lists are named, colored sets of plate coordinates saved to a JSON file.
The file comes from --file, then $MEAMAP_SELECTIONS, then the last file used.`,
}

var selectListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every selection list",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, _, err := openSelections()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-20s %-8s %s\n", "Name", "Color", "Coordinates")
		for _, l := range m.Lists() {
			fmt.Fprintf(out, "%-20s %-8s", l.Name, colorutil.Hex(l.Color))
			for _, c := range l.Coordinates {
				fmt.Fprintf(out, " %s", c)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

var selectCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a selection list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, path, err := openSelections()
		if err != nil {
			return err
		}
		if _, exists := m.Find(args[0]); exists {
			return fmt.Errorf("selection list %q already exists", args[0])
		}
		var c color.Color
		if selectionColor != "" {
			rgba, err := colorutil.Parse(selectionColor)
			if err != nil {
				return err
			}
			c = rgba
		}
		l := m.Create(args[0], c)
		fmt.Fprintf(cmd.OutOrStdout(), "Created %q (%s)\n", l.Name, colorutil.Hex(l.Color))
		return saveSelections(m, path)
	},
}

var selectAddCmd = &cobra.Command{
	Use:   "add <name> <x> <y>",
	Short: "Add a coordinate to a selection list",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editSelection(cmd, args, func(l *selection.List, x, y int) bool { return l.Add(x, y) })
	},
}

var selectRemoveCmd = &cobra.Command{
	Use:   "remove <name> <x> <y>",
	Short: "Remove a coordinate from a selection list",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editSelection(cmd, args, func(l *selection.List, x, y int) bool { return l.Remove(x, y) })
	},
}

var selectDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a selection list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, path, err := openSelections()
		if err != nil {
			return err
		}
		l, ok := m.Find(args[0])
		if !ok {
			return fmt.Errorf("no selection list %q", args[0])
		}
		m.Remove(l)
		return saveSelections(m, path)
	},
}

func editSelection(cmd *cobra.Command, args []string, edit func(l *selection.List, x, y int) bool) error {
	x, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("x: %q is not an integer", args[1])
	}
	y, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("y: %q is not an integer", args[2])
	}

	m, path, err := openSelections()
	if err != nil {
		return err
	}
	l, ok := m.Find(args[0])
	if !ok {
		return fmt.Errorf("no selection list %q", args[0])
	}
	if !edit(l, x, y) {
		fmt.Fprintf(cmd.OutOrStdout(), "%q unchanged\n", l.Name)
		return nil
	}
	return saveSelections(m, path)
}

// openSelections loads the selection file, treating a missing file as empty.
func openSelections() (*selection.Manager, string, error) {
	path := selectionFile
	if path == "" {
		path = cfg.SelectionPath
	}
	if path == "" {
		path = userPrefs.String(prefs.KeySelectionFile)
	}
	if path == "" {
		path = defaultSelectionFile
	}

	m := selection.NewManager()
	if err := m.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, "", err
	}
	return m, path, nil
}

func saveSelections(m *selection.Manager, path string) error {
	if err := m.Save(path); err != nil {
		return err
	}
	userPrefs.SetString(prefs.KeySelectionFile, path)
	savePrefs()
	return nil
}

func init() {
	selectCmd.PersistentFlags().StringVar(&selectionFile, "file", "", "selection list JSON file")
	selectCreateCmd.Flags().StringVar(&selectionColor, "color", "", "list color, a name (red) or hex (#ff0000)")
	selectCmd.AddCommand(selectListCmd, selectCreateCmd, selectAddCmd, selectRemoveCmd, selectDeleteCmd)
	rootCmd.AddCommand(selectCmd)
}
