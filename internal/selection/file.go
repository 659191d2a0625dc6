package selection

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"meamap/pkg/colorutil"
	"meamap/pkg/geometry"
)

// FileVersion is written into every saved selection file.
const FileVersion = 1

// file is the on-disk form of a Manager.
type file struct {
	Version  int        `json:"version,omitempty"`
	Modified time.Time  `json:"modified"`
	Lists    []fileList `json:"selection_lists"`
}

type fileList struct {
	Name        string              `json:"name"`
	Color       []int               `json:"color,omitempty"`
	Coordinates []geometry.PointInt `json:"coordinates"`
}

// Save writes every list to path.
func (m *Manager) Save(path string) error {
	f := file{
		Version:  FileVersion,
		Modified: time.Now(),
		Lists:    make([]fileList, 0, len(m.lists)),
	}
	for _, l := range m.lists {
		rgb := colorutil.ToRGB(l.Color)
		coords := l.Coordinates
		if coords == nil {
			coords = []geometry.PointInt{}
		}
		f.Lists = append(f.Lists, fileList{
			Name:        l.Name,
			Color:       rgb[:],
			Coordinates: coords,
		})
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Load replaces the manager's lists with those in path. The first loaded
// list becomes current. On error the manager is left unchanged.
func (m *Manager) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("selection file %s: %w", path, err)
	}
	if f.Version > FileVersion {
		return fmt.Errorf("selection file %s: unsupported version %d", path, f.Version)
	}

	lists := make([]*List, 0, len(f.Lists))
	for i, fl := range f.Lists {
		l := NewList(fl.Name, nil)
		if fl.Color != nil {
			c, err := colorutil.FromRGB(fl.Color)
			if err != nil {
				return fmt.Errorf("selection file %s: list %d: %w", path, i, err)
			}
			l.Color = c
		}
		for _, p := range fl.Coordinates {
			l.Add(p.X, p.Y)
		}
		lists = append(lists, l)
	}

	m.lists = lists
	m.current = nil
	if len(lists) > 0 {
		m.current = lists[0]
	}
	log.Printf("Selection: loaded %d lists from %s", len(lists), path)
	return nil
}
