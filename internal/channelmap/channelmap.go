// Package channelmap loads the vendor channel remapping file that ties
// acquisition electrode numbers, driver pixel numbers and plate grid
// coordinates together. It works purely on raw integers and is independent
// of the elecmap tables.
package channelmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"meamap/pkg/geometry"

	"github.com/iancoleman/strcase"
)

var (
	// ErrNotFound is returned when a lookup has no mapping entry.
	ErrNotFound = errors.New("no mapping entry")

	// ErrUnsupportedFormat is returned for JSON documents that are neither
	// the parallel-array object nor a list of entries.
	ErrUnsupportedFormat = errors.New("unsupported channel map format")
)

// Entry is one mapping row. Electrode is nil when the vendor file leaves the
// acquisition channel unassigned.
type Entry struct {
	Electrode *int `json:"electrode,omitempty"`
	Pixel     int  `json:"pixel"`
	X         int  `json:"x"`
	Y         int  `json:"y"`
}

// Coord returns the entry's plate coordinate.
func (e Entry) Coord() geometry.PointInt {
	return geometry.PointInt{X: e.X, Y: e.Y}
}

// Map is an immutable set of lookups built from one vendor file.
type Map struct {
	entries     []Entry
	byElectrode map[int]Entry
	byPixel     map[int]Entry
	byCoord     map[geometry.PointInt]Entry
}

// Load reads and parses a channel map file.
func Load(path string) (*Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("channel map %s: %w", path, err)
	}
	log.Printf("Channel map: loaded %d electrode mappings from %s", m.Len(), path)
	return m, nil
}

// Parse decodes either supported layout:
//
//	{"channels": [...], "pixels": [...], "coordinates": [{"X": .., "Y": ..}, ...]}
//	[{"electrode": .., "pixel": .., "x": .., "y": ..}, ...]
//
// Keys are matched case-insensitively and "channel" is accepted in place of
// "electrode". Rows without a pixel or coordinate are skipped.
func Parse(data []byte) (*Map, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	var rows []map[string]any
	switch v := doc.(type) {
	case map[string]any:
		obj := normalizeKeys(v)
		if _, ok := obj["channels"]; !ok {
			return nil, ErrUnsupportedFormat
		}
		var err error
		if rows, err = parallelRows(obj); err != nil {
			return nil, err
		}
	case []any:
		for i, item := range v {
			obj, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("entry %d: expected object, got %T", i, item)
			}
			rows = append(rows, normalizeKeys(obj))
		}
	default:
		return nil, ErrUnsupportedFormat
	}

	m := &Map{
		byElectrode: make(map[int]Entry),
		byPixel:     make(map[int]Entry),
		byCoord:     make(map[geometry.PointInt]Entry),
	}
	for i, row := range rows {
		e, ok, err := entryFromRow(row)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if !ok {
			continue
		}
		m.add(e)
	}
	return m, nil
}

func (m *Map) add(e Entry) {
	if e.Electrode != nil {
		m.byElectrode[*e.Electrode] = e
	}
	m.byPixel[e.Pixel] = e
	m.byCoord[e.Coord()] = e
	m.entries = append(m.entries, e)
}

// Len returns the number of distinct mapped coordinates.
func (m *Map) Len() int {
	return len(m.byCoord)
}

// Entries returns every usable mapping row in file order, including rows
// whose lookups were superseded by a later row.
func (m *Map) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// ByElectrode looks up an acquisition electrode number.
func (m *Map) ByElectrode(electrode int) (Entry, error) {
	if e, ok := m.byElectrode[electrode]; ok {
		return e, nil
	}
	return Entry{}, fmt.Errorf("electrode %d: %w", electrode, ErrNotFound)
}

// ByPixel looks up a driver pixel number.
func (m *Map) ByPixel(pixel int) (Entry, error) {
	if e, ok := m.byPixel[pixel]; ok {
		return e, nil
	}
	return Entry{}, fmt.Errorf("pixel %d: %w", pixel, ErrNotFound)
}

// ByCoord looks up a plate grid coordinate.
func (m *Map) ByCoord(x, y int) (Entry, error) {
	if e, ok := m.byCoord[geometry.PointInt{X: x, Y: y}]; ok {
		return e, nil
	}
	return Entry{}, fmt.Errorf("coordinate (%d, %d): %w", x, y, ErrNotFound)
}

// parallelRows zips the channels, pixels and coordinates arrays. The
// coordinates array drives the row count; short channel or pixel arrays
// leave the field unset.
func parallelRows(obj map[string]any) ([]map[string]any, error) {
	channels, err := arrayField(obj, "channels")
	if err != nil {
		return nil, err
	}
	pixels, err := arrayField(obj, "pixels")
	if err != nil {
		return nil, err
	}
	coords, err := arrayField(obj, "coordinates")
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(coords))
	for i, c := range coords {
		coord, ok := c.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("coordinate %d: expected object, got %T", i, c)
		}
		coord = normalizeKeys(coord)
		row := map[string]any{"x": coord["x"], "y": coord["y"]}
		if i < len(channels) {
			row["electrode"] = channels[i]
		}
		if i < len(pixels) {
			row["pixel"] = pixels[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func arrayField(obj map[string]any, key string) ([]any, error) {
	v, ok := obj[key]
	if !ok || v == nil {
		return nil, nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected array, got %T", key, v)
	}
	return arr, nil
}

func entryFromRow(row map[string]any) (Entry, bool, error) {
	electrode, err := intField(row, "electrode")
	if err != nil {
		return Entry{}, false, err
	}
	if electrode == nil {
		if electrode, err = intField(row, "channel"); err != nil {
			return Entry{}, false, err
		}
	}
	pixel, err := intField(row, "pixel")
	if err != nil {
		return Entry{}, false, err
	}
	x, err := intField(row, "x")
	if err != nil {
		return Entry{}, false, err
	}
	y, err := intField(row, "y")
	if err != nil {
		return Entry{}, false, err
	}
	if pixel == nil || x == nil || y == nil {
		return Entry{}, false, nil
	}
	return Entry{Electrode: electrode, Pixel: *pixel, X: *x, Y: *y}, true, nil
}

// intField returns nil for a missing or null field. Zero is a valid value.
func intField(row map[string]any, key string) (*int, error) {
	v, ok := row[key]
	if !ok || v == nil {
		return nil, nil
	}
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return nil, fmt.Errorf("%s: expected integer, got %v", key, v)
	}
	n := int(f)
	return &n, nil
}

// normalizeKeys folds key casing ("X", "Pixel", "CHANNELS") to snake case.
// When both spellings are present the capitalized one wins unless it is null.
func normalizeKeys(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for k, v := range obj {
		nk := strcase.ToSnake(k)
		if prev, ok := out[nk]; ok && prev != nil && (v == nil || k == nk) {
			continue
		}
		out[nk] = v
	}
	return out
}
