package elecmap

import (
	"encoding/json"
	"fmt"

	"meamap/pkg/geometry"
)

// Orientation is the mounting orientation of a well relative to the chip's
// global scan order. Every orientation starts with a transpose; they differ
// only in which mirrors follow it.
type Orientation int

const (
	TopRightToBottomLeft Orientation = iota // transpose, mirror columns
	BottomRightToTopLeft                    // transpose, mirror columns and rows
	TopLeftToBottomRight                    // transpose
	BottomLeftToTopRight                    // transpose, mirror rows
)

var orientationNames = map[Orientation]string{
	TopRightToBottomLeft: "TopRightToBottomLeft",
	BottomRightToTopLeft: "BottomRightToTopLeft",
	TopLeftToBottomRight: "TopLeftToBottomRight",
	BottomLeftToTopRight: "BottomLeftToTopRight",
}

func (o Orientation) String() string {
	if name, ok := orientationNames[o]; ok {
		return name
	}
	return "Unknown"
}

func (o Orientation) valid() bool {
	_, ok := orientationNames[o]
	return ok
}

// Apply returns the grid as seen through this orientation. The input grid
// is not modified.
func (o Orientation) Apply(g *geometry.IntGrid) *geometry.IntGrid {
	t := g.Transpose()
	switch o {
	case TopRightToBottomLeft:
		return t.MirrorColumns()
	case BottomRightToTopLeft:
		return t.MirrorColumns().MirrorRows()
	case BottomLeftToTopRight:
		return t.MirrorRows()
	default:
		return t
	}
}

// MarshalJSON implements json.Marshaler.
func (o Orientation) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Orientation) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for k, name := range orientationNames {
		if name == s {
			*o = k
			return nil
		}
	}
	return fmt.Errorf("unknown orientation %q", s)
}

// OpMode is the operating mode of a single electrode.
type OpMode int

const (
	VoltageStim OpMode = iota
	CurrentStim
	Recording
)

func (m OpMode) String() string {
	switch m {
	case VoltageStim:
		return "Voltage Stimulation"
	case CurrentStim:
		return "Current Stimulation"
	case Recording:
		return "Recording"
	default:
		return "Unknown"
	}
}

// MarshalJSON implements json.Marshaler.
func (m OpMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (m *OpMode) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "Voltage Stimulation":
		*m = VoltageStim
	case "Current Stimulation":
		*m = CurrentStim
	case "Recording":
		*m = Recording
	default:
		return fmt.Errorf("unknown operating mode %q", s)
	}
	return nil
}
