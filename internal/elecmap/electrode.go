package elecmap

import "fmt"

// Electrode is one multiplexed electrode: a resolved cell address plus the
// multiplexer channel and the operating state owned by the control layer.
type Electrode struct {
	Index
	Channel int    `json:"channel"`
	State   bool   `json:"state"`
	Mode    OpMode `json:"mode"`
}

// NewElectrode creates an electrode with the default state (off, voltage
// stimulation).
func NewElectrode(idx Index, channel int) (*Electrode, error) {
	if channel < 0 || channel >= MultiplexFactor {
		return nil, &OutOfRangeError{Field: "channel", Value: channel, Min: 0, Max: MultiplexFactor - 1}
	}
	return &Electrode{Index: idx, Channel: channel, Mode: VoltageStim}, nil
}

// Pixel returns the electrode's pixel index.
func (e *Electrode) Pixel() int {
	return MultiplexFactor*(e.Canonical-1) + e.Channel
}

func (e *Electrode) String() string {
	return fmt.Sprintf("%s ch%d", e.Index, e.Channel)
}

// WellArray holds the 1024 electrodes of one well, ordered by the well's
// layout (row-major over y, then x) with the four channels of a cell adjacent.
//
// A WellArray is owned by a single caller; Reassign and the setters must not
// run concurrently.
type WellArray struct {
	well       WellID
	electrodes []Electrode
}

// MaterializeWell builds a fresh array of default electrodes for a well.
func MaterializeWell(w WellID) (*WellArray, error) {
	if err := checkWell(w); err != nil {
		return nil, err
	}
	arr := &WellArray{
		well:       w,
		electrodes: make([]Electrode, 0, ElectrodesPerWell),
	}
	for row := 0; row < WellSize; row++ {
		for col := 0; col < WellSize; col++ {
			idx := Index{
				Well:      w,
				Coord:     Coord{X: col + 1, Y: row + 1},
				Canonical: chip.layout[w][row][col],
			}
			for ch := 0; ch < MultiplexFactor; ch++ {
				arr.electrodes = append(arr.electrodes, Electrode{Index: idx, Channel: ch, Mode: VoltageStim})
			}
		}
	}
	return arr, nil
}

// ReassignWell re-indexes every electrode of arr against newWell.
func ReassignWell(arr *WellArray, newWell WellID) error {
	if arr == nil {
		return fmt.Errorf("reassign %s: nil well array", newWell)
	}
	return arr.Reassign(newWell)
}

// Well returns the well the array currently belongs to.
func (a *WellArray) Well() WellID {
	return a.well
}

// Len returns the number of electrodes, always ElectrodesPerWell.
func (a *WellArray) Len() int {
	return len(a.electrodes)
}

// At returns the i-th electrode in layout order.
func (a *WellArray) At(i int) *Electrode {
	return &a.electrodes[i]
}

// Electrode returns the electrode at a local coordinate and channel.
func (a *WellArray) Electrode(c Coord, channel int) (*Electrode, error) {
	if err := checkCoord(c); err != nil {
		return nil, err
	}
	if channel < 0 || channel >= MultiplexFactor {
		return nil, &OutOfRangeError{Field: "channel", Value: channel, Min: 0, Max: MultiplexFactor - 1}
	}
	i := ((c.Y-1)*WellSize+(c.X-1))*MultiplexFactor + channel
	return &a.electrodes[i], nil
}

// Each calls fn for every electrode in layout order.
func (a *WellArray) Each(fn func(e *Electrode)) {
	for i := range a.electrodes {
		fn(&a.electrodes[i])
	}
}

// SetState sets the digital state of one electrode.
func (a *WellArray) SetState(c Coord, channel int, state bool) error {
	e, err := a.Electrode(c, channel)
	if err != nil {
		return err
	}
	e.State = state
	return nil
}

// SetMode sets the operating mode of one electrode.
func (a *WellArray) SetMode(c Coord, channel int, mode OpMode) error {
	e, err := a.Electrode(c, channel)
	if err != nil {
		return err
	}
	e.Mode = mode
	return nil
}

// SetAll applies a state and mode to every electrode.
func (a *WellArray) SetAll(state bool, mode OpMode) {
	for i := range a.electrodes {
		a.electrodes[i].State = state
		a.electrodes[i].Mode = mode
	}
}

// Reassign moves the array to another well. Each electrode keeps its local
// coordinate, channel, state and mode; its well and canonical index are
// recomputed from the new well's layout.
func (a *WellArray) Reassign(newWell WellID) error {
	if err := checkWell(newWell); err != nil {
		return err
	}
	for i := range a.electrodes {
		e := &a.electrodes[i]
		e.Well = newWell
		e.Canonical = chip.layout[newWell][e.Coord.Y-1][e.Coord.X-1]
	}
	a.well = newWell
	return nil
}
