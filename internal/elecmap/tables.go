package elecmap

import (
	"fmt"

	"meamap/pkg/geometry"
)

// wellAssignment binds a well to its block of 256 canonical indices and its
// mounting orientation.
type wellAssignment struct {
	Well        WellID
	Start       int
	Orientation Orientation
}

// End returns the last canonical index of the block.
func (a wellAssignment) End() int {
	return a.Start + CellsPerWell - 1
}

// Hardware sweep order. The block order does not follow well numbering.
var chipAssignments = []wellAssignment{
	{Well: 5, Start: 1, Orientation: TopRightToBottomLeft},
	{Well: 7, Start: 257, Orientation: TopRightToBottomLeft},
	{Well: 6, Start: 513, Orientation: BottomRightToTopLeft},
	{Well: 8, Start: 769, Orientation: BottomRightToTopLeft},
	{Well: 13, Start: 1025, Orientation: BottomRightToTopLeft},
	{Well: 15, Start: 1281, Orientation: BottomRightToTopLeft},
	{Well: 14, Start: 1537, Orientation: TopRightToBottomLeft},
	{Well: 16, Start: 1793, Orientation: TopRightToBottomLeft},
	{Well: 1, Start: 2049, Orientation: TopLeftToBottomRight},
	{Well: 3, Start: 2305, Orientation: TopLeftToBottomRight},
	{Well: 2, Start: 2561, Orientation: BottomLeftToTopRight},
	{Well: 4, Start: 2817, Orientation: BottomLeftToTopRight},
	{Well: 9, Start: 3073, Orientation: BottomLeftToTopRight},
	{Well: 11, Start: 3329, Orientation: BottomLeftToTopRight},
	{Well: 10, Start: 3585, Orientation: TopLeftToBottomRight},
	{Well: 12, Start: 3841, Orientation: TopLeftToBottomRight},
}

type cell struct {
	well  WellID
	coord Coord
}

// tables holds the forward layout, its inverse and the per-well pixel
// sequence. Arrays indexed by WellID leave slot 0 unused.
type tables struct {
	blocks  [NumWells + 1]wellAssignment
	layout  [NumWells + 1][WellSize][WellSize]int // [well][y-1][x-1]
	inverse [NumCanonical + 1]cell
	pixels  [NumWells + 1][]int
}

var chip = mustBuildTables(chipAssignments)

func mustBuildTables(assignments []wellAssignment) *tables {
	t, err := buildTables(assignments)
	if err != nil {
		panic(fmt.Sprintf("elecmap: corrupt chip table: %v", err))
	}
	return t
}

// buildTables builds the layout from the assignments, then inverts it in a
// single pass. It fails unless the blocks partition 1..NumCanonical exactly.
func buildTables(assignments []wellAssignment) (*tables, error) {
	if len(assignments) != NumWells {
		return nil, fmt.Errorf("expected %d well assignments, got %d", NumWells, len(assignments))
	}

	t := &tables{}
	for _, a := range assignments {
		if !a.Well.Valid() {
			return nil, fmt.Errorf("invalid well %d", a.Well)
		}
		if t.blocks[a.Well].Well != 0 {
			return nil, fmt.Errorf("%s assigned twice", a.Well)
		}
		if a.Start < 1 || a.End() > NumCanonical {
			return nil, fmt.Errorf("%s block [%d, %d] outside [1, %d]", a.Well, a.Start, a.End(), NumCanonical)
		}
		if !a.Orientation.valid() {
			return nil, fmt.Errorf("%s has unknown orientation %d", a.Well, int(a.Orientation))
		}

		grid := a.Orientation.Apply(geometry.NewSequentialGrid(WellSize, WellSize, a.Start))
		for row := 0; row < WellSize; row++ {
			for col := 0; col < WellSize; col++ {
				t.layout[a.Well][row][col] = grid.At(row, col)
			}
		}
		t.blocks[a.Well] = a
	}

	for w := WellID(1); w <= NumWells; w++ {
		pixels := make([]int, 0, ElectrodesPerWell)
		for row := 0; row < WellSize; row++ {
			for col := 0; col < WellSize; col++ {
				c := t.layout[w][row][col]
				if c < 1 || c > NumCanonical {
					return nil, fmt.Errorf("%s holds canonical index %d outside [1, %d]", w, c, NumCanonical)
				}
				if prev := t.inverse[c]; prev.well != 0 {
					return nil, fmt.Errorf("canonical index %d claimed by %s and %s", c, prev.well, w)
				}
				t.inverse[c] = cell{well: w, coord: Coord{X: col + 1, Y: row + 1}}
				px := pixelsOf(c)
				pixels = append(pixels, px[:]...)
			}
		}
		t.pixels[w] = pixels
	}

	for c := 1; c <= NumCanonical; c++ {
		if t.inverse[c].well == 0 {
			return nil, fmt.Errorf("canonical index %d not assigned to any well", c)
		}
	}
	return t, nil
}

func (t *tables) canonicalOf(w WellID, c Coord) (int, error) {
	if err := checkWell(w); err != nil {
		return 0, err
	}
	if err := checkCoord(c); err != nil {
		return 0, err
	}
	return t.layout[w][c.Y-1][c.X-1], nil
}

func (t *tables) resolve(canonical int) (WellID, Coord, error) {
	if canonical < 1 || canonical > NumCanonical {
		return 0, Coord{}, &LookupError{Index: canonical}
	}
	e := t.inverse[canonical]
	return e.well, e.coord, nil
}

// pixelsOf returns the four multiplexed pixel indices of a canonical index.
func pixelsOf(canonical int) [MultiplexFactor]int {
	var out [MultiplexFactor]int
	for k := range out {
		out[k] = MultiplexFactor*(canonical-1) + k
	}
	return out
}
