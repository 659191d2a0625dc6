// Package elecmap translates between the addressing schemes of the 16-well
// microelectrode array: the flat canonical index used by the acquisition
// sweep, the (well, local coordinate) pair used by operators, and the pixel
// index used by the multiplexed electrode driver.
//
// All lookup tables are built once at package initialization and are read
// only afterwards, so every lookup function is safe for concurrent use.
// WellArray values are not.
package elecmap

import (
	"fmt"

	"meamap/pkg/geometry"
)

// Chip geometry.
const (
	NumWells          = 16
	WellSize          = 16 // cells per well along x and along y
	CellsPerWell      = WellSize * WellSize
	NumCanonical      = NumWells * CellsPerWell
	MultiplexFactor   = 4 // 2x2 electrodes per pixel
	ElectrodesPerWell = CellsPerWell * MultiplexFactor
	NumPixels         = NumCanonical * MultiplexFactor
)

// WellID identifies one of the 16 physical wells, 1..16.
type WellID int

// Valid reports whether w names a well on the chip.
func (w WellID) Valid() bool {
	return w >= 1 && w <= NumWells
}

func (w WellID) String() string {
	return fmt.Sprintf("Well %d", int(w))
}

// Coord is a 1-indexed (x, y) position inside a well's 16x16 grid.
// x is the column and y is the row.
type Coord = geometry.PointInt

// Index is a fully resolved cell address. Build one with FromCanonical,
// FromCoordinate or NewIndex so the three fields always agree.
type Index struct {
	Well      WellID `json:"well"`
	Coord     Coord  `json:"coord"`
	Canonical int    `json:"canonical"`
}

func (i Index) String() string {
	return fmt.Sprintf("%s %s [%d]", i.Well, i.Coord, i.Canonical)
}

func checkWell(w WellID) error {
	if !w.Valid() {
		return &OutOfRangeError{Field: "well", Value: int(w), Min: 1, Max: NumWells}
	}
	return nil
}

func checkCoord(c Coord) error {
	if c.X < 1 || c.X > WellSize {
		return &OutOfRangeError{Field: "x", Value: c.X, Min: 1, Max: WellSize}
	}
	if c.Y < 1 || c.Y > WellSize {
		return &OutOfRangeError{Field: "y", Value: c.Y, Min: 1, Max: WellSize}
	}
	return nil
}
