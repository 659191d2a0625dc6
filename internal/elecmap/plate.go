package elecmap

// PlateWells is the number of wells along each side of the plate.
const PlateWells = 4

// PlateSize is the number of cells along each side of the whole plate.
const PlateSize = PlateWells * WellSize

// plateWells places each well on the 4x4 plate, indexed [row][column] from
// the top-left corner.
var plateWells = [PlateWells][PlateWells]WellID{
	{1, 3, 7, 5},
	{2, 4, 8, 6},
	{10, 12, 16, 14},
	{9, 11, 15, 13},
}

// PlateWellAt returns the well at plate grid position (gx, gy), 0-based.
func PlateWellAt(gx, gy int) (WellID, error) {
	if gx < 0 || gx >= PlateWells {
		return 0, &OutOfRangeError{Field: "plate column", Value: gx, Min: 0, Max: PlateWells - 1}
	}
	if gy < 0 || gy >= PlateWells {
		return 0, &OutOfRangeError{Field: "plate row", Value: gy, Min: 0, Max: PlateWells - 1}
	}
	return plateWells[gy][gx], nil
}

// PlateOrigin returns the 0-based plate cell of the well's top-left corner.
func PlateOrigin(w WellID) (x, y int, err error) {
	if err = checkWell(w); err != nil {
		return 0, 0, err
	}
	for gy, row := range plateWells {
		for gx, id := range row {
			if id == w {
				return gx * WellSize, gy * WellSize, nil
			}
		}
	}
	// every valid well is on the plate
	panic("elecmap: " + w.String() + " missing from plate layout")
}

// PlateToLocal converts a 0-based plate cell into a well and a 1-based local
// coordinate.
func PlateToLocal(x, y int) (WellID, Coord, error) {
	if x < 0 || x >= PlateSize {
		return 0, Coord{}, &OutOfRangeError{Field: "plate x", Value: x, Min: 0, Max: PlateSize - 1}
	}
	if y < 0 || y >= PlateSize {
		return 0, Coord{}, &OutOfRangeError{Field: "plate y", Value: y, Min: 0, Max: PlateSize - 1}
	}
	w, err := PlateWellAt(x/WellSize, y/WellSize)
	if err != nil {
		return 0, Coord{}, err
	}
	return w, Coord{X: x%WellSize + 1, Y: y%WellSize + 1}, nil
}

// LocalToPlate is the inverse of PlateToLocal.
func LocalToPlate(w WellID, c Coord) (x, y int, err error) {
	if err = checkCoord(c); err != nil {
		return 0, 0, err
	}
	ox, oy, err := PlateOrigin(w)
	if err != nil {
		return 0, 0, err
	}
	return ox + c.X - 1, oy + c.Y - 1, nil
}
