package elecmap

// PixelIndicesFor returns the four pixel indices owned by a canonical index
// of the given well, in ascending channel order.
func PixelIndicesFor(w WellID, canonical int) ([MultiplexFactor]int, error) {
	if err := checkWell(w); err != nil {
		return [MultiplexFactor]int{}, err
	}
	owner, _, err := chip.resolve(canonical)
	if err != nil {
		return [MultiplexFactor]int{}, err
	}
	if owner != w {
		a := chip.blocks[w]
		return [MultiplexFactor]int{}, &OutOfRangeError{
			Field: "canonical index",
			Value: canonical,
			Min:   a.Start,
			Max:   a.End(),
		}
	}
	return pixelsOf(canonical), nil
}

// WellPixels returns the well's 1024 pixel indices, walking its layout
// row-major and emitting four channels per cell.
func WellPixels(w WellID) ([]int, error) {
	if err := checkWell(w); err != nil {
		return nil, err
	}
	out := make([]int, len(chip.pixels[w]))
	copy(out, chip.pixels[w])
	return out, nil
}

// PixelToAddress resolves a pixel index back to its cell and multiplexer
// channel.
func PixelToAddress(pixel int) (Index, int, error) {
	if pixel < 0 || pixel >= NumPixels {
		return Index{}, 0, &OutOfRangeError{Field: "pixel", Value: pixel, Min: 0, Max: NumPixels - 1}
	}
	idx, err := FromCanonical(pixel/MultiplexFactor + 1)
	if err != nil {
		return Index{}, 0, err
	}
	return idx, pixel % MultiplexFactor, nil
}
