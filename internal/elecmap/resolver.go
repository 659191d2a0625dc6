package elecmap

// ResolveToCanonical returns the canonical index of a local coordinate.
// It returns *OutOfRangeError for a bad well or an axis outside 1..16.
func ResolveToCanonical(w WellID, c Coord) (int, error) {
	return chip.canonicalOf(w, c)
}

// ResolveFromCanonical returns the well and local coordinate of a canonical
// index. It returns *LookupError outside 1..4096.
func ResolveFromCanonical(canonical int) (WellID, Coord, error) {
	return chip.resolve(canonical)
}

// FromCanonical builds an Index from a canonical index.
func FromCanonical(canonical int) (Index, error) {
	w, c, err := chip.resolve(canonical)
	if err != nil {
		return Index{}, err
	}
	return Index{Well: w, Coord: c, Canonical: canonical}, nil
}

// FromCoordinate builds an Index from a well and local coordinate.
func FromCoordinate(w WellID, c Coord) (Index, error) {
	canonical, err := chip.canonicalOf(w, c)
	if err != nil {
		return Index{}, err
	}
	return Index{Well: w, Coord: c, Canonical: canonical}, nil
}

// IndexSpec carries the optional inputs of NewIndex. Set either Canonical,
// or Well together with Coord.
type IndexSpec struct {
	Canonical *int
	Well      *WellID
	Coord     *Coord
}

// NewIndex builds an Index from whichever variant opts carries. Supplying
// both variants is an error, never a precedence rule.
func NewIndex(opts IndexSpec) (Index, error) {
	hasCoord := opts.Well != nil || opts.Coord != nil
	switch {
	case opts.Canonical != nil && hasCoord:
		e := &ConflictingConstructionError{Canonical: *opts.Canonical}
		if opts.Well != nil {
			e.Well = *opts.Well
		}
		if opts.Coord != nil {
			e.Coord = *opts.Coord
		}
		return Index{}, e
	case opts.Canonical != nil:
		return FromCanonical(*opts.Canonical)
	case opts.Well != nil && opts.Coord != nil:
		return FromCoordinate(*opts.Well, *opts.Coord)
	default:
		return Index{}, ErrMissingIndex
	}
}

// Layout returns a copy of a well's layout, indexed [y-1][x-1].
func Layout(w WellID) ([WellSize][WellSize]int, error) {
	if err := checkWell(w); err != nil {
		return [WellSize][WellSize]int{}, err
	}
	return chip.layout[w], nil
}

// Block returns the first and last canonical index reserved for a well.
func Block(w WellID) (start, end int, err error) {
	if err = checkWell(w); err != nil {
		return 0, 0, err
	}
	a := chip.blocks[w]
	return a.Start, a.End(), nil
}

// OrientationOf returns the mounting orientation of a well.
func OrientationOf(w WellID) (Orientation, error) {
	if err := checkWell(w); err != nil {
		return 0, err
	}
	return chip.blocks[w].Orientation, nil
}

// Wells returns every well identifier in ascending order.
func Wells() []WellID {
	out := make([]WellID, NumWells)
	for i := range out {
		out[i] = WellID(i + 1)
	}
	return out
}
