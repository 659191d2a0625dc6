package elecmap

import (
	"errors"
	"fmt"
)

// ErrMissingIndex is returned by NewIndex when neither a canonical index nor
// a well coordinate is supplied.
var ErrMissingIndex = errors.New("neither canonical index nor well coordinate supplied")

// OutOfRangeError reports a well, coordinate axis, channel or pixel outside
// its valid domain.
type OutOfRangeError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// LookupError reports a canonical index with no entry in the inverse table.
type LookupError struct {
	Index int
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("canonical index does not exist: %d", e.Index)
}

// ConflictingConstructionError is returned when an address is built from a
// canonical index and a well coordinate at the same time.
type ConflictingConstructionError struct {
	Canonical int
	Well      WellID
	Coord     Coord
}

func (e *ConflictingConstructionError) Error() string {
	return fmt.Sprintf("conflicting construction: canonical index %d and %s %s both supplied",
		e.Canonical, e.Well, e.Coord)
}
