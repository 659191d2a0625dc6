// Package geometry provides the integer point and grid types shared by the
// electrode addressing packages.
package geometry

import (
	"encoding/json"
	"fmt"
)

// PointInt represents a 2D point with integer coordinates.
type PointInt struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NewPointInt creates a new PointInt.
func NewPointInt(x, y int) PointInt {
	return PointInt{X: x, Y: y}
}

// Add returns the sum of two points.
func (p PointInt) Add(other PointInt) PointInt {
	return PointInt{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p PointInt) Sub(other PointInt) PointInt {
	return PointInt{X: p.X - other.X, Y: p.Y - other.Y}
}

// In reports whether both axes lie in [lo, hi].
func (p PointInt) In(lo, hi int) bool {
	return p.X >= lo && p.X <= hi && p.Y >= lo && p.Y <= hi
}

func (p PointInt) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// MarshalJSON encodes the point as a two element array, the form used by
// the selection list files.
func (p PointInt) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// UnmarshalJSON accepts either [x, y] or {"x": .., "y": ..}.
func (p *PointInt) UnmarshalJSON(data []byte) error {
	var pair []int
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("point: expected 2 values, got %d", len(pair))
		}
		p.X, p.Y = pair[0], pair[1]
		return nil
	}

	type plain PointInt
	var obj plain
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("point: %w", err)
	}
	*p = PointInt(obj)
	return nil
}
