// Package selection manages named, colored lists of plate coordinates that
// an operator builds up while exploring the array.
package selection

import (
	"fmt"
	"image/color"

	"meamap/pkg/colorutil"
	"meamap/pkg/geometry"
)

// List is a named set of coordinates drawn in one color. Coordinates keep
// insertion order and never repeat.
type List struct {
	Name        string
	Color       color.RGBA
	Coordinates []geometry.PointInt
}

// NewList creates an empty list. A nil color falls back to colorutil.Default.
func NewList(name string, c color.Color) *List {
	l := &List{Name: name, Color: colorutil.Default}
	if c != nil {
		rgb := colorutil.ToRGB(c)
		l.Color = color.RGBA{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2]), A: 255}
	}
	return l
}

// Add appends a coordinate unless it is already present. It reports whether
// the list changed.
func (l *List) Add(x, y int) bool {
	if l.Has(x, y) {
		return false
	}
	l.Coordinates = append(l.Coordinates, geometry.PointInt{X: x, Y: y})
	return true
}

// Remove deletes a coordinate. It reports whether the list changed.
func (l *List) Remove(x, y int) bool {
	p := geometry.PointInt{X: x, Y: y}
	for i, c := range l.Coordinates {
		if c == p {
			l.Coordinates = append(l.Coordinates[:i], l.Coordinates[i+1:]...)
			return true
		}
	}
	return false
}

// Has reports whether the list contains a coordinate.
func (l *List) Has(x, y int) bool {
	p := geometry.PointInt{X: x, Y: y}
	for _, c := range l.Coordinates {
		if c == p {
			return true
		}
	}
	return false
}

// Manager owns an ordered set of lists and tracks the current one. Later
// lists draw on top of earlier ones.
type Manager struct {
	lists   []*List
	current *List
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Create adds a new list and makes it current. A nil color picks the next
// palette color.
func (m *Manager) Create(name string, c color.Color) *List {
	if c == nil {
		c = colorutil.PaletteColor(len(m.lists))
	}
	l := NewList(name, c)
	m.lists = append(m.lists, l)
	m.current = l
	return l
}

// Remove deletes a list. If it was current, the first remaining list becomes
// current.
func (m *Manager) Remove(l *List) bool {
	for i, existing := range m.lists {
		if existing != l {
			continue
		}
		m.lists = append(m.lists[:i], m.lists[i+1:]...)
		if m.current == l {
			m.current = nil
			if len(m.lists) > 0 {
				m.current = m.lists[0]
			}
		}
		return true
	}
	return false
}

// Lists returns the lists in creation order.
func (m *Manager) Lists() []*List {
	out := make([]*List, len(m.lists))
	copy(out, m.lists)
	return out
}

// Current returns the current list, or nil when there are none.
func (m *Manager) Current() *List {
	return m.current
}

// SetCurrent selects the i-th list.
func (m *Manager) SetCurrent(i int) error {
	if i < 0 || i >= len(m.lists) {
		return fmt.Errorf("selection list %d out of range [0, %d)", i, len(m.lists))
	}
	m.current = m.lists[i]
	return nil
}

// Find returns the first list with the given name.
func (m *Manager) Find(name string) (*List, bool) {
	for _, l := range m.lists {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// ColorAt returns the color of the topmost list containing the coordinate.
func (m *Manager) ColorAt(x, y int) (color.RGBA, bool) {
	for i := len(m.lists) - 1; i >= 0; i-- {
		if m.lists[i].Has(x, y) {
			return m.lists[i].Color, true
		}
	}
	return color.RGBA{}, false
}
