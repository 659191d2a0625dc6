// Package colorutil provides the named colors and color conversions used by
// selection lists.
package colorutil

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Default is the color given to a selection list when none is chosen.
var Default = colornames.Red

// Palette is cycled through when lists are created without a color.
var Palette = []color.RGBA{
	colornames.Red,
	colornames.Dodgerblue,
	colornames.Limegreen,
	colornames.Orange,
	colornames.Magenta,
	colornames.Cyan,
	colornames.Gold,
	colornames.Mediumpurple,
}

// PaletteColor returns the i-th palette color, wrapping around.
func PaletteColor(i int) color.RGBA {
	if i < 0 {
		i = -i
	}
	return Palette[i%len(Palette)]
}

// ToRGB returns the 8-bit red, green and blue components of c.
func ToRGB(c color.Color) [3]int {
	r, g, b, _ := c.RGBA()
	return [3]int{int(r >> 8), int(g >> 8), int(b >> 8)}
}

// FromRGB builds an opaque color from [r, g, b] components in 0-255.
func FromRGB(rgb []int) (color.RGBA, error) {
	if len(rgb) != 3 {
		return color.RGBA{}, fmt.Errorf("color needs 3 components, got %d", len(rgb))
	}
	for _, v := range rgb {
		if v < 0 || v > 255 {
			return color.RGBA{}, fmt.Errorf("color component %d out of range [0, 255]", v)
		}
	}
	return color.RGBA{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2]), A: 255}, nil
}

// Parse accepts an SVG color name ("red", "DodgerBlue") or a hex triplet
// ("#1e90ff" or "1e90ff").
func Parse(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("unknown color %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Hex formats c as "#rrggbb".
func Hex(c color.Color) string {
	rgb := ToRGB(c)
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2])
}
