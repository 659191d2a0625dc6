package colorutil

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	c, err := Parse("DodgerBlue")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 30, G: 144, B: 255, A: 255}, c)

	c, err = Parse("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 128, B: 0, A: 255}, c)

	c, err = Parse("00ff00")
	require.NoError(t, err)
	assert.Equal(t, "#00ff00", Hex(c))

	for _, bad := range []string{"", "notacolor", "#12345", "#gggggg"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}

func TestRGBRoundTrip(t *testing.T) {
	c, err := FromRGB([]int{12, 200, 255})
	require.NoError(t, err)
	assert.Equal(t, [3]int{12, 200, 255}, ToRGB(c))

	_, err = FromRGB([]int{1, 2})
	assert.Error(t, err)
	_, err = FromRGB([]int{1, 2, 256})
	assert.Error(t, err)
}

func TestPaletteColorWraps(t *testing.T) {
	assert.Equal(t, Palette[0], PaletteColor(len(Palette)))
	assert.Equal(t, Palette[1], PaletteColor(-1))
	assert.Equal(t, Default, PaletteColor(0))
}
