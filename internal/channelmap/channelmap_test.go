package channelmap

import (
	"os"
	"path/filepath"
	"testing"

	"meamap/pkg/geometry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const parallelDoc = `{
  "Channels": [0, 1, null, 3],
  "pixels": [100, 101, 102],
  "coordinates": [
    {"X": 0, "Y": 0},
    {"x": 1, "y": 0},
    {"X": 0, "Y": 1},
    {"X": 2, "Y": 2}
  ]
}`

const listDoc = `[
  {"electrode": 0, "pixel": 7, "x": 0, "y": 0},
  {"Channel": 5, "Pixel": 8, "X": 3, "Y": 4},
  {"pixel": 9, "x": 6, "y": 6},
  {"electrode": 2, "x": 1}
]`

func TestParseParallelArrays(t *testing.T) {
	m, err := Parse([]byte(parallelDoc))
	require.NoError(t, err)
	// fourth coordinate has no pixel and is skipped
	assert.Equal(t, 3, m.Len())

	e, err := m.ByElectrode(0)
	require.NoError(t, err)
	assert.Equal(t, 100, e.Pixel)
	assert.Equal(t, geometry.PointInt{X: 0, Y: 0}, e.Coord())

	e, err = m.ByCoord(1, 0)
	require.NoError(t, err)
	require.NotNil(t, e.Electrode)
	assert.Equal(t, 1, *e.Electrode)

	e, err = m.ByPixel(102)
	require.NoError(t, err)
	assert.Nil(t, e.Electrode)
	assert.Equal(t, 1, e.Y)

	_, err = m.ByCoord(2, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseEntryList(t *testing.T) {
	m, err := Parse([]byte(listDoc))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())
	assert.Len(t, m.Entries(), 3)

	e, err := m.ByElectrode(5)
	require.NoError(t, err)
	assert.Equal(t, Entry{Electrode: e.Electrode, Pixel: 8, X: 3, Y: 4}, e)

	e, err = m.ByCoord(6, 6)
	require.NoError(t, err)
	assert.Nil(t, e.Electrode)

	_, err = m.ByElectrode(2)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = m.ByPixel(1000)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestParseLaterRowsWin(t *testing.T) {
	m, err := Parse([]byte(`[
		{"electrode": 1, "pixel": 10, "x": 0, "y": 0},
		{"electrode": 2, "pixel": 11, "x": 0, "y": 0}
	]`))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
	assert.Len(t, m.Entries(), 2)

	e, err := m.ByCoord(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 11, e.Pixel)
}

func TestParseRejectsBadDocuments(t *testing.T) {
	tests := map[string]string{
		"scalar":          `42`,
		"object no keys":  `{"foo": []}`,
		"non-object item": `[1, 2]`,
		"fractional":      `[{"pixel": 1.5, "x": 0, "y": 0}]`,
		"string value":    `[{"pixel": "7", "x": 0, "y": 0}]`,
		"channels scalar": `{"channels": 3}`,
		"bad coordinate":  `{"channels": [], "coordinates": [5]}`,
		"invalid json":    `{`,
	}
	for name, doc := range tests {
		_, err := Parse([]byte(doc))
		assert.Error(t, err, name)
	}

	_, err := Parse([]byte(`"x"`))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNormalizeKeysPrefersCapitalized(t *testing.T) {
	obj := normalizeKeys(map[string]any{"x": 1.0, "X": 2.0, "Y": nil, "y": 3.0})
	assert.Equal(t, 2.0, obj["x"])
	assert.Equal(t, 3.0, obj["y"])
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config_ChannelRemappingInfo.json")
	require.NoError(t, os.WriteFile(path, []byte(listDoc), 0o644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
