package elecmap

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterializeWellDefaults(t *testing.T) {
	arr, err := MaterializeWell(7)
	require.NoError(t, err)
	assert.Equal(t, WellID(7), arr.Well())
	require.Equal(t, ElectrodesPerWell, arr.Len())

	pixels := make(map[int]bool, ElectrodesPerWell)
	arr.Each(func(e *Electrode) {
		assert.Equal(t, WellID(7), e.Well)
		assert.False(t, e.State)
		assert.Equal(t, VoltageStim, e.Mode)

		c, err := ResolveToCanonical(e.Well, e.Coord)
		require.NoError(t, err)
		assert.Equal(t, c, e.Canonical)
		pixels[e.Pixel()] = true
	})
	assert.Len(t, pixels, ElectrodesPerWell)

	first := arr.At(0)
	assert.Equal(t, Coord{X: 1, Y: 1}, first.Coord)
	assert.Equal(t, 0, first.Channel)
	assert.Equal(t, 3, arr.At(3).Channel)
	assert.Equal(t, Coord{X: 2, Y: 1}, arr.At(4).Coord)
}

func TestMaterializeWellIdempotent(t *testing.T) {
	a, err := MaterializeWell(11)
	require.NoError(t, err)
	b, err := MaterializeWell(11)
	require.NoError(t, err)

	require.Equal(t, a.Len(), b.Len())
	for i := 0; i < a.Len(); i++ {
		assert.Equal(t, *a.At(i), *b.At(i))
	}

	a.At(0).State = true
	assert.False(t, b.At(0).State, "arrays must be distinct instances")
}

func TestMaterializeWellInvalid(t *testing.T) {
	_, err := MaterializeWell(0)
	var rangeErr *OutOfRangeError
	assert.True(t, errors.As(err, &rangeErr))
}

func TestElectrodeLookupAndSetters(t *testing.T) {
	arr, err := MaterializeWell(1)
	require.NoError(t, err)

	coord := Coord{X: 5, Y: 9}
	e, err := arr.Electrode(coord, 2)
	require.NoError(t, err)
	assert.Equal(t, coord, e.Coord)
	assert.Equal(t, 2, e.Channel)

	require.NoError(t, arr.SetState(coord, 2, true))
	require.NoError(t, arr.SetMode(coord, 2, Recording))
	assert.True(t, e.State)
	assert.Equal(t, Recording, e.Mode)

	_, err = arr.Electrode(coord, 4)
	var rangeErr *OutOfRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, "channel", rangeErr.Field)
	assert.Error(t, arr.SetState(Coord{X: 17, Y: 1}, 0, true))

	arr.SetAll(true, CurrentStim)
	arr.Each(func(e *Electrode) {
		assert.True(t, e.State)
		assert.Equal(t, CurrentStim, e.Mode)
	})
}

func TestReassignWell(t *testing.T) {
	arr, err := MaterializeWell(5)
	require.NoError(t, err)

	type snapshot struct {
		coord   Coord
		channel int
		state   bool
		mode    OpMode
	}
	before := make([]snapshot, arr.Len())
	for i := 0; i < arr.Len(); i++ {
		e := arr.At(i)
		if i%3 == 0 {
			e.State = true
		}
		if i%5 == 0 {
			e.Mode = Recording
		}
		before[i] = snapshot{e.Coord, e.Channel, e.State, e.Mode}
	}

	require.NoError(t, ReassignWell(arr, 12))
	assert.Equal(t, WellID(12), arr.Well())

	for i := 0; i < arr.Len(); i++ {
		e := arr.At(i)
		assert.Equal(t, before[i], snapshot{e.Coord, e.Channel, e.State, e.Mode})
		assert.Equal(t, WellID(12), e.Well)

		c, err := ResolveToCanonical(12, e.Coord)
		require.NoError(t, err)
		require.Equal(t, c, e.Canonical)

		w, coord, err := ResolveFromCanonical(e.Canonical)
		require.NoError(t, err)
		require.Equal(t, WellID(12), w)
		require.Equal(t, e.Coord, coord)
	}
}

func TestReassignWellErrors(t *testing.T) {
	arr, err := MaterializeWell(3)
	require.NoError(t, err)

	err = arr.Reassign(17)
	var rangeErr *OutOfRangeError
	require.True(t, errors.As(err, &rangeErr))
	assert.Equal(t, WellID(3), arr.Well(), "failed reassignment must leave the array untouched")
	assert.Equal(t, WellID(3), arr.At(0).Well)

	assert.Error(t, ReassignWell(nil, 3))
}

func TestNewElectrode(t *testing.T) {
	idx, err := FromCanonical(4096)
	require.NoError(t, err)

	e, err := NewElectrode(idx, 3)
	require.NoError(t, err)
	assert.Equal(t, NumPixels-1, e.Pixel())
	assert.Equal(t, VoltageStim, e.Mode)
	assert.False(t, e.State)
	assert.Equal(t, "Well 12 (16, 16) [4096] ch3", e.String())

	_, err = NewElectrode(idx, -1)
	assert.Error(t, err)
}
