package dimtypes

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LMerkin/DimTypes/encodings"
)

func TestConfigs(t *testing.T) {
	cfgs := Configs()
	require.Len(t, cfgs, 3)
	assert.Equal(t, uint(7), cfgs[0].MaxDims)
	assert.Equal(t, uint(8), cfgs[1].MaxDims)
	assert.Equal(t, uint(9), cfgs[2].MaxDims)
}

func TestNewSystem(t *testing.T) {
	s, err := NewSystem(encodings.DefaultMaxDims)
	require.NoError(t, err)
	assert.Equal(t, uint(8), s.Encoding().MaxDims)

	_, err = NewSystem(3)
	assert.ErrorIs(t, err, encodings.ErrBadConfig)

	assert.Panics(t, func() { MustNewSystem(12) })
}

func TestAddDimension(t *testing.T) {
	s := MustNewSystem(7)

	length, err := s.AddDimension("Len", "m")
	require.NoError(t, err)
	assert.Equal(t, Dim(0), length)

	tm, err := s.AddDimension("Time", "sec")
	require.NoError(t, err)
	assert.Equal(t, Dim(1), tm)

	_, err = s.AddDimension("Len", "m")
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestAddDimensionOverflow(t *testing.T) {
	s := MustNewSystem(7)
	for i := 0; i < 7; i++ {
		_, err := s.AddDimension(fmt.Sprintf("Dim%d", i), fmt.Sprintf("u%d", i))
		require.NoError(t, err)
	}
	_, err := s.AddDimension("OneTooMany", "u")
	assert.ErrorIs(t, err, ErrTooManyDims)
}

func TestAddUnit(t *testing.T) {
	s := MustNewSystem(8)
	length := s.MustAddDimension("Len", "m")

	km, err := s.AddUnit(length, "km", 1000.0)
	require.NoError(t, err)
	assert.Equal(t, Unit(1), km)

	_, err = s.AddUnit(length, "km", 1000.0)
	assert.ErrorIs(t, err, ErrDuplicateName)

	_, err = s.AddUnit(Dim(5), "kg", 1.0)
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestQtyUnknownUnit(t *testing.T) {
	s := MustNewSystem(8)
	length := s.MustAddDimension("Len", "m")

	assert.Panics(t, func() { s.Qty(1.0, length, Unit(3)) })
	assert.Panics(t, func() { s.Qty(1.0, Dim(4), Unit(0)) })
}

func TestQtyCodes(t *testing.T) {
	s := MustNewSystem(9)
	length := s.MustAddDimension("Len", "m")
	km := s.MustAddUnit(length, "km", 1000.0)

	q := s.Qty(2.5, length, km)
	e := s.Encoding()
	assert.Equal(t, e.DimExp(uint(length)), q.DimsCode())
	assert.Equal(t, e.MkUnit(uint(length), uint(km)), q.UnitsCode())
	assert.Equal(t, 2.5, q.Magnitude())

	d := s.Dimless(3.25)
	assert.True(t, d.IsDimless())
	assert.Equal(t, 3.25, d.Float())
}
