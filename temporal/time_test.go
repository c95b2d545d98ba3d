package temporal

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nascanti/interchange/errs"
)

func TestNewTime(t *testing.T) {
	tm, err := NewTime(23, 0, 17.914390409)
	require.NoError(t, err)
	require.Equal(t, 23, tm.Hour())
	require.Equal(t, 0, tm.Minute())
	require.InDelta(t, 17.914390409, tm.Second(), 1e-9)
}

func TestNewTime_Bounds(t *testing.T) {
	_, err := NewTime(24, 0, 0)
	require.ErrorIs(t, err, errs.ErrFieldOutOfRange)

	_, err = NewTime(0, 60, 0)
	require.ErrorIs(t, err, errs.ErrFieldOutOfRange)

	_, err = NewTime(0, 0, 60)
	require.ErrorIs(t, err, errs.ErrFieldOutOfRange)
}

func TestNewOffsetTime(t *testing.T) {
	tm, err := NewOffsetTime(12, 30, 0, 3600)
	require.NoError(t, err)
	require.True(t, tm.HasOffset)
	require.Equal(t, int32(3600), tm.OffsetSeconds)
}

func TestTime_Equal(t *testing.T) {
	a, _ := NewTime(12, 30, 0)
	b, _ := NewTime(12, 30, 0)
	c, _ := NewOffsetTime(12, 30, 0, 3600)

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
