package pack

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nascanti/interchange/errs"
	"github.com/nascanti/interchange/temporal"
	"github.com/nascanti/interchange/value"
)

func TestFrom_Scalars(t *testing.T) {
	v, err := From(nil)
	require.NoError(t, err)
	require.True(t, v.IsNull())

	v, err = From(true)
	require.NoError(t, err)
	require.Equal(t, value.KindBoolean, v.Kind())

	v, err = From(int64(42))
	require.NoError(t, err)
	require.Equal(t, value.KindInteger, v.Kind())

	v, err = From("hi")
	require.NoError(t, err)
	require.Equal(t, value.KindString, v.Kind())
}

func TestFrom_Temporal(t *testing.T) {
	d, _ := temporal.NewDate(2018, 4, 26)
	v, err := From(d)
	require.NoError(t, err)
	require.Equal(t, value.KindDate, v.Kind())
}

func TestFrom_NativeTime(t *testing.T) {
	v, err := From(time.Date(2018, 4, 26, 23, 0, 17, 914390409, time.UTC))
	require.NoError(t, err)
	require.Equal(t, value.KindDateTime, v.Kind())

	dt, _ := v.AsDateTime()
	require.True(t, dt.IsNaive())
	require.Equal(t, int32(914390409), dt.Nanosecond)
}

func TestFrom_NativeDuration(t *testing.T) {
	v, err := From(90*time.Second + 500*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, value.KindDuration, v.Kind())

	d, _ := v.AsDuration()
	require.Equal(t, int64(90), d.Seconds)
	require.Equal(t, int32(500_000_000), d.Nanoseconds)
}

func TestFrom_List(t *testing.T) {
	v, err := From([]any{int64(1), "a", nil})
	require.NoError(t, err)
	require.Equal(t, value.KindList, v.Kind())

	items, _ := v.AsList()
	require.Len(t, items, 3)
}

func TestFrom_Map(t *testing.T) {
	v, err := From(map[string]any{"a": int64(1)})
	require.NoError(t, err)
	require.Equal(t, value.KindDictionary, v.Kind())

	d, _ := v.AsDictionary()
	got, ok := d.Get("a")
	require.True(t, ok)
	n, _ := got.AsInteger()
	require.Equal(t, int64(1), n)
}

func TestFrom_UnsupportedType(t *testing.T) {
	_, err := From(struct{ X int }{X: 1})
	require.Error(t, err)
}

func TestFrom_Uint64InRange(t *testing.T) {
	v, err := From(uint64(1 << 40))
	require.NoError(t, err)

	n, ok := v.AsInteger()
	require.True(t, ok)
	require.Equal(t, int64(1<<40), n)
}

func TestFrom_Uint64OutOfRange(t *testing.T) {
	_, err := From(uint64(math.MaxInt64) + 1)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrIntegerOutOfRange)
}
