package interchange

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nascanti/interchange/pack"
	"github.com/nascanti/interchange/value"
	"github.com/nascanti/interchange/version"
)

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	data, err := Marshal(map[string]any{"name": "Alice", "age": int64(33)})
	require.NoError(t, err)

	got, err := Unmarshal(data)
	require.NoError(t, err)

	d, ok := got.AsDictionary()
	require.True(t, ok)

	age, ok := d.Get("age")
	require.True(t, ok)

	n, ok := age.AsInteger()
	require.True(t, ok)
	require.Equal(t, int64(33), n)
}

func TestUnmarshal_RejectsTrailingBytes(t *testing.T) {
	one, err := pack.Pack(value.Integer(1), version.V2_0)
	require.NoError(t, err)

	two, err := pack.Pack(value.Integer(2), version.V2_0)
	require.NoError(t, err)

	_, err = Unmarshal(append(one, two...))
	require.Error(t, err)
}

func TestUnmarshal_EmptyInputReturnsNull(t *testing.T) {
	got, err := Unmarshal(nil)
	require.NoError(t, err)
	require.True(t, got.IsNull())
}
