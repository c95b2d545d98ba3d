package pack

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nascanti/interchange/value"
	"github.com/nascanti/interchange/version"
)

func packHex(t *testing.T, v value.Value) []byte {
	t.Helper()
	data, err := Pack(v, version.V2_0)
	require.NoError(t, err)
	return data
}

func TestPack_Null(t *testing.T) {
	require.Equal(t, []byte{0xC0}, packHex(t, value.Null))
}

func TestPack_NegativeInt8(t *testing.T) {
	require.Equal(t, []byte{0xC8, 0x80}, packHex(t, value.Integer(-128)))
}

func TestPack_Int16(t *testing.T) {
	require.Equal(t, []byte{0xC9, 0x00, 0x80}, packHex(t, value.Integer(0x80)))
}

func TestPack_EmptyString(t *testing.T) {
	require.Equal(t, []byte{0x80}, packHex(t, value.String("")))
}

func TestPack_String16Bytes(t *testing.T) {
	s := ""
	for i := 0; i < 16; i++ {
		s += "A"
	}

	got := packHex(t, value.String(s))
	want := append([]byte{0xD0, 0x10}, []byte(s)...)
	require.Equal(t, want, got)
}

func TestPack_SingleKeyDictWithNilValue(t *testing.T) {
	d := value.NewDictionary()
	d.Set("0", value.Null)

	require.Equal(t, []byte{0xA1, 0x81, 0x30, 0xC0}, packHex(t, value.FromDictionary(d)))
}

func TestPack_TinyListBoundary(t *testing.T) {
	items := make([]value.Value, 15)
	for i := range items {
		items[i] = value.Integer(0)
	}

	got := packHex(t, value.List(items))
	require.Equal(t, byte(0x9F), got[0])
}

func TestPack_ListSixteenEscalatesToList8(t *testing.T) {
	items := make([]value.Value, 16)
	for i := range items {
		items[i] = value.Integer(0)
	}

	got := packHex(t, value.List(items))
	require.Equal(t, []byte{0xD4, 0x10}, got[:2])
}

func TestPack_IntegerClassLaw(t *testing.T) {
	cases := []struct {
		n      int64
		marker byte
	}{
		{0, 0x00},
		{-16, 0xF0},
		{127, 0x7F},
		{-17, 0xC8},
		{128, 0xC9},
		{40000, 0xCA},
		{1 << 40, 0xCB},
	}

	for _, c := range cases {
		got := packHex(t, value.Integer(c.n))
		require.Equalf(t, c.marker, got[0], "n=%d", c.n)
	}
}

func TestUnpack_StreamLaw(t *testing.T) {
	vals, err := Unpack([]byte{0x01, 0x02, 0x03}, version.V2_0)
	require.NoError(t, err)
	require.Len(t, vals, 3)

	for i, v := range vals {
		n, ok := v.AsInteger()
		require.True(t, ok)
		require.Equal(t, int64(i+1), n)
	}
}

func TestUnpack_RejectsUnknownMarker(t *testing.T) {
	_, err := Unpack([]byte{0xDF}, version.V2_0)
	require.Error(t, err)
}

func TestRoundTrip_Scalars(t *testing.T) {
	values := []value.Value{
		value.Null,
		value.Boolean(true),
		value.Boolean(false),
		value.Integer(-128),
		value.Integer(0x80),
		value.Integer(1 << 40),
		value.Float(3.5),
		value.String(""),
		value.String("hello, world"),
		value.Bytes([]byte{1, 2, 3}),
	}

	for _, v := range values {
		data, err := Pack(v, version.V2_0)
		require.NoError(t, err)

		got, err := Unpack(data, version.V2_0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.True(t, v.Equal(got[0]))
	}
}

func TestRoundTrip_FloatSpecialValues(t *testing.T) {
	cases := []struct {
		name string
		f    float64
	}{
		{"nan", math.NaN()},
		{"pos inf", math.Inf(1)},
		{"neg inf", math.Inf(-1)},
		{"pos zero", 0},
		{"neg zero", math.Copysign(0, -1)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			data, err := Pack(value.Float(c.f), version.V2_0)
			require.NoError(t, err)

			got, err := Unpack(data, version.V2_0)
			require.NoError(t, err)
			require.Len(t, got, 1)

			out, ok := got[0].AsFloat()
			require.True(t, ok)
			require.Equal(t, math.Float64bits(c.f), math.Float64bits(out))
			require.True(t, value.Float(c.f).Equal(got[0]))
		})
	}
}

func TestRoundTrip_DictionaryPreservesOrder(t *testing.T) {
	d := value.NewDictionary()
	d.Set("z", value.Integer(1))
	d.Set("a", value.Integer(2))
	d.Set("m", value.Integer(3))

	data, err := Pack(value.FromDictionary(d), version.V2_0)
	require.NoError(t, err)

	got, err := Unpack(data, version.V2_0)
	require.NoError(t, err)

	decoded, ok := got[0].AsDictionary()
	require.True(t, ok)

	var keys []string
	for k := range decoded.All() {
		keys = append(keys, k)
	}
	require.Equal(t, []string{"z", "a", "m"}, keys)
}

func TestUnpack_MaxDepthRejectsDeepNesting(t *testing.T) {
	v := value.Integer(0)
	for i := 0; i < 5; i++ {
		v = value.List([]value.Value{v})
	}

	data, err := Pack(v, version.V2_0)
	require.NoError(t, err)

	_, err = Unpack(data, version.V2_0, WithMaxDepth(2))
	require.Error(t, err)
}

func TestUnpack_MaxDepthAllowsShallowNesting(t *testing.T) {
	v := value.List([]value.Value{value.Integer(1)})

	data, err := Pack(v, version.V2_0)
	require.NoError(t, err)

	got, err := Unpack(data, version.V2_0, WithMaxDepth(2))
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestRoundTrip_NestedList(t *testing.T) {
	v := value.List([]value.Value{
		value.Integer(1),
		value.List([]value.Value{value.String("nested"), value.Null}),
	})

	data, err := Pack(v, version.V2_0)
	require.NoError(t, err)

	got, err := Unpack(data, version.V2_0)
	require.NoError(t, err)
	require.True(t, v.Equal(got[0]))
}
