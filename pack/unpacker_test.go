package pack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nascanti/interchange/errs"
	"github.com/nascanti/interchange/value"
	"github.com/nascanti/interchange/version"
)

func TestUnpacker_NextValueErrScannerUsage(t *testing.T) {
	u := NewUnpacker([]byte{0x01, 0x02, 0x03}, version.V2_0)

	var got []int64
	for u.Next() {
		n, ok := u.Value().AsInteger()
		require.True(t, ok)
		got = append(got, n)
	}
	require.NoError(t, u.Err())
	require.Equal(t, []int64{1, 2, 3}, got)
	require.Equal(t, 0, u.Remaining())
}

func TestUnpacker_AllStopsEarlyOnDecodeError(t *testing.T) {
	u := NewUnpacker([]byte{0x01, 0x02, 0xDF}, version.V2_0)

	var got []value.Value
	for v := range u.All() {
		got = append(got, v)
	}

	require.Len(t, got, 2)
	require.Error(t, u.Err())
	require.ErrorIs(t, u.Err(), errs.ErrUnknownMarker)
}

func TestUnpack_TruncatedMultiByteIntFails(t *testing.T) {
	_, err := Unpack([]byte{0xC9, 0x00}, version.V2_0)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestUnpack_TruncatedMidContainerFailsWithoutPartialValue(t *testing.T) {
	// A list header declaring two elements but only one present.
	_, err := Unpack([]byte{0x92, 0x01}, version.V2_0)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
}

func TestUnpack_InvalidUTF8Fails(t *testing.T) {
	// Tiny string of length 1 carrying a lone continuation byte.
	_, err := Unpack([]byte{0x81, 0x80}, version.V2_0)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidUTF8)
}

func TestUnpack_NonStringDictKeyFails(t *testing.T) {
	// Dict of length 1 whose key is the integer 0, not a string.
	_, err := Unpack([]byte{0xA1, 0x00, 0xC0}, version.V2_0)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrNonStringKey)
}

func TestUnpack_DuplicateDictKeyLastWriteWins(t *testing.T) {
	// A dict header declaring two entries that share the key "k":
	// {"k": 1, "k": 2} as it appears on the wire.
	data := []byte{0xA2, 0x81, 'k', 0x01, 0x81, 'k', 0x02}

	got, err := Unpack(data, version.V2_0)
	require.NoError(t, err)
	require.Len(t, got, 1)

	decoded, ok := got[0].AsDictionary()
	require.True(t, ok)
	require.Equal(t, 1, decoded.Len())

	v, ok := decoded.Get("k")
	require.True(t, ok)
	n, _ := v.AsInteger()
	require.Equal(t, int64(2), n)
}

func TestUnpack_UnrecognizedStructureTagSurfacesAsGenericStructure(t *testing.T) {
	// A one-field structure tagged 'Z', not one of the recognized temporal/
	// spatial tags: it should decode to a generic value.Structure.
	data := []byte{0xB1, 'Z', 0x01}

	got, err := Unpack(data, version.V2_0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, value.KindStructure, got[0].Kind())

	st, ok := got[0].AsStructure()
	require.True(t, ok)
	require.Equal(t, byte('Z'), st.Tag)
	require.Len(t, st.Fields, 1)
}

func TestUnpack_RemainingTracksCursorProgress(t *testing.T) {
	u := NewUnpacker([]byte{0x01, 0x02}, version.V2_0)
	require.Equal(t, 2, u.Remaining())

	require.True(t, u.Next())
	require.Equal(t, 1, u.Remaining())

	require.True(t, u.Next())
	require.Equal(t, 0, u.Remaining())

	require.False(t, u.Next())
	require.NoError(t, u.Err())
}

func TestUnpack_EmptyInputYieldsNoValues(t *testing.T) {
	got, err := Unpack(nil, version.V2_0)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestUnpack_ErrorsAreSentinelClassified(t *testing.T) {
	_, err := Unpack([]byte{0xDF}, version.V2_0)
	require.True(t, errors.Is(err, errs.ErrUnknownMarker))
}
