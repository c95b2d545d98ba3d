package pack

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nascanti/interchange/spatial"
	"github.com/nascanti/interchange/temporal"
	"github.com/nascanti/interchange/value"
	"github.com/nascanti/interchange/version"
)

func TestPack_DateEpoch(t *testing.T) {
	d, err := temporal.NewDate(1970, 1, 1)
	require.NoError(t, err)

	got := packHex(t, value.FromDate(d))
	require.Equal(t, []byte{0xB1, 0x44, 0x00}, got)
}

func TestPack_ZeroDuration(t *testing.T) {
	d, err := temporal.NewDuration(0, 0, 0, 0)
	require.NoError(t, err)

	got := packHex(t, value.FromDuration(d))
	require.Equal(t, []byte{0xB4, 0x45, 0x00, 0x00, 0x00, 0x00}, got)
}

// TestPack_UTCDateTime matches the scenario where a DateTime tagged with
// tzinfo=UTC packs as a named-zone structure (tag 'f') carrying "UTC" as its
// zone name, not as a fixed-offset structure.
func TestPack_UTCDateTime(t *testing.T) {
	dt, err := temporal.NewZonedDateTime(1970, 1, 1, 0, 0, 0, "UTC", nil)
	require.NoError(t, err)

	got := packHex(t, value.FromDateTime(dt))
	require.Equal(t, []byte{0xB3, 0x66, 0x00, 0x00, 0x83, 0x55, 0x54, 0x43}, got)
}

func TestPack_Point2D_Header(t *testing.T) {
	p := spatial.WGS84(0, 0)

	got := packHex(t, value.FromPoint(p))
	require.Equal(t, byte(0xB3), got[0])
	require.Equal(t, byte(0x58), got[1])
}

func TestRoundTrip_ExtendedKinds(t *testing.T) {
	date, _ := temporal.NewDate(2018, 4, 26)
	tm, _ := temporal.NewTime(23, 0, 17.5)
	offTm, _ := temporal.NewOffsetTime(23, 0, 17.5, 3600)
	dt, _ := temporal.NewDateTime(2018, 4, 26, 23, 0, 17.5)
	offDt, _ := temporal.NewOffsetDateTime(2018, 4, 26, 23, 0, 17.5, 3600)
	zonedDt, _ := temporal.NewZonedDateTime(2018, 4, 26, 23, 0, 17.5, "Europe/Berlin", nil)
	dur, _ := temporal.NewDuration(1, 2, 3, 4)
	pt2D := spatial.Cartesian(1.5, 2.5)
	pt3D := spatial.Cartesian3D(1.5, 2.5, 3.5)

	values := []value.Value{
		value.FromDate(date),
		value.FromTime(tm),
		value.FromTime(offTm),
		value.FromDateTime(dt),
		value.FromDateTime(offDt),
		value.FromDateTime(zonedDt),
		value.FromDuration(dur),
		value.FromPoint(pt2D),
		value.FromPoint(pt3D),
	}

	for _, v := range values {
		data, err := Pack(v, version.V2_0)
		require.NoError(t, err)

		got, err := Unpack(data, version.V2_0)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equalf(t, v.Kind(), got[0].Kind(), "kind mismatch for %v", v.Kind())
		require.Truef(t, v.Equal(got[0]), "round trip mismatch for kind %v", v.Kind())
	}
}

func TestPack_ExtendedKindRejectedUnderV1(t *testing.T) {
	date, _ := temporal.NewDate(2018, 4, 26)

	_, err := Pack(value.FromDate(date), version.V1_0)
	require.Error(t, err)
}

func TestUnpack_ExtendedKindRejectedUnderV1(t *testing.T) {
	date, _ := temporal.NewDate(2018, 4, 26)
	data, err := Pack(value.FromDate(date), version.V2_0)
	require.NoError(t, err)

	_, err = Unpack(data, version.V1_0)
	require.Error(t, err)
}
