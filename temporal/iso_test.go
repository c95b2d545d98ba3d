package temporal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseISO_Naive(t *testing.T) {
	dt, err := ParseISO("2018-04-26T23:00:17.914390409")
	require.NoError(t, err)
	require.True(t, dt.IsNaive())
	require.Equal(t, 2018, dt.Year())
	require.Equal(t, 23, dt.Hour())
}

func TestParseISO_Offset(t *testing.T) {
	dt, err := ParseISO("2018-04-26T23:00:17+01:00")
	require.NoError(t, err)
	require.True(t, dt.HasOffset())
	require.Equal(t, int32(3600), dt.OffsetSeconds())
}

func TestParseISO_NegativeOffset(t *testing.T) {
	dt, err := ParseISO("2018-04-26T23:00:17-05:30")
	require.NoError(t, err)
	require.Equal(t, int32(-(5*3600+30*60)), dt.OffsetSeconds())
}

// TestParseISO_LongOffsetCollapsesToMinuteResolution matches the original's
// pytz-backed FixedOffset(minutes): a long-form "+HH:MM:SS.ffffff" offset
// collapses to the same whole-minute offset as its "+HH:MM" prefix.
func TestParseISO_LongOffsetCollapsesToMinuteResolution(t *testing.T) {
	short, err := ParseISO("2018-04-26T23:00:17+12:34")
	require.NoError(t, err)

	long, err := ParseISO("2018-04-26T23:00:17+12:34:56.123456")
	require.NoError(t, err)

	require.Equal(t, short.OffsetSeconds(), long.OffsetSeconds())
}

func TestISOFormat_RoundTrip(t *testing.T) {
	dt, err := NewDateTime(2018, 4, 26, 23, 0, 17.5)
	require.NoError(t, err)

	s := dt.ISOFormat()
	back, err := ParseISO(s)
	require.NoError(t, err)
	require.True(t, dt.Equal(back))
}

func TestISOFormat_Offset(t *testing.T) {
	dt, err := NewOffsetDateTime(2018, 4, 26, 23, 0, 17, -3600)
	require.NoError(t, err)

	require.Contains(t, dt.ISOFormat(), "-01:00")
}
