package temporal

import "math"

// splitSeconds decomposes a float64 seconds value into integer whole seconds
// and a nanosecond remainder in [0, 1e9), so no intermediate float ever
// round-trips through the wire encoding: the decomposition happens once, at
// the API boundary, immediately on ingress.
func splitSeconds(sec float64) (whole int64, nanos int32) {
	wholePart := math.Floor(sec)
	frac := sec - wholePart
	ns := int64(math.Round(frac * 1e9))
	if ns >= 1_000_000_000 {
		ns -= 1_000_000_000
		wholePart++
	}

	return int64(wholePart), int32(ns)
}

// nanoAdd recombines a whole-second count and a nanosecond remainder into a
// float64 seconds value, the inverse of splitSeconds.
func nanoAdd(whole int64, nanos int32) float64 {
	return float64(whole) + nanoDiv(nanos)
}

// nanoDiv converts a nanosecond count to fractional seconds.
func nanoDiv(nanos int32) float64 {
	return float64(nanos) / 1e9
}
