package color

import "math"

// ToSample converts an intensity to an integer sample in [0, maxval].
// Formula: clamp(round(v*maxval), 0, maxval), rounding half away from zero.
func ToSample(v float64, maxval int) int {
	s := math.Round(v * float64(maxval))
	// !(s > 0) also catches NaN
	if !(s > 0) {
		return 0
	}
	if s >= float64(maxval) {
		return maxval
	}
	return int(s)
}

// ToU8 converts an intensity to an 8-bit sample.
// 0.5 maps to 128 since 127.5 rounds up.
func ToU8(v float64) uint8 {
	return uint8(ToSample(v, MaxU8))
}

// ToU16 converts an intensity to a 16-bit sample.
func ToU16(v float64) uint16 {
	return uint16(ToSample(v, MaxU16))
}

// FromSample maps a sample in [0, maxval] back to an intensity in [0, 1].
func FromSample(s, maxval int) float64 {
	if maxval <= 0 {
		return 0
	}
	return float64(s) / float64(maxval)
}

// U8ToF64 maps an 8-bit sample back to [0, 1].
func U8ToF64(s uint8) float64 {
	return FromSample(int(s), MaxU8)
}
