// Package color converts floating-point channel intensities to and from
// the integer samples stored in image files.
//
// Intensities are nominally in [0, 1] but are never validated: anything
// below 0 maps to the lowest sample, anything above 1 to the highest, and
// NaN to 0.
package color

// Sample limits for the supported bit depths.
const (
	MaxU8  = 0xff
	MaxU16 = 0xffff
)
