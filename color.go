package rt

import (
	"fmt"
	"image/color"

	icolor "github.com/gogpu/rt/internal/color"
)

// Color is an RGB triple of Scalars.
//
// Channels are not restricted to [0, 1]; intermediate results may be
// negative or exceed 1. Values are clamped only when converted to bytes
// for output.
type Color struct {
	R, G, B Scalar
}

// NewColor creates a color from its channels.
func NewColor(r, g, b float64) Color {
	return Color{R: Scalar(r), G: Scalar(g), B: Scalar(b)}
}

// Common colors
var (
	Black = NewColor(0, 0, 0)
	White = NewColor(1, 1, 1)
	Red   = NewColor(1, 0, 0)
	Green = NewColor(0, 1, 0)
	Blue  = NewColor(0, 0, 1)
)

// Add returns the channel-wise sum.
func (c Color) Add(d Color) Color {
	return Color{R: c.R + d.R, G: c.G + d.G, B: c.B + d.B}
}

// Sub returns the channel-wise difference.
func (c Color) Sub(d Color) Color {
	return Color{R: c.R - d.R, G: c.G - d.G, B: c.B - d.B}
}

// Mul returns the Hadamard (channel-wise) product.
func (c Color) Mul(d Color) Color {
	return Color{R: c.R * d.R, G: c.G * d.G, B: c.B * d.B}
}

// Scale multiplies every channel by s.
func (c Color) Scale(s Scalar) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// AddAssign sets c to c + d.
func (c *Color) AddAssign(d Color) { *c = c.Add(d) }

// SubAssign sets c to c - d.
func (c *Color) SubAssign(d Color) { *c = c.Sub(d) }

// MulAssign sets c to the Hadamard product of c and d.
func (c *Color) MulAssign(d Color) { *c = c.Mul(d) }

// ScaleAssign multiplies every channel of c by s.
func (c *Color) ScaleAssign(s Scalar) { *c = c.Scale(s) }

// Equal reports whether every channel is approximately equal.
func (c Color) Equal(d Color) bool {
	return c.R.Equal(d.R) && c.G.Equal(d.G) && c.B.Equal(d.B)
}

// Bytes returns the clamped 8-bit channels, as written to PPM files.
func (c Color) Bytes() (r, g, b uint8) {
	return icolor.ToU8(float64(c.R)), icolor.ToU8(float64(c.G)), icolor.ToU8(float64(c.B))
}

// RGBA implements color.Color. Channels are clamped to [0, 1] and the
// color is fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(icolor.ToU16(float64(c.R))),
		uint32(icolor.ToU16(float64(c.G))),
		uint32(icolor.ToU16(float64(c.B))),
		icolor.MaxU16
}

// FromColor converts a standard color.Color to Color, dropping alpha.
// The channels are taken as stored, i.e. alpha-premultiplied.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{
		R: Scalar(icolor.FromSample(int(r), icolor.MaxU16)),
		G: Scalar(icolor.FromSample(int(g), icolor.MaxU16)),
		B: Scalar(icolor.FromSample(int(b), icolor.MaxU16)),
	}
}

// String formats c as RGB(r, g, b).
func (c Color) String() string {
	return fmt.Sprintf("RGB(%s, %s, %s)", c.R, c.G, c.B)
}
