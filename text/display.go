package text

import (
	"image/color"

	"tinygo.org/x/drivers"

	"github.com/gogpu/rt"
	icolor "github.com/gogpu/rt/internal/color"
)

// Display adapts a Canvas to drivers.Displayer.
type Display struct {
	c *rt.Canvas
}

var _ drivers.Displayer = (*Display)(nil)

// NewDisplay returns a Displayer that draws into c.
func NewDisplay(c *rt.Canvas) *Display {
	return &Display{c: c}
}

// Size returns the canvas size, saturated to the int16 range.
func (d *Display) Size() (x, y int16) {
	return clamp16(d.c.Width()), clamp16(d.c.Height())
}

// SetPixel sets one canvas cell. Alpha is ignored and coordinates outside
// the canvas are skipped.
func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if !d.c.InBounds(int(x), int(y)) {
		return
	}
	d.c.SetPixel(int(x), int(y), fromRGBA(c))
}

// FillRectangle paints a width×height block clipped to the canvas.
func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	col := fromRGBA(c)
	x0, y0 := max(int(x), 0), max(int(y), 0)
	x1 := min(int(x)+int(width), d.c.Width())
	y1 := min(int(y)+int(height), d.c.Height())
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			d.c.SetPixel(px, py, col)
		}
	}
	return nil
}

// Display is a no-op; the canvas is updated immediately.
func (d *Display) Display() error {
	return nil
}

func fromRGBA(c color.RGBA) rt.Color {
	return rt.NewColor(icolor.U8ToF64(c.R), icolor.U8ToF64(c.G), icolor.U8ToF64(c.B))
}

// toRGBA converts col to the opaque 8-bit form tinyfont expects.
func toRGBA(col rt.Color) color.RGBA {
	r, g, b := col.Bytes()
	return color.RGBA{R: r, G: g, B: b, A: icolor.MaxU8}
}

func clamp16(v int) int16 {
	return int16(max(MinCoord, min(v, MaxCoord)))
}
