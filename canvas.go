package rt

import (
	"fmt"
	"iter"
)

// Canvas is a rectangular grid of Colors.
//
// Cells are stored row-major: (x, y) lives at index x + width*y, with the
// origin at the top-left corner and y growing downward. A Canvas never
// changes size after creation.
//
// Coordinate access outside the grid is a programming error and panics,
// like indexing a slice out of range. Use InBounds to test coordinates
// that may fall off the canvas.
//
// A Canvas is not safe for concurrent mutation.
type Canvas struct {
	width  int
	height int
	data   []Color
}

// NewCanvas creates a canvas with every cell black.
// It panics if width or height is negative.
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("rt: invalid canvas size %dx%d", width, height))
	}
	o := defaultCanvasOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Canvas{
		width:  width,
		height: height,
		data:   make([]Color, width*height),
	}
	if o.background != (Color{}) {
		c.Fill(o.background)
	}
	Logger().Debug("canvas allocated", "width", width, "height", height)
	return c
}

// Width returns the width of the canvas.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the canvas.
func (c *Canvas) Height() int {
	return c.height
}

// Dim returns the canvas size as a coordinate one past the last cell.
func (c *Canvas) Dim() Coord {
	return Coord{X: c.width, Y: c.height}
}

// Len returns the number of cells, width*height.
func (c *Canvas) Len() int {
	return len(c.data)
}

// InBounds reports whether (x, y) addresses a cell of the canvas.
func (c *Canvas) InBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Index converts (x, y) to a linear index.
// It panics if the coordinate is outside the canvas.
func (c *Canvas) Index(x, y int) int {
	if !c.InBounds(x, y) {
		panic(fmt.Sprintf("rt: coordinate (%d, %d) outside %dx%d canvas", x, y, c.width, c.height))
	}
	return Coord{X: x, Y: y}.Index(c.width)
}

// Pixel returns the color at (x, y).
func (c *Canvas) Pixel(x, y int) Color {
	return c.data[c.Index(x, y)]
}

// SetPixel sets the color at (x, y).
func (c *Canvas) SetPixel(x, y int, col Color) {
	c.data[c.Index(x, y)] = col
}

// PixelAt returns the color at linear index i.
func (c *Canvas) PixelAt(i int) Color {
	return c.data[i]
}

// SetPixelAt sets the color at linear index i.
func (c *Canvas) SetPixelAt(i int, col Color) {
	c.data[i] = col
}

// Fill sets every cell to col.
func (c *Canvas) Fill(col Color) {
	for i := range c.data {
		c.data[i] = col
	}
}

// All iterates over every cell in row-major order: all of row 0 from left
// to right, then row 1, and so on. The sequence can be ranged over any
// number of times.
func (c *Canvas) All() iter.Seq2[Coord, Color] {
	return func(yield func(Coord, Color) bool) {
		for i, col := range c.data {
			if !yield(CoordFromIndex(i, c.width), col) {
				return
			}
		}
	}
}

// Pixels is like All but yields pointers into the canvas so the loop body
// can modify cells in place.
func (c *Canvas) Pixels() iter.Seq2[Coord, *Color] {
	return func(yield func(Coord, *Color) bool) {
		for i := range c.data {
			if !yield(CoordFromIndex(i, c.width), &c.data[i]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the canvas.
func (c *Canvas) Clone() *Canvas {
	data := make([]Color, len(c.data))
	copy(data, c.data)
	return &Canvas{width: c.width, height: c.height, data: data}
}

// Equal reports whether both canvases have the same size and approximately
// equal cells.
func (c *Canvas) Equal(o *Canvas) bool {
	if c.width != o.width || c.height != o.height {
		return false
	}
	for i := range c.data {
		if !c.data[i].Equal(o.data[i]) {
			return false
		}
	}
	return true
}
