package rt

import "fmt"

// Coord addresses a canvas cell. X grows to the right and Y grows downward
// from the top-left origin.
type Coord struct {
	X, Y int
}

// Pos is a convenience function to create a Coord.
func Pos(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// CoordFromIndex converts a row-major linear index into a coordinate for a
// grid of the given width.
func CoordFromIndex(i, width int) Coord {
	return Coord{X: i % width, Y: i / width}
}

// Index converts c into a row-major linear index for a grid of the given
// width: x + width*y.
func (c Coord) Index(width int) int {
	return c.X + width*c.Y
}

// String formats c as Coord(x, y).
func (c Coord) String() string {
	return fmt.Sprintf("Coord(%d, %d)", c.X, c.Y)
}
