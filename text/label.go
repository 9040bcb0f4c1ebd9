package text

import (
	"math"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/gogpu/rt"
)

// Label origins must lie in [MinCoord, MaxCoord], the range tinyfont
// addresses. Labels anchored outside it are not drawn.
const (
	MinCoord = math.MinInt16
	MaxCoord = math.MaxInt16
)

// DefaultFont is the face used by Draw and Width.
var DefaultFont tinyfont.Fonter = &proggy.TinySZ8pt7b

// Draw writes s onto c with DefaultFont, baseline at (x, y).
func Draw(c *rt.Canvas, x, y int, s string, col rt.Color) {
	DrawFont(c, DefaultFont, x, y, s, col)
}

// DrawFont is like Draw with an explicit face.
func DrawFont(c *rt.Canvas, font tinyfont.Fonter, x, y int, s string, col rt.Color) {
	if s == "" {
		return
	}
	if x < MinCoord || x > MaxCoord || y < MinCoord || y > MaxCoord {
		rt.Logger().Warn("label origin out of range", "text", s, "x", x, "y", y)
		return
	}
	tinyfont.WriteLine(NewDisplay(c), font, int16(x), int16(y), s, toRGBA(col))
	rt.Logger().Debug("label drawn", "text", s, "x", x, "y", y)
}

// Width returns the advance width of s in DefaultFont, in pixels.
func Width(s string) int {
	_, outbox := tinyfont.LineWidth(DefaultFont, s)
	return int(outbox)
}
