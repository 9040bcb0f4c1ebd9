package text

import (
	"testing"

	"github.com/gogpu/rt"
)

func inked(c *rt.Canvas) (n int, minY, maxY int) {
	minY, maxY = c.Height(), -1
	for pos, col := range c.All() {
		if col == rt.Black {
			continue
		}
		n++
		minY = min(minY, pos.Y)
		maxY = max(maxY, pos.Y)
	}
	return n, minY, maxY
}

func TestDraw(t *testing.T) {
	c := rt.NewCanvas(64, 24)
	Draw(c, 2, 16, "Hi", rt.White)

	n, minY, maxY := inked(c)
	if n == 0 {
		t.Fatal("Draw left the canvas blank")
	}
	if maxY > 16+4 || minY < 16-14 {
		t.Errorf("glyph rows %d..%d not near baseline 16", minY, maxY)
	}
	for pos, col := range c.All() {
		if col != rt.Black && !col.Equal(rt.White) {
			t.Errorf("cell %v = %v, want white ink", pos, col)
		}
	}
}

func TestDraw_Clipped(t *testing.T) {
	c := rt.NewCanvas(8, 8)
	// glyphs mostly outside the canvas; must not panic
	Draw(c, -4, 4, "WWW", rt.Red)
	Draw(c, 6, 30, "x", rt.Red)
}

func TestDraw_OriginOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"x wraps onto canvas", 1<<16 + 2, 16},
		{"x past int16", 40000, 16},
		{"negative x wraps onto canvas", -(1<<16) + 2, 16},
		{"y wraps onto canvas", 2, 1<<16 + 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := rt.NewCanvas(64, 24)
			Draw(c, tt.x, tt.y, "Hi", rt.White)
			if n, _, _ := inked(c); n != 0 {
				t.Errorf("Draw(%d, %d) inked %d cells, want none", tt.x, tt.y, n)
			}
		})
	}
}

func TestDraw_Empty(t *testing.T) {
	c := rt.NewCanvas(8, 8)
	Draw(c, 0, 8, "", rt.White)
	if n, _, _ := inked(c); n != 0 {
		t.Errorf("%d cells inked for empty label", n)
	}
}

func TestWidth(t *testing.T) {
	if got := Width(""); got != 0 {
		t.Errorf("Width(\"\") = %d, want 0", got)
	}
	one, two := Width("a"), Width("aa")
	if one <= 0 {
		t.Fatalf("Width(\"a\") = %d, want > 0", one)
	}
	if two <= one {
		t.Errorf("Width(\"aa\") = %d, want > %d", two, one)
	}
}

func TestDraw_WithinMeasuredWidth(t *testing.T) {
	const x, s = 10, "Hello"
	c := rt.NewCanvas(120, 24)
	Draw(c, x, 16, s, rt.White)

	w := Width(s)
	for pos, col := range c.All() {
		if col == rt.Black {
			continue
		}
		if pos.X < x || pos.X >= x+w {
			t.Errorf("ink at %v outside [%d, %d)", pos, x, x+w)
		}
	}
}
