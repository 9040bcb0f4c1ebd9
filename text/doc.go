// Package text draws bitmap labels onto an rt.Canvas.
//
// Glyphs come from tinygo.org/x/tinyfont and are rasterized through the
// tinygo.org/x/drivers Displayer interface, so any tinyfont face can be
// used:
//
//	c := rt.NewCanvas(900, 550)
//	text.Draw(c, 8, 12, "chapter 2", rt.White)
//
// The y coordinate of Draw is the text baseline. Glyph pixels that fall
// outside the canvas are dropped.
package text
