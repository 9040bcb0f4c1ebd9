// Package script describes projectile renders in a small Lisp dialect
// evaluated by zygomys.
//
// A script configures a Scene through builtins:
//
//	; chapter 2
//	(canvas 900 550)
//	(projectile :position (point 0 1 0) :velocity (vector 1 1.8 0) :speed 11.25)
//	(environment :gravity (vector 0 -0.1 0) :wind (vector -0.01 0 0))
//	(ink (color 1 0 0))
//	(label "chapter 2" :x 8 :y 12 :color (color 1 1 1))
//
// Anything a script leaves unset keeps its DefaultScene value.
package script

import (
	"github.com/gogpu/rt"
	"github.com/gogpu/rt/internal/projectile"
	"github.com/gogpu/rt/text"
)

// Label is a line of text drawn on top of the trajectory.
type Label struct {
	Text  string
	X, Y  int // baseline origin
	Color rt.Color
}

// Scene is everything needed to render one trajectory.
type Scene struct {
	Width, Height int
	Background    rt.Color
	Ink           rt.Color

	Position rt.Tuple // launch point
	Velocity rt.Tuple // initial velocity, already scaled
	Gravity  rt.Tuple
	Wind     rt.Tuple

	Labels []Label
}

// DefaultScene returns the classic 900×550 red arc.
func DefaultScene() *Scene {
	p := projectile.New(rt.Point(0, 1, 0), rt.Vector(1, 1.8, 0), 11.25)
	return &Scene{
		Width:      900,
		Height:     550,
		Background: rt.Black,
		Ink:        rt.Red,
		Position:   p.Position,
		Velocity:   p.Velocity,
		Gravity:    rt.Vector(0, -0.1, 0),
		Wind:       rt.Vector(-0.01, 0, 0),
	}
}

// Stats reports what Render plotted.
type Stats = projectile.Stats

// Render simulates the scene onto a new canvas and draws its labels.
func (s *Scene) Render() (*rt.Canvas, Stats) {
	c := rt.NewCanvas(s.Width, s.Height, rt.WithBackground(s.Background))
	env := projectile.Environment{Gravity: s.Gravity, Wind: s.Wind}
	p := projectile.Projectile{Position: s.Position, Velocity: s.Velocity}

	stats := projectile.Plot(c, env, p, s.Ink)
	for _, l := range s.Labels {
		text.Draw(c, l.X, l.Y, l.Text, l.Color)
	}
	return c, stats
}
