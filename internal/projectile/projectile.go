// Package projectile simulates a point mass under constant gravity and wind
// and plots its path onto a canvas.
package projectile

import (
	"iter"

	"github.com/gogpu/rt"
)

// MaxTicks bounds Trajectory so an environment that never brings the
// projectile down cannot loop forever.
const MaxTicks = 100_000

// Projectile is a position (point) moving with a velocity (vector).
type Projectile struct {
	Position rt.Tuple
	Velocity rt.Tuple
}

// New returns a projectile at position moving along direction, with the
// direction normalized and scaled to speed.
func New(position, direction rt.Tuple, speed rt.Scalar) Projectile {
	return Projectile{Position: position, Velocity: direction.Normalize().Mul(speed)}
}

// Environment holds the per-tick accelerations.
type Environment struct {
	Gravity rt.Tuple
	Wind    rt.Tuple
}

// Tick advances p by one time step: the position moves by the velocity,
// then gravity and wind are added to the velocity.
func Tick(env Environment, p Projectile) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Trajectory yields the state after each tick while the projectile is above
// ground. The first state at or below y=0 is yielded and ends the sequence.
// A projectile that starts on the ground yields nothing.
func Trajectory(env Environment, p Projectile) iter.Seq[Projectile] {
	return func(yield func(Projectile) bool) {
		for range MaxTicks {
			if !p.Position.Y.Greater(0) {
				return
			}
			p = Tick(env, p)
			if !yield(p) {
				return
			}
		}
		rt.Logger().Warn("trajectory truncated", "ticks", MaxTicks)
	}
}

// Land runs the simulation to completion and returns the final state and
// the number of ticks taken.
func Land(env Environment, p Projectile) (Projectile, int) {
	n := 0
	for st := range Trajectory(env, p) {
		p = st
		n++
	}
	return p, n
}

// Stats summarizes a Plot call.
type Stats struct {
	Ticks     int     // states simulated
	Plotted   int     // states that landed on the canvas
	Clipped   int     // states outside the canvas
	MaxHeight rt.Scalar
	Final     Projectile
}

// Plot simulates p and colors the cell under every state with ink. The
// world y axis points up, so a position maps to the cell
// (int(x), height-1-int(y)). Positions off the canvas are counted in
// Stats.Clipped and otherwise ignored.
func Plot(c *rt.Canvas, env Environment, p Projectile, ink rt.Color) Stats {
	s := Stats{Final: p, MaxHeight: p.Position.Y}
	for st := range Trajectory(env, p) {
		s.Ticks++
		s.Final = st
		s.MaxHeight = max(s.MaxHeight, st.Position.Y)

		x, y := cell(c, st.Position)
		if !c.InBounds(x, y) {
			s.Clipped++
			continue
		}
		c.SetPixel(x, y, ink)
		s.Plotted++
	}
	if s.Clipped > 0 {
		rt.Logger().Warn("projectile left the canvas", "clipped", s.Clipped, "ticks", s.Ticks)
	}
	rt.Logger().Debug("trajectory plotted", "ticks", s.Ticks, "plotted", s.Plotted)
	return s
}

func cell(c *rt.Canvas, pos rt.Tuple) (x, y int) {
	return int(pos.X), c.Height() - 1 - int(pos.Y)
}
