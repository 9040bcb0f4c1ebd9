package script

import (
	"fmt"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/gogpu/rt"
	"github.com/gogpu/rt/text"
)

// MaxCanvasSide bounds the canvas a script may request.
const MaxCanvasSide = 1 << 14

// kwPrefix marks keyword arguments rewritten by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource rewrites source for zygomys:
//
//   - :keyword becomes the string literal "__kw_keyword"
//   - ; and ;; line comments become // comments
//
// String literals are copied untouched.
func preprocessSource(source string) string {
	b := []byte(source)
	out := make([]byte, 0, len(b)+len(b)/4)
	for i := 0; i < len(b); {
		switch c := b[i]; {
		case c == '"':
			j := i + 1
			for j < len(b) && b[j] != '"' {
				if b[j] == '\\' {
					j++
				}
				j++
			}
			j = min(j+1, len(b))
			out = append(out, b[i:j]...)
			i = j
		case c == '`':
			j := i + 1
			for j < len(b) && b[j] != '`' {
				j++
			}
			j = min(j+1, len(b))
			out = append(out, b[i:j]...)
			i = j
		case c == ';':
			out = append(out, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				out = append(out, b[i])
				i++
			}
		case c == ':' && i+1 < len(b) && isLetter(b[i+1]):
			j := i + 1
			for j < len(b) && isKWChar(b[j]) {
				j++
			}
			out = append(out, '"')
			out = append(out, kwPrefix...)
			out = append(out, b[i+1:j]...)
			out = append(out, '"')
			i = j
		default:
			out = append(out, c)
			i++
		}
	}
	return string(out)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

// sexpTuple carries an rt.Tuple between builtins.
type sexpTuple struct {
	t rt.Tuple
}

func (s *sexpTuple) SexpString(ps *zygo.PrintState) string { return s.t.String() }
func (s *sexpTuple) Type() *zygo.RegisteredType          { return nil }

// sexpColor carries an rt.Color between builtins.
type sexpColor struct {
	c rt.Color
}

func (s *sexpColor) SexpString(ps *zygo.PrintState) string { return s.c.String() }
func (s *sexpColor) Type() *zygo.RegisteredType          { return nil }

// args splits a call's arguments into positional and keyword arguments.
type args struct {
	fn         string
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

func parseArgs(fn string, in []zygo.Sexp) (args, error) {
	a := args{fn: fn, kw: make(map[string]zygo.Sexp)}
	for i := 0; i < len(in); i++ {
		name, ok := keyword(in[i])
		if !ok {
			a.positional = append(a.positional, in[i])
			continue
		}
		if i+1 >= len(in) {
			return a, fmt.Errorf("%s: keyword :%s has no value", fn, name)
		}
		a.kw[name] = in[i+1]
		i++
	}
	return a, nil
}

func keyword(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok || !strings.HasPrefix(str.S, kwPrefix) {
		return "", false
	}
	return str.S[len(kwPrefix):], true
}

// only rejects keywords outside allowed.
func (a args) only(allowed ...string) error {
	for name := range a.kw {
		found := false
		for _, ok := range allowed {
			if name == ok {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%s: unknown keyword :%s", a.fn, name)
		}
	}
	return nil
}

func (a args) positionalCount(n int) error {
	if len(a.positional) != n {
		return fmt.Errorf("%s: expected %d arguments, got %d", a.fn, n, len(a.positional))
	}
	return nil
}

func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %s", s.SexpString(nil))
}

func toInt(s zygo.Sexp) (int, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return int(v.Val), nil
	case *zygo.SexpFloat:
		if v.Val == float64(int(v.Val)) {
			return int(v.Val), nil
		}
	}
	return 0, fmt.Errorf("expected integer, got %s", s.SexpString(nil))
}

func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %s", s.SexpString(nil))
}

func toTuple(s zygo.Sexp) (rt.Tuple, error) {
	if v, ok := s.(*sexpTuple); ok {
		return v.t, nil
	}
	return rt.Tuple{}, fmt.Errorf("expected point or vector, got %s", s.SexpString(nil))
}

func toPoint(s zygo.Sexp) (rt.Tuple, error) {
	t, err := toTuple(s)
	if err == nil && !t.IsPoint() {
		err = fmt.Errorf("expected point, got %s", t)
	}
	return t, err
}

func toVector(s zygo.Sexp) (rt.Tuple, error) {
	t, err := toTuple(s)
	if err == nil && !t.IsVector() {
		err = fmt.Errorf("expected vector, got %s", t)
	}
	return t, err
}

func toColor(s zygo.Sexp) (rt.Color, error) {
	if v, ok := s.(*sexpColor); ok {
		return v.c, nil
	}
	return rt.Color{}, fmt.Errorf("expected color, got %s", s.SexpString(nil))
}

// three reads exactly three numeric positional arguments.
func (a args) three() (x, y, z float64, err error) {
	if err = a.positionalCount(3); err != nil {
		return
	}
	var v [3]float64
	for i, s := range a.positional {
		if v[i], err = toFloat64(s); err != nil {
			return 0, 0, 0, fmt.Errorf("%s: argument %d: %w", a.fn, i+1, err)
		}
	}
	return v[0], v[1], v[2], nil
}

type builtin func(a args) (zygo.Sexp, error)

// registerBuiltins installs the scene builtins into env. They write into
// scene as the script runs.
func registerBuiltins(env *zygo.Zlisp, scene *Scene) {
	add := func(name string, fn builtin) {
		env.AddFunction(name, func(env *zygo.Zlisp, name string, in []zygo.Sexp) (zygo.Sexp, error) {
			a, err := parseArgs(name, in)
			if err != nil {
				return zygo.SexpNull, err
			}
			return fn(a)
		})
	}

	// (point x y z)
	add("point", func(a args) (zygo.Sexp, error) {
		x, y, z, err := a.three()
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpTuple{t: rt.Point(x, y, z)}, nil
	})

	// (vector x y z)
	add("vector", func(a args) (zygo.Sexp, error) {
		x, y, z, err := a.three()
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpTuple{t: rt.Vector(x, y, z)}, nil
	})

	// (color r g b)
	add("color", func(a args) (zygo.Sexp, error) {
		r, g, b, err := a.three()
		if err != nil {
			return zygo.SexpNull, err
		}
		return &sexpColor{c: rt.NewColor(r, g, b)}, nil
	})

	// (canvas width height :background color)
	add("canvas", func(a args) (zygo.Sexp, error) {
		if err := a.only("background"); err != nil {
			return zygo.SexpNull, err
		}
		if err := a.positionalCount(2); err != nil {
			return zygo.SexpNull, err
		}
		w, err := toInt(a.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("canvas: width: %w", err)
		}
		h, err := toInt(a.positional[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("canvas: height: %w", err)
		}
		if w < 1 || h < 1 || w > MaxCanvasSide || h > MaxCanvasSide {
			return zygo.SexpNull, fmt.Errorf("canvas: size %dx%d outside 1..%d", w, h, MaxCanvasSide)
		}
		if v, ok := a.kw["background"]; ok {
			if scene.Background, err = toColor(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("canvas: background: %w", err)
			}
		}
		scene.Width, scene.Height = w, h
		return zygo.SexpNull, nil
	})

	// (projectile :position point :velocity vector :speed n)
	add("projectile", func(a args) (zygo.Sexp, error) {
		if err := a.only("position", "velocity", "speed"); err != nil {
			return zygo.SexpNull, err
		}
		if err := a.positionalCount(0); err != nil {
			return zygo.SexpNull, err
		}
		var err error
		if v, ok := a.kw["position"]; ok {
			if scene.Position, err = toPoint(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("projectile: position: %w", err)
			}
		}
		if v, ok := a.kw["velocity"]; ok {
			if scene.Velocity, err = toVector(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("projectile: velocity: %w", err)
			}
		}
		if v, ok := a.kw["speed"]; ok {
			speed, err := toFloat64(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("projectile: speed: %w", err)
			}
			if !scene.Velocity.Magnitude().Greater(0) {
				return zygo.SexpNull, fmt.Errorf("projectile: speed needs a non-zero velocity")
			}
			scene.Velocity = scene.Velocity.Normalize().Mul(rt.Scalar(speed))
		}
		return zygo.SexpNull, nil
	})

	// (environment :gravity vector :wind vector)
	add("environment", func(a args) (zygo.Sexp, error) {
		if err := a.only("gravity", "wind"); err != nil {
			return zygo.SexpNull, err
		}
		if err := a.positionalCount(0); err != nil {
			return zygo.SexpNull, err
		}
		var err error
		if v, ok := a.kw["gravity"]; ok {
			if scene.Gravity, err = toVector(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("environment: gravity: %w", err)
			}
		}
		if v, ok := a.kw["wind"]; ok {
			if scene.Wind, err = toVector(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("environment: wind: %w", err)
			}
		}
		return zygo.SexpNull, nil
	})

	// (ink color)
	add("ink", func(a args) (zygo.Sexp, error) {
		if err := a.positionalCount(1); err != nil {
			return zygo.SexpNull, err
		}
		c, err := toColor(a.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("ink: %w", err)
		}
		scene.Ink = c
		return zygo.SexpNull, nil
	})

	// (label "text" :x n :y n :color color)
	add("label", func(a args) (zygo.Sexp, error) {
		if err := a.only("x", "y", "color"); err != nil {
			return zygo.SexpNull, err
		}
		if err := a.positionalCount(1); err != nil {
			return zygo.SexpNull, err
		}
		s, err := toString(a.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("label: %w", err)
		}
		l := Label{Text: s, X: 2, Y: 10, Color: rt.White} // top-left corner
		if v, ok := a.kw["x"]; ok {
			if l.X, err = toInt(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("label: x: %w", err)
			}
		}
		if v, ok := a.kw["y"]; ok {
			if l.Y, err = toInt(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("label: y: %w", err)
			}
		}
		if v, ok := a.kw["color"]; ok {
			if l.Color, err = toColor(v); err != nil {
				return zygo.SexpNull, fmt.Errorf("label: color: %w", err)
			}
		}
		if l.X < text.MinCoord || l.X > text.MaxCoord || l.Y < text.MinCoord || l.Y > text.MaxCoord {
			return zygo.SexpNull, fmt.Errorf("label: position (%d, %d) outside %d..%d", l.X, l.Y, text.MinCoord, text.MaxCoord)
		}
		scene.Labels = append(scene.Labels, l)
		return zygo.SexpNull, nil
	})
}
