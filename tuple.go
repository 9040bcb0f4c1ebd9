package rt

import "fmt"

// TupleKind classifies a Tuple by its w component.
type TupleKind uint8

const (
	// KindNeither is a tuple whose w is neither 0 nor 1, e.g. point+point.
	KindNeither TupleKind = iota
	// KindPoint is a tuple with w≈1.
	KindPoint
	// KindVector is a tuple with w≈0.
	KindVector
)

// String returns the display name used by Tuple.String.
func (k TupleKind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindVector:
		return "Vector"
	default:
		return "Tuple"
	}
}

// Tuple is a homogeneous 4D coordinate.
//
// Points and vectors share this one representation and are told apart by W
// alone: W≈1 is a point, W≈0 is a vector. Arithmetic never checks the kind,
// so adding two points yields W=2, which is neither. Multiplying or dividing
// a point by a scalar scales W too and the result stops being a point.
type Tuple struct {
	X, Y, Z, W Scalar
}

// NewTuple creates a tuple from its four components.
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: Scalar(x), Y: Scalar(y), Z: Scalar(z), W: Scalar(w)}
}

// Point creates a point (w=1).
func Point(x, y, z float64) Tuple {
	return NewTuple(x, y, z, 1)
}

// Vector creates a vector (w=0).
func Vector(x, y, z float64) Tuple {
	return NewTuple(x, y, z, 0)
}

// Zero returns the zero vector.
func Zero() Tuple {
	return Tuple{}
}

// IsPoint reports whether w≈1.
func (t Tuple) IsPoint() bool {
	return t.W.Equal(1)
}

// IsVector reports whether w≈0.
func (t Tuple) IsVector() bool {
	return t.W.Equal(0)
}

// Kind classifies t by its w component.
func (t Tuple) Kind() TupleKind {
	switch {
	case t.IsPoint():
		return KindPoint
	case t.IsVector():
		return KindVector
	default:
		return KindNeither
	}
}

// Elem returns component i (0=x, 1=y, 2=z, 3=w).
// It panics if i is out of range.
func (t Tuple) Elem(i int) Scalar {
	switch i {
	case 0:
		return t.X
	case 1:
		return t.Y
	case 2:
		return t.Z
	case 3:
		return t.W
	}
	panic(fmt.Sprintf("rt: tuple index %d out of range [0, 4)", i))
}

// SetElem sets component i (0=x, 1=y, 2=z, 3=w).
// It panics if i is out of range.
func (t *Tuple) SetElem(i int, v Scalar) {
	switch i {
	case 0:
		t.X = v
	case 1:
		t.Y = v
	case 2:
		t.Z = v
	case 3:
		t.W = v
	default:
		panic(fmt.Sprintf("rt: tuple index %d out of range [0, 4)", i))
	}
}

// Elements returns the components as an array in x, y, z, w order.
func (t Tuple) Elements() [4]Scalar {
	return [4]Scalar{t.X, t.Y, t.Z, t.W}
}

// Add returns t + u, component-wise including w.
func (t Tuple) Add(u Tuple) Tuple {
	return Tuple{X: t.X + u.X, Y: t.Y + u.Y, Z: t.Z + u.Z, W: t.W + u.W}
}

// Sub returns t - u, component-wise including w.
// The difference of two points is a vector.
func (t Tuple) Sub(u Tuple) Tuple {
	return Tuple{X: t.X - u.X, Y: t.Y - u.Y, Z: t.Z - u.Z, W: t.W - u.W}
}

// Neg negates all four components.
func (t Tuple) Neg() Tuple {
	return Tuple{X: -t.X, Y: -t.Y, Z: -t.Z, W: -t.W}
}

// Mul scales all four components by s.
func (t Tuple) Mul(s Scalar) Tuple {
	return Tuple{X: t.X * s, Y: t.Y * s, Z: t.Z * s, W: t.W * s}
}

// Div divides all four components by s.
func (t Tuple) Div(s Scalar) Tuple {
	return Tuple{X: t.X / s, Y: t.Y / s, Z: t.Z / s, W: t.W / s}
}

// AddAssign sets t to t + u.
func (t *Tuple) AddAssign(u Tuple) { *t = t.Add(u) }

// SubAssign sets t to t - u.
func (t *Tuple) SubAssign(u Tuple) { *t = t.Sub(u) }

// MulAssign sets t to t * s.
func (t *Tuple) MulAssign(s Scalar) { *t = t.Mul(s) }

// DivAssign sets t to t / s.
func (t *Tuple) DivAssign(s Scalar) { *t = t.Div(s) }

// Dot returns the 4D dot product of t and u.
func (t Tuple) Dot(u Tuple) Scalar {
	return Sum(t.X*u.X, t.Y*u.Y, t.Z*u.Z, t.W*u.W)
}

// Cross returns the 3D cross product of t and u as a vector.
// Only x, y and z take part; the result has w=0 whatever the inputs.
func (t Tuple) Cross(u Tuple) Tuple {
	return Tuple{
		X: t.Y*u.Z - t.Z*u.Y,
		Y: t.Z*u.X - t.X*u.Z,
		Z: t.X*u.Y - t.Y*u.X,
	}
}

// Magnitude returns the Euclidean norm over all four components.
// For a vector this is the usual 3D length.
func (t Tuple) Magnitude() Scalar {
	return t.Dot(t).Sqrt()
}

// Normalize divides t by its magnitude.
// A zero tuple yields NaN components.
func (t Tuple) Normalize() Tuple {
	return t.Div(t.Magnitude())
}

// Equal reports whether every component of t is approximately equal to u's.
func (t Tuple) Equal(u Tuple) bool {
	return t.X.Equal(u.X) && t.Y.Equal(u.Y) && t.Z.Equal(u.Z) && t.W.Equal(u.W)
}

// String formats t as Point(x, y, z), Vector(x, y, z) or Tuple(x, y, z, w).
func (t Tuple) String() string {
	k := t.Kind()
	if k == KindNeither {
		return fmt.Sprintf("%s(%s, %s, %s, %s)", k, t.X, t.Y, t.Z, t.W)
	}
	return fmt.Sprintf("%s(%s, %s, %s)", k, t.X, t.Y, t.Z)
}
