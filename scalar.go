package rt

import (
	"math"
	"strconv"
)

// Epsilon is the tolerance used by every approximate comparison in rt.
const Epsilon = 1e-5

// Scalar is a float64 whose equality is approximate.
//
// Two Scalars are equal when they differ by less than [Epsilon]. The
// relation is reflexive and symmetric but not transitive: a chain of values
// each within Epsilon of the next may end far from where it started. Treat
// Equal as "close enough", never as identity.
//
// Go's arithmetic operators work on Scalar directly. For bit-exact
// equality compare float64(a) == float64(b).
type Scalar float64

// ApproxEqual reports whether a and b differ by less than Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Equal reports whether a and b are approximately equal.
func (a Scalar) Equal(b Scalar) bool {
	return ApproxEqual(float64(a), float64(b))
}

// Compare orders a and b.
// Approximately equal values compare as 0. ok is false when the values are
// unordered, which only happens when NaN is involved.
func (a Scalar) Compare(b Scalar) (c int, ok bool) {
	switch {
	case a.Equal(b):
		return 0, true
	case a < b:
		return -1, true
	case a > b:
		return 1, true
	}
	return 0, false
}

// Less reports whether a is smaller than b and not approximately equal to it.
func (a Scalar) Less(b Scalar) bool {
	c, ok := a.Compare(b)
	return ok && c < 0
}

// Greater reports whether a is larger than b and not approximately equal to it.
func (a Scalar) Greater(b Scalar) bool {
	c, ok := a.Compare(b)
	return ok && c > 0
}

// Add returns a + b.
func (a Scalar) Add(b Scalar) Scalar { return a + b }

// Sub returns a - b.
func (a Scalar) Sub(b Scalar) Scalar { return a - b }

// Mul returns a * b.
func (a Scalar) Mul(b Scalar) Scalar { return a * b }

// Div returns a / b.
func (a Scalar) Div(b Scalar) Scalar { return a / b }

// Neg returns -a.
func (a Scalar) Neg() Scalar { return -a }

// Abs returns |a|.
func (a Scalar) Abs() Scalar { return Scalar(math.Abs(float64(a))) }

// Sqrt returns the square root of a.
func (a Scalar) Sqrt() Scalar { return Scalar(math.Sqrt(float64(a))) }

// Float64 returns the underlying value.
func (a Scalar) Float64() float64 { return float64(a) }

// String formats a in its shortest decimal form, e.g. "1" or "0.26726".
func (a Scalar) String() string {
	return strconv.FormatFloat(float64(a), 'f', -1, 64)
}

// Sum folds xs with addition. The sum of no values is 0.
func Sum(xs ...Scalar) Scalar {
	var s Scalar
	for _, x := range xs {
		s += x
	}
	return s
}
