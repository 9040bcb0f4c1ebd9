// Package rt provides the numeric and image-output foundation of a ray
// tracer.
//
// # Overview
//
// rt has four building blocks:
//   - Scalar: a float64 with approximate (epsilon 1e-5) equality
//   - Tuple: a homogeneous 4D coordinate used for both points and vectors
//   - Color: an RGB triple with unclamped channels
//   - Canvas: a grid of Colors that serializes to PPM, PNG, BMP and TIFF
//
// # Quick Start
//
//	import "github.com/gogpu/rt"
//
//	c := rt.NewCanvas(10, 2)
//	c.SetPixel(0, 0, rt.NewColor(1, 0.8, 0.6))
//
//	w := bufio.NewWriter(os.Stdout)
//	defer w.Flush()
//	if err := c.WritePPM(w); err != nil {
//	    log.Fatal(err)
//	}
//
// # Points and Vectors
//
// There is a single Tuple type. Point sets w=1 and Vector sets w=0, and
// the usual homogeneous rules follow from plain component-wise
// arithmetic:
//   - point + vector = point
//   - point - point = vector
//   - vector ± vector = vector
//
// Nothing stops point + point (w=2) or scaling a point (w≠1); such tuples
// are neither points nor vectors and print as Tuple(x, y, z, w).
//
// # Coordinate System
//
// Canvas coordinates follow the usual raster convention:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// Scalar, Tuple and Color are values and safe to share. A Canvas is a
// single mutable buffer; callers must serialize writes to it.
package rt

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
