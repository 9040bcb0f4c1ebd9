package rt

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Default black canvas
//	c := rt.NewCanvas(900, 550)
//
//	// White background
//	c := rt.NewCanvas(900, 550, rt.WithBackground(rt.White))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	background Color
}

// defaultCanvasOptions returns the default canvas options.
func defaultCanvasOptions() canvasOptions {
	return canvasOptions{
		background: Black,
	}
}

// WithBackground fills a new canvas with c instead of black.
func WithBackground(c Color) CanvasOption {
	return func(o *canvasOptions) {
		o.background = c
	}
}

// DefaultLineWidth is the longest line, in characters, that WritePPM emits.
// Some PPM readers reject longer lines.
const DefaultLineWidth = 70

// PPMOption configures the ASCII PPM writer.
type PPMOption func(*ppmOptions)

// ppmOptions holds optional configuration for WritePPM.
type ppmOptions struct {
	lineWidth int
}

// defaultPPMOptions returns the default writer options.
func defaultPPMOptions() ppmOptions {
	return ppmOptions{
		lineWidth: DefaultLineWidth,
	}
}

// WithLineWidth changes the maximum line length of the P3 body.
// Values below 1 restore DefaultLineWidth. A single sample wider than the
// limit is still written on its own line.
func WithLineWidth(n int) PPMOption {
	return func(o *ppmOptions) {
		if n < 1 {
			n = DefaultLineWidth
		}
		o.lineWidth = n
	}
}
