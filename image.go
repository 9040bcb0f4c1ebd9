package rt

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	icolor "github.com/gogpu/rt/internal/color"
	"github.com/gogpu/rt/internal/parallel"
)

// ColorModel converts any color.Color to a Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	if col, ok := c.(Color); ok {
		return col
	}
	return FromColor(c)
})

// At implements the image.Image interface.
// Coordinates outside the canvas yield transparent black instead of
// panicking, as image.Image requires.
func (c *Canvas) At(x, y int) color.Color {
	if !c.InBounds(x, y) {
		return color.NRGBA{}
	}
	return c.data[y*c.width+x]
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return ColorModel
}

// parallelCells is the canvas size from which ToImage quantizes rows
// concurrently.
const parallelCells = 1 << 16

var rowPool = sync.OnceValue(func() *parallel.WorkerPool {
	return parallel.NewWorkerPool(0)
})

// ToImage converts the canvas to an opaque 8-bit image.
// Channels are clamped exactly as in the PPM writers.
func (c *Canvas) ToImage() *image.NRGBA {
	img := image.NewNRGBA(c.Bounds())
	quantize := func(y0, y1 int) {
		for i := y0 * c.width; i < y1*c.width; i++ {
			p := i * 4
			img.Pix[p+0], img.Pix[p+1], img.Pix[p+2] = c.data[i].Bytes()
			img.Pix[p+3] = icolor.MaxU8
		}
	}
	if len(c.data) < parallelCells {
		quantize(0, c.height)
	} else {
		rowPool().Rows(c.height, quantize)
	}
	return img
}

// FromImage creates a canvas from an image. Alpha is dropped.
func FromImage(img image.Image) *Canvas {
	bounds := img.Bounds()
	c := NewCanvas(bounds.Dx(), bounds.Dy())
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.data[y*c.width+x] = FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return c
}

// ScaledImage returns an 8-bit copy of the canvas enlarged by factor with
// nearest-neighbour sampling, so every cell becomes a factor×factor block.
// A factor below 1 is treated as 1.
func (c *Canvas) ScaledImage(factor int) *image.NRGBA {
	src := c.ToImage()
	if factor <= 1 {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, c.width*factor, c.height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Scaled returns a new canvas enlarged by factor, each cell becoming a
// factor×factor block. Channels pass through 8-bit quantization on the
// way, as in ScaledImage.
func (c *Canvas) Scaled(factor int) *Canvas {
	return FromImage(c.ScaledImage(factor))
}

// EncodePNG writes the canvas to w as a PNG image.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.ToImage())
}

// EncodeBMP writes the canvas to w as a BMP image.
func (c *Canvas) EncodeBMP(w io.Writer) error {
	return bmp.Encode(w, c.ToImage())
}

// EncodeTIFF writes the canvas to w as a deflate-compressed TIFF image.
func (c *Canvas) EncodeTIFF(w io.Writer) error {
	return tiff.Encode(w, c.ToImage(), &tiff.Options{Compression: tiff.Deflate})
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return saveFile(path, c.EncodePNG)
}
