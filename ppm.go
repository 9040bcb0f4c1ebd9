package rt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// PPM magic numbers and the only maxval the writers emit.
const (
	magicASCII  = "P3"
	magicBinary = "P6"
	ppmMaxval   = 255
)

// WritePPM writes the canvas to w as an ASCII (P3) PPM image.
//
// Each channel becomes an integer in [0, 255] (see Color.Bytes). Samples are
// separated by single spaces; a new line starts at every canvas row and
// before any sample that would push the line past 70 characters (see
// WithLineWidth). The body ends with a newline.
//
// The first write error aborts serialization and is returned as is. w is
// written in small pieces; wrap it in a bufio.Writer for speed.
func (c *Canvas) WritePPM(w io.Writer, opts ...PPMOption) error {
	o := defaultPPMOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := c.writeHeader(w, magicASCII); err != nil {
		return err
	}

	lw := lineWriter{w: w, max: o.lineWidth}
	for i, col := range c.data {
		r, g, b := col.Bytes()
		newRow := c.width > 0 && i%c.width == 0 && i > 0
		if err := lw.sample(r, newRow); err != nil {
			return err
		}
		if err := lw.sample(g, false); err != nil {
			return err
		}
		if err := lw.sample(b, false); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	Logger().Debug("ppm written", "format", magicASCII, "width", c.width, "height", c.height)
	return nil
}

// lineWriter emits space-separated samples, breaking lines before they
// grow past max characters.
type lineWriter struct {
	w     io.Writer
	max   int
	width int    // characters on the current line
	buf   []byte // scratch space for one sample
}

func (lw *lineWriter) sample(v uint8, forceBreak bool) error {
	lw.buf = lw.buf[:0]
	digits := len(strconv.AppendUint(lw.buf, uint64(v), 10))
	if forceBreak || (lw.width > 0 && lw.width+1+digits > lw.max) {
		lw.buf = append(lw.buf, '\n')
		lw.width = 0
	}
	if lw.width > 0 {
		lw.buf = append(lw.buf, ' ')
		lw.width++
	}
	lw.buf = strconv.AppendUint(lw.buf, uint64(v), 10)
	lw.width += digits
	_, err := lw.w.Write(lw.buf)
	return err
}

// WriteBinaryPPM writes the canvas to w as a binary (P6) PPM image: the
// header, then three raw bytes per cell in row-major order with no
// separators, then a single newline.
//
// The first write error aborts serialization and is returned as is.
func (c *Canvas) WriteBinaryPPM(w io.Writer) error {
	if err := c.writeHeader(w, magicBinary); err != nil {
		return err
	}

	row := make([]byte, 0, 3*c.width)
	for y := 0; y < c.height; y++ {
		row = row[:0]
		for _, col := range c.data[y*c.width : (y+1)*c.width] {
			r, g, b := col.Bytes()
			row = append(row, r, g, b)
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	Logger().Debug("ppm written", "format", magicBinary, "width", c.width, "height", c.height)
	return nil
}

func (c *Canvas) writeHeader(w io.Writer, magic string) error {
	_, err := fmt.Fprintf(w, "%s\n%d %d\n%d\n", magic, c.width, c.height, ppmMaxval)
	return err
}

// SavePPM writes the canvas to an ASCII PPM file.
func (c *Canvas) SavePPM(path string, opts ...PPMOption) error {
	return saveFile(path, func(w io.Writer) error {
		return c.WritePPM(w, opts...)
	})
}

// SaveBinaryPPM writes the canvas to a binary PPM file.
func (c *Canvas) SaveBinaryPPM(path string) error {
	return saveFile(path, c.WriteBinaryPPM)
}

// saveFile creates path and runs encode against a buffered writer on it.
func saveFile(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	bw := bufio.NewWriter(f)
	if err := encode(bw); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	Logger().Info("image saved", "path", path)
	return nil
}
