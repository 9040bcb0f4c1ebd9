package rt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	icolor "github.com/gogpu/rt/internal/color"
)

// ErrInvalidPPM is returned (wrapped) by ReadPPM for malformed input.
var ErrInvalidPPM = errors.New("rt: invalid PPM data")

// maxPPMCells bounds the pixel count ReadPPM accepts from a header.
const maxPPMCells = 1 << 26

// ppmPrealloc caps the pixel storage reserved before any raster data has
// been read. Larger images grow as pixels arrive.
const ppmPrealloc = 1 << 16

// ReadPPM decodes an ASCII (P3) or binary (P6) PPM image into a new canvas.
//
// Header comments and any maxval in [1, 65535] are accepted. Samples are
// mapped to channels as sample/maxval, so a canvas written by WritePPM or
// WriteBinaryPPM reads back with every channel quantized to 1/255 steps.
// Truncated input yields io.ErrUnexpectedEOF and a nil canvas.
func ReadPPM(r io.Reader) (*Canvas, error) {
	s := ppmScanner{r: bufio.NewReader(r)}

	magic := make([]byte, 2)
	if _, err := io.ReadFull(s.r, magic); err != nil {
		return nil, unexpectedEOF(err)
	}
	binary := false
	switch string(magic) {
	case magicASCII:
	case magicBinary:
		binary = true
	default:
		return nil, fmt.Errorf("%w: unknown magic number %q", ErrInvalidPPM, magic)
	}

	width, err := s.int()
	if err != nil {
		return nil, err
	}
	height, err := s.int()
	if err != nil {
		return nil, err
	}
	maxval, err := s.int()
	if err != nil {
		return nil, err
	}
	if maxval < 1 || maxval > icolor.MaxU16 {
		return nil, fmt.Errorf("%w: maxval %d out of range [1, %d]", ErrInvalidPPM, maxval, icolor.MaxU16)
	}
	if width > 0 && height > maxPPMCells/width {
		return nil, fmt.Errorf("%w: image %dx%d too large", ErrInvalidPPM, width, height)
	}

	n := width * height
	var data []Color
	if binary {
		// exactly one whitespace byte separates the header from the raster
		b, rerr := s.r.ReadByte()
		if rerr != nil {
			return nil, unexpectedEOF(rerr)
		}
		if !isPPMSpace(b) {
			return nil, fmt.Errorf("%w: missing whitespace after header", ErrInvalidPPM)
		}
		data, err = readBinaryRaster(s.r, n, maxval)
	} else {
		data, err = readASCIIRaster(&s, n, maxval)
	}
	if err != nil {
		return nil, err
	}

	Logger().Debug("canvas allocated", "width", width, "height", height)
	return &Canvas{width: width, height: height, data: data}, nil
}

func readASCIIRaster(s *ppmScanner, n, maxval int) ([]Color, error) {
	sample := func() (Scalar, error) {
		v, err := s.int()
		if err != nil {
			return 0, err
		}
		if v > maxval {
			return 0, fmt.Errorf("%w: sample %d exceeds maxval %d", ErrInvalidPPM, v, maxval)
		}
		return Scalar(icolor.FromSample(v, maxval)), nil
	}

	data := make([]Color, 0, min(n, ppmPrealloc))
	var err error
	for range n {
		var col Color
		if col.R, err = sample(); err != nil {
			return nil, err
		}
		if col.G, err = sample(); err != nil {
			return nil, err
		}
		if col.B, err = sample(); err != nil {
			return nil, err
		}
		data = append(data, col)
	}
	return data, nil
}

func readBinaryRaster(r io.Reader, n, maxval int) ([]Color, error) {
	size := 1
	if maxval > icolor.MaxU8 {
		size = 2
	}
	sample := func(b []byte) (Scalar, error) {
		v := int(b[0])
		if size == 2 {
			v = v<<8 | int(b[1])
		}
		if v > maxval {
			return 0, fmt.Errorf("%w: sample %d exceeds maxval %d", ErrInvalidPPM, v, maxval)
		}
		return Scalar(icolor.FromSample(v, maxval)), nil
	}

	data := make([]Color, 0, min(n, ppmPrealloc))
	px := make([]byte, 3*size)
	var err error
	for range n {
		if _, err := io.ReadFull(r, px); err != nil {
			return nil, unexpectedEOF(err)
		}
		var col Color
		if col.R, err = sample(px); err != nil {
			return nil, err
		}
		if col.G, err = sample(px[size:]); err != nil {
			return nil, err
		}
		if col.B, err = sample(px[2*size:]); err != nil {
			return nil, err
		}
		data = append(data, col)
	}
	return data, nil
}

// ppmScanner reads whitespace-separated decimal tokens, skipping '#'
// comments that run to the end of the line.
type ppmScanner struct {
	r *bufio.Reader
}

func (s *ppmScanner) int() (int, error) {
	b, err := s.skipSpace()
	if err != nil {
		return 0, err
	}
	if b < '0' || b > '9' {
		return 0, fmt.Errorf("%w: unexpected byte %q", ErrInvalidPPM, b)
	}

	n := 0
	for {
		n = n*10 + int(b-'0')
		if n > math.MaxInt32 {
			return 0, fmt.Errorf("%w: number too large", ErrInvalidPPM)
		}
		b, err = s.r.ReadByte()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return 0, err
		}
		if b < '0' || b > '9' {
			if !isPPMSpace(b) && b != '#' {
				return 0, fmt.Errorf("%w: unexpected byte %q", ErrInvalidPPM, b)
			}
			return n, s.r.UnreadByte()
		}
	}
}

// skipSpace consumes whitespace and comments and returns the first byte of
// the next token.
func (s *ppmScanner) skipSpace() (byte, error) {
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			return 0, unexpectedEOF(err)
		}
		switch {
		case b == '#':
			if _, err := s.r.ReadBytes('\n'); err != nil {
				return 0, unexpectedEOF(err)
			}
		case isPPMSpace(b):
		default:
			return b, nil
		}
	}
}

func isPPMSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func unexpectedEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
