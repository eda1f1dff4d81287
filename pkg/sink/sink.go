package sink

import (
	"bufio"
	"errors"
	"fmt"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"image"
	"image/png"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrBufferSize    = errors.New("buffer is not dim*dim cells")
)

// Format is an encoding for a finished bitmap.
type Format int

const (
	Text Format = iota
	PNG
	BMP
	TIFF
)

var formatNames = []string{
	Text: "text",
	PNG:  "png",
	BMP:  "bmp",
	TIFF: "tiff",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return "Format(" + strconv.Itoa(int(f)) + ")"
	}
	return formatNames[f]
}

// Ext is the file extension, without the dot, for f.
func (f Format) Ext() string {
	if f == Text {
		return "txt"
	}
	return f.String()
}

// ParseFormat accepts a format name or file extension, ignoring case.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(s, "."))
	switch s {
	case "txt":
		return Text, nil
	case "tif":
		return TIFF, nil
	}

	for i, name := range formatNames {
		if s == name {
			return Format(i), nil
		}
	}

	return Text, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

func checkSize(buf []uint8, dim int) error {
	if dim < 0 || (dim > 0 && dim > math.MaxInt/dim) || len(buf) != dim*dim {
		return fmt.Errorf("%w: %d cells for dim %d", ErrBufferSize, len(buf), dim)
	}
	return nil
}

// Image views buf as a grayscale image without copying it. Writes to the
// image show up in buf.
func Image(buf []uint8, dim int) (*image.Gray, error) {
	if err := checkSize(buf, dim); err != nil {
		return nil, err
	}

	return &image.Gray{
		Pix:    buf,
		Stride: dim,
		Rect:   image.Rect(0, 0, dim, dim),
	}, nil
}

// WriteText writes one row per line, every intensity followed by a space.
func WriteText(w io.Writer, buf []uint8, dim int) error {
	if err := checkSize(buf, dim); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	line := make([]byte, 0, 4*dim+1)

	for y := 0; y < dim; y++ {
		line = line[:0]
		for _, v := range buf[y*dim : (y+1)*dim] {
			line = strconv.AppendUint(line, uint64(v), 10)
			line = append(line, ' ')
		}
		line = append(line, '\n')

		_, err := bw.Write(line)
		if err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Encode writes buf to w in format f.
func Encode(w io.Writer, f Format, buf []uint8, dim int) error {
	if f == Text {
		return WriteText(w, buf, dim)
	}

	img, err := Image(buf, dim)
	if err != nil {
		return err
	}

	switch f {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("encoding %v: %w", f, err)
	}

	return nil
}
