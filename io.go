package polarstrip

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	// Strip decoders.
	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DecodeStrip decodes an image from r, auto-detecting the format, and reads
// its first row as a strip. Supported formats: BMP, PNG, JPEG, GIF, TIFF,
// WebP.
func DecodeStrip(r io.Reader) (*Strip, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	s, err := StripFromImage(img)
	if err != nil {
		return nil, err
	}
	Logger().Debug("polarstrip: decoded strip", "format", format, "width", s.Width())
	return s, nil
}

// DecodeStripBytes decodes a strip from an in-memory image file.
func DecodeStripBytes(data []byte) (*Strip, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", ErrDecode)
	}
	return DecodeStrip(bytes.NewReader(data))
}

// LoadStrip loads a strip from the image file at path.
func LoadStrip(path string) (*Strip, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open file: %w", ErrDecode, err)
	}
	defer func() { _ = f.Close() }()

	return DecodeStrip(f)
}

// EncodeStripBMP writes the strip as a 1×W bitmap.
func EncodeStripBMP(w io.Writer, s *Strip) error {
	if err := bmp.Encode(w, s.Image()); err != nil {
		return fmt.Errorf("%w: BMP: %w", ErrEncode, err)
	}
	return nil
}

// SaveStripBMP saves the strip as a 1×W bitmap file.
func SaveStripBMP(path string, s *Strip) error {
	return saveFile(path, func(w io.Writer) error { return EncodeStripBMP(w, s) })
}

// EncodePNG encodes the canvas as PNG to the given writer.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("%w: PNG: %w", ErrEncode, err)
	}
	return nil
}

// SavePNG saves the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	return saveFile(path, c.EncodePNG)
}

func saveFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("%w: create file: %w", ErrEncode, err)
	}

	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: close file: %w", ErrEncode, err)
	}
	return nil
}
