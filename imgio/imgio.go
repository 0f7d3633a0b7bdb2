// Package imgio loads common raster formats into image.Image values and
// writes results back out as lossless PNG.
//
// Lossy input formats such as JPEG are accepted, but their compression may
// already have disturbed the least significant bits before the codec sees
// the pixels; that degradation happens upstream of this package.
package imgio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"

	_ "image/gif"
	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrInvalidImage indicates the input could not be interpreted as pixel
// data: an unreadable file, an unsupported format, or corrupted bytes.
var ErrInvalidImage = errors.New("cannot interpret input as image data")

// Load reads and decodes the image at path.
// Returns the image, its format name, and any error.
func Load(path string) (image.Image, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	return Decode(data)
}

// Decode decodes image bytes in any registered format.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}
	return img, format, nil
}

// SavePNG writes img to path as PNG.
func SavePNG(img image.Image, path string) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EncodePNG encodes img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
