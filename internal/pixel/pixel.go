package pixel

import (
	"image"

	"golang.org/x/image/draw"
)

// Buffer is the flat 3-channel view of an image that the codec operates on:
// interleaved R, G, B bytes in row-major order, len = width*height*3.
type Buffer struct {
	Pix    []byte
	Width  int
	Height int
}

// Flatten normalizes src to 8-bit RGB and returns its flat channel bytes.
// Alpha, palette and color-model differences are resolved here so that the
// codec only ever sees a plain byte sequence.
func Flatten(src image.Image) Buffer {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Copy(nrgba, image.Point{}, src, bounds, draw.Src, nil)

	b := Buffer{
		Pix:    make([]byte, w*h*3),
		Width:  w,
		Height: h,
	}
	idx := 0
	for y := range h {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		for x := range w {
			b.Pix[idx+0] = row[x*4+0]
			b.Pix[idx+1] = row[x*4+1]
			b.Pix[idx+2] = row[x*4+2]
			idx += 3
		}
	}
	return b
}

// Build reassembles the flat channel bytes into an opaque NRGBA image.
func (b Buffer) Build() image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, b.Width, b.Height))
	idx := 0
	for y := range b.Height {
		row := dst.Pix[y*dst.Stride : y*dst.Stride+b.Width*4]
		for x := range b.Width {
			row[x*4+0] = b.Pix[idx+0]
			row[x*4+1] = b.Pix[idx+1]
			row[x*4+2] = b.Pix[idx+2]
			row[x*4+3] = 0xff
			idx += 3
		}
	}
	return dst
}
