// Package quality measures how much an embedding disturbed a carrier image.
package quality

import (
	"errors"
	"image"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/yyyoichi/stegotext/internal/pixel"
)

// ErrSizeMismatch indicates the two images differ in dimensions and cannot
// be compared channel by channel.
var ErrSizeMismatch = errors.New("images differ in dimensions")

// Report describes the channel-level distortion between a carrier and its
// stego copy.
type Report struct {
	// MSE is the mean squared error over all RGB channel bytes.
	MSE float64
	// PSNR in decibels. +Inf when the images are identical.
	PSNR float64
	// ChangedBytes counts channel bytes that differ between the images.
	ChangedBytes int
	// ChangedRatio is ChangedBytes over the total channel count.
	ChangedRatio float64
}

// Compare flattens both images to RGB channel bytes and reports their
// distortion. A single-LSB embedding changes each touched byte by at most 1,
// so ChangedBytes is bounded by the embedded bit count and MSE by
// ChangedRatio.
func Compare(original, stego image.Image) (Report, error) {
	a := pixel.Flatten(original)
	b := pixel.Flatten(stego)
	if a.Width != b.Width || a.Height != b.Height {
		return Report{}, ErrSizeMismatch
	}
	if len(a.Pix) == 0 {
		return Report{PSNR: math.Inf(1)}, nil
	}

	var r Report
	sq := make([]float64, len(a.Pix))
	for i := range a.Pix {
		d := float64(a.Pix[i]) - float64(b.Pix[i])
		sq[i] = d * d
		if d != 0 {
			r.ChangedBytes++
		}
	}
	r.MSE = stat.Mean(sq, nil)
	if r.MSE == 0 {
		r.PSNR = math.Inf(1)
	} else {
		r.PSNR = 10 * math.Log10(255*255/r.MSE)
	}
	r.ChangedRatio = float64(r.ChangedBytes) / float64(len(a.Pix))
	return r, nil
}
