// Package stegotext hides a text secret in the least significant bits of an
// image's RGB channel bytes and recovers it losslessly from a copy of that
// image.
//
// Each channel byte carries one payload bit, so a carrier holds up to
// width*height*3 bits. A single zero byte terminates the payload; bytes
// beyond it are never touched. The embedding is visually imperceptible
// (every modified byte changes by at most 1) but offers no secrecy beyond
// obscurity: there is no encryption and no resistance to statistical
// steganalysis.
package stegotext

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/yyyoichi/stegotext/imgio"
	"github.com/yyyoichi/stegotext/internal/lsb"
	"github.com/yyyoichi/stegotext/internal/pixel"
	"github.com/yyyoichi/stegotext/payload"
)

var (
	// ErrPayloadTooLarge indicates the secret needs more bits than the
	// carrier has channel bytes. Nothing is written when this is returned.
	ErrPayloadTooLarge = errors.New("secret too large for carrier capacity")

	// ErrInvalidImage indicates the input could not be interpreted as
	// pixel data. It originates in the imgio package and is propagated
	// unchanged.
	ErrInvalidImage = imgio.ErrInvalidImage

	// ErrUnsupportedRune indicates the secret contains a code point above
	// U+00FF under the default single-byte charset. Use WithUTF8 to embed
	// such secrets.
	ErrUnsupportedRune = payload.ErrUnsupportedRune
)

// Encode embeds a secret into an image with the specified options.
// This is a convenience function that creates a Codec instance and calls
// its Encode method.
func Encode(ctx context.Context, src image.Image, secret string, opts ...Option) (image.Image, error) {
	c, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return c.Encode(ctx, src, secret)
}

// Decode recovers a secret from an image with the specified options.
// This is a convenience function that creates a Codec instance and calls
// its Decode method.
func Decode(ctx context.Context, src image.Image, opts ...Option) (string, error) {
	c, err := New(opts...)
	if err != nil {
		return "", err
	}
	return c.Decode(ctx, src)
}

type Codec struct {
	popts []payload.Option
}

// New initializes a codec. The charset and error-correction behavior can be
// optionally specified; the defaults match the single-byte, no-ECC wire
// format.
func New(opts ...Option) (*Codec, error) {
	c := new(Codec)
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Encode embeds a secret into an image.
//
// Process:
//  1. Normalizes the image to flat 8-bit RGB channel bytes.
//  2. Builds the payload bit sequence (secret bytes + terminator).
//  3. Verifies the carrier has capacity for every bit; fails with
//     ErrPayloadTooLarge before anything is written otherwise.
//  4. Writes one bit into the least significant bit of each of the first
//     len(bits) channel bytes of a fresh copy; later bytes are untouched.
//
// The source image is never mutated.
func (c *Codec) Encode(ctx context.Context, src image.Image, secret string) (image.Image, error) {
	buf := pixel.Flatten(src)
	bits, err := payload.Build(secret, c.popts...)
	if err != nil {
		return nil, err
	}
	if need, capa := len(bits), lsb.Capacity(buf.Pix); need > capa {
		return nil, fmt.Errorf("%w: need %d bits, carrier holds %d", ErrPayloadTooLarge, need, capa)
	}
	buf.Pix = lsb.Embed(buf.Pix, bits)
	return buf.Build(), nil
}

// Decode recovers a secret from an image.
//
// Process:
//  1. Normalizes the image to flat 8-bit RGB channel bytes.
//  2. Collects the least significant bit of every channel byte.
//  3. Groups the bits into bytes, MSB first, and returns everything before
//     the first zero byte.
//
// When no terminator is present the full sequence of complete byte groups
// is returned rather than an error, so truncated or foreign carriers still
// decode to something inspectable. A zero-size image decodes to "".
func (c *Codec) Decode(ctx context.Context, src image.Image) (string, error) {
	buf := pixel.Flatten(src)
	return payload.Parse(lsb.Extract(buf.Pix), c.popts...)
}

// Capacity returns the number of bits src can carry, i.e. its RGB channel
// count. Error correction expands the payload, not the capacity; use
// RequiredBits to check whether a particular secret fits.
func (c *Codec) Capacity(src image.Image) int {
	bounds := src.Bounds()
	return bounds.Dx() * bounds.Dy() * 3
}

// RequiredBits reports how many carrier bits secret occupies under this
// codec's options, terminator included.
func (c *Codec) RequiredBits(secret string) (int, error) {
	return payload.RequiredBits(secret, c.popts...)
}
