package stegotext

import "github.com/yyyoichi/stegotext/payload"

type Option func(*Codec) error

// WithUTF8 embeds the raw UTF-8 bytes of the secret instead of single-byte
// character codes. Without it, secrets are restricted to code points 0-255
// and anything wider fails with ErrUnsupportedRune.
//
// Encode and Decode must agree on this option: a decoder without it reads a
// UTF-8 payload as one character per byte.
func WithUTF8() Option {
	return func(c *Codec) error {
		c.popts = append(c.popts, payload.WithUTF8())
		return nil
	}
}

// WithGolay protects the payload with a Golay(24,12) error-correction code.
// It doubles the carrier bits the secret occupies but lets the decoder
// recover from isolated bit flips, e.g. light resampling of the stego
// image. Encode and Decode must agree on this option.
func WithGolay() Option {
	return func(c *Codec) error {
		c.popts = append(c.popts, payload.WithGolay())
		return nil
	}
}
