package payload

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedRune indicates the secret contains a code point that the
// single-byte charset cannot represent.
var ErrUnsupportedRune = errors.New("rune not representable in single-byte charset")

type (
	// Option selects the charset and error-correction algorithm used when
	// building and parsing a payload. Build and Parse must be given the
	// same options to round-trip.
	Option func(*config)

	config struct {
		charset charset
		coder   coder
	}

	charset interface {
		encode(s string) ([]byte, error)
		decode(b []byte) string
	}

	coder interface {
		encode(bits []bool) []bool
		decode(bits []bool) []byte
		encodedBits(rawBits int) int
	}
)

func newConfig(opts ...Option) config {
	cfg := config{
		charset: latin1{},
		coder:   passthrough{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithoutECC is the default: payload bits are embedded as-is.
func WithoutECC() Option {
	return func(c *config) {
		c.coder = passthrough{}
	}
}

// WithGolay wraps the payload bits in a Golay(24,12) code so that isolated
// bit flips in the carrier can be corrected on extraction.
func WithGolay() Option {
	return func(c *config) {
		c.coder = golaycoder{}
	}
}

// WithLatin1 is the default charset: one byte per character, code points
// 0-255 only. Secrets containing wider runes are rejected.
func WithLatin1() Option {
	return func(c *config) {
		c.charset = latin1{}
	}
}

// WithUTF8 embeds the raw UTF-8 bytes of the secret instead of single-byte
// character codes, lifting the code-point restriction at the cost of up to
// four carrier bytes per character.
func WithUTF8() Option {
	return func(c *config) {
		c.charset = utf8charset{}
	}
}

var _ charset = (*latin1)(nil)

type latin1 struct{}

func (latin1) encode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r > 0xff {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedRune, r)
		}
		out = append(out, byte(r))
	}
	return out, nil
}

func (latin1) decode(b []byte) string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, v := range b {
		sb.WriteRune(rune(v))
	}
	return sb.String()
}

var _ charset = (*utf8charset)(nil)

type utf8charset struct{}

func (utf8charset) encode(s string) ([]byte, error) {
	return []byte(s), nil
}

func (utf8charset) decode(b []byte) string {
	return string(b)
}
