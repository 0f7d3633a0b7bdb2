// Package payload builds and parses the bit sequence that the codec embeds
// into a carrier: the charset-encoded secret, one zero terminator byte, and
// optionally a Golay error-correction layer on top.
package payload

// Terminator marks the end of the hidden data. It is appended to the secret
// bytes on build and stops the group scan on parse.
const Terminator byte = 0x00

// Build converts a secret string into the bit sequence to embed, MSB first
// per byte, payload bytes in original order, terminator last.
func Build(secret string, opts ...Option) ([]bool, error) {
	cfg := newConfig(opts...)
	data, err := cfg.charset.encode(secret)
	if err != nil {
		return nil, err
	}
	data = append(data, Terminator)
	return cfg.coder.encode(bytesToBits(data)), nil
}

// RequiredBits reports how many carrier bits Build(secret) will occupy,
// including the terminator byte and any error-correction expansion.
func RequiredBits(secret string, opts ...Option) (int, error) {
	cfg := newConfig(opts...)
	data, err := cfg.charset.encode(secret)
	if err != nil {
		return 0, err
	}
	return cfg.coder.encodedBits((len(data) + 1) * 8), nil
}

// Parse recovers the secret from an extracted bit sequence. The scan stops
// at the first all-zero byte group; when no terminator is found, every
// complete group is returned as-is and a trailing partial group is
// discarded.
func Parse(bits []bool, opts ...Option) (string, error) {
	cfg := newConfig(opts...)
	groups := cfg.coder.decode(bits)
	for i, g := range groups {
		if g == Terminator {
			groups = groups[:i]
			break
		}
	}
	return cfg.charset.decode(groups), nil
}

func bytesToBits(data []byte) []bool {
	bits := make([]bool, 0, len(data)*8)
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bits = append(bits, (b>>uint(i))&1 == 1)
		}
	}
	return bits
}

// bitsToGroups packs complete 8-bit groups MSB first. Trailing bits that do
// not fill a group are dropped.
func bitsToGroups(bits []bool) []byte {
	out := make([]byte, len(bits)/8)
	for i := range out {
		var v byte
		for j := range 8 {
			if bits[i*8+j] {
				v |= 1 << uint(7-j)
			}
		}
		out[i] = v
	}
	return out
}
