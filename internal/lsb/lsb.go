package lsb

// Capacity returns the number of bits the carrier can hold,
// one bit per channel byte.
func Capacity(carrier []byte) int {
	return len(carrier)
}

// Embed writes the bit sequence into the least significant bits of a copy
// of carrier. The first len(bits) bytes carry one bit each; every byte
// after that is left untouched, which is what gives the extractor a
// well-defined stopping point.
//
// The caller must have verified len(bits) <= Capacity(carrier).
func Embed(carrier []byte, bits []bool) []byte {
	out := make([]byte, len(carrier))
	copy(out, carrier)
	for i, bit := range bits {
		if bit {
			out[i] = carrier[i] | 0x01
		} else {
			out[i] = carrier[i] &^ 0x01
		}
	}
	return out
}

// Extract returns the least significant bit of every carrier byte, in order.
func Extract(carrier []byte) []bool {
	bits := make([]bool, len(carrier))
	for i, b := range carrier {
		bits[i] = b&0x01 == 1
	}
	return bits
}
