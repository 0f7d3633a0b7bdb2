package payload

import (
	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"
)

var _ coder = (*passthrough)(nil)

type passthrough struct{}

func (passthrough) encode(bits []bool) []bool {
	return bits
}

func (passthrough) decode(bits []bool) []byte {
	return bitsToGroups(bits)
}

func (passthrough) encodedBits(rawBits int) int {
	return rawBits
}

var _ coder = (*golaycoder)(nil)

// golaycoder expands each 12 payload bits to a 24-bit Golay codeword.
// There is no interleaving stage: the extractor does not know the payload
// length up front, and a length-dependent permutation would break the
// terminator scan.
type golaycoder struct{}

func (golaycoder) encode(bits []bool) []bool {
	if len(bits) == 0 {
		return nil
	}
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, b := range bits {
		w.WriteBool(b)
	}
	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(w.Data(), w.Bits())

	r := bitstream.NewBitReader(encoded, 0, 0)
	out := make([]bool, enc.Bits())
	for i := range out {
		out[i], _ = r.ReadBitAt(i)
	}
	return out
}

func (golaycoder) decode(bits []bool) []byte {
	if len(bits) == 0 {
		return nil
	}
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, b := range bits {
		w.WriteBool(b)
	}
	var decoded []byte
	_ = golay.DecodeBinay(w.Data(), &decoded)
	return decoded
}

func (golaycoder) encodedBits(rawBits int) int {
	return golay.EncodedBits(rawBits)
}
