package lsb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbed(t *testing.T) {
	t.Run("writes only the LSB of the first len(bits) bytes", func(t *testing.T) {
		carrier := make([]byte, 32)
		for i := range carrier {
			carrier[i] = 0xff
		}
		// 'H' 0x48, 'i' 0x69, terminator 0x00, MSB first
		bits := []bool{
			false, true, false, false, true, false, false, false,
			false, true, true, false, true, false, false, true,
			false, false, false, false, false, false, false, false,
		}
		out := Embed(carrier, bits)
		require.Len(t, out, 32)

		exp := []byte{
			0xfe, 0xff, 0xfe, 0xfe, 0xff, 0xfe, 0xfe, 0xfe,
			0xfe, 0xff, 0xff, 0xfe, 0xff, 0xfe, 0xfe, 0xff,
			0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe, 0xfe,
		}
		assert.Equal(t, exp, out[:24])
		for i := 24; i < 32; i++ {
			assert.Equal(t, byte(0xff), out[i], "byte %d beyond the bit stream must be untouched", i)
		}
	})

	t.Run("does not mutate the carrier", func(t *testing.T) {
		carrier := []byte{0x10, 0x11, 0x12, 0x13}
		out := Embed(carrier, []bool{true, false, true, false})
		assert.Equal(t, []byte{0x10, 0x11, 0x12, 0x13}, carrier)
		assert.Equal(t, []byte{0x11, 0x10, 0x13, 0x12}, out)
	})

	t.Run("each byte changes by at most one", func(t *testing.T) {
		carrier := []byte{0x00, 0x01, 0x7f, 0x80, 0xfe, 0xff}
		bits := []bool{true, true, true, true, true, true}
		out := Embed(carrier, bits)
		for i := range carrier {
			diff := int(out[i]) - int(carrier[i])
			if diff < 0 {
				diff = -diff
			}
			assert.LessOrEqual(t, diff, 1)
			assert.Equal(t, byte(0x01), out[i]&0x01)
		}
	})

	t.Run("empty bits copies the carrier verbatim", func(t *testing.T) {
		carrier := []byte{0xaa, 0xbb}
		assert.Equal(t, carrier, Embed(carrier, nil))
	})
}

func TestExtract(t *testing.T) {
	test := []struct {
		name    string
		carrier []byte
		exp     []bool
	}{
		{"empty", nil, []bool{}},
		{"all even", []byte{0x00, 0x02, 0xfe}, []bool{false, false, false}},
		{"all odd", []byte{0x01, 0x03, 0xff}, []bool{true, true, true}},
		{"mixed", []byte{0x48, 0x69, 0x00, 0xff}, []bool{false, true, false, true}},
	}
	for _, tt := range test {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exp, Extract(tt.carrier))
		})
	}
}

func TestEmbedExtract_RoundTrip(t *testing.T) {
	carrier := make([]byte, 64)
	for i := range carrier {
		carrier[i] = byte(i * 7)
	}
	bits := make([]bool, 40)
	for i := range bits {
		bits[i] = i%3 == 0
	}
	got := Extract(Embed(carrier, bits))
	assert.Equal(t, bits, got[:len(bits)])
}

func TestCapacity(t *testing.T) {
	assert.Equal(t, 0, Capacity(nil))
	assert.Equal(t, 12, Capacity(make([]byte, 12)))
}
