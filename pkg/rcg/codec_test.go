package rcg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFixed16(t *testing.T) {
	assert.Equal(t, 100.0, Fixed16(1600))
	assert.Equal(t, int16(1600), ToFixed16(100))
	assert.Equal(t, int16(-8), ToFixed16(-0.5))
	assert.Equal(t, int16(1), ToFixed16(0.04)) // 0.64 rounds up
	assert.Equal(t, int16(math.MaxInt16), ToFixed16(1e9))
	assert.Equal(t, int16(math.MinInt16), ToFixed16(-1e9))
	assert.Equal(t, int16(0), ToFixed16(math.NaN()))
}

func TestFixed32(t *testing.T) {
	assert.Equal(t, 100.0, Fixed32(6553600))
	assert.Equal(t, int32(6553600), ToFixed32(100))
	assert.Equal(t, int32(32768), ToFixed32(0.5))
	assert.Equal(t, int32(math.MaxInt32), ToFixed32(1e12))
}

func TestFixedRoundTripIsStable(t *testing.T) {
	for _, w := range []int16{-32768, -1601, -1, 0, 1, 17, 1600, 32767} {
		assert.Equal(t, w, ToFixed16(Fixed16(w)))
	}
	for _, w := range []int32{math.MinInt32, -65537, 0, 1, 6553600, math.MaxInt32} {
		assert.Equal(t, w, ToFixed32(Fixed32(w)))
	}
}

func TestFixedString(t *testing.T) {
	buf := make([]byte, 8)
	EncodeFixedString(buf, "alpha")
	assert.Equal(t, []byte{'a', 'l', 'p', 'h', 'a', 0, 0, 0}, buf)
	assert.Equal(t, "alpha", DecodeFixedString(buf))

	EncodeFixedString(buf, "a-very-long-name")
	assert.Equal(t, "a-very-l", DecodeFixedString(buf))
}

func TestWireReaderShortRead(t *testing.T) {
	r := newWireReader([]byte{0x00, 0x10, 0x01})
	assert.Equal(t, int16(16), r.int16())
	assert.Equal(t, int16(0), r.int16())
	assert.True(t, r.short)
}

func TestWireWriterLayout(t *testing.T) {
	w := newWireWriter(16)
	w.int16(-1)
	w.fixed16(1.5)
	w.fixed32(-1)
	w.str("ab", 4)
	assert.Equal(t, []byte{
		0xff, 0xff,
		0x00, 0x18,
		0xff, 0xff, 0x00, 0x00,
		'a', 'b', 0, 0,
	}, w.bytes())
}
