package rcg

import (
	"encoding/binary"
	"math"
)

// Fixed-point scales used on the binary wire.
const (
	Scale16    = 16.0    // legacy 16-bit kinematics (v1/v2 showinfo, draw)
	Scale65536 = 65536.0 // v3 kinematics and every parameter block
)

// ─── Scalar conversions ────────────────────────────────────────────────────

// Fixed16 converts a host-order Scale16 wire value to its logical value.
func Fixed16(w int16) float64 { return float64(w) / Scale16 }

// ToFixed16 quantizes v onto the Scale16 grid, rounding half away from zero.
// Values outside the int16 range saturate.
func ToFixed16(v float64) int16 { return int16(quantize(v, Scale16, math.MinInt16, math.MaxInt16)) }

// Fixed32 converts a host-order Scale65536 wire value to its logical value.
func Fixed32(w int32) float64 { return float64(w) / Scale65536 }

// ToFixed32 quantizes v onto the Scale65536 grid, rounding half away from zero.
// Values outside the int32 range saturate.
func ToFixed32(v float64) int32 {
	return int32(quantize(v, Scale65536, math.MinInt32, math.MaxInt32))
}

func quantize(v, scale, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	r := math.Round(v * scale) // half away from zero
	if r < lo {
		return lo
	}
	if r > hi {
		return hi
	}
	return r
}

func boolToInt16(b bool) int16 {
	if b {
		return 1
	}
	return 0
}

// ─── Fixed-length strings ──────────────────────────────────────────────────

// DecodeFixedString trims b at the first nul byte.
func DecodeFixedString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

// EncodeFixedString copies s into dst, truncating when too long and
// nul-filling the remainder.
func EncodeFixedString(dst []byte, s string) {
	n := copy(dst, s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// ─── Wire cursor ───────────────────────────────────────────────────────────

// wireReader reads network-order fields from a fixed payload. Reads past the
// end yield zero values and set short.
type wireReader struct {
	buf   []byte
	off   int
	short bool
}

func newWireReader(b []byte) *wireReader { return &wireReader{buf: b} }

func (r *wireReader) take(n int) []byte {
	if r.off+n > len(r.buf) {
		r.short = true
		r.off = len(r.buf)
		return make([]byte, n)
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

func (r *wireReader) skip(n int)      { r.take(n) }
func (r *wireReader) uint8() uint8    { return r.take(1)[0] }
func (r *wireReader) int16() int16    { return int16(binary.BigEndian.Uint16(r.take(2))) }
func (r *wireReader) int32() int32    { return int32(binary.BigEndian.Uint32(r.take(4))) }
func (r *wireReader) fixed16() float64 { return Fixed16(r.int16()) }
func (r *wireReader) fixed32() float64 { return Fixed32(r.int32()) }
func (r *wireReader) bool16() bool    { return r.int16() != 0 }
func (r *wireReader) str(n int) string { return DecodeFixedString(r.take(n)) }

// wireWriter appends network-order fields, in the style of an append-only
// frame builder.
type wireWriter struct {
	buf []byte
}

func newWireWriter(capacity int) *wireWriter {
	return &wireWriter{buf: make([]byte, 0, capacity)}
}

func (w *wireWriter) bytes() []byte { return w.buf }

func (w *wireWriter) raw(b []byte) { w.buf = append(w.buf, b...) }

func (w *wireWriter) pad(n int) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, 0)
	}
}

// padTo nul-fills up to an absolute length.
func (w *wireWriter) padTo(n int) {
	if len(w.buf) < n {
		w.pad(n - len(w.buf))
	}
}

func (w *wireWriter) uint8(v uint8) { w.buf = append(w.buf, v) }

func (w *wireWriter) int16(v int16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, uint16(v))
}

func (w *wireWriter) int32(v int32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, uint32(v))
}

func (w *wireWriter) fixed16(v float64) { w.int16(ToFixed16(v)) }
func (w *wireWriter) fixed32(v float64) { w.int32(ToFixed32(v)) }
func (w *wireWriter) bool16(v bool)     { w.int16(boolToInt16(v)) }

func (w *wireWriter) str(s string, n int) {
	start := len(w.buf)
	w.pad(n)
	EncodeFixedString(w.buf[start:start+n], s)
}
