// Package ubx decodes the u-blox UBX binary protocol: a byte-stream framer,
// per-message decoders producing observation batches and ephemerides, and a
// textual-command configuration-frame generator. It imports the gnss package
// as a stable domain-library contract for satellite numbering, time
// conversion, and per-constellation navigation-message decoding.
package ubx

import (
	"encoding/binary"
	"math"
)

// U1/I1/U2L/U4L/I4L/R4L/R8L read little-endian scalars at the head of p.
// The teacher's codec assumes byte alignment is never guaranteed by the
// wire, hence explicit byte-at-a-time assembly rather than unsafe casts.
func U1(p []byte) uint8   { return p[0] }
func I1(p []byte) int8    { return int8(p[0]) }
func U2L(p []byte) uint16 { return binary.LittleEndian.Uint16(p) }
func U4L(p []byte) uint32 { return binary.LittleEndian.Uint32(p) }
func I2L(p []byte) int16  { return int16(binary.LittleEndian.Uint16(p)) }
func I4L(p []byte) int32  { return int32(binary.LittleEndian.Uint32(p)) }
func R4L(p []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(p))
}
func R8L(p []byte) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(p))
}

// I8L reads a sign-extended 64-bit quantity split across two 32-bit fields
// four bytes apart, the layout the receiver uses for extended-precision
// time-of-week counters.
func I8L(p []byte) float64 {
	return float64(I4L(p[4:]))*4294967296.0 + float64(U4L(p))
}

// U8L reads a little-endian unsigned 64-bit scalar, used by VALSET's
// widest configuration-item value type.
func U8L(p []byte) uint64 { return binary.LittleEndian.Uint64(p) }

func setU1(p []byte, v uint8)  { p[0] = v }
func setI1(p []byte, v int8)   { p[0] = uint8(v) }
func setU2(p []byte, v uint16) { binary.LittleEndian.PutUint16(p, v) }
func setI2(p []byte, v int16)  { binary.LittleEndian.PutUint16(p, uint16(v)) }
func setU4(p []byte, v uint32) { binary.LittleEndian.PutUint32(p, v) }
func setI4(p []byte, v int32)  { binary.LittleEndian.PutUint32(p, uint32(v)) }
func setU8(p []byte, v uint64) { binary.LittleEndian.PutUint64(p, v) }
func setR4(p []byte, v float32) {
	binary.LittleEndian.PutUint32(p, math.Float32bits(v))
}
func setR8(p []byte, v float64) {
	binary.LittleEndian.PutUint64(p, math.Float64bits(v))
}
