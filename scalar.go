package byteview

import (
	"encoding/binary"
	"math"
)

// Scalar accessors. All multi-byte values are read and written in
// little-endian byte order with no alignment restrictions; the signed
// variants reinterpret the same bit pattern. Every accessor panics with a
// bounds error if the value does not fit in [0, Length()).

// Byte returns the byte at index.
func (v *View) Byte(index int) byte {
	v.check(index, 1)
	return v.base[v.off+index]
}

// Int8 returns the byte at index reinterpreted as a signed 8-bit integer.
func (v *View) Int8(index int) int8 {
	return int8(v.Byte(index))
}

// Uint16 returns the little-endian 16-bit unsigned integer at index.
func (v *View) Uint16(index int) uint16 {
	v.check(index, 2)
	return binary.LittleEndian.Uint16(v.base[v.off+index:])
}

// Int16 returns the little-endian 16-bit signed integer at index.
func (v *View) Int16(index int) int16 {
	return int16(v.Uint16(index))
}

// Uint32 returns the little-endian 32-bit unsigned integer at index.
func (v *View) Uint32(index int) uint32 {
	v.check(index, 4)
	return binary.LittleEndian.Uint32(v.base[v.off+index:])
}

// Int32 returns the little-endian 32-bit signed integer at index.
func (v *View) Int32(index int) int32 {
	return int32(v.Uint32(index))
}

// Uint64 returns the little-endian 64-bit unsigned integer at index.
func (v *View) Uint64(index int) uint64 {
	v.check(index, 8)
	return binary.LittleEndian.Uint64(v.base[v.off+index:])
}

// Int64 returns the little-endian 64-bit signed integer at index.
func (v *View) Int64(index int) int64 {
	return int64(v.Uint64(index))
}

// Float32 returns the little-endian IEEE 754 32-bit float at index.
func (v *View) Float32(index int) float32 {
	return math.Float32frombits(v.Uint32(index))
}

// Float64 returns the little-endian IEEE 754 64-bit float at index.
func (v *View) Float64(index int) float64 {
	return math.Float64frombits(v.Uint64(index))
}

// SetByte writes b at index.
func (v *View) SetByte(index int, b byte) {
	v.check(index, 1)
	v.base[v.off+index] = b
}

// SetUint16 writes value at index in little-endian order.
func (v *View) SetUint16(index int, value uint16) {
	v.check(index, 2)
	binary.LittleEndian.PutUint16(v.base[v.off+index:], value)
}

// SetUint32 writes value at index in little-endian order.
func (v *View) SetUint32(index int, value uint32) {
	v.check(index, 4)
	binary.LittleEndian.PutUint32(v.base[v.off+index:], value)
}

// SetUint64 writes value at index in little-endian order.
func (v *View) SetUint64(index int, value uint64) {
	v.check(index, 8)
	binary.LittleEndian.PutUint64(v.base[v.off+index:], value)
}

// SetFloat32 writes the IEEE 754 bits of value at index in little-endian order.
func (v *View) SetFloat32(index int, value float32) {
	v.SetUint32(index, math.Float32bits(value))
}

// SetFloat64 writes the IEEE 754 bits of value at index in little-endian order.
func (v *View) SetFloat64(index int, value float64) {
	v.SetUint64(index, math.Float64bits(value))
}
