package byteview

import (
	"encoding/binary"
	"io"
	"math"
)

// Bulk transfers between the view and byte slices, other views, typed
// element slices, and streams. Bounds are validated on both sides before
// any byte moves.

// GetBytes returns a copy of the window [index, index+length) as a fresh
// byte slice.
func (v *View) GetBytes(index, length int) []byte {
	v.check(index, length)
	b := make([]byte, length)
	copy(b, v.base[v.off+index:])
	return b
}

// CopyTo copies len(dst) bytes starting at index into dst.
func (v *View) CopyTo(index int, dst []byte) {
	v.check(index, len(dst))
	copy(dst, v.base[v.off+index:])
}

// Put copies all of src into the view starting at index.
func (v *View) Put(index int, src []byte) {
	v.check(index, len(src))
	copy(v.base[v.off+index:], src)
}

// GetRange copies length bytes starting at index into dst at dstIndex.
// Both ranges are bounds-checked before the copy.
func (v *View) GetRange(index int, dst *View, dstIndex, length int) {
	v.check(index, length)
	dst.check(dstIndex, length)
	copy(dst.base[dst.off+dstIndex:dst.off+dstIndex+length], v.base[v.off+index:])
}

// SetRange copies length bytes from src at srcIndex into the view at index.
// Both ranges are bounds-checked before the copy.
func (v *View) SetRange(index int, src *View, srcIndex, length int) {
	src.GetRange(srcIndex, v, index, length)
}

// Uint16s returns count little-endian 16-bit values starting at byte index.
func (v *View) Uint16s(index, count int) []uint16 {
	v.check(index, count*2)
	out := make([]uint16, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(v.base[v.off+index+i*2:])
	}
	return out
}

// PutUint16s writes src as little-endian 16-bit values starting at byte index.
func (v *View) PutUint16s(index int, src []uint16) {
	v.check(index, len(src)*2)
	for i, x := range src {
		binary.LittleEndian.PutUint16(v.base[v.off+index+i*2:], x)
	}
}

// Uint32s returns count little-endian 32-bit values starting at byte index.
func (v *View) Uint32s(index, count int) []uint32 {
	v.check(index, count*4)
	out := make([]uint32, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(v.base[v.off+index+i*4:])
	}
	return out
}

// PutUint32s writes src as little-endian 32-bit values starting at byte index.
func (v *View) PutUint32s(index int, src []uint32) {
	v.check(index, len(src)*4)
	for i, x := range src {
		binary.LittleEndian.PutUint32(v.base[v.off+index+i*4:], x)
	}
}

// Uint64s returns count little-endian 64-bit values starting at byte index.
func (v *View) Uint64s(index, count int) []uint64 {
	v.check(index, count*8)
	out := make([]uint64, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(v.base[v.off+index+i*8:])
	}
	return out
}

// PutUint64s writes src as little-endian 64-bit values starting at byte index.
func (v *View) PutUint64s(index int, src []uint64) {
	v.check(index, len(src)*8)
	for i, x := range src {
		binary.LittleEndian.PutUint64(v.base[v.off+index+i*8:], x)
	}
}

// Float32s returns count little-endian 32-bit floats starting at byte index.
func (v *View) Float32s(index, count int) []float32 {
	v.check(index, count*4)
	out := make([]float32, count)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(v.base[v.off+index+i*4:]))
	}
	return out
}

// PutFloat32s writes src as little-endian 32-bit floats starting at byte index.
func (v *View) PutFloat32s(index int, src []float32) {
	v.check(index, len(src)*4)
	for i, x := range src {
		binary.LittleEndian.PutUint32(v.base[v.off+index+i*4:], math.Float32bits(x))
	}
}

// Float64s returns count little-endian 64-bit floats starting at byte index.
func (v *View) Float64s(index, count int) []float64 {
	v.check(index, count*8)
	out := make([]float64, count)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(v.base[v.off+index+i*8:]))
	}
	return out
}

// PutFloat64s writes src as little-endian 64-bit floats starting at byte index.
func (v *View) PutFloat64s(index int, src []float64) {
	v.check(index, len(src)*8)
	for i, x := range src {
		binary.LittleEndian.PutUint64(v.base[v.off+index+i*8:], math.Float64bits(x))
	}
}

// ReadFull reads exactly length bytes from r into the window starting at
// index. The bounds check runs before the first read. A reader exhausted
// before any byte is read surfaces io.EOF; one exhausted mid-fill surfaces
// io.ErrUnexpectedEOF; any other reader failure propagates unchanged. On
// error, bytes read before the failure remain written.
func (v *View) ReadFull(index, length int, r io.Reader) error {
	v.check(index, length)
	_, err := io.ReadFull(r, v.base[v.off+index:v.off+index+length])
	return err
}

// WriteRange writes the window [index, index+length) to w. A sink failure
// propagates unchanged; no retry is performed.
func (v *View) WriteRange(index, length int, w io.Writer) error {
	v.check(index, length)
	_, err := w.Write(v.base[v.off+index : v.off+index+length])
	return err
}
