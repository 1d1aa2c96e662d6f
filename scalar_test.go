package byteview

import (
	"math"
	"testing"
)

// =============================================================================
// Round-trip tests
// =============================================================================

func TestScalarRoundTrip(t *testing.T) {
	rng := newTestRNG(t)

	for range 100 {
		v := randomView(rng, 64)

		i := rng.IntN(64 - 8)

		b := byte(rng.UintN(256))
		v.SetByte(i, b)
		if got := v.Byte(i); got != b {
			t.Fatalf("Byte round trip at %d: got %x, want %x", i, got, b)
		}
		if got := v.Int8(i); got != int8(b) {
			t.Fatalf("Int8 at %d: got %d, want %d", i, got, int8(b))
		}

		u16 := uint16(rng.UintN(1 << 16))
		v.SetUint16(i, u16)
		if got := v.Uint16(i); got != u16 {
			t.Fatalf("Uint16 round trip at %d: got %x, want %x", i, got, u16)
		}
		if got := v.Int16(i); got != int16(u16) {
			t.Fatalf("Int16 at %d: got %d, want %d", i, got, int16(u16))
		}

		u32 := rng.Uint32()
		v.SetUint32(i, u32)
		if got := v.Uint32(i); got != u32 {
			t.Fatalf("Uint32 round trip at %d: got %x, want %x", i, got, u32)
		}
		if got := v.Int32(i); got != int32(u32) {
			t.Fatalf("Int32 at %d: got %d, want %d", i, got, int32(u32))
		}

		u64 := rng.Uint64()
		v.SetUint64(i, u64)
		if got := v.Uint64(i); got != u64 {
			t.Fatalf("Uint64 round trip at %d: got %x, want %x", i, got, u64)
		}
		if got := v.Int64(i); got != int64(u64) {
			t.Fatalf("Int64 at %d: got %d, want %d", i, got, int64(u64))
		}

		f32 := math.Float32frombits(rng.Uint32())
		v.SetFloat32(i, f32)
		if got := v.Float32(i); math.Float32bits(got) != math.Float32bits(f32) {
			t.Fatalf("Float32 round trip at %d: got %v, want %v", i, got, f32)
		}

		f64 := math.Float64frombits(rng.Uint64())
		v.SetFloat64(i, f64)
		if got := v.Float64(i); math.Float64bits(got) != math.Float64bits(f64) {
			t.Fatalf("Float64 round trip at %d: got %v, want %v", i, got, f64)
		}
	}
}

// TestLittleEndianLayout pins the byte order: multi-byte writes must land
// least-significant byte first regardless of host.
func TestLittleEndianLayout(t *testing.T) {
	v := New(8)
	v.SetUint64(0, 0x0102030405060708)

	want := []byte{0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01}
	for i, b := range want {
		if v.Byte(i) != b {
			t.Fatalf("byte %d = %02x, want %02x", i, v.Byte(i), b)
		}
	}

	if v.Uint16(0) != 0x0708 {
		t.Errorf("Uint16(0) = %04x, want 0708", v.Uint16(0))
	}
	if v.Uint32(2) != 0x03040506 {
		t.Errorf("Uint32(2) = %08x, want 03040506", v.Uint32(2))
	}
}

// TestUnalignedAccess verifies multi-byte access at every (unaligned)
// offset within a window that itself starts at an odd backing offset.
func TestUnalignedAccess(t *testing.T) {
	backing := make([]byte, 32)
	v := WrapRange(backing, 3, 24)

	for i := range 16 {
		v.SetUint64(i, 0xA1B2C3D4E5F60718)
		if got := v.Uint64(i); got != 0xA1B2C3D4E5F60718 {
			t.Fatalf("unaligned Uint64 at %d: %x", i, got)
		}
	}
}

// =============================================================================
// Bounds-violation tests
// =============================================================================

func TestScalarBounds(t *testing.T) {
	v := New(8)

	tests := []struct {
		name string
		fn   func()
	}{
		{"Byte at length", func() { v.Byte(8) }},
		{"Byte negative", func() { v.Byte(-1) }},
		{"SetByte at length", func() { v.SetByte(8, 0) }},
		{"Uint16 straddling end", func() { v.Uint16(7) }},
		{"SetUint16 straddling end", func() { v.SetUint16(7, 0) }},
		{"Uint32 straddling end", func() { v.Uint32(5) }},
		{"SetUint32 straddling end", func() { v.SetUint32(5, 0) }},
		{"Uint64 straddling end", func() { v.Uint64(1) }},
		{"SetUint64 straddling end", func() { v.SetUint64(1, 0) }},
		{"Float32 straddling end", func() { v.Float32(6) }},
		{"SetFloat32 straddling end", func() { v.SetFloat32(6, 0) }},
		{"Float64 straddling end", func() { v.Float64(1) }},
		{"SetFloat64 straddling end", func() { v.SetFloat64(1, 0) }},
		{"Int8 negative", func() { v.Int8(-1) }},
		{"Int16 straddling end", func() { v.Int16(7) }},
		{"Int32 straddling end", func() { v.Int32(5) }},
		{"Int64 straddling end", func() { v.Int64(1) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mustPanicBounds(t, tc.fn)
		})
	}

	// In-bounds edges must not panic.
	_ = v.Uint64(0)
	_ = v.Uint32(4)
	_ = v.Uint16(6)
	_ = v.Byte(7)
}

// TestBoundsCheckedAgainstWindow ensures the check is relative to the
// window, not the backing array: bytes beyond the window exist in the
// backing array but must be unreachable.
func TestBoundsCheckedAgainstWindow(t *testing.T) {
	backing := make([]byte, 32)
	v := WrapRange(backing, 4, 8)

	mustPanicBounds(t, func() { v.Byte(8) })
	mustPanicBounds(t, func() { v.Uint64(1) })
	mustPanicBounds(t, func() { v.SetUint64(1, 0) })
}
