// Package bits provides low-level bit manipulation primitives.
package bits

// BroadcastByte replicates the low byte of b into all four bytes of a
// 32-bit word. Used to compare one byte against four haystack bytes with
// a single XOR.
func BroadcastByte(b byte) uint32 {
	m := uint32(b)
	m |= m << 8
	m |= m << 16
	return m
}

// HasZeroByte reports whether any byte of x is zero.
// Uses the classic zero-in-word bit trick: (x - 0x01010101) borrows out of
// a byte only when that byte is zero, and masking with ^x rejects bytes
// that borrowed from a neighbor.
// See https://graphics.stanford.edu/~seander/bithacks.html#ZeroInWord
func HasZeroByte(x uint32) bool {
	return (x-0x01010101)&^x&0x80808080 != 0
}
