package byteview

import (
	bverrors "github.com/tamirms/byteview/errors"
	"github.com/tamirms/byteview/internal/bits"
)

// Sizes below which the word-at-a-time search cannot run: the fast path
// reads the pattern head as one 4-byte word and probes the haystack 4 bytes
// at a time, so it needs at least a 4-byte pattern and an 8-byte haystack.
const (
	minFastPattern  = 4
	minFastHaystack = 8
)

// IndexByte returns the index of the first occurrence of b in the view,
// or -1 if b is not present.
func (v *View) IndexByte(b byte) int {
	w := v.Bytes()
	for i, c := range w {
		if c == b {
			return i
		}
	}
	return -1
}

// IndexByteValue is IndexByte for a widened byte argument. It panics with
// ErrValueOutOfRange if value is outside [0, 255].
func (v *View) IndexByteValue(value int) int {
	if value < 0 || value > 0xFF {
		panic(bverrors.ErrValueOutOfRange)
	}
	return v.IndexByte(byte(value))
}

// IndexOf returns the lowest index at which pattern occurs in the view, or
// -1 if it does not. An empty pattern matches at index 0.
func (v *View) IndexOf(pattern *View) int {
	return v.IndexOfAt(pattern, 0)
}

// IndexOfAt returns the lowest index >= offset at which pattern occurs in
// the view, or -1. An out-of-range offset (negative or >= Length()) yields
// -1 regardless of pattern; an empty pattern matches at offset.
//
// For patterns of at least 4 bytes in haystacks of at least 8, candidates
// are probed 4 bytes at a time: the pattern's first 4 bytes are read as one
// little-endian word, the haystack word at the candidate is XORed against a
// broadcast of the pattern's first byte, and a zero-byte bit trick decides
// in one comparison whether any of the 4 positions can start a match. Only
// on a hit is the full byte-for-byte comparison performed. Shorter inputs
// fall back to a plain first-byte scan; both paths return identical results
// on every input.
func (v *View) IndexOfAt(pattern *View, offset int) int {
	if v.size == 0 || offset >= v.size || offset < 0 {
		return -1
	}
	if pattern.size == 0 {
		return offset
	}

	if pattern.size < minFastPattern || v.size < minFastHaystack {
		return v.indexOfScalar(pattern, offset)
	}

	// Four bytes of head rather than eight so that shorter patterns still
	// get the fast path.
	head := pattern.Uint32(0)
	firstByteMask := bits.BroadcastByte(byte(head))

	lastValidIndex := v.size - pattern.size
	index := offset
	for index <= lastValidIndex {
		// index+4 <= size holds here because pattern.size >= 4.
		value := v.Uint32(index)

		// If no byte of the window equals the pattern's first byte, no match
		// can start in these 4 positions.
		if !bits.HasZeroByte(value ^ firstByteMask) {
			index += 4
			continue
		}

		if value == head && v.EqualRange(index, pattern.size, pattern, 0, pattern.size) {
			return index
		}

		index++
	}

	return -1
}

// indexOfScalar is the byte-by-byte search used when the inputs are too
// short for the word-at-a-time path. It must agree with IndexOfAt on every
// input.
func (v *View) indexOfScalar(pattern *View, offset int) int {
	if v.size == 0 || offset >= v.size || offset < 0 {
		return -1
	}
	if pattern.size == 0 {
		return offset
	}

	firstByte := pattern.Byte(0)
	lastValidIndex := v.size - pattern.size
	index := offset
	for {
		// Seek to the next first-byte match.
		for index < lastValidIndex && v.Byte(index) != firstByte {
			index++
		}
		if index > lastValidIndex {
			break
		}

		if v.EqualRange(index, pattern.size, pattern, 0, pattern.size) {
			return index
		}

		index++
	}

	return -1
}
