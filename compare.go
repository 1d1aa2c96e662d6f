package byteview

import (
	"bytes"

	"github.com/tamirms/byteview/xxhash64"
)

// Equal reports whether other has the same length and byte-for-byte
// identical content.
func (v *View) Equal(other *View) bool {
	if v == other {
		return true
	}
	if v.size != other.size {
		return false
	}
	return bytes.Equal(v.Bytes(), other.Bytes())
}

// EqualRange reports whether the window [index, index+length) equals
// [otherIndex, otherIndex+otherLength) of other. Ranges of different
// lengths are never equal.
func (v *View) EqualRange(index, length int, other *View, otherIndex, otherLength int) bool {
	v.check(index, length)
	other.check(otherIndex, otherLength)
	if length != otherLength {
		return false
	}
	if v == other && index == otherIndex {
		return true
	}
	return bytes.Equal(
		v.base[v.off+index:v.off+index+length],
		other.base[other.off+otherIndex:other.off+otherIndex+otherLength])
}

// Compare orders the views by unsigned lexicographic byte comparison:
// the first differing byte decides (compared as unsigned), and a strict
// prefix sorts before its longer superstring.
func (v *View) Compare(other *View) int {
	if v == other {
		return 0
	}
	return v.CompareRange(0, v.size, other, 0, other.size)
}

// CompareRange orders the window [index, index+length) against
// [otherIndex, otherIndex+otherLength) of other, using unsigned
// lexicographic byte comparison.
func (v *View) CompareRange(index, length int, other *View, otherIndex, otherLength int) int {
	if v == other && index == otherIndex && length == otherLength {
		v.check(index, length)
		return 0
	}

	m := v.MismatchRange(index, length, other, otherIndex, otherLength)
	if m == -1 {
		return 0
	}
	if m >= length {
		return -1
	}
	if m >= otherLength {
		return 1
	}

	a := v.base[v.off+index+m]
	b := other.base[other.off+otherIndex+m]
	if a < b {
		return -1
	}
	return 1
}

// Mismatch returns the index of the first differing byte between the two
// views, or -1 if they are identical. If one view is a strict prefix of the
// other, the prefix length is returned.
func (v *View) Mismatch(other *View) int {
	return v.MismatchRange(0, v.size, other, 0, other.size)
}

// MismatchRange returns the index of the first byte at which the two ranges
// differ, -1 if they are identical, or the shorter length if one range is a
// strict prefix of the other.
func (v *View) MismatchRange(index, length int, other *View, otherIndex, otherLength int) int {
	v.check(index, length)
	other.check(otherIndex, otherLength)

	a := v.base[v.off+index : v.off+index+length]
	b := other.base[other.off+otherIndex : other.off+otherIndex+otherLength]

	n := min(len(a), len(b))
	for i := range n {
		if a[i] != b[i] {
			return i
		}
	}
	if len(a) != len(b) {
		return n
	}
	return -1
}

// Hash returns the content hash of the view: the low 32 bits of the seed-0
// xxHash64 digest of the visible window. The hash is computed once and
// cached; mutating the view's bytes afterwards does NOT invalidate the
// cache. Callers that mutate and re-hash must use HashRange.
func (v *View) Hash() uint32 {
	if v.hashKnown {
		return v.hash
	}
	v.hash = v.HashRange(0, v.size)
	v.hashKnown = true
	return v.hash
}

// HashRange returns the uncached content hash of the window
// [index, index+length): the low 32 bits of the seed-0 xxHash64 digest.
func (v *View) HashRange(index, length int) uint32 {
	v.check(index, length)
	return uint32(xxhash64.Hash(v.base[v.off+index : v.off+index+length]))
}
