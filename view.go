package byteview

import (
	"fmt"
	"unsafe"

	bverrors "github.com/tamirms/byteview/errors"
	"github.com/tamirms/byteview/xxhash64"
)

// View is a bounds-checked window over a backing byte array.
//
// Views created by Slice alias the same backing array as their parent;
// views created by Copy, CopyRange, New, and FromString own fresh storage.
// A view's shape (offset and length) is immutable after construction;
// content may be mutated in place through the setters.
type View struct {
	// base is the entire backing array. It is non-empty for every view
	// except the Empty singleton.
	base []byte

	off  int
	size int

	// hash caches the content hash once computed. hashKnown is an explicit
	// presence flag so that a digest whose low bits happen to be zero is
	// still cached correctly.
	hash      uint32
	hashKnown bool
}

// Empty is the shared zero-length view. All operations that produce a
// zero-length result return Empty instead of allocating. Its content hash
// is precomputed at package init so no operation ever writes to it, making
// it safe to share across goroutines.
var Empty = &View{hash: uint32(xxhash64.Hash(nil)), hashKnown: true}

var viewInstanceSize = int64(unsafe.Sizeof(View{}))

// New allocates a zeroed view of the given length. New(0) returns Empty.
func New(length int) *View {
	if length < 0 {
		panic(boundsError(0, length, 0))
	}
	if length == 0 {
		return Empty
	}
	return &View{base: make([]byte, length), size: length}
}

// Wrap returns a view over buf without copying. The view aliases buf:
// mutation through either is visible through both. Wrapping an empty or nil
// slice returns Empty.
func Wrap(buf []byte) *View {
	if len(buf) == 0 {
		return Empty
	}
	return &View{base: buf, size: len(buf)}
}

// WrapRange returns a view over buf[offset : offset+length] without copying.
// An empty backing slice is rejected (panics with ErrEmptyBacking); callers
// holding no bytes must use Empty directly. A zero-length window over a
// non-empty backing slice returns Empty.
func WrapRange(buf []byte, offset, length int) *View {
	if len(buf) == 0 {
		panic(bverrors.ErrEmptyBacking)
	}
	if offset < 0 || length < 0 || offset > len(buf)-length {
		panic(boundsError(offset, length, len(buf)))
	}
	if length == 0 {
		return Empty
	}
	return &View{base: buf, off: offset, size: length}
}

// FromString returns a view over a copy of s. FromString("") returns Empty.
func FromString(s string) *View {
	if len(s) == 0 {
		return Empty
	}
	return &View{base: []byte(s), size: len(s)}
}

// Length returns the number of visible bytes.
func (v *View) Length() int {
	return v.size
}

// RetainedSize returns the approximate number of bytes retained by this
// view: the instance overhead plus the size of the entire backing array,
// whether or not the window covers all of it. Intended for memory
// accounting by callers that hold many views.
func (v *View) RetainedSize() int64 {
	return viewInstanceSize + int64(len(v.base))
}

// IsCompact reports whether the window covers the entire backing array.
// Slicing a compact view is the only way to share its storage; a compact
// view cannot itself be a window into a bigger one.
func (v *View) IsCompact() bool {
	return len(v.base) == v.size // implies off == 0
}

// Bytes returns the visible window as a byte slice without copying. The
// returned slice aliases the view's storage: writes through either are
// visible through both.
func (v *View) Bytes() []byte {
	return v.base[v.off : v.off+v.size]
}

// Slice returns a zero-copy sub-view of the window [index, index+length).
// Slicing the whole window returns the view itself; a zero-length slice
// returns Empty. The sub-view aliases this view's storage.
func (v *View) Slice(index, length int) *View {
	if index == 0 && length == v.size {
		return v
	}
	v.check(index, length)
	if length == 0 {
		return Empty
	}
	return &View{base: v.base, off: v.off + index, size: length}
}

// Copy returns an independent copy of the visible window. Mutation of
// either view does not affect the other. A zero-length view copies to Empty.
func (v *View) Copy() *View {
	return v.CopyRange(0, v.size)
}

// CopyRange returns an independent copy of the window [index, index+length).
func (v *View) CopyRange(index, length int) *View {
	v.check(index, length)
	if length == 0 {
		return Empty
	}
	b := make([]byte, length)
	copy(b, v.base[v.off+index:])
	return &View{base: b, size: length}
}

// Fill overwrites every visible byte with b.
func (v *View) Fill(b byte) {
	w := v.Bytes()
	for i := range w {
		w[i] = b
	}
}

// Clear zeroes every visible byte.
func (v *View) Clear() {
	v.ClearRange(0, v.size)
}

// ClearRange zeroes the window [index, index+length).
func (v *View) ClearRange(index, length int) {
	v.check(index, length)
	clear(v.base[v.off+index : v.off+index+length])
}

// String returns a description of the view's shape, not its content.
func (v *View) String() string {
	return fmt.Sprintf("View{baseLength=%d, offset=%d, length=%d}", len(v.base), v.off, v.size)
}

// check panics if [index, index+length) does not fit in the window.
// It runs before any mutation so failed calls commit nothing.
func (v *View) check(index, length int) {
	if index < 0 || length < 0 || index > v.size-length {
		panic(boundsError(index, length, v.size))
	}
}

func boundsError(index, length, size int) error {
	return fmt.Errorf("%w: range [%d, %d+%d) exceeds length %d",
		bverrors.ErrOutOfBounds, index, index, length, size)
}
