package byteview

import (
	"errors"
	"io"
)

// Reader adapts a View to the io.Reader, io.ReaderAt, io.ByteReader, and
// io.Seeker interfaces, reading the view's visible window sequentially.
// Changes to the view's content are visible to the reader immediately.
type Reader struct {
	v   *View
	pos int64
}

var (
	_ io.Reader     = (*Reader)(nil)
	_ io.ReaderAt   = (*Reader)(nil)
	_ io.ByteReader = (*Reader)(nil)
	_ io.Seeker     = (*Reader)(nil)
)

// NewReader returns a Reader positioned at the start of v's window.
func NewReader(v *View) *Reader {
	return &Reader{v: v}
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	if r.pos >= int64(r.v.size) {
		return 0
	}
	return int(int64(r.v.size) - r.pos)
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if r.pos >= int64(r.v.size) {
		return 0, io.EOF
	}
	n := copy(p, r.v.Bytes()[r.pos:])
	r.pos += int64(n)
	return n, nil
}

// ReadByte implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= int64(r.v.size) {
		return 0, io.EOF
	}
	b := r.v.base[r.v.off+int(r.pos)]
	r.pos++
	return b, nil
}

// ReadAt implements io.ReaderAt. It does not affect the seek position.
func (r *Reader) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.New("byteview: Reader.ReadAt: negative offset")
	}
	if off >= int64(r.v.size) {
		return 0, io.EOF
	}
	n := copy(p, r.v.Bytes()[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Seek implements io.Seeker.
func (r *Reader) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = r.pos + offset
	case io.SeekEnd:
		pos = int64(r.v.size) + offset
	default:
		return 0, errors.New("byteview: Reader.Seek: invalid whence")
	}
	if pos < 0 {
		return 0, errors.New("byteview: Reader.Seek: negative position")
	}
	r.pos = pos
	return pos, nil
}
