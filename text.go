package byteview

import (
	"strings"

	"golang.org/x/text/encoding"
)

// Text decoding. The view only forwards offset, length, and encoding; it
// performs no validation or transcoding of its own beyond the ASCII mask.

// StringUTF8 decodes the entire window as UTF-8.
func (v *View) StringUTF8() string {
	return v.StringUTF8Range(0, v.size)
}

// StringUTF8Range decodes the window [index, index+length) as UTF-8.
// A zero-length range decodes to "" without touching backing storage.
func (v *View) StringUTF8Range(index, length int) string {
	v.check(index, length)
	if length == 0 {
		return ""
	}
	return string(v.base[v.off+index : v.off+index+length])
}

// StringASCII decodes the window [index, index+length) as 7-bit ASCII:
// the low-order 7 bits of each byte become one code point.
func (v *View) StringASCII(index, length int) string {
	v.check(index, length)
	if length == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(length)
	for _, b := range v.base[v.off+index : v.off+index+length] {
		sb.WriteByte(b & 0x7F)
	}
	return sb.String()
}

// DecodeText decodes the window [index, index+length) with the given
// character encoding. A zero-length range decodes to "" without touching
// backing storage; decoder failures propagate unchanged.
func (v *View) DecodeText(index, length int, enc encoding.Encoding) (string, error) {
	v.check(index, length)
	if length == 0 {
		return "", nil
	}
	out, err := enc.NewDecoder().Bytes(v.base[v.off+index : v.off+index+length])
	if err != nil {
		return "", err
	}
	return string(out), nil
}
