//go:build linux

package byteview

import "golang.org/x/sys/unix"

// madviseSequential hints to the kernel that the mapping will be read
// sequentially, enabling readahead. Best-effort: errors are silently
// ignored.
func madviseSequential(data []byte) {
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}
