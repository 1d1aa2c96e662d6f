//go:build !linux

package byteview

// madviseSequential is a no-op on non-Linux platforms.
func madviseSequential(data []byte) {
	// No-op
}
