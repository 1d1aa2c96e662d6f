package byteview

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// Mapped is a read-only View over a memory-mapped file. The window covers
// the whole file. Writing through a Mapped view's setters is a caller error
// (the mapping is read-only); use Copy to obtain mutable storage.
type Mapped struct {
	*View
	mm mmap.MMap
}

// Map memory-maps f read-only and returns a view over its contents.
// The caller is responsible for closing f; per POSIX mmap(2), f may be
// closed immediately after Map returns. An empty file maps to Empty.
func Map(f *os.File) (*Mapped, error) {
	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat mapped file: %w", err)
	}
	if stat.Size() == 0 {
		return &Mapped{View: Empty}, nil
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap file: %w", err)
	}

	madviseSequential(mm)

	return &Mapped{View: Wrap(mm), mm: mm}, nil
}

// MapFile opens path, memory-maps it read-only, and closes the file
// descriptor.
func MapFile(path string) (*Mapped, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mapped file: %w", err)
	}
	defer f.Close()
	return Map(f)
}

// Close unmaps the backing file. No method may be called on the view after
// Close returns. Close on an empty mapping is a no-op.
func (m *Mapped) Close() error {
	if m.mm == nil {
		return nil
	}
	mm := m.mm
	m.mm = nil
	return mm.Unmap()
}
