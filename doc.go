// Package byteview implements a zero-copy, bounds-checked byte-buffer view
// over a contiguous backing array, plus content hashing, comparison, and
// substring search over the viewed bytes.
//
// A View is a window (base offset + length) over a backing byte array.
// Sub-views created with Slice share the backing array: mutation through one
// view is visible through every view derived from the same storage. Copy and
// CopyRange allocate independent storage. All multi-byte accessors use fixed
// little-endian byte order regardless of host platform, so serialized bytes
// and digests are portable.
//
// # Basic Usage
//
//	v := byteview.New(64)
//	v.SetUint64(0, 42)
//	sub := v.Slice(0, 8)        // zero-copy, aliases v's storage
//	x := sub.Uint64(0)          // 42
//	h := v.Hash()               // cached xxHash64-based content hash
//
// # Bounds checking and panics
//
// Every accessor validates its range against the view's window before any
// mutation occurs. Violations are programmer errors and panic with an error
// value wrapping errors.ErrOutOfBounds. I/O-facing operations (ReadFull,
// WriteRange, Map, DecodeText) return errors instead; stream failures
// propagate to the caller unchanged.
//
// # Hash caching hazard
//
// The content hash returned by Hash is computed once and cached. Mutating a
// view's bytes after its hash has been read does NOT invalidate the cache;
// callers that mutate and then hash must use HashRange or a fresh view.
//
// # Package Structure
//
//   - View core: view.go (construction, slicing, copying, fill/clear)
//   - Scalar access: scalar.go (little-endian get/set, 8 to 64 bits, floats)
//   - Bulk transfers: bulk.go (byte runs, typed runs, stream transfers)
//   - Comparison: compare.go (unsigned ordering, equality, content hash)
//   - Search: search.go (hybrid word-at-a-time substring search)
//   - Text: text.go (UTF-8, ASCII, and charset decoding)
//   - I/O adapters: stream.go (Reader), file.go (memory-mapped views)
//   - Hashing: xxhash64/ (seeded one-shot and streaming xxHash64)
package byteview
