package xxhash64

import (
	"encoding/binary"
	"hash"
)

// Hasher is a streaming xxHash64 accumulator. It implements hash.Hash64.
//
// Input may be written in chunks of any size. At most 31 pending bytes are
// buffered between writes; the moment the pending buffer would reach 32
// bytes it is folded into the lane accumulators as one stride.
//
// Sum64 does not mutate accumulator state: it may be called at any point to
// obtain the digest of everything written so far, and writing may continue
// afterwards.
//
// A Hasher is not safe for concurrent use.
type Hasher struct {
	seed uint64

	v1, v2, v3, v4 uint64

	// buf holds the pending tail, always strictly fewer than 32 valid bytes
	// outside of Write.
	buf    [32]byte
	bufLen int

	// bodyLen counts bytes already folded into the lanes, always a multiple
	// of 32. Total bytes hashed = bodyLen + bufLen.
	bodyLen uint64
}

var _ hash.Hash64 = (*Hasher)(nil)

// New returns a streaming hasher with seed 0.
func New() *Hasher {
	return NewSeed(0)
}

// NewSeed returns a streaming hasher with the given seed.
func NewSeed(seed uint64) *Hasher {
	h := &Hasher{seed: seed}
	h.Reset()
	return h
}

// Reset restores the hasher to its initial seeded state.
func (h *Hasher) Reset() {
	h.v1 = h.seed + prime1 + prime2
	h.v2 = h.seed + prime2
	h.v3 = h.seed
	h.v4 = h.seed - prime1
	h.bufLen = 0
	h.bodyLen = 0
}

// Size returns the digest size in bytes.
func (h *Hasher) Size() int { return 8 }

// BlockSize returns the internal stride size in bytes.
func (h *Hasher) BlockSize() int { return 32 }

// Write folds p into the hash state. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	n := len(p)

	if h.bufLen > 0 {
		c := copy(h.buf[h.bufLen:], p)
		h.bufLen += c
		p = p[c:]

		if h.bufLen == 32 {
			h.consume(h.buf[:])
			h.bufLen = 0
		}
	}

	for len(p) >= 32 {
		h.consume(p[:32])
		p = p[32:]
	}

	if len(p) > 0 {
		h.bufLen = copy(h.buf[:], p)
	}

	return n, nil
}

// consume folds exactly one 32-byte stride into the lanes.
func (h *Hasher) consume(block []byte) {
	h.v1 = mix(h.v1, binary.LittleEndian.Uint64(block))
	h.v2 = mix(h.v2, binary.LittleEndian.Uint64(block[8:]))
	h.v3 = mix(h.v3, binary.LittleEndian.Uint64(block[16:]))
	h.v4 = mix(h.v4, binary.LittleEndian.Uint64(block[24:]))
	h.bodyLen += 32
}

// Sum64 returns the digest of all bytes written so far. It does not change
// the accumulator state; the digest is bit-identical to the one-shot
// HashSeed over the same input.
func (h *Hasher) Sum64() uint64 {
	var acc uint64
	if h.bodyLen > 0 {
		acc = mergeLanes(h.v1, h.v2, h.v3, h.v4)
	} else {
		acc = h.seed + prime5
	}

	acc += h.bodyLen + uint64(h.bufLen)

	return finishTail(acc, h.buf[:h.bufLen])
}

// Sum appends the big-endian digest to b and returns the extended slice.
func (h *Hasher) Sum(b []byte) []byte {
	d := h.Sum64()
	return append(b,
		byte(d>>56), byte(d>>48), byte(d>>40), byte(d>>32),
		byte(d>>24), byte(d>>16), byte(d>>8), byte(d))
}
