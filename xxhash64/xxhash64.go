// Package xxhash64 implements the 64-bit xxHash algorithm with arbitrary
// seeds, in one-shot and streaming forms.
//
// The one-shot Hash/HashSeed functions hash a fully materialized byte slice.
// The streaming Hasher consumes input in chunks of any size and produces a
// digest bit-identical to the one-shot form for the same total bytes and
// seed. Unlike github.com/cespare/xxhash, which is fixed to seed 0, every
// entry point here takes an explicit seed, which is required for seeded
// fingerprinting and hash-table salting.
//
// Reference: https://github.com/Cyan4973/xxHash (XXH64).
package xxhash64

import (
	"encoding/binary"
	"math/bits"
)

const (
	prime1 uint64 = 0x9E3779B185EBCA87
	prime2 uint64 = 0xC2B2AE3D27D4EB4F
	prime3 uint64 = 0x165667B19E3779F9
	prime4 uint64 = 0x85EBCA77C2B2AE63
	prime5 uint64 = 0x27D4EB2F165667C5
)

// Hash returns the xxHash64 digest of b with seed 0.
func Hash(b []byte) uint64 {
	return HashSeed(0, b)
}

// HashSeed returns the xxHash64 digest of b with the given seed.
func HashSeed(seed uint64, b []byte) uint64 {
	n := len(b)

	var acc uint64
	if n >= 32 {
		v1 := seed + prime1 + prime2
		v2 := seed + prime2
		v3 := seed
		v4 := seed - prime1

		i := 0
		for ; i+32 <= n; i += 32 {
			v1 = mix(v1, binary.LittleEndian.Uint64(b[i:]))
			v2 = mix(v2, binary.LittleEndian.Uint64(b[i+8:]))
			v3 = mix(v3, binary.LittleEndian.Uint64(b[i+16:]))
			v4 = mix(v4, binary.LittleEndian.Uint64(b[i+24:]))
		}

		acc = mergeLanes(v1, v2, v3, v4)
	} else {
		acc = seed + prime5
	}

	acc += uint64(n)

	// Everything past the last 32-byte boundary is tail.
	return finishTail(acc, b[n&^31:])
}

// HashUint64 returns the xxHash64 digest of the 8 little-endian bytes of
// value. Bit-identical to HashSeed over those bytes, without a buffer
// round-trip.
func HashUint64(seed, value uint64) uint64 {
	acc := seed + prime5 + 8
	acc = tailUint64(acc, value)
	return avalanche(acc)
}

// mix folds one 8-byte word into a lane accumulator.
func mix(lane, value uint64) uint64 {
	return bits.RotateLeft64(lane+value*prime2, 31) * prime1
}

// mergeLanes combines the four lane accumulators into a single value after
// all full 32-byte strides have been consumed.
func mergeLanes(v1, v2, v3, v4 uint64) uint64 {
	acc := bits.RotateLeft64(v1, 1) + bits.RotateLeft64(v2, 7) +
		bits.RotateLeft64(v3, 12) + bits.RotateLeft64(v4, 18)

	acc = (acc ^ mix(0, v1))*prime1 + prime4
	acc = (acc ^ mix(0, v2))*prime1 + prime4
	acc = (acc ^ mix(0, v3))*prime1 + prime4
	acc = (acc ^ mix(0, v4))*prime1 + prime4
	return acc
}

// finishTail folds the remaining tail bytes (fewer than 32 after the last
// stride boundary, except in the short-input case where it may be up to 31)
// and applies the final avalanche.
func finishTail(acc uint64, tail []byte) uint64 {
	for len(tail) >= 8 {
		acc = tailUint64(acc, binary.LittleEndian.Uint64(tail))
		tail = tail[8:]
	}
	if len(tail) >= 4 {
		acc = tailUint32(acc, binary.LittleEndian.Uint32(tail))
		tail = tail[4:]
	}
	for _, b := range tail {
		acc = tailByte(acc, b)
	}
	return avalanche(acc)
}

func tailUint64(acc, value uint64) uint64 {
	return bits.RotateLeft64(acc^mix(0, value), 27)*prime1 + prime4
}

func tailUint32(acc uint64, value uint32) uint64 {
	return bits.RotateLeft64(acc^(uint64(value)*prime1), 23)*prime2 + prime3
}

func tailByte(acc uint64, value byte) uint64 {
	return bits.RotateLeft64(acc^(uint64(value)*prime5), 11) * prime1
}

func avalanche(acc uint64) uint64 {
	acc ^= acc >> 33
	acc *= prime2
	acc ^= acc >> 29
	acc *= prime3
	acc ^= acc >> 32
	return acc
}
