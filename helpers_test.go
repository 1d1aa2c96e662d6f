// helpers_test.go holds the shared test infrastructure for the byteview
// package: deterministic per-test RNGs, random view generation, and panic
// assertion helpers.
package byteview

import (
	"encoding/binary"
	"errors"
	"hash/fnv"
	randv2 "math/rand/v2"
	"testing"

	bverrors "github.com/tamirms/byteview/errors"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *randv2.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return randv2.New(randv2.NewPCG(testSeed1^s1, testSeed2^s2))
}

func fillFromRNG(rng *randv2.Rand, b []byte) {
	for i := range b {
		b[i] = byte(rng.UintN(256))
	}
}

// randomView returns a view of n random bytes, sometimes compact and
// sometimes a window into a larger backing array, so tests exercise
// non-zero base offsets.
func randomView(rng *randv2.Rand, n int) *View {
	if n == 0 {
		return Empty
	}
	if rng.IntN(2) == 0 {
		b := make([]byte, n)
		fillFromRNG(rng, b)
		return Wrap(b)
	}
	pad := rng.IntN(16) + 1
	b := make([]byte, pad+n+pad)
	fillFromRNG(rng, b)
	return WrapRange(b, pad, n)
}

// mustPanic asserts that fn panics with an error matching sentinel.
func mustPanic(t *testing.T, sentinel error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v, got none", sentinel)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value is %T, want error", r)
		}
		if !errors.Is(err, sentinel) {
			t.Fatalf("panic error = %v, want %v", err, sentinel)
		}
	}()
	fn()
}

func mustPanicBounds(t *testing.T, fn func()) {
	t.Helper()
	mustPanic(t, bverrors.ErrOutOfBounds, fn)
}
