// Bench is a benchmarking tool for measuring xxhash64 throughput against
// reference hash implementations, and for hashing files through memory-mapped
// views.
//
// Usage:
//
//	go run ./cmd/bench -size 1048576 -iters 200
//	go run ./cmd/bench -workers 4 file1.bin file2.bin ...
//
// Flags:
//
//	-size      Buffer size in bytes for the synthetic comparison (default: 1 MiB)
//	-iters     Iterations per hasher (default: 100)
//	-chunk     Streaming chunk size in bytes (default: 8192)
//	-workers   Parallel workers for file hashing (default: GOMAXPROCS)
//
// With file arguments, each file is memory-mapped and hashed with seed-0
// xxHash64; files are processed in parallel across workers.
package main

import (
	"context"
	"flag"
	"fmt"
	mrand "math/rand/v2"
	"os"
	"runtime"
	"time"

	cespare "github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
	"golang.org/x/sync/errgroup"

	"github.com/tamirms/byteview"
	"github.com/tamirms/byteview/xxhash64"
)

func main() {
	sizeFlag := flag.Int("size", 1<<20, "buffer size in bytes")
	itersFlag := flag.Int("iters", 100, "iterations per hasher")
	chunkFlag := flag.Int("chunk", 8192, "streaming chunk size in bytes")
	workersFlag := flag.Int("workers", runtime.GOMAXPROCS(0), "parallel workers for file hashing")
	flag.Parse()

	if flag.NArg() > 0 {
		if err := hashFiles(flag.Args(), *workersFlag); err != nil {
			fmt.Fprintf(os.Stderr, "bench: %v\n", err)
			os.Exit(1)
		}
		return
	}

	compareHashers(*sizeFlag, *itersFlag, *chunkFlag)
}

// compareHashers measures one-shot and streaming xxhash64 against the
// reference implementations on a random buffer.
func compareHashers(size, iters, chunk int) {
	fmt.Printf("Generating %d random bytes...\n", size)
	buf := make([]byte, size)
	rng := mrand.New(mrand.NewPCG(0x1234567890ABCDEF, 0xFEDCBA9876543210))
	for i := 0; i+8 <= len(buf); i += 8 {
		v := rng.Uint64()
		for j := range 8 {
			buf[i+j] = byte(v >> (j * 8))
		}
	}

	run := func(name string, fn func([]byte) uint64) {
		start := time.Now()
		var sink uint64
		for range iters {
			sink ^= fn(buf)
		}
		elapsed := time.Since(start)
		gbps := float64(size) * float64(iters) / elapsed.Seconds() / (1 << 30)
		fmt.Printf("%-22s %10.2f GiB/s  (digest %016x)\n", name, gbps, sink)
	}

	run("xxhash64 one-shot", xxhash64.Hash)
	run("xxhash64 streaming", func(b []byte) uint64 {
		h := xxhash64.New()
		for len(b) > 0 {
			n := min(chunk, len(b))
			_, _ = h.Write(b[:n])
			b = b[n:]
		}
		return h.Sum64()
	})
	run("cespare/xxhash", cespare.Sum64)
	run("zeebo/xxh3", xxh3.Hash)
	run("murmur3 (128 lo)", func(b []byte) uint64 {
		lo, _ := murmur3.Sum128(b)
		return lo
	})
}

// hashFiles memory-maps each file and hashes it with seed-0 xxHash64,
// processing files in parallel across workers.
func hashFiles(paths []string, workers int) error {
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workers)

	digests := make([]uint64, len(paths))
	sizes := make([]int, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			m, err := byteview.MapFile(path)
			if err != nil {
				return err
			}
			defer m.Close()

			digests[i] = xxhash64.Hash(m.Bytes())
			sizes[i] = m.Length()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range paths {
		fmt.Printf("%016x  %12d  %s\n", digests[i], sizes[i], path)
	}
	return nil
}
