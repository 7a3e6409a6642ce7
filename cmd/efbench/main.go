// Command efbench is the self-test and benchmark driver for package
// eliasfano. It is an out-of-scope collaborator per the codec's own
// specification: it exercises the codec as a library client, it does
// not implement any of the core logic itself.
package main

import (
	"math/rand"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/m3db/eliasfano"
	"github.com/m3db/eliasfano/internal/postingsgen"
)

const universe = 1_000_000_000

// step is one point in the geometric progression of n the self-test
// walks, from 10 up to 10^9 against the fixed universe above.
type step struct {
	n              uint32
	encodeTime     time.Duration
	decodeTime     time.Duration
	usedBytes      uint32
	roundTripOK    bool
	bitsPerElement float64
}

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	source := rand.New(rand.NewSource(time.Now().UnixNano()))

	var results []step
	for n := uint64(10); n <= universe; n *= 10 {
		results = append(results, runStep(logger, source, uint32(n)))
	}

	report(logger, results)
}

func runStep(logger *zap.Logger, source *rand.Rand, n uint32) step {
	mode := postingsgen.Sparse
	if n > universe/4 {
		// Rejection sampling without replacement degenerates as n
		// approaches the universe size; the dense boundary case from
		// the codec's own test suite is the realistic stand-in here.
		mode = postingsgen.Dense
	}

	gen := postingsgen.New(postingsgen.Options{
		N:        n,
		Universe: universe,
		Mode:     mode,
		Source:   source,
		Logger:   logger,
	})
	seq := gen.Generate()
	max := seq[len(seq)-1]

	dst := make([]byte, eliasfano.MaxEncodedSize(n, max))

	encodeStart := time.Now()
	used, err := eliasfano.Encode(seq, dst)
	encodeTime := time.Since(encodeStart)
	if err != nil {
		logger.Fatal("encode failed", zap.Uint32("n", n), zap.Error(err))
	}

	out := make([]uint32, n)
	decodeStart := time.Now()
	written, err := eliasfano.Decode(dst, used, out)
	decodeTime := time.Since(decodeStart)
	if err != nil {
		logger.Fatal("decode failed", zap.Uint32("n", n), zap.Error(err))
	}

	ok := written == n
	if ok {
		for i := range seq {
			if seq[i] != out[i] {
				ok = false
				break
			}
		}
	}

	return step{
		n:              n,
		encodeTime:     encodeTime,
		decodeTime:     decodeTime,
		usedBytes:      used,
		roundTripOK:    ok,
		bitsPerElement: float64(used*8) / float64(n),
	}
}

func report(logger *zap.Logger, results []step) {
	allOK := true
	for _, r := range results {
		logger.Info("round trip",
			zap.Uint32("n", r.n),
			zap.Bool("ok", r.roundTripOK),
			zap.Uint32("used_bytes", r.usedBytes),
			zap.Float64("bits_per_element", r.bitsPerElement),
			zap.Duration("encode_time", r.encodeTime),
			zap.Duration("decode_time", r.decodeTime),
		)
		allOK = allOK && r.roundTripOK
	}

	if !allOK {
		logger.Error("one or more round trips failed")
		os.Exit(1)
	}
	logger.Info("all round trips passed")
}
