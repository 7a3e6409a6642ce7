// Package postingsgen generates synthetic posting lists for the
// eliasfano self-test and benchmark driver. It is an out-of-scope
// collaborator per the codec's own specification: the core codec never
// generates its own input, it only encodes and decodes what it is
// given.
package postingsgen

import (
	"math/rand"
	"sort"

	"go.uber.org/zap"
)

// Mode selects how a posting list's gaps are distributed.
type Mode int

const (
	// Dense generates n consecutive integers starting at 1, forcing the
	// codec's low-bits width to 0 (spec §8's "dense sequence" case).
	Dense Mode = iota
	// Sparse draws n distinct values uniformly at random from
	// [1, universe] without replacement, sorted ascending.
	Sparse
)

// Options configures a Generator, following the teacher's
// dtest/util/seed Options convention of a small value struct plus an
// explicit *rand.Rand source.
type Options struct {
	N        uint32
	Universe uint32
	Mode     Mode
	Source   *rand.Rand
	Logger   *zap.Logger
}

// Generator produces posting lists according to Options.
type Generator struct {
	opts Options
}

// New returns a Generator configured by opts. A nil opts.Source defaults
// to a new source with the fixed seed 1; a nil opts.Logger defaults to
// zap.NewNop().
func New(opts Options) *Generator {
	if opts.Source == nil {
		opts.Source = rand.New(rand.NewSource(1))
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Generator{opts: opts}
}

// Generate returns a sorted, duplicate-free slice of n values as
// configured by Options.
func (g *Generator) Generate() []uint32 {
	switch g.opts.Mode {
	case Dense:
		return g.generateDense()
	default:
		return g.generateSparse()
	}
}

func (g *Generator) generateDense() []uint32 {
	seq := make([]uint32, g.opts.N)
	for i := range seq {
		seq[i] = uint32(i + 1)
	}
	g.opts.Logger.Debug("generated dense posting list",
		zap.Uint32("n", g.opts.N))
	return seq
}

func (g *Generator) generateSparse() []uint32 {
	n := int(g.opts.N)
	universe := g.opts.Universe
	if universe < g.opts.N {
		universe = g.opts.N
	}

	seen := make(map[uint32]struct{}, n)
	seq := make([]uint32, 0, n)
	for len(seq) < n {
		v := uint32(g.opts.Source.Int63n(int64(universe))) + 1
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		seq = append(seq, v)
	}
	sort.Slice(seq, func(i, j int) bool { return seq[i] < seq[j] })

	g.opts.Logger.Debug("generated sparse posting list",
		zap.Uint32("n", g.opts.N),
		zap.Uint32("universe", universe))
	return seq
}
