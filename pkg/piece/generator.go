package piece

import (
	"math/rand/v2"

	"github.com/huynhanx03/tetris-queue/pkg/unique"
)

// Generator creates pieces with a uniformly random kind and a unique,
// strictly increasing ID. It is NOT thread-safe.
type Generator struct {
	rng   *rand.Rand
	seq   *unique.Sequence
	kinds []Kind
}

// NewGenerator returns a Generator drawing from src. IDs start at 0.
// With no kinds given, DefaultKinds is used.
func NewGenerator(src rand.Source, kinds ...Kind) *Generator {
	if len(kinds) == 0 {
		kinds = DefaultKinds
	}
	return &Generator{
		rng:   rand.New(src),
		seq:   unique.NewSequence(0),
		kinds: kinds,
	}
}

// Generate returns a new piece and advances the ID counter.
func (g *Generator) Generate() Piece {
	kind := g.kinds[g.rng.IntN(len(g.kinds))]
	return Piece{Kind: kind, ID: g.seq.Generate()}
}

// NextID returns the ID the next generated piece will receive.
func (g *Generator) NextID() int64 {
	return g.seq.Peek()
}

// Kinds returns the shapes this generator draws from.
func (g *Generator) Kinds() []Kind {
	return g.kinds
}
