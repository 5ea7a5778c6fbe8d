package opponent

import (
	"math/rand/v2"

	"rpsls/internal/game/move"
)

// Supplier produces the opponent's move for a round.
//
// Contract: implementations emit catalog members only. The resolver
// trusts this and does not re-validate opponent moves.
type Supplier interface {
	NextMove() move.Move
}

// Random picks uniformly among the catalog moves.
type Random struct {
	catalog *move.Catalog
	rng     *rand.Rand
}

func NewRandom(catalog *move.Catalog, seed uint64) *Random {
	return &Random{
		catalog: catalog,
		rng:     rand.New(rand.NewPCG(seed, 1)),
	}
}

func (r *Random) NextMove() move.Move {
	moves := r.catalog.Moves()
	return moves[r.rng.IntN(len(moves))]
}
