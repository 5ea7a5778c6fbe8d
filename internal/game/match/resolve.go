package match

import "rpsls/internal/game/move"

// Resolve computes the result of a single round. It is pure and total
// over catalog members.
//
// Both arguments must be canonical catalog moves: user-origin values are
// gated by Classify and the opponent supplier is trusted to emit catalog
// members only, so Resolve does not re-validate them.
//
// Because the relation is a tournament, at most one of the two Defeats
// checks holds for distinct moves, and neither holds for equal moves, so
// a tie falls out of the relation itself rather than an equality special
// case.
func Resolve(catalog *move.Catalog, user, opponent move.Move) Outcome {
	if catalog.Defeats(user, opponent) {
		return UserWins
	}
	if catalog.Defeats(opponent, user) {
		return OpponentWins
	}
	return Tie
}
