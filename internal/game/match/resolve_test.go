package match

import (
	"testing"

	"rpsls/internal/game/move"
)

func mustCatalog(t *testing.T) *move.Catalog {
	t.Helper()
	c, err := move.NewCatalog()
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func TestResolveSelfIsTie(t *testing.T) {
	c := mustCatalog(t)
	for _, m := range c.Moves() {
		if got := Resolve(c, m, m); got != Tie {
			t.Errorf("Resolve(%s, %s) = %s, want tie", m, m, got)
		}
	}
}

// Anti-symmetry of the tournament: for every distinct pair exactly one
// side wins, and swapping the arguments flips the outcome.
func TestResolveAntiSymmetry(t *testing.T) {
	c := mustCatalog(t)
	for _, a := range c.Moves() {
		for _, b := range c.Moves() {
			if a == b {
				continue
			}
			forward := Resolve(c, a, b)
			backward := Resolve(c, b, a)

			if forward == Tie || backward == Tie {
				t.Errorf("distinct pair (%s, %s) resolved to a tie", a, b)
			}
			aWins := forward == UserWins
			bWins := backward == UserWins
			if aWins == bWins {
				t.Errorf("pair (%s, %s): both or neither side wins", a, b)
			}
			if forward == UserWins && backward != OpponentWins {
				t.Errorf("Resolve(%s, %s) = %s but Resolve(%s, %s) = %s",
					a, b, forward, b, a, backward)
			}
		}
	}
}

func TestResolveConcrete(t *testing.T) {
	c := mustCatalog(t)

	tests := []struct {
		user, opponent move.Move
		want           Outcome
	}{
		{move.Rock, move.Scissor, UserWins},
		{move.Rock, move.Spock, OpponentWins},
		{move.Lizard, move.Lizard, Tie},
		{move.Paper, move.Rock, UserWins},
		{move.Spock, move.Paper, OpponentWins},
		{move.Lizard, move.Spock, UserWins},
		{move.Scissor, move.Rock, OpponentWins},
	}
	for _, tc := range tests {
		if got := Resolve(c, tc.user, tc.opponent); got != tc.want {
			t.Errorf("Resolve(%s, %s) = %s, want %s", tc.user, tc.opponent, got, tc.want)
		}
	}
}
