package move

import (
	"fmt"
	"strings"
)

// Catalog is the immutable beats-relation over the five moves plus the
// token table used by Classify. Build it once at startup with NewCatalog;
// a catalog that fails validation is a configuration defect, not a
// runtime user error.
type Catalog struct {
	beats   [NumMoves][2]Move
	byToken map[string]Move
}

// defaultBeats is the primary rule of the game. Each move defeats exactly
// the two moves listed for it.
var defaultBeats = [NumMoves][2]Move{
	Rock:    {Scissor, Lizard},
	Paper:   {Rock, Spock},
	Scissor: {Paper, Lizard},
	Spock:   {Rock, Scissor},
	Lizard:  {Paper, Spock},
}

// NewCatalog builds and validates the standard catalog.
func NewCatalog() (*Catalog, error) {
	return newCatalog(defaultBeats)
}

func newCatalog(beats [NumMoves][2]Move) (*Catalog, error) {
	c := &Catalog{
		beats:   beats,
		byToken: make(map[string]Move, NumMoves*2),
	}

	for _, m := range c.Moves() {
		c.byToken[m.String()] = m
		c.byToken[m.Alias()] = m
	}

	validators := []catalogValidator{
		validateMembers,
		validateNoSelfBeat,
		validateTournament,
	}

	for _, v := range validators {
		if err := v(c); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Moves returns the canonical move set in declaration order.
func (c *Catalog) Moves() []Move {
	moves := make([]Move, NumMoves)
	for i := range moves {
		moves[i] = Move(i)
	}
	return moves
}

// Beats returns the two moves defeated by m.
func (c *Catalog) Beats(m Move) [2]Move {
	return c.beats[m]
}

// Defeats reports whether attacker beats defender under the relation.
func (c *Catalog) Defeats(attacker, defender Move) bool {
	pair := c.beats[attacker]
	return pair[0] == defender || pair[1] == defender
}

// Describe returns the human-readable rule line for m,
// e.g. "Rock beats scissor and lizard".
func (c *Catalog) Describe(m Move) string {
	pair := c.beats[m]
	name := m.String()
	return fmt.Sprintf("%s%s beats %s and %s",
		strings.ToUpper(name[:1]), name[1:], pair[0], pair[1])
}

// ---- Validation ----

type catalogValidator func(*Catalog) error

func validateMembers(c *Catalog) error {
	for _, m := range c.Moves() {
		for _, target := range c.beats[m] {
			if int(target) >= NumMoves {
				return fmt.Errorf("catalog: %s beats unknown move %d", m, target)
			}
		}
	}
	return nil
}

func validateNoSelfBeat(c *Catalog) error {
	for _, m := range c.Moves() {
		if c.Defeats(m, m) {
			return fmt.Errorf("catalog: %s beats itself", m)
		}
	}
	return nil
}

// validateTournament checks that every unordered pair of distinct moves
// has exactly one directed beats edge. Together with validateNoSelfBeat
// this makes the relation a tournament: each move defeats exactly two
// others and loses to the remaining two.
func validateTournament(c *Catalog) error {
	for _, a := range c.Moves() {
		for _, b := range c.Moves() {
			if a >= b {
				continue
			}
			forward := c.Defeats(a, b)
			backward := c.Defeats(b, a)
			if forward && backward {
				return fmt.Errorf("catalog: %s and %s beat each other", a, b)
			}
			if !forward && !backward {
				return fmt.Errorf("catalog: no winner between %s and %s", a, b)
			}
		}
	}
	return nil
}
