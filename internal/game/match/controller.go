package match

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// DefaultPointsToWin is the classic first-to-three threshold.
const DefaultPointsToWin = 3

// ErrMatchOver is returned by ApplyRound once a grand winner is set.
// Hitting it means the calling loop forgot to check Finished; it is a
// defect in control code, not bad user input.
var ErrMatchOver = errors.New("match already has a grand winner")

// State is the scoreboard snapshot handed to the presentation layer after
// every round. Only the Controller mutates it.
type State struct {
	MatchID         string
	Round           int
	UserScore       int
	OpponentScore   int
	LastRoundWinner Outcome
	Tiebreaker      bool
	GrandWinner     Outcome
}

// Controller owns one match and folds resolved rounds into its state.
// Create a fresh one per match.
type Controller struct {
	pointsToWin int
	state       State
}

func NewController(pointsToWin int) (*Controller, error) {
	if pointsToWin < 1 {
		return nil, fmt.Errorf("points to win must be at least 1, got %d", pointsToWin)
	}
	return &Controller{
		pointsToWin: pointsToWin,
		state: State{
			MatchID: uuid.NewString(),
			Round:   1,
		},
	}, nil
}

// State returns a copy of the current scoreboard snapshot.
func (c *Controller) State() State { return c.state }

// PointsToWin returns the configured score threshold.
func (c *Controller) PointsToWin() int { return c.pointsToWin }

// Finished reports whether the match is terminal.
func (c *Controller) Finished() bool { return c.state.GrandWinner != NoOutcome }

// ApplyRound folds one resolved round into the match state and returns
// the updated snapshot. Calling it on a finished match returns
// ErrMatchOver before any mutation occurs.
func (c *Controller) ApplyRound(outcome Outcome) (State, error) {
	if c.Finished() {
		return c.state, fmt.Errorf("%w: %s", ErrMatchOver, c.state.GrandWinner)
	}

	switch outcome {
	case UserWins, OpponentWins, Tie:
	default:
		return c.state, fmt.Errorf("cannot apply unknown outcome %d", outcome)
	}

	c.state.Round++

	switch outcome {
	case UserWins:
		c.state.UserScore++
	case OpponentWins:
		c.state.OpponentScore++
	}

	c.state.LastRoundWinner = outcome

	// Both flags are recomputed from the scores every round rather than
	// latched, so a tied round keeps the tiebreaker label alive and the
	// label never survives a score change.
	c.state.Tiebreaker = c.state.UserScore == c.pointsToWin-1 &&
		c.state.OpponentScore == c.pointsToWin-1

	switch {
	case c.state.UserScore >= c.pointsToWin:
		c.state.GrandWinner = UserWins
	case c.state.OpponentScore >= c.pointsToWin:
		c.state.GrandWinner = OpponentWins
	default:
		c.state.GrandWinner = NoOutcome
	}

	return c.state, nil
}
