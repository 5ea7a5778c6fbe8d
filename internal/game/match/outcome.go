package match

// Outcome is the tagged result of a resolved round. It is also used for
// the grand winner, where only UserWins or OpponentWins are meaningful.
// The zero value NoOutcome means "not decided yet". Winners are never
// represented as display-name strings; names are applied only at the
// presentation layer.
type Outcome uint8

const (
	NoOutcome Outcome = iota
	UserWins
	OpponentWins
	Tie
)

func (o Outcome) String() string {
	switch o {
	case UserWins:
		return "user"
	case OpponentWins:
		return "opponent"
	case Tie:
		return "tie"
	default:
		return "none"
	}
}
