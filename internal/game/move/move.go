package move

// Move is one of the five canonical plays.
type Move uint8

const (
	Rock Move = iota
	Paper
	Scissor
	Spock
	Lizard
)

// NumMoves is the size of the fixed move set.
const NumMoves = 5

var names = [NumMoves]string{"rock", "paper", "scissor", "spock", "lizard"}
var aliases = [NumMoves]string{"r", "p", "s", "k", "l"}

func (m Move) String() string {
	if int(m) >= NumMoves {
		return "unknown"
	}
	return names[m]
}

// Alias returns the single-letter abbreviation accepted at input.
func (m Move) Alias() string {
	if int(m) >= NumMoves {
		return "?"
	}
	return aliases[m]
}
