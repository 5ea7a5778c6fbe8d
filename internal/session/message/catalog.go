package message

// Keys into the message catalog. Keeping them as constants gives the
// compiler a chance to catch typos that a raw string lookup would not.
const (
	KeyWelcome             = "welcome"
	KeyWelcomeBack         = "welcome_back"
	KeyOpponentGreeting    = "opponent_greeting"
	KeyRoundResults        = "round_results"
	KeyUserWinsRound       = "user_wins_round"
	KeyOpponentWinsRound   = "opponent_wins_round"
	KeyRoundTied           = "round_tied"
	KeyWinnerDetected      = "winner_detected"
	KeyDrumroll            = "drumroll"
	KeyUserGrandWinner     = "user_grand_winner"
	KeyOpponentGrandWinner = "opponent_grand_winner"
	KeyPlayAgain           = "play_again"
	KeyGoodbye             = "goodbye"
)

// catalog holds every player-facing message as a Sprintf template.
var catalog = map[string]string{
	KeyWelcome:             "Welcome to Rock, Paper, Scissor, Spock, Lizard!",
	KeyWelcomeBack:         "Welcome back! Ready for another match?",
	KeyOpponentGreeting:    "Your opponent today is %s. Good luck!",
	KeyRoundResults:        "You chose %s. %s chose %s.",
	KeyUserWinsRound:       "You win this round!",
	KeyOpponentWinsRound:   "%s wins this round.",
	KeyRoundTied:           "This round is a tie. No points awarded.",
	KeyWinnerDetected:      "We have a grand winner...",
	KeyDrumroll:            "*** DRUMROLL ***",
	KeyUserGrandWinner:     "YOU are the grand winner! Congratulations!",
	KeyOpponentGrandWinner: "%s is the grand winner. Better luck next time!",
	KeyPlayAgain:           "Up for another match?",
	KeyGoodbye:             "Thanks for playing! %s says goodbye.",
}

// Lookup returns the template for a key, reporting whether it exists.
func Lookup(key string) (string, bool) {
	tmpl, ok := catalog[key]
	return tmpl, ok
}

// Keys returns every registered catalog key.
func Keys() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	return keys
}
