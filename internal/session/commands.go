package session

import "errors"

// errQuit signals a normal player-initiated exit up through the loop.
var errQuit = errors.New("player quit")

// commandFunc handles one session command. Commands never touch match
// state; they belong entirely to this layer.
type commandFunc func(*Session) error

func defaultCommands() map[string]commandFunc {
	help := func(s *Session) error {
		s.displayHelp()
		return nil
	}
	quit := func(s *Session) error {
		return errQuit
	}

	return map[string]commandFunc{
		"help": help,
		"h":    help,
		"quit": quit,
		"q!":   quit,
	}
}
