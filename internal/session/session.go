package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/fatih/color"

	"rpsls/internal/config"
	"rpsls/internal/game/match"
	"rpsls/internal/game/move"
	"rpsls/internal/game/opponent"
	"rpsls/internal/session/message"
)

// Session drives one player through matches on a terminal. It owns the
// presentation loop only; round resolution and scoring live in the match
// package and are consumed through snapshots.
type Session struct {
	settings config.Settings
	catalog  *move.Catalog
	opponent opponent.Supplier

	printer  *message.Printer
	in       *bufio.Scanner
	out      io.Writer
	commands map[string]commandFunc

	// sleep is swappable so tests do not wait out the ceremony pauses.
	sleep func(time.Duration)
}

func New(settings config.Settings, catalog *move.Catalog, supplier opponent.Supplier, in io.Reader, out io.Writer) *Session {
	return &Session{
		settings: settings,
		catalog:  catalog,
		opponent: supplier,
		printer:  message.NewPrinter(out),
		in:       bufio.NewScanner(in),
		out:      out,
		commands: defaultCommands(),
		sleep:    time.Sleep,
	}
}

// Run plays matches until the player quits or input ends. It returns a
// non-nil error only for real failures; quitting is a normal exit.
func (s *Session) Run() error {
	if err := s.displayIntroduction(); err != nil {
		if errors.Is(err, errQuit) {
			s.sayGoodbye()
			return nil
		}
		return err
	}

	for {
		err := s.playMatch()
		if err == nil {
			err = s.promptPlayAgain()
		}
		if err != nil {
			if errors.Is(err, errQuit) {
				s.sayGoodbye()
				return nil
			}
			return err
		}
		s.printer.Say(message.KeyWelcomeBack)
	}
}

func (s *Session) playMatch() error {
	ctrl, err := match.NewController(s.settings.PointsToWin)
	if err != nil {
		return err
	}
	log.Printf("[Session] Match %s started against %s.", ctrl.State().MatchID, s.settings.OpponentName)

	for !ctrl.Finished() {
		if err := s.playRound(ctrl); err != nil {
			return err
		}
	}

	st := ctrl.State()
	log.Printf("[Session] Match %s finished: %s after %d rounds.", st.MatchID, st.GrandWinner, st.Round-1)
	s.displayMatchResults(st)
	return nil
}

// playRound runs one prompt cycle. Commands and invalid tokens leave the
// match state untouched; only a classified move reaches the resolver.
func (s *Session) playRound(ctrl *match.Controller) error {
	s.renderScoreboard(ctrl.State())
	s.printer.Linef("Options: %s", s.optionsLine())

	token, err := s.readToken("Your move: ")
	if err != nil {
		return err
	}

	if cmd, ok := s.commands[token]; ok {
		return cmd(s)
	}

	userMove, cerr := s.catalog.Classify(token)
	if cerr != nil {
		s.printer.Linef("ERROR: %q isn't a valid choice. You may choose from: %s", token, s.optionsLine())
		s.printer.Blank()
		return nil
	}

	opponentMove := s.opponent.NextMove()
	outcome := match.Resolve(s.catalog, userMove, opponentMove)

	st, err := ctrl.ApplyRound(outcome)
	if err != nil {
		return fmt.Errorf("apply round: %w", err)
	}

	s.renderScoreboard(st)
	s.displayRoundResults(st, userMove, opponentMove)
	return nil
}

func (s *Session) displayRoundResults(st match.State, userMove, opponentMove move.Move) {
	s.printer.Say(message.KeyRoundResults,
		strings.ToUpper(userMove.String()),
		s.settings.OpponentName,
		strings.ToUpper(opponentMove.String()))

	switch st.LastRoundWinner {
	case match.UserWins:
		s.printer.SayColored(color.New(color.FgGreen), message.KeyUserWinsRound)
	case match.OpponentWins:
		s.printer.SayColored(color.New(color.FgRed), message.KeyOpponentWinsRound, s.settings.OpponentName)
	default:
		s.printer.Say(message.KeyRoundTied)
	}
	s.printer.Blank()
}

func (s *Session) displayMatchResults(st match.State) {
	s.renderScoreboard(st)

	s.printer.Say(message.KeyWinnerDetected)
	s.sleep(time.Second)

	s.printer.Plain(message.KeyDrumroll)
	s.sleep(time.Second)

	if st.GrandWinner == match.UserWins {
		s.printer.SayColored(color.New(color.FgGreen, color.Bold), message.KeyUserGrandWinner)
	} else {
		s.printer.SayColored(color.New(color.FgRed, color.Bold), message.KeyOpponentGrandWinner, s.settings.OpponentName)
	}
	s.printer.Blank()
}

func (s *Session) displayIntroduction() error {
	s.printer.Say(message.KeyWelcome)
	s.printer.Say(message.KeyOpponentGreeting, s.settings.OpponentName)
	s.printer.Blank()
	s.displayHelp()

	token, err := s.readToken("Press Enter to begin: ")
	if err != nil {
		return err
	}
	if cmd, ok := s.commands[token]; ok {
		return cmd(s)
	}
	return nil
}

func (s *Session) promptPlayAgain() error {
	s.printer.Say(message.KeyPlayAgain)

	token, err := s.readToken("Enter any key to continue, or 'q!' to quit: ")
	if err != nil {
		return err
	}
	if cmd, ok := s.commands[token]; ok {
		return cmd(s)
	}
	return nil
}

func (s *Session) sayGoodbye() {
	s.printer.Blank()
	s.printer.Say(message.KeyGoodbye, s.settings.OpponentName)
}

// readToken prompts and reads one normalized token. Input ending (EOF)
// counts as quitting.
func (s *Session) readToken(prompt string) (string, error) {
	s.printer.Raw(prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", errQuit
	}
	return strings.ToLower(strings.TrimSpace(s.in.Text())), nil
}
