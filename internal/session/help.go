package session

import (
	"fmt"
	"strings"

	"rpsls/internal/game/move"
	"rpsls/internal/utils"
)

func (s *Session) displayHelp() {
	rules := make([]string, 0, move.NumMoves+3)
	for _, m := range s.catalog.Moves() {
		rules = append(rules, s.catalog.Describe(m))
	}
	rules = append(rules,
		"Win a round to earn one point",
		"No points are awarded if a tie occurs",
		fmt.Sprintf("First to reach %d points wins the match", s.settings.PointsToWin),
	)
	s.printer.Raw(utils.Bulleted("RULES", rules))
	s.printer.Blank()

	s.printer.Linef("To select your move, enter the complete word (eg. 'rock') or one of: %s", s.movesLine())
	s.printer.Linef("Enter 'h' or 'help' to see this message again; 'q!' or 'quit' to stop playing.")
	s.printer.Blank()
}

func (s *Session) movesLine() string {
	parts := make([]string, 0, move.NumMoves)
	for _, m := range s.catalog.Moves() {
		parts = append(parts, fmt.Sprintf("%s (%s)", m, m.Alias()))
	}
	return strings.Join(parts, ", ")
}

func (s *Session) optionsLine() string {
	return s.movesLine() + ", help (h), quit (q!)"
}
