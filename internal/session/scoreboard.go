package session

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"rpsls/internal/game/match"
	"rpsls/internal/utils"
)

// renderScoreboard prints the fixed-width score panel. The header shows
// the upcoming round number, or the tiebreaker label when both sides sit
// one point from the threshold.
func (s *Session) renderScoreboard(st match.State) {
	width := s.settings.ScoreboardWidth

	header := fmt.Sprintf(" ROUND %d ", st.Round)
	headerColor := color.New(color.FgCyan)
	if st.Tiebreaker {
		header = " TIEBREAKER ROUND "
		headerColor = color.New(color.FgYellow, color.Bold)
	}
	headerColor.Fprintln(s.out, utils.CenterPad(header, width, '-'))

	column := width / 2
	player := fmt.Sprintf("You: %d", st.UserScore)
	rival := fmt.Sprintf("%s: %d", s.settings.OpponentName, st.OpponentScore)
	fmt.Fprintf(s.out, "%-*s|%*s\n", column, player, column, rival)

	fmt.Fprintln(s.out, strings.Repeat("-", width))
	fmt.Fprintln(s.out)
}
