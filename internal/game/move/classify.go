package move

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidMove is returned by Classify for tokens that match neither a
// move name nor an alias. It is recoverable: the caller should re-prompt.
var ErrInvalidMove = errors.New("invalid move")

// Classify normalizes a raw token (lowercase, trimmed) and resolves it to
// a canonical move. Full names and single-letter aliases are accepted.
// Command words like "help" or "quit" belong to the session layer and are
// invalid here.
func (c *Catalog) Classify(raw string) (Move, error) {
	token := strings.ToLower(strings.TrimSpace(raw))
	m, ok := c.byToken[token]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidMove, raw)
	}
	return m, nil
}
