package utils

import (
	"fmt"
	"strings"
)

// Bulleted renders a label followed by one bullet line per item.
func Bulleted[T any](label string, items []T) string {
	var sb strings.Builder
	sb.WriteString(label + "\n")

	if len(items) == 0 {
		sb.WriteString("  (empty)\n")
		return sb.String()
	}

	for _, item := range items {
		sb.WriteString(fmt.Sprintf("  * %v\n", item))
	}
	return sb.String()
}

// CenterPad centers text in a field of the given width, filling both
// sides with the pad character. Text wider than the field is returned
// unchanged.
func CenterPad(text string, width int, pad byte) string {
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	right := width - len(text) - left
	return strings.Repeat(string(pad), left) + text + strings.Repeat(string(pad), right)
}
