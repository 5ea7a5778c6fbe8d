package message

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestCatalogHasEveryKey(t *testing.T) {
	keys := []string{
		KeyWelcome, KeyWelcomeBack, KeyOpponentGreeting, KeyRoundResults,
		KeyUserWinsRound, KeyOpponentWinsRound, KeyRoundTied,
		KeyWinnerDetected, KeyDrumroll, KeyUserGrandWinner,
		KeyOpponentGrandWinner, KeyPlayAgain, KeyGoodbye,
	}
	for _, key := range keys {
		if _, ok := Lookup(key); !ok {
			t.Errorf("catalog is missing %q", key)
		}
	}
	if len(Keys()) != len(keys) {
		t.Errorf("catalog has %d keys, test covers %d", len(Keys()), len(keys))
	}
}

func TestSayPrefixesAndFormats(t *testing.T) {
	var buf bytes.Buffer
	pr := NewPrinter(&buf)

	pr.Say(KeyOpponentGreeting, "Monty")

	got := buf.String()
	if !strings.HasPrefix(got, ">> ") {
		t.Fatalf("output %q lacks prompt prefix", got)
	}
	if !strings.Contains(got, "Monty") {
		t.Fatalf("output %q lacks formatted argument", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("output %q lacks trailing newline", got)
	}
}

func TestPlainHasNoPrefix(t *testing.T) {
	var buf bytes.Buffer
	pr := NewPrinter(&buf)

	pr.Plain(KeyDrumroll)

	if strings.HasPrefix(buf.String(), ">> ") {
		t.Fatalf("Plain output %q carries the prompt prefix", buf.String())
	}
}

func TestMissingKeyIsVisible(t *testing.T) {
	var buf bytes.Buffer
	pr := NewPrinter(&buf)

	pr.Say("no_such_key")

	if !strings.Contains(buf.String(), "missing message") {
		t.Fatalf("missing key produced %q", buf.String())
	}
}

func TestSayColoredRespectsNoColor(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = old }()

	var buf bytes.Buffer
	pr := NewPrinter(&buf)

	pr.SayColored(color.New(color.FgGreen), KeyUserGrandWinner)

	got := buf.String()
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("output %q contains escape codes with NoColor set", got)
	}
	if !strings.Contains(got, "grand winner") {
		t.Fatalf("output %q lacks message text", got)
	}
}
