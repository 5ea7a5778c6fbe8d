package message

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const prefix = ">> "

// Printer renders catalog messages to a writer. Formatting goes through a
// golang.org/x/text printer so locale-aware output stays a drop-in change.
type Printer struct {
	out io.Writer
	p   *message.Printer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{
		out: out,
		p:   message.NewPrinter(language.English),
	}
}

// Say writes a prefixed catalog message followed by a newline.
func (pr *Printer) Say(key string, args ...any) {
	fmt.Fprint(pr.out, prefix)
	pr.Plain(key, args...)
}

// Plain writes a catalog message without the prompt prefix.
func (pr *Printer) Plain(key string, args ...any) {
	tmpl, ok := Lookup(key)
	if !ok {
		// A missing key is a programmer error; make it visible rather
		// than silently printing nothing.
		fmt.Fprintf(pr.out, "!! missing message %q\n", key)
		return
	}
	pr.p.Fprintf(pr.out, tmpl, args...)
	fmt.Fprintln(pr.out)
}

// SayColored writes a prefixed catalog message through the given color.
// Color output honors the global color.NoColor switch.
func (pr *Printer) SayColored(col *color.Color, key string, args ...any) {
	tmpl, ok := Lookup(key)
	if !ok {
		fmt.Fprintf(pr.out, "!! missing message %q\n", key)
		return
	}
	col.Fprintln(pr.out, prefix+pr.p.Sprintf(tmpl, args...))
}

// Linef writes an ad hoc prefixed line outside the catalog.
func (pr *Printer) Linef(format string, args ...any) {
	fmt.Fprint(pr.out, prefix)
	pr.p.Fprintf(pr.out, format, args...)
	fmt.Fprintln(pr.out)
}

// Raw writes text exactly as given.
func (pr *Printer) Raw(text string) {
	fmt.Fprint(pr.out, text)
}

// Blank writes an empty line.
func (pr *Printer) Blank() {
	fmt.Fprintln(pr.out)
}
