// Package shellformat adds ANSI emphasis to output destined for an interactive terminal
package shellformat

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// EscapeSeq denotes a simple formatting modifier / escape sequence for shell output
type EscapeSeq = string

// Some standard modifiers
var (
	EscapeSeqReset  EscapeSeq = "\033[0m"
	EscapeSeqBold   EscapeSeq = "\033[1m"
	EscapeSeqRed    EscapeSeq = "\033[31m"
	EscapeSeqGreen  EscapeSeq = "\033[32m"
	EscapeSeqYellow EscapeSeq = "\033[33m"
	EscapeSeqCyan   EscapeSeq = "\033[36m"
)

// Format denotes an abstract format for shell output
type Format uint64

// Formatting codes suitable for logical combination via '|'
const (
	Bold   Format = 1 << 1
	Red    Format = 1 << 2
	Green  Format = 1 << 3
	Yellow Format = 1 << 4
	Cyan   Format = 1 << 5

	maxFormat = Cyan
)

var allFormats = []EscapeSeq{
	"",
	EscapeSeqBold,
	EscapeSeqRed,
	EscapeSeqGreen,
	EscapeSeqYellow,
	EscapeSeqCyan,
}

// Formatter applies formats to strings written to a specific destination. Formatting
// is a no-op unless the destination is a terminal
type Formatter struct {
	enabled bool
}

// For returns a Formatter for w. Escape sequences are only emitted if w is a terminal
// and TERM isn't set to "dumb"
func For(w io.Writer) Formatter {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok || os.Getenv("TERM") == "dumb" {
		return Formatter{}
	}
	return Formatter{enabled: isTerminal(f.Fd())}
}

// Enabled returns whether escape sequences are emitted
func (f Formatter) Enabled() bool {
	return f.enabled
}

// Fmt modifies the provided string using the list of modifiers
// and resets the output formatting to default at the end
func (f Formatter) Fmt(format Format, input string, a ...any) string {
	if !f.enabled {
		return fmt.Sprintf(input, a...)
	}

	seq := format.genEscapeSeq()
	if seq == "" {
		return fmt.Sprintf(input, a...)
	}

	return fmt.Sprintf(seq+input+EscapeSeqReset, a...)
}

func (f Format) genEscapeSeq() (seq string) {
	for i := 1; i <= int(maxFormat); i++ {
		if f&(1<<i) != 0 {
			seq += allFormats[i]
		}
	}
	return
}

func isTerminal(fd uintptr) bool {
	_, err := unix.IoctlGetTermios(int(fd), unix.TCGETS)
	return err == nil
}
