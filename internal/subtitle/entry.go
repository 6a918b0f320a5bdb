package subtitle

import (
	"fmt"
	"strings"
)

// Entry is a single subtitle cue: a time interval in milliseconds and
// one or more lines of text joined by '\n'. Entries are values; merging
// constructs a new Entry rather than mutating either input.
type Entry struct {
	Start int
	End   int
	Text  string
}

// String renders the entry for diagnostics, with line breaks in the
// text collapsed to " * " so the whole entry fits on one line.
func (e Entry) String() string {
	return fmt.Sprintf("Entry(%d (%s), %d (%s), %s)",
		e.Start, FormatTimecode(e.Start),
		e.End, FormatTimecode(e.End),
		strings.Join(strings.Split(e.Text, "\n"), " * "))
}
