package subtitle

import (
	"fmt"
	"io"
)

// WriteEntry renders one entry as an SRT block under the given index:
// index line, timing line, text, then a blank separator line.
func WriteEntry(w io.Writer, index int, e Entry) error {
	_, err := fmt.Fprintf(w, "%d\n%s --> %s\n%s\n\n",
		index, FormatTimecode(e.Start), FormatTimecode(e.End), e.Text)
	return err
}
