package subtitle

import (
	"fmt"
	"io"
	"strings"
)

// WarningKind classifies non-fatal diagnostics raised while joining.
type WarningKind int

const (
	// WarnOverlap: entries from the two sources overlapped in time and
	// were merged into one cue.
	WarnOverlap WarningKind = iota
	// WarnExcessiveLines: an emitted cue spans more than two lines,
	// usually a sign of a triple merge or malformed source text.
	WarnExcessiveLines
)

// Warning is one diagnostic from the join. Warnings never stop
// processing; they are handed to the caller's sink as they occur.
type Warning struct {
	Kind    WarningKind
	Message string
}

// WarnFunc receives diagnostics during a join. A nil sink discards them.
type WarnFunc func(Warning)

// cursor walks one source's entries strictly forward. The position
// doubles as the entry's index within the trimmed source, reported in
// overlap diagnostics.
type cursor struct {
	entries []Entry
	pos     int
}

func (c *cursor) active() bool { return c.pos < len(c.entries) }
func (c *cursor) entry() Entry { return c.entries[c.pos] }

// Join interleaves two chronologically ordered tracks into one,
// writing renumbered SRT blocks to w. Entries within each track must
// already be sorted by start time; Join does not re-sort.
//
// Whenever the heads of both tracks overlap in time they are merged
// into a single cue consuming both, under a single output index.
// Otherwise the earlier-starting head is emitted alone, the second
// track winning start-time ties. Once one track is exhausted the other
// is drained in order. Output indices run 1..N with no gaps.
func Join(w io.Writer, first, second []Entry, warn WarnFunc) error {
	if warn == nil {
		warn = func(Warning) {}
	}

	emit := func(index int, e Entry) error {
		if strings.Count(e.Text, "\n") > 1 {
			warn(Warning{
				Kind:    WarnExcessiveLines,
				Message: fmt.Sprintf("excessive line count in output entry %d: %s", index, e),
			})
		}
		return WriteEntry(w, index, e)
	}

	c1 := &cursor{entries: first}
	c2 := &cursor{entries: second}
	newIndex := 0

	for c1.active() || c2.active() {
		newIndex++

		if c1.active() && c2.active() {
			s1, s2 := c1.entry(), c2.entry()
			switch {
			case Overlaps(s1, s2):
				warn(Warning{
					Kind: WarnOverlap,
					Message: fmt.Sprintf("overlap between file #1 index #%d and file #2 index #%d: %s , %s",
						c1.pos, c2.pos, s1, s2),
				})
				if err := emit(newIndex, Merge(s1, s2)); err != nil {
					return err
				}
				c1.pos++
				c2.pos++
			case s1.Start < s2.Start:
				if err := emit(newIndex, s1); err != nil {
					return err
				}
				c1.pos++
			default:
				if err := emit(newIndex, s2); err != nil {
					return err
				}
				c2.pos++
			}
			continue
		}

		// One source exhausted: drain the other in order.
		for c1.active() {
			if err := emit(newIndex, c1.entry()); err != nil {
				return err
			}
			c1.pos++
			newIndex++
		}
		for c2.active() {
			if err := emit(newIndex, c2.entry()); err != nil {
				return err
			}
			c2.pos++
			newIndex++
		}
	}

	return nil
}
