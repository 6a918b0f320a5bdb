package subtitle

// Overlaps reports whether the closed intervals [a.Start, a.End] and
// [b.Start, b.End] share at least one instant. Touching boundaries
// count as overlap.
func Overlaps(a, b Entry) bool {
	return a.Start <= b.End && b.Start <= a.End
}

// Merge combines two overlapping entries into one spanning
// [min start, max end]. The entry that starts earlier contributes its
// text first; a starting at the same time as b wins the tie.
//
// When either input already spans multiple lines the concatenated text
// is no longer strictly chronological. That is accepted behavior; the
// sequencer raises a warning when an emitted entry exceeds two lines.
func Merge(a, b Entry) Entry {
	start := a.Start
	if b.Start < start {
		start = b.Start
	}
	end := a.End
	if b.End > end {
		end = b.End
	}

	var text string
	if start == a.Start {
		text = a.Text + "\n" + b.Text
	} else {
		text = b.Text + "\n" + a.Text
	}

	return Entry{Start: start, End: end, Text: text}
}
