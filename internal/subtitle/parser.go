package subtitle

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Source selects one input track: the file to read plus how many
// leading and trailing entries to drop before merging.
type Source struct {
	Path      string
	SkipFirst int
	SkipLast  int
}

// ReadFile parses an SRT file into its entries, in file order, then
// applies the source's skip trimming. Each entry's declared index is
// discarded; the merge assigns fresh indices on output.
func ReadFile(src Source) ([]Entry, error) {
	data, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read subtitle file: %w", err)
	}

	entries, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Path, err)
	}

	return trim(entries, src.SkipFirst, src.SkipLast), nil
}

// Parse tokenizes raw SRT content: blocks separated by blank lines,
// each block an index line, a timing line and one or more text lines.
func Parse(content string) ([]Entry, error) {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")

	var entries []Entry
	for _, block := range strings.Split(content, "\n\n") {
		if strings.TrimSpace(block) == "" {
			continue
		}
		entry, err := parseBlock(block)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func parseBlock(block string) (Entry, error) {
	lines := strings.Split(strings.Trim(block, "\n"), "\n")
	if len(lines) < 3 {
		return Entry{}, fmt.Errorf("%w: block %q: expected index, timing and text lines", ErrFormat, lines[0])
	}

	index := strings.TrimSpace(lines[0])
	if _, err := strconv.Atoi(index); err != nil {
		return Entry{}, fmt.Errorf("%w: block %q: expected numeric index", ErrFormat, index)
	}

	fields := strings.Fields(lines[1])
	if len(fields) != 3 || fields[1] != "-->" {
		return Entry{}, fmt.Errorf("%w: at index %s: expected '<start> --> <end>', got %q", ErrFormat, index, lines[1])
	}
	start, err := ParseTimecode(fields[0])
	if err != nil {
		return Entry{}, fmt.Errorf("at index %s: start: %w", index, err)
	}
	end, err := ParseTimecode(fields[2])
	if err != nil {
		return Entry{}, fmt.Errorf("at index %s: end: %w", index, err)
	}

	return Entry{
		Start: start,
		End:   end,
		Text:  strings.Join(lines[2:], "\n"),
	}, nil
}

// trim drops the first and last counts from entries, clamping to an
// empty sequence when the counts overshoot.
func trim(entries []Entry, first, last int) []Entry {
	if first+last >= len(entries) {
		return nil
	}
	return entries[first : len(entries)-last]
}
