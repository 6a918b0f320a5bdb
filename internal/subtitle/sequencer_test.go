package subtitle

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

// collect runs Join over the two tracks and returns the rendered
// output plus every warning raised.
func collect(t *testing.T, first, second []Entry) (string, []Warning) {
	t.Helper()
	var out strings.Builder
	var warnings []Warning
	err := Join(&out, first, second, func(w Warning) {
		warnings = append(warnings, w)
	})
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	return out.String(), warnings
}

func TestJoinInterleavesWithoutOverlap(t *testing.T) {
	first := []Entry{{Start: 0, End: 1000, Text: "A"}}
	second := []Entry{{Start: 2000, End: 3000, Text: "B"}}

	out, warnings := collect(t, first, second)

	want := "1\n00:00:00,000 --> 00:00:01,000\nA\n\n" +
		"2\n00:00:02,000 --> 00:00:03,000\nB\n\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	if len(warnings) != 0 {
		t.Errorf("got %d warnings, want none: %v", len(warnings), warnings)
	}
}

func TestJoinMergesOverlap(t *testing.T) {
	first := []Entry{{Start: 0, End: 2000, Text: "A"}}
	second := []Entry{{Start: 1000, End: 3000, Text: "B"}}

	out, warnings := collect(t, first, second)

	want := "1\n00:00:00,000 --> 00:00:03,000\nA\nB\n\n"
	if out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1: %v", len(warnings), warnings)
	}
	if warnings[0].Kind != WarnOverlap {
		t.Errorf("warning kind = %v, want WarnOverlap", warnings[0].Kind)
	}
	if !strings.Contains(warnings[0].Message, "file #1 index #0") ||
		!strings.Contains(warnings[0].Message, "file #2 index #0") {
		t.Errorf("warning message missing source positions: %q", warnings[0].Message)
	}
}

func TestJoinDrainsRemainingSource(t *testing.T) {
	first := []Entry{{Start: 0, End: 500, Text: "A"}}
	second := []Entry{
		{Start: 1000, End: 1500, Text: "B1"},
		{Start: 2000, End: 2500, Text: "B2"},
		{Start: 3000, End: 3500, Text: "B3"},
	}

	out, warnings := collect(t, first, second)

	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	wantOrder := []string{"A", "B1", "B2", "B3"}
	assertBlocks(t, out, wantOrder)
}

func TestJoinDrainsFirstSourceToo(t *testing.T) {
	first := []Entry{
		{Start: 1000, End: 1500, Text: "A1"},
		{Start: 2000, End: 2500, Text: "A2"},
	}
	second := []Entry{{Start: 0, End: 500, Text: "B"}}

	out, _ := collect(t, first, second)
	assertBlocks(t, out, []string{"B", "A1", "A2"})
}

func TestJoinEmptySources(t *testing.T) {
	out, warnings := collect(t, nil, nil)
	if out != "" {
		t.Errorf("output = %q, want empty", out)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	only := []Entry{{Start: 0, End: 1000, Text: "A"}}
	out, _ = collect(t, only, nil)
	assertBlocks(t, out, []string{"A"})
	out, _ = collect(t, nil, only)
	assertBlocks(t, out, []string{"A"})
}

func TestJoinEmitsEarlierSecondFirst(t *testing.T) {
	first := []Entry{{Start: 5000, End: 6000, Text: "A"}}
	second := []Entry{{Start: 0, End: 1000, Text: "B"}}

	out, _ := collect(t, first, second)
	assertBlocks(t, out, []string{"B", "A"})
}

func TestJoinWarnsOnExcessiveLines(t *testing.T) {
	// Two-line cue merged with another yields three lines.
	first := []Entry{{Start: 0, End: 2000, Text: "A1\nA2"}}
	second := []Entry{{Start: 1000, End: 3000, Text: "B"}}

	out, warnings := collect(t, first, second)

	if !strings.Contains(out, "A1\nA2\nB") {
		t.Errorf("output missing merged text: %q", out)
	}
	if len(warnings) != 2 {
		t.Fatalf("got %d warnings, want overlap + excessive lines: %v", len(warnings), warnings)
	}
	if warnings[0].Kind != WarnOverlap {
		t.Errorf("first warning kind = %v, want WarnOverlap", warnings[0].Kind)
	}
	if warnings[1].Kind != WarnExcessiveLines {
		t.Errorf("second warning kind = %v, want WarnExcessiveLines", warnings[1].Kind)
	}
}

func TestJoinSequentialIndices(t *testing.T) {
	first := []Entry{
		{Start: 0, End: 1000, Text: "A1"},
		{Start: 4000, End: 5000, Text: "A2"},
		{Start: 8000, End: 9000, Text: "A3"},
	}
	second := []Entry{
		{Start: 2000, End: 3000, Text: "B1"},
		{Start: 4500, End: 5500, Text: "B2"}, // overlaps A2
		{Start: 10000, End: 11000, Text: "B3"},
	}

	out, warnings := collect(t, first, second)

	// One overlap: 3 + 3 inputs produce 5 outputs.
	assertBlocks(t, out, []string{"A1", "B1", "A2\nB2", "A3", "B3"})
	if len(warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(warnings))
	}
}

func TestJoinNilWarnSink(t *testing.T) {
	first := []Entry{{Start: 0, End: 2000, Text: "A"}}
	second := []Entry{{Start: 1000, End: 3000, Text: "B"}}

	var out strings.Builder
	if err := Join(&out, first, second, nil); err != nil {
		t.Fatalf("Join with nil sink failed: %v", err)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestJoinPropagatesWriteError(t *testing.T) {
	first := []Entry{{Start: 0, End: 1000, Text: "A"}}
	if err := Join(failWriter{}, first, nil, nil); err == nil {
		t.Fatal("Join succeeded with a failing writer")
	}
}

// assertBlocks checks that out consists of exactly the given texts in
// order, numbered 1..N.
func assertBlocks(t *testing.T, out string, texts []string) {
	t.Helper()
	blocks := strings.Split(strings.TrimSuffix(out, "\n\n"), "\n\n")
	if out == "" {
		blocks = nil
	}
	if len(blocks) != len(texts) {
		t.Fatalf("got %d blocks, want %d: %q", len(blocks), len(texts), out)
	}
	for i, block := range blocks {
		lines := strings.SplitN(block, "\n", 3)
		if len(lines) != 3 {
			t.Fatalf("block %d malformed: %q", i, block)
		}
		wantIndex := strconv.Itoa(i + 1)
		if lines[0] != wantIndex {
			t.Errorf("block %d: index = %q, want %q", i, lines[0], wantIndex)
		}
		if !strings.Contains(lines[1], " --> ") {
			t.Errorf("block %d: timing line = %q", i, lines[1])
		}
		if lines[2] != texts[i] {
			t.Errorf("block %d: text = %q, want %q", i, lines[2], texts[i])
		}
	}
}
