package subtitle

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTimecode converts an SRT timecode of the form HH:MM:SS,mmm into
// a total millisecond count.
func ParseTimecode(s string) (int, error) {
	hms, msec, ok := strings.Cut(s, ",")
	if !ok {
		return 0, fmt.Errorf("%w: timecode %q: missing ',' before milliseconds", ErrFormat, s)
	}
	fields := strings.Split(hms, ":")
	if len(fields) != 3 {
		return 0, fmt.Errorf("%w: timecode %q: expected HH:MM:SS,mmm", ErrFormat, s)
	}

	var parts [4]int
	for i, field := range append(fields, msec) {
		n, err := strconv.Atoi(field)
		if err != nil {
			return 0, fmt.Errorf("%w: timecode %q: non-numeric field %q", ErrFormat, s, field)
		}
		parts[i] = n
	}

	hours, minutes, seconds, millis := parts[0], parts[1], parts[2], parts[3]
	return hours*3600000 + minutes*60000 + seconds*1000 + millis, nil
}

// FormatTimecode renders a millisecond count as HH:MM:SS,mmm. The hour
// field is zero-padded to two digits and widens past 99 hours.
func FormatTimecode(ms int) string {
	millis := ms % 1000
	total := ms / 1000
	seconds := total % 60
	total /= 60
	minutes := total % 60
	hours := total / 60

	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, seconds, millis)
}
