package subtitle

import "errors"

// ErrFormat marks malformed subtitle content: a timecode that does not
// match HH:MM:SS,mmm or a block whose timing line is missing the "-->"
// arrow. Parse failures wrap it, so callers can test with errors.Is.
var ErrFormat = errors.New("invalid subtitle format")
