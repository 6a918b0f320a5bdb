package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// skipSpec is how many leading and trailing entries to drop from one
// source before merging.
type skipSpec struct {
	first int
	last  int
}

// parseSkipSpecs parses repeatable "-s" values of the form <N>:<spec>,
// where N selects source 1 or 2 and <spec> is a comma-separated list
// holding at most one +count (skip-first) and one -count (skip-last)
// token. Sources without a spec are absent from the returned map.
func parseSkipSpecs(values []string) (map[int]skipSpec, error) {
	specs := make(map[int]skipSpec, 2)
	for _, value := range values {
		selector, rest, ok := strings.Cut(value, ":")
		if !ok {
			return nil, fmt.Errorf("invalid skip spec %q: expected <1|2>:<spec>", value)
		}
		n, err := strconv.Atoi(selector)
		if err != nil || n < 1 || n > 2 {
			return nil, fmt.Errorf("invalid skip spec %q: specifier out of range: %s", value, selector)
		}
		if _, dup := specs[n]; dup {
			return nil, fmt.Errorf("invalid skip spec %q: specifier %d already used", value, n)
		}

		var spec skipSpec
		for _, tok := range strings.Split(rest, ",") {
			if tok == "" {
				return nil, fmt.Errorf("invalid skip spec %q: empty token", value)
			}
			count, countErr := strconv.Atoi(tok[1:])
			switch tok[0] {
			case '+':
				if spec.first != 0 {
					return nil, fmt.Errorf("invalid skip spec %q: skip-first (+) already specified", value)
				}
				if countErr != nil || count <= 0 {
					return nil, fmt.Errorf("invalid skip spec %q: skip-first: expected positive number", value)
				}
				spec.first = count
			case '-':
				if spec.last != 0 {
					return nil, fmt.Errorf("invalid skip spec %q: skip-last (-) already specified", value)
				}
				if countErr != nil || count <= 0 {
					return nil, fmt.Errorf("invalid skip spec %q: skip-last: expected positive number", value)
				}
				spec.last = count
			default:
				return nil, fmt.Errorf("invalid skip spec %q: unrecognized specifier %q", value, tok[:1])
			}
		}
		specs[n] = spec
	}
	return specs, nil
}
