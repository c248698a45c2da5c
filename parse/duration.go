// Package parse converts user-facing option strings into playback
// values. All parsers run before the terminal is touched, so a bad
// string fails fast with a plain descriptive error.
package parse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var durationPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)(ms|s|m|h)$`)

// Duration converts a duration string such as "3000ms", "0.3s", "5m",
// or "0.5h" into whole milliseconds, truncating any fraction.
func Duration(s string) (uint64, error) {
	caps := durationPattern.FindStringSubmatch(strings.TrimSpace(s))
	if caps == nil {
		return 0, fmt.Errorf("invalid duration format: %s", s)
	}

	value, err := strconv.ParseFloat(caps[1], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value in duration: %s", s)
	}

	var ms float64
	switch caps[2] {
	case "ms":
		ms = value
	case "s":
		ms = value * 1000
	case "m":
		ms = value * 60 * 1000
	case "h":
		ms = value * 60 * 60 * 1000
	default:
		return 0, fmt.Errorf("unknown time unit: %s", caps[2])
	}

	return uint64(ms), nil
}
