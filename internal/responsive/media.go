package responsive

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var conditionRegex = regexp.MustCompile(`^\(\s*(min-width|max-width)\s*:\s*(\d+)(?:px)?\s*\)$`)

// Query is a compiled media condition evaluated against the viewport width.
// Conditions joined by "and" must all hold.
type Query struct {
	minWidth int
	maxWidth int
	hasMin   bool
	hasMax   bool
}

// ParseQuery compiles a media string such as "(min-width: 600px)" or
// "(min-width: 600px) and (max-width: 900px)".
func ParseQuery(raw string) (Query, error) {
	var q Query

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return q, fmt.Errorf("empty media query")
	}

	for _, part := range strings.Split(trimmed, " and ") {
		matches := conditionRegex.FindStringSubmatch(strings.TrimSpace(part))
		if matches == nil {
			return Query{}, fmt.Errorf("unsupported media condition %q", part)
		}

		width, err := strconv.Atoi(matches[2])
		if err != nil {
			return Query{}, fmt.Errorf("invalid width in %q", part)
		}

		switch matches[1] {
		case "min-width":
			q.minWidth = width
			q.hasMin = true
		case "max-width":
			q.maxWidth = width
			q.hasMax = true
		}
	}

	return q, nil
}

// Matches reports whether the query holds for the given viewport width.
func (q Query) Matches(width int) bool {
	if q.hasMin && width < q.minWidth {
		return false
	}
	if q.hasMax && width > q.maxWidth {
		return false
	}
	return true
}
