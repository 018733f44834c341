package responsive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		width   int
		matches bool
	}{
		{name: "min-width satisfied", raw: "(min-width: 600px)", width: 700, matches: true},
		{name: "min-width boundary inclusive", raw: "(min-width: 600px)", width: 600, matches: true},
		{name: "min-width unsatisfied", raw: "(min-width: 600px)", width: 599, matches: false},
		{name: "max-width satisfied", raw: "(max-width: 900px)", width: 900, matches: true},
		{name: "max-width unsatisfied", raw: "(max-width: 900px)", width: 901, matches: false},
		{name: "range satisfied", raw: "(min-width: 600px) and (max-width: 900px)", width: 750, matches: true},
		{name: "range below", raw: "(min-width: 600px) and (max-width: 900px)", width: 500, matches: false},
		{name: "range above", raw: "(min-width: 600px) and (max-width: 900px)", width: 1000, matches: false},
		{name: "unit suffix optional", raw: "(min-width: 80)", width: 100, matches: true},
		{name: "whitespace tolerated", raw: "( min-width : 80px )", width: 100, matches: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			q, err := ParseQuery(tc.raw)
			require.NoError(t, err)
			require.Equal(t, tc.matches, q.Matches(tc.width))
		})
	}
}

func TestParseQueryRejectsUnsupported(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "min-width: 600px", "(orientation: landscape)", "(min-width: abc)"} {
		_, err := ParseQuery(raw)
		require.Error(t, err, "query %q should not parse", raw)
	}
}
