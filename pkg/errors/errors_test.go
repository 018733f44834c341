package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("deck.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "deck.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "deck.yaml")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("responsive", 0, fmt.Errorf("invalid character '}'"))
	require.Contains(t, err.Error(), "responsive")
	require.NotContains(t, err.Error(), ":0:")
}

func TestValidationErrorCarriesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("per-view", "must be at least 1", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "per-view", validationErr.Field)
	require.Contains(t, validationErr.Message, "must be at least 1")
}

func TestWatchErrorIncludesDeckPath(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("inotify limit reached")
	err := NewWatchError("decks/demo.yaml", underlying)

	var watchErr *WatchError
	require.ErrorAs(t, err, &watchErr)
	require.Equal(t, "decks/demo.yaml", watchErr.Path)
	require.True(t, stdErrors.Is(err, underlying))
}
