package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	carouselerrors "github.com/carouselkit/carousel/pkg/errors"
)

func writeDeck(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deck.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestParseDeckValidDocument(t *testing.T) {
	t.Parallel()

	path := writeDeck(t, `
name: demo deck
attributes:
  infinite: "yes"
  per-view: "2"
  auto-slide-interval: "1000"
slides:
  - title: Intro
    body: welcome aboard
  - title: Outro
`)

	deck, err := ParseDeck(path)
	require.NoError(t, err)
	require.Equal(t, "demo deck", deck.Name)
	require.Len(t, deck.Slides, 2)
	require.Equal(t, "yes", deck.Attributes[AttrInfinite])
	require.Equal(t, "Intro", deck.Slides[0].Title)
}

func TestParseDeckMissingFile(t *testing.T) {
	t.Parallel()

	_, err := ParseDeck(filepath.Join(t.TempDir(), "absent.yaml"))

	var parseErr *carouselerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseDeckInvalidYAMLReportsLine(t *testing.T) {
	t.Parallel()

	path := writeDeck(t, "name: demo\nslides:\n  - title: [broken\n")

	_, err := ParseDeck(path)

	var parseErr *carouselerrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Positive(t, parseErr.Line)
}

func TestParseDeckRequiresSlides(t *testing.T) {
	t.Parallel()

	path := writeDeck(t, "name: empty deck\nslides: []\n")

	_, err := ParseDeck(path)

	var validationErr *carouselerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Contains(t, validationErr.Field, "Slides")
}

func TestParseDeckRejectsUnknownAttribute(t *testing.T) {
	t.Parallel()

	path := writeDeck(t, `
name: demo
attributes:
  autoplay-speed: "fast"
slides:
  - title: Only
`)

	_, err := ParseDeck(path)

	var validationErr *carouselerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateDeckNil(t *testing.T) {
	t.Parallel()

	require.Error(t, ValidateDeck(nil))
}
