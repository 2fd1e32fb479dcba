package classify

import (
	"math"
	"strings"

	"github.com/kamik423/quadrant/internal/model"
)

// Classifier maps text items to points on the ideological grid. It is a
// pure function of item content: no I/O, no state, identical input
// always yields the identical point.
type Classifier struct{}

// NewClassifier creates a classifier over the package lexicon.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify places an item on the grid. The second return reports whether
// the item produced a classifiable signal; items with empty normalized
// text and no recognized flair return false and must be excluded from
// aggregation rather than counted as neutral.
func (c *Classifier) Classify(item model.Item) (model.Point, bool) {
	if p, ok := flairAnchor(item.Flair); ok {
		return p, true
	}

	tokens := Tokenize(item.Text)
	if len(tokens) == 0 {
		return model.Point{}, false
	}

	var sx, sy float64
	for _, token := range tokens {
		if contrib, ok := Lexicon[token]; ok {
			sx += contrib.X
			sy += contrib.Y
		}
	}

	// tanh keeps the point inside [-1, 1] however long the rant.
	return model.Point{
		X: math.Tanh(sx / 2),
		Y: math.Tanh(sy / 2),
	}, true
}

// flairAnchor resolves a raw flair text to its fixed anchor point.
func flairAnchor(flair string) (model.Point, bool) {
	name := CanonicalFlair(flair)
	if name == "" {
		return model.Point{}, false
	}
	p, ok := flairAnchors[name]
	return p, ok
}

// CanonicalFlair strips the `:emoji:name:emoji:` wrapping the flair
// templates use and lowercases the result. Returns "" for flairs that
// carry no position (empty, exploring, zero-width-only).
func CanonicalFlair(flair string) string {
	if strings.Count(flair, ":") >= 2 {
		flair = strings.Split(flair, ":")[1]
	}
	flair = strings.TrimSpace(flair)
	switch flair {
	case "", "Undecided/Exploring", "user_flair_PolComp", "‎":
		return ""
	}
	return strings.ToLower(flair)
}

// Tokenize normalizes text for lexicon lookup: lowercase, punctuation
// stripped, split on whitespace. An all-whitespace or empty string
// yields no tokens.
func Tokenize(text string) []string {
	normalized := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return ' '
		}
	}, text)
	return strings.Fields(normalized)
}

// WordCount counts whitespace-separated words, used for the
// wall-of-text statistics.
func WordCount(text string) int {
	return len(strings.Fields(text))
}
