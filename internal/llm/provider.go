// Package llm generates an optional markdown commentary for a finished
// survey. It runs after classification, aggregation, and rendering and
// never affects any of them; failures warn, never abort.
package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/kamik423/quadrant/internal/model"
)

// Provider generates commentary text from a prompt.
type Provider interface {
	Name() string
	Comment(ctx context.Context, prompt string) (string, error)
}

// Commentator wraps a provider with prompt construction.
type Commentator struct {
	provider Provider
}

// NewCommentator builds a commentator from the LLM configuration.
func NewCommentator(cfg model.LLMConfig) (*Commentator, error) {
	switch cfg.Provider {
	case "openai":
		provider, err := NewOpenAIProvider(cfg)
		if err != nil {
			return nil, err
		}
		return &Commentator{provider: provider}, nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q (only openai is supported)", cfg.Provider)
	}
}

// Generate produces a markdown commentary for the summaries.
func (c *Commentator) Generate(ctx context.Context, summaries []model.CommunitySummary) (string, error) {
	text, err := c.provider.Comment(ctx, BuildPrompt(summaries))
	if err != nil {
		return "", fmt.Errorf("%s: %w", c.provider.Name(), err)
	}
	return strings.TrimSpace(text), nil
}

// BuildPrompt lays the numeric results out for the model. Only computed
// aggregates go in, never raw post text.
func BuildPrompt(summaries []model.CommunitySummary) string {
	var b strings.Builder
	b.WriteString("Write a short, neutral markdown commentary (3-5 sentences) on this ")
	b.WriteString("two-axis community survey. X is economic left (-1) to right (+1), ")
	b.WriteString("Y is libertarian (-1) to authoritarian (+1). Spread is dispersion ")
	b.WriteString("around the centroid. Do not speculate beyond the numbers.\n\n")
	for _, s := range summaries {
		if !s.HasData() {
			fmt.Fprintf(&b, "- r/%s: no data\n", s.Name)
			continue
		}
		fmt.Fprintf(&b, "- r/%s: centroid (%.2f, %.2f), spread %.2f, n=%d, mean words %.0f, wall-of-text %.0f%%\n",
			s.Name, s.Centroid.X, s.Centroid.Y, s.Spread, s.SampleCount, s.MeanWords, 100*s.WallFraction)
	}
	return b.String()
}
