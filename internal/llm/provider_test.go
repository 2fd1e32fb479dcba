package llm

import (
	"strings"
	"testing"

	"github.com/kamik423/quadrant/internal/model"
)

func TestBuildPrompt(t *testing.T) {
	summaries := []model.CommunitySummary{
		{
			Name:        "alpha",
			Centroid:    model.Point{X: -0.42, Y: 0.17},
			Spread:      0.31,
			SampleCount: 88,
			MeanWords:   25,
		},
		{Name: "ghost"}, // no data
	}

	prompt := BuildPrompt(summaries)

	if !strings.Contains(prompt, "r/alpha") {
		t.Error("prompt missing community name")
	}
	if !strings.Contains(prompt, "(-0.42, 0.17)") {
		t.Errorf("prompt missing centroid: %s", prompt)
	}
	if !strings.Contains(prompt, "r/ghost: no data") {
		t.Error("no-data community must be labeled as such")
	}
}

func TestNewCommentator_UnknownProvider(t *testing.T) {
	_, err := NewCommentator(model.LLMConfig{Provider: "carrier-pigeon"})
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
}

func TestNewCommentator_MissingKey(t *testing.T) {
	_, err := NewCommentator(model.LLMConfig{Provider: "openai"})
	if err == nil {
		t.Fatal("expected error without API key")
	}
}
