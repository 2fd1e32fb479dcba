package classify

import (
	"testing"

	"github.com/kamik423/quadrant/internal/model"
)

func TestClassify_Deterministic(t *testing.T) {
	c := NewClassifier()
	item := model.Item{Text: "Unions and welfare beat deregulation and markets"}

	first, ok := c.Classify(item)
	if !ok {
		t.Fatal("expected item to classify")
	}

	for i := 0; i < 10; i++ {
		p, ok := c.Classify(item)
		if !ok {
			t.Fatal("expected item to classify on repeat call")
		}
		if p != first {
			t.Errorf("call %d: got %+v, want %+v", i, p, first)
		}
	}
}

func TestClassify_EmptyText(t *testing.T) {
	c := NewClassifier()

	for _, text := range []string{"", "   ", "\n\t", "!!! ..."} {
		p, ok := c.Classify(model.Item{Text: text})
		if ok {
			t.Errorf("Classify(%q): expected no signal, got %+v", text, p)
		}
		if p != (model.Point{}) {
			t.Errorf("Classify(%q): expected zero point, got %+v", text, p)
		}
	}
}

func TestClassify_Bounded(t *testing.T) {
	c := NewClassifier()

	// Stack enough lexicon hits that raw sums exceed 1 on both axes.
	text := "communism communism socialism monarchy monarchy obey obey discipline"
	p, ok := c.Classify(model.Item{Text: text})
	if !ok {
		t.Fatal("expected item to classify")
	}
	if p.X < -1 || p.X > 1 || p.Y < -1 || p.Y > 1 {
		t.Errorf("point out of range: %+v", p)
	}
	if p.X >= 0 {
		t.Errorf("expected economic-left X, got %f", p.X)
	}
	if p.Y <= 0 {
		t.Errorf("expected authoritarian Y, got %f", p.Y)
	}
}

func TestClassify_NoHitsIsNeutral(t *testing.T) {
	c := NewClassifier()

	p, ok := c.Classify(model.Item{Text: "lunch was pretty good today"})
	if !ok {
		t.Fatal("non-empty text should classify")
	}
	if p != (model.Point{X: 0, Y: 0}) {
		t.Errorf("expected origin for lexicon-free text, got %+v", p)
	}
}

func TestClassify_FlairAnchors(t *testing.T) {
	c := NewClassifier()

	cases := []struct {
		flair string
		want  model.Point
	}{
		{":centrist: - Grand Inquisitor", model.Point{X: 0, Y: 0}},
		{"authleft", model.Point{X: -0.75, Y: 0.75}},
		{":libright2: Based", model.Point{X: 0.75, Y: -0.75}},
		{"CENTG", model.Point{X: 0, Y: 0}},
		{"right", model.Point{X: 0.75, Y: 0}},
	}

	for _, tc := range cases {
		// Text that would otherwise score left: the anchor must win.
		p, ok := c.Classify(model.Item{Text: "socialism socialism", Flair: tc.flair})
		if !ok {
			t.Errorf("flair %q: expected signal", tc.flair)
			continue
		}
		if p != tc.want {
			t.Errorf("flair %q: got %+v, want %+v", tc.flair, p, tc.want)
		}
	}
}

func TestClassify_UnknownFlairFallsThrough(t *testing.T) {
	c := NewClassifier()

	p, ok := c.Classify(model.Item{Text: "liberty and freedom", Flair: "Taco Enjoyer"})
	if !ok {
		t.Fatal("expected signal from text path")
	}
	if p.Y >= 0 {
		t.Errorf("expected libertarian Y from text, got %+v", p)
	}
}

func TestCanonicalFlair(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{":authright: Pinochet Fan", "authright"},
		{"LibLeft", "libleft"},
		{"", ""},
		{"Undecided/Exploring", ""},
		{"user_flair_PolComp", ""},
		{"‎", ""},
	}
	for _, tc := range cases {
		if got := CanonicalFlair(tc.in); got != tc.want {
			t.Errorf("CanonicalFlair(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Tax the RICH!!! (and the landlords)")
	want := []string{"tax", "the", "rich", "and", "the", "landlords"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
