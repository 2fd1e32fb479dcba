package model

import "math"

// Item is one fetched unit of text content with its engagement weight.
// Items are immutable once fetched.
type Item struct {
	Text   string  `json:"text"`            // Post title+body or comment body
	Flair  string  `json:"flair,omitempty"` // Author flair text, raw (may be empty)
	Weight float64 `json:"weight"`          // Raw engagement (score/upvotes), may be 0
}

// Point is a position on the two-axis ideological grid.
// Both components are bounded to [-1, 1]: X runs economic left (-1) to
// right (+1), Y runs libertarian (-1) to authoritarian (+1). Every
// consumer (classifier, aggregator, renderer) uses this range.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Dist returns the Euclidean distance to another point.
func (p Point) Dist(q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// CommunitySummary is the aggregate position of one community.
// Created once per run after all of the community's items are classified;
// never mutated afterward.
type CommunitySummary struct {
	Name         string  `json:"name"`
	Centroid     Point   `json:"centroid"` // Valid only when SampleCount > 0
	Spread       float64 `json:"spread"`   // Weighted RMS distance from centroid
	SampleCount  int     `json:"sample_count"`
	MeanWords    float64 `json:"mean_words"`    // Weighted mean word count per item
	WallFraction float64 `json:"wall_fraction"` // Fraction of items over the wall-of-text threshold
}

// HasData reports whether the summary carries a real centroid. A summary
// with no samples signals "no data" instead of fabricating (0,0).
func (s CommunitySummary) HasData() bool {
	return s.SampleCount > 0
}
