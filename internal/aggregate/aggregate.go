// Package aggregate reduces classified points to per-community
// summaries. Both entry points are pure and stateless.
package aggregate

import (
	"math"

	"github.com/samber/lo"

	"github.com/kamik423/quadrant/internal/model"
)

// Sample is one classified item ready for aggregation.
type Sample struct {
	Point  model.Point
	Weight float64 // Raw engagement weight; <= 0 counts as 1.0
	Words  int     // Word count of the source text
}

// ItemWeight is the single weighting-policy function: it maps a raw
// engagement score to the weight an item carries in the centroid.
//
//	weight = 1 + ln(1 + max(score, 0))
//
// Logarithmic so one viral post cannot drag the whole community, with a
// floor of 1 so zero-score items still count once.
func ItemWeight(score float64) float64 {
	if score < 0 {
		score = 0
	}
	return 1 + math.Log1p(score)
}

// Aggregate reduces a community's samples to a summary. An empty input
// yields the no-data sentinel (SampleCount 0, HasData false) instead of
// a fabricated centroid. The result is independent of sample order.
func Aggregate(name string, wallThreshold int, samples []Sample) model.CommunitySummary {
	if len(samples) == 0 {
		return model.CommunitySummary{Name: name}
	}

	var weightSum float64
	var cx, cy float64
	var wordSum float64
	var walls int

	for _, s := range samples {
		w := s.Weight
		if w <= 0 {
			w = 1
		}
		weightSum += w
		cx += w * s.Point.X
		cy += w * s.Point.Y
		wordSum += w * float64(s.Words)
		if s.Words > wallThreshold {
			walls++
		}
	}

	centroid := model.Point{X: cx / weightSum, Y: cy / weightSum}

	// Weighted RMS distance from the centroid. Exactly 0 when every
	// sample sits on the same point.
	variance := lo.SumBy(samples, func(s Sample) float64 {
		w := s.Weight
		if w <= 0 {
			w = 1
		}
		d := s.Point.Dist(centroid)
		return w * d * d
	}) / weightSum

	return model.CommunitySummary{
		Name:         name,
		Centroid:     centroid,
		Spread:       math.Sqrt(variance),
		SampleCount:  len(samples),
		MeanWords:    wordSum / weightSum,
		WallFraction: float64(walls) / float64(len(samples)),
	}
}
