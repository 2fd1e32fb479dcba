// Package pipeline orchestrates the survey: fetch each community,
// classify its items, aggregate them, and collect the summaries for
// rendering.
package pipeline

import (
	"context"
	"errors"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/kamik423/quadrant/internal/aggregate"
	"github.com/kamik423/quadrant/internal/classify"
	"github.com/kamik423/quadrant/internal/model"
	"github.com/kamik423/quadrant/internal/worker"
)

// Fetcher is the source feed adapter capability.
type Fetcher interface {
	Fetch(ctx context.Context, community string) ([]model.Item, error)
}

// Pipeline runs the full survey over the configured communities.
type Pipeline struct {
	fetcher    Fetcher
	classifier *classify.Classifier
	pool       *worker.Pool
	config     *model.Config
}

// New creates a pipeline. The fetcher is injected so the classifier and
// aggregator stay free of any I/O dependency.
func New(cfg *model.Config, fetcher Fetcher) *Pipeline {
	return &Pipeline{
		fetcher:    fetcher,
		classifier: classify.NewClassifier(),
		pool:       worker.NewPool(cfg.Workers),
		config:     cfg,
	}
}

// Run surveys every configured community. Communities that fail to
// fetch are logged and skipped; the returned summaries follow the
// configured community order. The error is non-nil only when every
// community failed.
func (p *Pipeline) Run(ctx context.Context) ([]model.CommunitySummary, error) {
	outcomes := p.pool.Run(ctx, p.config.Communities, p.surveyOne)

	summaries := make([]model.CommunitySummary, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			var fetchErr *model.FetchError
			if errors.As(outcome.Err, &fetchErr) {
				log.WithField("community", outcome.Community).
					WithError(outcome.Err).Warn("skipping community")
				continue
			}
			return nil, outcome.Err
		}
		summaries = append(summaries, outcome.Summary)
	}

	if len(summaries) == 0 {
		return nil, errors.New("no community could be surveyed")
	}
	return summaries, nil
}

// surveyOne runs fetch → classify → aggregate for a single community.
func (p *Pipeline) surveyOne(ctx context.Context, community string) worker.Outcome {
	items, err := p.fetcher.Fetch(ctx, community)
	if err != nil {
		return worker.Outcome{Community: community, Err: err}
	}

	samples := lo.FilterMap(items, func(item model.Item, _ int) (aggregate.Sample, bool) {
		point, ok := p.classifier.Classify(item)
		if !ok {
			// Empty normalized text: excluded rather than counted as
			// neutral, so it cannot skew the centroid toward origin.
			return aggregate.Sample{}, false
		}
		return aggregate.Sample{
			Point:  point,
			Weight: aggregate.ItemWeight(item.Weight),
			Words:  classify.WordCount(item.Text),
		}, true
	})

	summary := aggregate.Aggregate(community, p.config.WallThreshold, samples)
	log.WithFields(log.Fields{
		"community": community,
		"items":     len(items),
		"samples":   summary.SampleCount,
		"centroid":  summary.Centroid,
		"spread":    summary.Spread,
	}).Info("community surveyed")

	return worker.Outcome{Community: community, Summary: summary}
}
