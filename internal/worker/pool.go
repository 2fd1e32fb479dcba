// Package worker fans community surveys out over a bounded pool.
// Surveys share no mutable state, so the pool needs no locking beyond
// the channels themselves.
package worker

import (
	"context"
	"sync"

	"github.com/kamik423/quadrant/internal/model"
)

// SurveyFunc runs the survey for one community.
type SurveyFunc func(ctx context.Context, community string) Outcome

// Outcome is the result of one community survey. Err is a FetchError
// when the community could not be fetched; the summary is then invalid.
type Outcome struct {
	Community string
	Summary   model.CommunitySummary
	Err       error
}

// Pool runs surveys with a fixed number of workers.
type Pool struct {
	workers int
}

// NewPool creates a pool with the given worker count (minimum 1).
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Run surveys every community and returns one outcome per input, in
// input order. Cancelling the context stops queueing further work;
// communities never started report the context error.
func (p *Pool) Run(ctx context.Context, communities []string, fn SurveyFunc) []Outcome {
	outcomes := make([]Outcome, len(communities))

	type job struct {
		index     int
		community string
	}
	jobs := make(chan job)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				outcomes[j.index] = fn(ctx, j.community)
			}
		}()
	}

	for i, community := range communities {
		select {
		case <-ctx.Done():
			outcomes[i] = Outcome{Community: community, Err: ctx.Err()}
		case jobs <- job{index: i, community: community}:
		}
	}
	close(jobs)
	wg.Wait()

	return outcomes
}
