package services

import (
	"context"

	"golang.org/x/sync/errgroup"
)

type job func(ctx context.Context) bool

// gather runs every job and waits for all of them. It never stops early:
// a failing job does not cancel its siblings. The result holds one outcome
// per job, in job order.
func gather(ctx context.Context, limit int, jobs []job) []bool {
	out := make([]bool, len(jobs))
	if len(jobs) == 0 {
		return out
	}

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, j := range jobs {
		i, j := i, j
		g.Go(func() error {
			out[i] = j(ctx)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func countFailed(results []bool) int {
	n := 0
	for _, ok := range results {
		if !ok {
			n++
		}
	}
	return n
}
