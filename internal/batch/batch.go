// Package batch runs one decode job per game log on a bounded worker pool.
package batch

import (
	"context"
	"runtime"
	"sync"
	"time"

	"firestige.xyz/rcg/pkg/log"
)

// Job is one input scheduled on the pool.
type Job struct {
	ID   int // position in the input list
	Path string
}

// Result is the outcome of one Job.
type Result struct {
	Job     Job
	Value   interface{}
	Err     error
	Elapsed time.Duration
}

// Func processes one path.
type Func func(ctx context.Context, path string) (interface{}, error)

// Scheduler fans jobs out to workers.
type Scheduler struct {
	workers int
	log     log.Logger
}

// New creates a Scheduler. workers <= 0 means one per CPU.
func New(workers int) *Scheduler {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scheduler{workers: workers, log: log.GetLogger().WithField("component", "batch")}
}

func (s *Scheduler) Workers() int { return s.workers }

// Run executes fn for every path and returns results in input order.
// Jobs not started before ctx is cancelled fail with ctx.Err().
func (s *Scheduler) Run(ctx context.Context, paths []string, fn Func) []Result {
	results := make([]Result, len(paths))
	jobs := make(chan Job)

	workers := s.workers
	if workers > len(paths) {
		workers = len(paths)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for job := range jobs {
				results[job.ID] = s.runJob(ctx, worker, job, fn)
			}
		}(w)
	}

	next := 0
dispatch:
	for ; next < len(paths); next++ {
		select {
		case jobs <- Job{ID: next, Path: paths[next]}:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	for ; next < len(paths); next++ {
		results[next] = Result{Job: Job{ID: next, Path: paths[next]}, Err: ctx.Err()}
	}
	return results
}

func (s *Scheduler) runJob(ctx context.Context, worker int, job Job, fn Func) Result {
	if err := ctx.Err(); err != nil {
		return Result{Job: job, Err: err}
	}
	start := time.Now()
	v, err := fn(ctx, job.Path)
	r := Result{Job: job, Value: v, Err: err, Elapsed: time.Since(start)}

	entry := s.log.WithFields(map[string]interface{}{
		"worker":  worker,
		"path":    job.Path,
		"elapsed": r.Elapsed,
	})
	if err != nil {
		entry.WithError(err).Debug("job failed")
	} else {
		entry.Debug("job done")
	}
	return r
}

// Failed counts results with an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
