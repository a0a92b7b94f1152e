// Package worker provides parallel batch compilation of VCL expressions,
// the bulk-import path of a terminology service.
package worker

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/gofhir/vcl/compose"
)

// CompileFunc compiles a single expression. vcl.Parse and
// (*vcl.Compiler).Parse both satisfy it.
type CompileFunc func(expression string) (*compose.ValueSet, error)

// BatchCompiler compiles batches of expressions in parallel.
type BatchCompiler struct {
	compile CompileFunc
	workers int
}

// NewBatchCompiler creates a batch compiler. If workers <= 0, it defaults
// to runtime.NumCPU().
func NewBatchCompiler(compile CompileFunc, workers int) *BatchCompiler {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchCompiler{
		compile: compile,
		workers: workers,
	}
}

// CompileBatch compiles all jobs and returns the aggregated results in job
// order. Jobs without an ID are assigned one. Cancelling the context stops
// the batch early; jobs never started are absent from the result count.
func (bc *BatchCompiler) CompileBatch(ctx context.Context, jobs []Job) *BatchResult {
	if len(jobs) == 0 {
		return &BatchResult{Results: make([]*JobResult, 0)}
	}

	jobs = assignJobIDs(jobs)

	// Parallelism does not pay for itself on tiny batches
	if len(jobs) <= 2 || bc.workers == 1 {
		return bc.compileSequential(ctx, jobs)
	}
	return bc.compileParallel(ctx, jobs)
}

func (bc *BatchCompiler) compileSequential(ctx context.Context, jobs []Job) *BatchResult {
	br := &BatchResult{
		Results:   make([]*JobResult, 0, len(jobs)),
		TotalJobs: len(jobs),
	}
	for _, job := range jobs {
		select {
		case <-ctx.Done():
			return br
		default:
		}
		br.add(bc.run(job))
	}
	return br
}

func (bc *BatchCompiler) compileParallel(ctx context.Context, jobs []Job) *BatchResult {
	results := make([]*JobResult, len(jobs))
	indexes := make(chan int)

	var wg sync.WaitGroup
	workers := bc.workers
	if workers > len(jobs) {
		workers = len(jobs)
	}
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = bc.run(jobs[i])
			}
		}()
	}

feed:
	for i := range jobs {
		select {
		case <-ctx.Done():
			break feed
		default:
		}
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	br := &BatchResult{
		Results:   make([]*JobResult, 0, len(jobs)),
		TotalJobs: len(jobs),
	}
	for _, r := range results {
		if r != nil {
			br.add(r)
		}
	}
	return br
}

// run compiles one job, timing it.
func (bc *BatchCompiler) run(job Job) *JobResult {
	start := time.Now()
	vs, err := bc.compile(job.Expression)
	return &JobResult{
		ID:       job.ID,
		ValueSet: vs,
		Err:      err,
		Duration: time.Since(start),
	}
}
