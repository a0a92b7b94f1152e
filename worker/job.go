package worker

import (
	"time"

	"github.com/gofhir/vcl/compose"
	"github.com/google/uuid"
)

// Job is one expression to compile.
type Job struct {
	// ID identifies the job in the batch result. Empty IDs are assigned a
	// random identifier before compilation.
	ID string

	// Expression is the VCL expression text.
	Expression string
}

// JobResult is the outcome of compiling one job.
type JobResult struct {
	// ID matches the Job that produced this result.
	ID string

	// ValueSet holds the compiled composition on success.
	ValueSet *compose.ValueSet

	// Err holds the parse error on failure.
	Err error

	// Duration is the time taken to compile.
	Duration time.Duration
}

// BatchResult aggregates the results of a batch.
type BatchResult struct {
	// Results holds one entry per completed job, in job order.
	Results []*JobResult

	// TotalJobs is the number of jobs submitted.
	TotalJobs int

	// CompletedJobs is the number of jobs that ran, including failures.
	CompletedJobs int

	// FailedJobs is the number of jobs whose expression did not parse.
	FailedJobs int

	// TotalDuration is the summed compile time across jobs.
	TotalDuration time.Duration
}

// add records one completed job.
func (br *BatchResult) add(r *JobResult) {
	br.Results = append(br.Results, r)
	br.CompletedJobs++
	br.TotalDuration += r.Duration
	if r.Err != nil {
		br.FailedJobs++
	}
}

// HasErrors reports whether any job in the batch failed.
func (br *BatchResult) HasErrors() bool {
	return br.FailedJobs > 0
}

// assignJobIDs returns a copy of jobs with every empty ID filled in.
func assignJobIDs(jobs []Job) []Job {
	out := make([]Job, len(jobs))
	copy(out, jobs)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = uuid.NewString()
		}
	}
	return out
}
