package pipeline

import (
	"fmt"
	"time"

	"github.com/JPM1118/sheetcut/internal/sprites"
)

// Status constants reported per processed item.
const (
	StatusSuccess = "SUCCESS"
	StatusSkipped = "SKIPPED"
	StatusFailed  = "FAILED"
)

// ReasonCancelled is reported for jobs that never ran because the batch was
// stopped.
const ReasonCancelled = "cancelled"

// Result is the outcome of one job.
type Result struct {
	Job    Job
	Status string
	Reason string
	// Outputs lists the files written. A failed job leaves none behind.
	Outputs   []string
	Sprites   int
	Reference sprites.RGB
	Duration  time.Duration
}

// Failed returns true if the job hit a decode or write error.
func (r Result) Failed() bool {
	return r.Status == StatusFailed
}

// Cancelled returns the result for a job that was never started.
func Cancelled(job Job) Result {
	return Result{Job: job, Status: StatusSkipped, Reason: ReasonCancelled}
}

// Summary counts results per status.
type Summary struct {
	Success int
	Skipped int
	Failed  int
}

// Summarize tallies results.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		switch r.Status {
		case StatusSuccess:
			s.Success++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}

// Total returns the number of results counted.
func (s Summary) Total() int {
	return s.Success + s.Skipped + s.Failed
}

func (s Summary) String() string {
	return fmt.Sprintf("%d processed: %d ok, %d skipped, %d failed", s.Total(), s.Success, s.Skipped, s.Failed)
}
