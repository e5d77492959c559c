package pipeline

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/JPM1118/sheetcut/internal/sprites"
	"github.com/charmbracelet/log"
)

// Runner processes jobs one at a time against a Store.
type Runner struct {
	store sprites.Store
	log   *log.Logger
	now   func() time.Time
}

// New creates a runner. A nil logger discards log output.
func New(store sprites.Store, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		store: store,
		log:   logger,
		now:   time.Now,
	}
}

// Run processes jobs in order and returns one result per job. Failures are
// recorded and never stop the batch. If ctx is cancelled, the jobs that have
// not started yet are reported as skipped. onResult, if set, is called after
// every job.
func (r *Runner) Run(ctx context.Context, jobs []Job, onResult func(Result)) []Result {
	results := make([]Result, 0, len(jobs))
	for _, job := range jobs {
		var res Result
		if ctx.Err() != nil {
			res = Cancelled(job)
		} else {
			res = r.Process(job)
		}
		results = append(results, res)
		if onResult != nil {
			onResult(res)
		}
	}
	return results
}

// Process runs a single job start to finish.
func (r *Runner) Process(job Job) Result {
	start := r.now()
	res := r.process(job)
	res.Duration = r.now().Sub(start)
	r.logResult(res)
	return res
}

func (r *Runner) process(job Job) Result {
	res := Result{Job: job}

	if err := job.Validate(); err != nil {
		return res.fail(err)
	}

	img, err := r.store.Load(job.Input)
	if err != nil {
		return res.fail(err)
	}

	stripped, ref := sprites.StripWith(img, job.Reference, job.Tolerance)
	res.Reference = ref

	switch job.Kind {
	case KindStrip:
		out := job.OutputPath()
		if err := r.store.Save(out, sprites.Resize(stripped, job.Width, job.Height)); err != nil {
			return res.fail(err)
		}
		res.Outputs = []string{out}

	case KindSlice:
		for _, s := range sprites.Slice(stripped) {
			out := SpritePath(job.Output, s.Index)
			if err := r.store.Save(out, sprites.Resize(s.Image, job.Width, job.Height)); err != nil {
				r.rollback(res.Outputs)
				res.Outputs, res.Sprites = nil, 0
				return res.fail(err)
			}
			res.Outputs = append(res.Outputs, out)
			res.Sprites++
		}
		if res.Sprites == 0 {
			res.Reason = "no sprites found"
		}
	}

	res.Status = StatusSuccess
	return res
}

// rollback removes the sprites a failed slice job already wrote, so a sheet
// is either cut completely or leaves nothing behind.
func (r *Runner) rollback(paths []string) {
	for _, p := range paths {
		if err := r.store.Remove(p); err != nil {
			r.log.Warn("rollback failed", "path", p, "err", err)
		}
	}
}

// fail classifies err: a missing input is skipped, anything else failed.
func (res Result) fail(err error) Result {
	res.Status = StatusFailed
	if errors.Is(err, sprites.ErrMissingInput) {
		res.Status = StatusSkipped
	}
	res.Reason = err.Error()
	return res
}

func (r *Runner) logResult(res Result) {
	kv := []interface{}{
		"kind", res.Job.Kind,
		"input", res.Job.Input,
		"status", res.Status,
	}
	if len(res.Outputs) > 0 {
		kv = append(kv, "outputs", len(res.Outputs), "reference", res.Reference.String())
	}
	if res.Reason != "" {
		kv = append(kv, "reason", res.Reason)
	}

	switch res.Status {
	case StatusSuccess:
		r.log.Info("processed", kv...)
	case StatusSkipped:
		r.log.Warn("skipped", kv...)
	default:
		r.log.Error("failed", kv...)
	}
}
