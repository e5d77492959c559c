package pipeline

import (
	"fmt"
	"path/filepath"

	"github.com/JPM1118/sheetcut/internal/sprites"
)

// Kind selects what a job does with its input.
type Kind string

const (
	// KindStrip removes the background and writes one image.
	KindStrip Kind = "strip"
	// KindSlice removes the background and writes one image per sprite.
	KindSlice Kind = "slice"
)

// Job describes the processing of a single input file.
type Job struct {
	Kind  Kind
	Input string
	// Output is the destination file for strip jobs (empty overwrites the
	// input) and the file name prefix for slice jobs.
	Output    string
	Reference sprites.Reference
	Tolerance int
	// Width and Height resize the result with nearest-neighbour sampling.
	// Zero leaves that dimension to the aspect ratio; both zero disables it.
	Width, Height int
}

// Name returns a short label for the job's input.
func (j Job) Name() string {
	return filepath.Base(j.Input)
}

// Validate checks the job before any file is touched.
func (j Job) Validate() error {
	switch j.Kind {
	case KindStrip, KindSlice:
	default:
		return fmt.Errorf("unknown job kind %q", j.Kind)
	}
	if j.Input == "" {
		return fmt.Errorf("%s job: input path is empty", j.Kind)
	}
	if j.Kind == KindSlice && j.Output == "" {
		return fmt.Errorf("slice job %s: output prefix is empty", j.Input)
	}
	if j.Tolerance < 0 || j.Tolerance > sprites.MaxTolerance {
		return fmt.Errorf("tolerance must be between 0 and %d, got %d", sprites.MaxTolerance, j.Tolerance)
	}
	if j.Width < 0 || j.Height < 0 {
		return fmt.Errorf("resize dimensions must not be negative, got %dx%d", j.Width, j.Height)
	}
	return nil
}

// OutputPath returns where a strip job writes its result.
func (j Job) OutputPath() string {
	if j.Output == "" {
		return j.Input
	}
	return j.Output
}

// SpritePath returns the file name for the sprite with the given index.
func SpritePath(prefix string, index int) string {
	return fmt.Sprintf("%s_%d.png", prefix, index)
}
