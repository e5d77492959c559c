package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/JPM1118/sheetcut/internal/pipeline"
	"github.com/JPM1118/sheetcut/internal/sprites"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for sheetcut.
type Config struct {
	Strip    StepConfig   `yaml:"strip"`
	Slice    StepConfig   `yaml:"slice"`
	Resize   ResizeConfig `yaml:"resize"`
	LogLevel string       `yaml:"log_level"`
	Jobs     []JobConfig  `yaml:"jobs"`
}

// StepConfig holds the background removal settings for one kind of job.
type StepConfig struct {
	Reference Reference `yaml:"reference"`
	Tolerance int       `yaml:"tolerance"`
}

// ResizeConfig enables nearest-neighbour resizing of every written image.
type ResizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// JobConfig is one entry of the batch job list. Reference and Tolerance
// override the defaults of the matching step section when set.
type JobConfig struct {
	Kind      string     `yaml:"kind"`
	Input     string     `yaml:"input"`
	Output    string     `yaml:"output"`
	Reference *Reference `yaml:"reference,omitempty"`
	Tolerance *int       `yaml:"tolerance,omitempty"`
}

// Reference wraps sprites.Reference for YAML unmarshalling from strings like
// "#000000" or "sample-top-left".
type Reference struct {
	sprites.Reference
}

func (r *Reference) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := sprites.ParseReference(s)
	if err != nil {
		return err
	}
	r.Reference = parsed
	return nil
}

func (r Reference) MarshalYAML() (interface{}, error) {
	return r.Reference.String(), nil
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Strip: StepConfig{
			Reference: Reference{sprites.Fixed(sprites.Black)},
			Tolerance: 40,
		},
		Slice: StepConfig{
			Reference: Reference{sprites.Fixed(sprites.Black)},
			Tolerance: 20,
		},
		LogLevel: "info",
	}
}

// Load reads the config file and merges with defaults.
// Missing file is not an error: defaults are used silently.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads config from a specific path.
func LoadFrom(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Defaults(), fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// Validate checks value ranges and every configured job.
func (c Config) Validate() error {
	if err := c.Strip.validate("strip"); err != nil {
		return err
	}
	if err := c.Slice.validate("slice"); err != nil {
		return err
	}

	if c.Resize.Width < 0 || c.Resize.Height < 0 {
		return fmt.Errorf("resize dimensions must not be negative, got %dx%d", c.Resize.Width, c.Resize.Height)
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	for i, j := range c.Jobs {
		if err := c.Job(j).Validate(); err != nil {
			return fmt.Errorf("jobs[%d]: %w", i, err)
		}
	}
	return nil
}

func (s StepConfig) validate(name string) error {
	if s.Tolerance < 0 || s.Tolerance > sprites.MaxTolerance {
		return fmt.Errorf("%s.tolerance must be between 0 and %d, got %d", name, sprites.MaxTolerance, s.Tolerance)
	}
	return nil
}

// Step returns the settings section that applies to kind.
func (c Config) Step(kind pipeline.Kind) StepConfig {
	if kind == pipeline.KindSlice {
		return c.Slice
	}
	return c.Strip
}

// Job turns a job entry into a pipeline job, filling unset fields from the
// step and resize sections.
func (c Config) Job(j JobConfig) pipeline.Job {
	kind := pipeline.Kind(j.Kind)
	step := c.Step(kind)

	job := pipeline.Job{
		Kind:      kind,
		Input:     j.Input,
		Output:    j.Output,
		Reference: step.Reference.Reference,
		Tolerance: step.Tolerance,
		Width:     c.Resize.Width,
		Height:    c.Resize.Height,
	}
	if j.Reference != nil {
		job.Reference = j.Reference.Reference
	}
	if j.Tolerance != nil {
		job.Tolerance = *j.Tolerance
	}
	return job
}

// PipelineJobs converts every configured job.
func (c Config) PipelineJobs() []pipeline.Job {
	jobs := make([]pipeline.Job, 0, len(c.Jobs))
	for _, j := range c.Jobs {
		jobs = append(jobs, c.Job(j))
	}
	return jobs
}

// Path returns the default config file location.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "sheetcut", "config.yml")
}
