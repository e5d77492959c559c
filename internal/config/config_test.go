package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/JPM1118/sheetcut/internal/pipeline"
	"github.com/JPM1118/sheetcut/internal/sprites"
	"gopkg.in/yaml.v3"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Strip.Tolerance != 40 {
		t.Errorf("default strip.tolerance = %d, want 40", cfg.Strip.Tolerance)
	}
	if cfg.Slice.Tolerance != 20 {
		t.Errorf("default slice.tolerance = %d, want 20", cfg.Slice.Tolerance)
	}
	if cfg.Strip.Reference.Reference != sprites.Fixed(sprites.Black) {
		t.Errorf("default strip.reference = %s, want #000000", cfg.Strip.Reference)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("default log_level = %q, want info", cfg.LogLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got: %v", err)
	}
}

func TestLoadFrom_MissingFile(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/config.yml")
	if err != nil {
		t.Fatalf("missing file should not error, got: %v", err)
	}
	if cfg.Strip.Tolerance != 40 {
		t.Errorf("missing file should use defaults, got strip.tolerance = %d", cfg.Strip.Tolerance)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	path := writeConfig(t, `
strip:
  reference: sample-top-left
  tolerance: 50
slice:
  reference: "#102030"
  tolerance: 15
resize:
  width: 128
  height: 128
log_level: debug
jobs:
  - kind: strip
    input: in/warrior.png
    output: out/warrior.png
  - kind: slice
    input: in/wizard_sheet.png
    output: out/wizard_pose
    tolerance: 5
    reference: white
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("valid file should not error, got: %v", err)
	}
	if !cfg.Strip.Reference.Sample {
		t.Error("strip.reference should sample the top-left pixel")
	}
	if cfg.Strip.Tolerance != 50 {
		t.Errorf("strip.tolerance = %d, want 50", cfg.Strip.Tolerance)
	}
	if cfg.Slice.Reference.Color != (sprites.RGB{R: 0x10, G: 0x20, B: 0x30}) {
		t.Errorf("slice.reference = %s, want #102030", cfg.Slice.Reference)
	}
	if cfg.Resize.Width != 128 || cfg.Resize.Height != 128 {
		t.Errorf("resize = %+v, want 128x128", cfg.Resize)
	}
	if len(cfg.Jobs) != 2 {
		t.Fatalf("jobs = %d, want 2", len(cfg.Jobs))
	}

	jobs := cfg.PipelineJobs()
	strip := jobs[0]
	if strip.Kind != pipeline.KindStrip || strip.Tolerance != 50 || !strip.Reference.Sample {
		t.Errorf("strip job = %+v, want section defaults applied", strip)
	}
	if strip.Width != 128 || strip.Height != 128 {
		t.Errorf("strip job resize = %dx%d, want 128x128", strip.Width, strip.Height)
	}
	slice := jobs[1]
	if slice.Kind != pipeline.KindSlice || slice.Output != "out/wizard_pose" {
		t.Errorf("slice job = %+v", slice)
	}
	if slice.Tolerance != 5 {
		t.Errorf("slice job tolerance = %d, want override 5", slice.Tolerance)
	}
	if slice.Reference != sprites.Fixed(sprites.RGB{R: 255, G: 255, B: 255}) {
		t.Errorf("slice job reference = %s, want override white", slice.Reference)
	}
}

func TestLoadFrom_PartialFile(t *testing.T) {
	path := writeConfig(t, `
strip:
  tolerance: 60
`)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("partial file should not error, got: %v", err)
	}
	if cfg.Strip.Tolerance != 60 {
		t.Errorf("strip.tolerance = %d, want 60", cfg.Strip.Tolerance)
	}
	// Partial file: reference and slice section keep their defaults
	if cfg.Strip.Reference.Reference != sprites.Fixed(sprites.Black) {
		t.Errorf("strip.reference should stay black, got %s", cfg.Strip.Reference)
	}
	if cfg.Slice.Tolerance != 20 {
		t.Errorf("slice.tolerance should be default 20, got %d", cfg.Slice.Tolerance)
	}
}

func TestLoadFrom_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"tolerance too high", "strip:\n  tolerance: 800\n"},
		{"negative tolerance", "slice:\n  tolerance: -1\n"},
		{"bad reference", "strip:\n  reference: mauve-ish\n"},
		{"negative resize", "resize:\n  width: -2\n"},
		{"bad log level", "log_level: chatty\n"},
		{"unknown job kind", "jobs:\n  - kind: blur\n    input: a.png\n"},
		{"job without input", "jobs:\n  - kind: strip\n"},
		{"slice job without prefix", "jobs:\n  - kind: slice\n    input: a.png\n"},
		{"job tolerance out of range", "jobs:\n  - kind: strip\n    input: a.png\n    tolerance: 1000\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(writeConfig(t, tt.data))
			if err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoadFrom_MalformedYAML(t *testing.T) {
	_, err := LoadFrom(writeConfig(t, "{{not yaml"))
	if err == nil {
		t.Fatal("malformed YAML should return error")
	}
}

func TestReference_MarshalYAML(t *testing.T) {
	out, err := yaml.Marshal(Defaults().Strip)
	if err != nil {
		t.Fatal(err)
	}
	var back StepConfig
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("unmarshal %q: %v", out, err)
	}
	if back.Reference != Defaults().Strip.Reference {
		t.Errorf("reference = %s after YAML cycle, want #000000", back.Reference)
	}
}

func TestPath_XDGOverride(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	path := Path()
	want := "/custom/config/sheetcut/config.yml"
	if path != want {
		t.Errorf("Path() = %q, want %q", path, want)
	}
}
