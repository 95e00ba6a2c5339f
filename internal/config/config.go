package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Error indicates a missing or invalid configuration setting. It is
// raised before any network activity happens.
type Error struct {
	Setting string
	Reason  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Setting, e.Reason)
}

// Phase describes one graded phase of the lab. Points and PenalizedPoints
// are the exact numeric labels the scoreboard renders for a full-credit and
// a penalized solution. They must match the lab instance or normalization
// will silently leave those cells unclassified.
type Phase struct {
	Name            string `yaml:"name"`
	Points          string `yaml:"points"`
	PenalizedPoints string `yaml:"penalized_points"`
}

// PenalizedValue returns the penalized label parsed as a float.
func (p Phase) PenalizedValue() (float64, error) {
	return strconv.ParseFloat(p.PenalizedPoints, 64)
}

// Histogram configures the score-distribution chart bins.
type Histogram struct {
	BinWidth float64 `yaml:"bin_width"`
	MaxScore float64 `yaml:"max_score"`
}

// Output configures where and how the three artifacts are written.
type Output struct {
	Dir string  `yaml:"dir"`
	DPI float64 `yaml:"dpi"`
}

// Config holds all attacklab-stats configuration.
type Config struct {
	ScoreboardURL string    `yaml:"scoreboard_url"`
	TitleMarker   string    `yaml:"title_marker"`
	Phases        []Phase   `yaml:"phases"`
	Histogram     Histogram `yaml:"histogram"`
	Output        Output    `yaml:"output"`
}

// Default returns the configuration for a stock Attack Lab: five phases
// worth 15/25/25/35/20 points with the usual 15% penalty values, and a
// 0..120 score histogram in bins of 5.
func Default() *Config {
	return &Config{
		TitleMarker: "<title>Attack Lab Scoreboard</title>",
		Phases: []Phase{
			{Name: "Phase 1", Points: "15", PenalizedPoints: "12.75"},
			{Name: "Phase 2", Points: "25", PenalizedPoints: "21.25"},
			{Name: "Phase 3", Points: "25", PenalizedPoints: "21.25"},
			{Name: "Phase 4", Points: "35", PenalizedPoints: "29.75"},
			{Name: "Phase 5", Points: "20", PenalizedPoints: "17"},
		},
		Histogram: Histogram{BinWidth: 5, MaxScore: 120},
		Output:    Output{Dir: ".", DPI: 150},
	}
}

// Load reads a YAML config file and merges it over the defaults. Fields
// absent from the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Setting: "config file", Reason: err.Error()}
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &Error{Setting: "config file", Reason: fmt.Sprintf("parsing YAML: %v", err)}
	}
	return cfg, nil
}

// Validate checks the configuration before the pipeline runs.
func (c *Config) Validate() error {
	if c.ScoreboardURL == "" {
		return &Error{Setting: "scoreboard_url", Reason: "required, no default (set --url or the config file)"}
	}
	if c.TitleMarker == "" {
		return &Error{Setting: "title_marker", Reason: "must not be empty"}
	}
	if len(c.Phases) == 0 {
		return &Error{Setting: "phases", Reason: "at least one phase is required"}
	}
	for _, p := range c.Phases {
		if p.Name == "" {
			return &Error{Setting: "phases", Reason: "phase name must not be empty"}
		}
		if _, err := strconv.ParseFloat(p.Points, 64); err != nil {
			return &Error{Setting: "phases", Reason: fmt.Sprintf("%s: points %q is not numeric", p.Name, p.Points)}
		}
		if _, err := p.PenalizedValue(); err != nil {
			return &Error{Setting: "phases", Reason: fmt.Sprintf("%s: penalized_points %q is not numeric", p.Name, p.PenalizedPoints)}
		}
	}
	if c.Histogram.BinWidth <= 0 {
		return &Error{Setting: "histogram.bin_width", Reason: "must be positive"}
	}
	if c.Histogram.MaxScore <= 0 {
		return &Error{Setting: "histogram.max_score", Reason: "must be positive"}
	}
	if c.Output.DPI <= 0 {
		return &Error{Setting: "output.dpi", Reason: "must be positive"}
	}
	if c.Output.Dir == "" {
		return &Error{Setting: "output.dir", Reason: "must not be empty"}
	}
	return nil
}

// PhaseNames returns the configured phase column names in declaration order.
func (c *Config) PhaseNames() []string {
	names := make([]string, len(c.Phases))
	for i, p := range c.Phases {
		names[i] = p.Name
	}
	return names
}
