package config

import (
	"fmt"
	"os"

	"github.com/pthm/ivcoach/internal/classifier"
	"github.com/pthm/ivcoach/internal/coach"
	"github.com/pthm/ivcoach/internal/suggester"
	"gopkg.in/yaml.v3"
)

// defaultPaths are probed, in order, when no config path is given
var defaultPaths = []string{".ivcoach.yaml", "ivcoach.yaml"}

// Config is the coach configuration loaded from YAML. A missing file is
// not an error; every section has working defaults.
type Config struct {
	Coaching struct {
		Preset    string          `yaml:"preset"`
		Overrides coach.Overrides `yaml:"overrides"`
	} `yaml:"coaching"`

	Suggestions struct {
		Methodology string `yaml:"methodology"`
		Max         int    `yaml:"max"`
	} `yaml:"suggestions"`

	Classifier struct {
		ClosedRunThreshold int `yaml:"closed_run_threshold"`
	} `yaml:"classifier"`

	Cultural *coach.CulturalContext `yaml:"cultural"`

	Emotion struct {
		URL string `yaml:"url"`
	} `yaml:"emotion"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	cfg.Coaching.Preset = string(coach.PresetBalanced)
	cfg.Suggestions.Methodology = string(suggester.MethodologyGeneral)
	cfg.Suggestions.Max = suggester.DefaultMaxSuggestions
	cfg.Classifier.ClosedRunThreshold = classifier.DefaultClosedRunThreshold
	return cfg
}

// Load reads configuration from path, or probes the default locations
// when path is empty. An explicitly named file must exist; absent
// default files yield the built-in configuration.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}
	for _, p := range defaultPaths {
		if _, err := os.Stat(p); err == nil {
			return loadFile(p)
		}
	}
	return Default(), nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Thresholds builds the effective thresholds: the named preset with the
// configured overrides applied, then cultural adjustment when a
// cultural context is configured. Out-of-range values clamp, so a bad
// config file can never produce an invalid gate.
func (c *Config) Thresholds() coach.Thresholds {
	t := coach.ForPreset(coach.Preset(c.Coaching.Preset)).With(c.Coaching.Overrides)
	if c.Cultural != nil {
		cc := *c.Cultural
		// Unset cultural fields mean "no adjustment", not zero
		if cc.SilenceToleranceSeconds == 0 {
			cc.SilenceToleranceSeconds = 5
		}
		if cc.QuestionPacingMultiplier == 0 {
			cc.QuestionPacingMultiplier = 1
		}
		t = t.AdjustForCulture(cc)
	}
	return t
}

// Methodology returns the configured suggester methodology
func (c *Config) Methodology() suggester.Methodology {
	return suggester.Methodology(c.Suggestions.Methodology)
}
