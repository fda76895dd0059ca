package config

import (
	"fmt"
	"time"
)

// Config represents a prospector.yaml configuration file.
// All values are optional and act as defaults; CLI flags always override
// config values.
type Config struct {
	// SFBin is the sfdx executable to invoke.
	SFBin string `yaml:"sf_bin"`
	// TargetOrg is the default org alias.
	TargetOrg string `yaml:"target_org"`
	// Fields is the default field list for one-shot searches.
	Fields []string `yaml:"fields"`
	// Timeout bounds a single sfdx invocation.
	Timeout Duration `yaml:"timeout"`
	// LogFile is the append-only log sink path.
	LogFile string `yaml:"log_file"`
	// HistoryFile is the search history journal path.
	HistoryFile string `yaml:"history_file"`
	// NoHistory disables the search history journal.
	NoHistory bool `yaml:"no_history"`
}

// Duration wraps time.Duration for YAML string parsing (e.g. "30s", "2m").
type Duration struct {
	time.Duration
}

// UnmarshalYAML parses a duration string like "30s" or "1m30s".
func (d *Duration) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	d.Duration = parsed
	return nil
}
