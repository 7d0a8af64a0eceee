// Package config provides configuration types and defaults for riffdag.
package config

// Config holds all configuration for riffdag.
type Config struct {
	Graph       GraphConfig       `yaml:"graph" mapstructure:"graph"`
	UI          UIConfig          `yaml:"ui" mapstructure:"ui"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
}

// GraphConfig holds ingestion and traversal settings.
type GraphConfig struct {
	Depth         int `yaml:"depth" mapstructure:"depth"`                   // Neighborhood traversal depth
	WarnThreshold int `yaml:"warn_threshold" mapstructure:"warn_threshold"` // Soft node-count warning threshold (0 = disabled)
}

// UIConfig holds layout settings for the three-pane view.
type UIConfig struct {
	ListWidthPercent    int `yaml:"list_width_percent" mapstructure:"list_width_percent"`       // Width share of the node list pane
	DetailHeightPercent int `yaml:"detail_height_percent" mapstructure:"detail_height_percent"` // Height share of the detail pane on the right
}

// LogRotationConfig holds settings for the TUI debug log
// (lumberjack-based automatic rotation).
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// PathsConfig holds file paths.
type PathsConfig struct {
	Log string `yaml:"log" mapstructure:"log"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Graph: GraphConfig{
			Depth:         2,
			WarnThreshold: 20000,
		},
		UI: UIConfig{
			ListWidthPercent:    32,
			DetailHeightPercent: 45,
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
		Paths: PathsConfig{
			Log: ".riffdag/riffdag.log",
		},
	}
}

// Validate clamps out-of-range values back to usable defaults. Bad layout
// percentages would make panes collapse to zero width, so they fall back
// rather than error.
func (c *Config) Validate() {
	if c.Graph.Depth < 1 {
		c.Graph.Depth = 2
	}
	if c.Graph.WarnThreshold < 0 {
		c.Graph.WarnThreshold = 0
	}
	if c.UI.ListWidthPercent < 10 || c.UI.ListWidthPercent > 90 {
		c.UI.ListWidthPercent = 32
	}
	if c.UI.DetailHeightPercent < 10 || c.UI.DetailHeightPercent > 90 {
		c.UI.DetailHeightPercent = 45
	}
}
