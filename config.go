package knot

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures a Saver and the window Run opens for it. Start from
// DefaultConfig and override fields, or load a YAML file with LoadConfig.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"` // ticks per second, 0 = ebiten default

	Curves          int     `yaml:"curves"`          // number of curve slots
	Resolution      int     `yaml:"resolution"`      // samples per window for new curves
	MaxInitialSpeed float64 `yaml:"maxInitialSpeed"` // upper bound of each random velocity component
	Seed            uint64  `yaml:"seed"`            // 0 picks a random seed

	HuePeriod   float64 `yaml:"huePeriod"` // seconds per full trip around the color wheel
	PointRadius float64 `yaml:"pointRadius"`
	LineWidth   float64 `yaml:"lineWidth"`
	Background  Color   `yaml:"background"`

	ShowHelp      bool   `yaml:"showHelp"`
	ShowFPS       bool   `yaml:"showFPS"`
	Debug         bool   `yaml:"debug"`
	ScreenshotDir string `yaml:"screenshotDir"`
}

// DefaultConfig returns the settings of the classic screensaver: an 800x600
// window, 35 samples per window and a hue that moves one degree per tick.
func DefaultConfig() Config {
	return Config{
		Title:           "MyScreenSaver",
		Width:           800,
		Height:          600,
		TPS:             60,
		Curves:          5,
		Resolution:      DefaultResolution,
		MaxInitialSpeed: 2,
		HuePeriod:       6,
		PointRadius:     3,
		LineWidth:       3,
		Background:      ColorBlack,
		ScreenshotDir:   "screenshots",
	}
}

// Validate reports the first setting that cannot drive a Saver.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("invalid window size %dx%d", c.Width, c.Height)
	case c.TPS < 0:
		return fmt.Errorf("invalid tps %d", c.TPS)
	case c.Curves < 1:
		return fmt.Errorf("invalid curve count %d", c.Curves)
	case c.Resolution < 1:
		return fmt.Errorf("invalid resolution %d", c.Resolution)
	case c.MaxInitialSpeed < 0:
		return fmt.Errorf("invalid max initial speed %g", c.MaxInitialSpeed)
	case c.HuePeriod <= 0:
		return fmt.Errorf("invalid hue period %g", c.HuePeriod)
	case c.LineWidth <= 0:
		return errors.New("line width must be positive")
	}
	return nil
}

// ParseConfig decodes YAML on top of DefaultConfig, so omitted keys keep
// their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return ParseConfig(data)
}
