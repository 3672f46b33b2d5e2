package platform

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config mirrors the optional corkboard.yaml file.
type Config struct {
	// Endpoint is the full URL of the remote board document.
	Endpoint string `yaml:"endpoint"`

	DebounceDelay   Duration `yaml:"debounce_delay"`
	PollInterval    Duration `yaml:"poll_interval"`
	MinSaveInterval Duration `yaml:"min_save_interval"`

	// ThemePath overrides the default theme preference file location.
	ThemePath string `yaml:"theme_path"`
}

// Duration is a time.Duration that unmarshals from YAML scalars like
// "400ms" or "5s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// LoadConfig reads a YAML config file. A missing file yields the zero
// Config: every field falls back to its default.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Options translates the non-zero fields of the config into engine
// options.
func (c Config) Options() []Option {
	var opts []Option
	if c.DebounceDelay > 0 {
		opts = append(opts, WithDebounceDelay(time.Duration(c.DebounceDelay)))
	}
	if c.PollInterval > 0 {
		opts = append(opts, WithPollInterval(time.Duration(c.PollInterval)))
	}
	if c.MinSaveInterval > 0 {
		opts = append(opts, WithMinSaveInterval(time.Duration(c.MinSaveInterval)))
	}
	return opts
}
