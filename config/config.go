package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"

	"staff-trainer/trainer"
)

// MIDIConfig controls controller hot-plug
type MIDIConfig struct {
	Disabled     bool          `yaml:"disabled,omitempty"`
	PollInterval time.Duration `yaml:"poll_interval,omitempty"`
}

// UIConfig stores UI preferences
type UIConfig struct {
	LastCourse string `yaml:"last_course,omitempty"`
}

// Config is the main configuration structure
type Config struct {
	// Course to start with; empty shows the demo scale first
	Course        string     `yaml:"course,omitempty"`
	NotesPerRound int        `yaml:"notes_per_round,omitempty"`
	Seed          uint64     `yaml:"seed,omitempty"` // 0 = random
	Palette       string     `yaml:"palette,omitempty"`
	Debug         bool       `yaml:"debug,omitempty"`
	MIDI          MIDIConfig `yaml:"midi,omitempty"`
	UI            UIConfig   `yaml:"ui,omitempty"`

	path string
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		NotesPerRound: trainer.DefaultNotes,
		MIDI: MIDIConfig{
			PollInterval: time.Second,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "staff-trainer"), nil
}

// ConfigPath returns the full path to config.yaml
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config at path (empty = ConfigPath), or returns defaults if not found
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			cfg.path = path
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.path = path
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &cfg, nil
}

func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.NotesPerRound == 0 {
		c.NotesPerRound = def.NotesPerRound
	}
	if c.MIDI.PollInterval == 0 {
		c.MIDI.PollInterval = def.MIDI.PollInterval
	}
}

// Validate rejects values the trainer cannot run with
func (c *Config) Validate() error {
	if c.NotesPerRound < 1 || c.NotesPerRound > trainer.MaxNotes {
		return fmt.Errorf("notes_per_round must be between 1 and %d, got %d", trainer.MaxNotes, c.NotesPerRound)
	}
	if c.Course != "" {
		if _, err := trainer.ParseCourse(c.Course); err != nil {
			return err
		}
	}
	if c.MIDI.PollInterval < 0 {
		return fmt.Errorf("midi.poll_interval must not be negative")
	}
	return nil
}

// StartCourse returns the course to open with: the configured one, else the
// last course used. False means start on the demo scale.
func (c *Config) StartCourse() (trainer.Course, bool) {
	label := c.Course
	if label == "" {
		label = c.UI.LastCourse
	}
	if label == "" {
		return 0, false
	}
	course, err := trainer.ParseCourse(label)
	if err != nil {
		return 0, false
	}
	return course, true
}

// Path returns where the config is loaded from and saved to
func (c *Config) Path() string {
	return c.path
}

// Save writes the config to disk
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// RememberCourse records course as ui.last_course in the file at path,
// leaving every other value as the file has it
func RememberCourse(path, course string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	cfg.UI.LastCourse = course
	return cfg.Save()
}
