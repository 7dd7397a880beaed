package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/handiism/album-catalog/internal/catalog"
	ioutils "github.com/handiism/album-catalog/internal/io"
	"github.com/handiism/album-catalog/internal/view"
)

// AppName names the configuration and state directories.
const AppName = "album-catalog"

// Settings holds all configuration options.
type Settings struct {
	// Data settings
	DataSource string `yaml:"data_source" validate:"required,source"`
	StateDir   string `yaml:"state_dir" validate:"required"`

	// Interaction timing
	SearchDebounce time.Duration `yaml:"search_debounce" validate:"gte=0s"`
	RevealStagger  time.Duration `yaml:"reveal_stagger" validate:"gte=0s"`

	// Cover art settings
	ShowCovers          bool `yaml:"show_covers"`
	CoverMaxWidth       int  `yaml:"cover_max_width" validate:"gte=4,lte=80"`
	MaxConcurrentCovers int  `yaml:"max_concurrent_covers" validate:"gte=1,lte=32"`

	// HTTP settings
	RequestTimeout time.Duration `yaml:"request_timeout" validate:"gt=0s"`
	UserAgent      string        `yaml:"user_agent"`

	// Logging
	LogLevel string `yaml:"log_level" validate:"oneof=trace debug info warn error"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		DataSource: catalog.DefaultSource,
		StateDir:   defaultStateDir(),

		SearchDebounce: 300 * time.Millisecond,
		RevealStagger:  view.DefaultStagger,

		ShowCovers:          true,
		CoverMaxWidth:       24,
		MaxConcurrentCovers: 4,

		RequestTimeout: 30 * time.Second,
		UserAgent:      "AlbumCatalog",

		LogLevel: "info",
	}
}

// DefaultPath returns the settings file location, ~/.config/album-catalog/config.yaml
// on Linux.
func DefaultPath() string {
	return filepath.Join(userConfigDir(), AppName, "config.yaml")
}

func defaultStateDir() string {
	return filepath.Join(userConfigDir(), AppName)
}

func userConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return dir
}

// PreferencesPath is the durable key-value store holding UI preferences.
func (s *Settings) PreferencesPath() string {
	return filepath.Join(s.StateDir, "preferences.db")
}

// LogPath is the file the terminal UI logs to.
func (s *Settings) LogPath() string {
	return filepath.Join(s.StateDir, "catalog.log")
}

// Load reads settings from a YAML file and validates them.
//
// A missing file is not an error: defaults are returned. Keys absent from
// the file keep their default values.
func Load(path string) (*Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("read settings: %w", err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a YAML file atomically.
func (s *Settings) Save(path string) error {
	if err := s.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	return ioutils.WriteFileAtomic(path, data)
}
