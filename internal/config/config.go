package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds all application configuration
type Config struct {
	// Window geometry
	Window WindowConfig `json:"window"`

	// Custom chrome parameters
	Chrome ChromeConfig `json:"chrome"`
}

// WindowConfig holds the main window geometry settings
type WindowConfig struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	MinWidth  int     `json:"min_width"`
	MinHeight int     `json:"min_height"`
	Opacity   float64 `json:"opacity"`
}

// ChromeConfig holds the custom chrome parameters
type ChromeConfig struct {
	BorderWidth    int  `json:"border_width"`     // logical resize border thickness
	TitleBarHeight int  `json:"title_bar_height"` // fallback draggable strip height
	CornerRadius   int  `json:"corner_radius"`    // logical rounded corner radius
	DebounceMs     int  `json:"debounce_ms"`      // corner reapplication interval
	BlurBehind     bool `json:"blur_behind"`
}

// Service manages configuration persistence
type Service struct {
	config   *Config
	filePath string
}

// New creates a new config service
func New() (*Service, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".acryl")
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.json")

	service := &Service{
		filePath: configPath,
		config:   getDefaultConfig(),
	}

	// Load existing config if it exists, otherwise create a default config file
	if _, err := os.Stat(configPath); err == nil {
		if err := service.Load(); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	} else {
		if err := service.Save(); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	return service, nil
}

// getDefaultConfig returns the default configuration
func getDefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     800,
			Height:    500,
			MinWidth:  400,
			MinHeight: 240,
			Opacity:   0.95,
		},
		Chrome: ChromeConfig{
			BorderWidth:    8,
			TitleBarHeight: 30,
			CornerRadius:   15,
			DebounceMs:     50,
			BlurBehind:     true,
		},
	}
}

// Get returns the current configuration
func (s *Service) Get() *Config {
	return s.config
}

// Set updates the configuration
func (s *Service) Set(config *Config) {
	s.config = config
}

// Load loads configuration from file
func (s *Service) Load() error {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return err
	}

	return json.Unmarshal(data, s.config)
}

// Save saves configuration to file
func (s *Service) Save() error {
	data, err := json.MarshalIndent(s.config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0644)
}

// Path returns the full path to the configuration file
func (s *Service) Path() string {
	return s.filePath
}

// UpdateWindow updates window configuration
func (s *Service) UpdateWindow(window WindowConfig) error {
	s.config.Window = window
	return s.Save()
}

// UpdateChrome updates chrome configuration
func (s *Service) UpdateChrome(chrome ChromeConfig) error {
	s.config.Chrome = chrome
	return s.Save()
}
