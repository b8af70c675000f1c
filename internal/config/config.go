package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the unified application configuration
type Config struct {
	DataDir        string `yaml:"data_dir"`
	MediaDir       string `yaml:"media_dir"`
	RecordCommand  string `yaml:"record_command"`
	MoveThrottleMs int    `yaml:"move_throttle_ms"`
}

// Settings represents the config file structure
type Settings struct {
	DataDir        string `yaml:"data_dir,omitempty"`
	MediaDir       string `yaml:"media_dir,omitempty"`
	RecordCommand  string `yaml:"record_command,omitempty"`
	MoveThrottleMs int    `yaml:"move_throttle_ms,omitempty"`
}

// CLIFlags holds parsed CLI flags
type CLIFlags struct {
	DataDir string
}

// Load loads configuration with priority: CLI flags > env vars > config file > default
func Load(flags CLIFlags) (*Config, error) {
	cfg := &Config{
		RecordCommand:  "arecord",
		MoveThrottleMs: 50,
	}

	// Try loading config file first for base values
	configPath, err := getConfigPath()
	if err == nil {
		if fileConfig, err := loadConfigFile(configPath); err == nil {
			if fileConfig.DataDir != "" {
				cfg.DataDir = expandPath(fileConfig.DataDir)
			}
			if fileConfig.MediaDir != "" {
				cfg.MediaDir = expandPath(fileConfig.MediaDir)
			}
			if fileConfig.RecordCommand != "" {
				cfg.RecordCommand = fileConfig.RecordCommand
			}
			if fileConfig.MoveThrottleMs > 0 {
				cfg.MoveThrottleMs = fileConfig.MoveThrottleMs
			}
		}
	}

	// Priority 2: Environment variables override config file
	if envDir := os.Getenv("INKPAD_DIR"); envDir != "" {
		cfg.DataDir = expandPath(envDir)
	}

	// Priority 1: CLI flags override everything
	if flags.DataDir != "" {
		cfg.DataDir = expandPath(flags.DataDir)
	}

	// Default directory if nothing configured
	if cfg.DataDir == "" {
		defaultDir, err := GetDefaultDir()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = defaultDir
	}
	if cfg.MediaDir == "" {
		cfg.MediaDir = filepath.Join(cfg.DataDir, "media")
	}

	return cfg, nil
}

// GetDefaultDir returns the default data directory path
func GetDefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, "inkpad"), nil
}

// getConfigPath returns the path to the configuration file
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "inkpad", "config.yaml"), nil
}

// loadConfigFile loads configuration from the settings file
func loadConfigFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, err
	}

	return &settings, nil
}

// EnsureDirs ensures the data and media directories exist
func (c *Config) EnsureDirs() error {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return err
	}
	return os.MkdirAll(c.MediaDir, 0755)
}

// NotesFilePath returns the path of the note table file
func (c *Config) NotesFilePath() string {
	return filepath.Join(c.DataDir, "notes.jsonl")
}

// EnsureConfigFile creates the config file with defaults if it doesn't exist
func EnsureConfigFile() error {
	configPath, err := getConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	defaultDir, err := GetDefaultDir()
	if err != nil {
		return err
	}

	settings := Settings{
		DataDir:        defaultDir,
		RecordCommand:  "arecord",
		MoveThrottleMs: 50,
	}

	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[2:])
	}
	return path
}
