package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Output formats for driver responses
const (
	OutputText    = "text"
	OutputMsgpack = "msgpack"
)

// Config struct holds application configuration
type Config struct {
	InitialValues []int64 `json:"initial_values" yaml:"initial_values"`
	LogFile       string  `json:"log_file" yaml:"log_file"`
	Debug         bool    `json:"debug" yaml:"debug"`
	Output        string  `json:"output" yaml:"output"`
	Script        string  `json:"script" yaml:"script"`
}

var (
	configInstance *Config   // Singleton configInstance
	configOnce     sync.Once // Ensures thread-safe initialization
	configErr      error
)

// DataDir returns the directory holding the default config and log file.
func DataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".dlist"), nil
}

// LoadConfig initializes the singleton configInstance
func LoadConfig(filename string) (*Config, error) {
	configOnce.Do(func() {
		configInstance, configErr = ReadConfig(filename)
	})
	return configInstance, configErr
}

// ReadConfig reads and parses a config file. A missing file yields the
// defaults. Files ending in .yaml or .yml are parsed as YAML, anything
// else as JSON.
func ReadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return getDefaultConfig(), nil
		}
		return nil, err
	}

	config := &Config{}
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	default:
		err = json.Unmarshal(data, config)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filename, err)
	}

	applyDefaults(config)
	return config, nil
}

// GetConfig returns the singleton config configInstance
func GetConfig() (*Config, error) {
	if configInstance == nil {
		return nil, errors.New("Config not initialized. Call LoadConfig() first")
	}
	return configInstance, nil
}

// getDefaultConfig returns default config values
func getDefaultConfig() *Config {
	return &Config{
		InitialValues: []int64{0, 100, 300},
		Output:        OutputText,
	}
}

// ValidateOutput rejects output formats other than text and msgpack
func ValidateOutput(output string) error {
	if output != OutputText && output != OutputMsgpack {
		return fmt.Errorf("invalid output format %q: want %s or %s", output, OutputText, OutputMsgpack)
	}
	return nil
}

// applyDefaults ensures missing values get defaults
func applyDefaults(config *Config) {
	if config.InitialValues == nil {
		config.InitialValues = []int64{0, 100, 300}
	}
	if ValidateOutput(config.Output) != nil {
		config.Output = OutputText
	}
}
