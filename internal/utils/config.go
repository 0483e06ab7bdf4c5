package utils

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// List implementations a Config can select.
const (
	ListKindDoubly = "doubly"
	ListKindSingly = "singly"
)

const defaultPort = 6379

// Config struct holds application configuration
type Config struct {
	Port     int    `yaml:"port"`
	ListKind string `yaml:"list_kind"`
	LogFile  string `yaml:"log_file"`
	Debug    bool   `yaml:"debug"`
}

var (
	configInstance *Config
	configMu       sync.RWMutex
)

// LoadConfig reads the config file, applies defaults and stores the result
// as the process configuration. A missing file yields the default config.
func LoadConfig(filename string) (*Config, error) {
	config, err := loadConfigFromFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", filename, err)
	}

	configMu.Lock()
	configInstance = config
	configMu.Unlock()
	return config, nil
}

// loadConfigFromFile reads and parses the config file
func loadConfigFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, err
	}

	applyDefaults(config)
	return config, nil
}

// GetConfig returns the configuration stored by LoadConfig
func GetConfig() (*Config, error) {
	configMu.RLock()
	defer configMu.RUnlock()
	if configInstance == nil {
		return nil, errors.New("config not initialized, call LoadConfig() first")
	}
	return configInstance, nil
}

// DefaultConfig returns default config values
func DefaultConfig() *Config {
	return &Config{
		Port:     defaultPort,
		ListKind: ListKindDoubly,
	}
}

// applyDefaults ensures missing values get defaults
func applyDefaults(config *Config) {
	if config.Port <= 0 || config.Port > 65535 {
		config.Port = defaultPort
	}
	if config.ListKind != ListKindDoubly && config.ListKind != ListKindSingly {
		config.ListKind = ListKindDoubly
	}
}
