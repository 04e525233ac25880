package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// HostConfig describes how the host tool reaches the device console and
// which clock settings to apply on connect.
type HostConfig struct {
	// Serial console
	Device      string `yaml:"device"`
	Baud        int    `yaml:"baud"`
	ReadTimeout int    `yaml:"read_timeout_ms"`

	// Clock defaults
	Multiplier int `yaml:"multiplier"`
	Divider    int `yaml:"divider"`

	// StartOnConnect sends the start command as soon as the console opens
	StartOnConnect bool `yaml:"start_on_connect"`
}

// LoadConfig parses a YAML configuration file and returns a HostConfig
func LoadConfig(path string) (*HostConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML configuration data
func ParseConfig(data []byte) (*HostConfig, error) {
	var cfg HostConfig

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Apply defaults
	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in missing configuration values with sensible defaults
func applyDefaults(cfg *HostConfig) {
	if cfg.Device == "" {
		cfg.Device = "/dev/ttyACM0"
	}
	if cfg.Baud == 0 {
		cfg.Baud = 115200
	}
	if cfg.ReadTimeout == 0 {
		cfg.ReadTimeout = 100 // milliseconds
	}
	if cfg.Multiplier == 0 {
		cfg.Multiplier = 9 // 10MHz reference / 2 * 10 = 50MHz
	}
	if cfg.Divider == 0 {
		cfg.Divider = 2
	}
}

// DefaultHostConfig returns the configuration used when no file is given
func DefaultHostConfig() *HostConfig {
	cfg := &HostConfig{}
	applyDefaults(cfg)
	return cfg
}
