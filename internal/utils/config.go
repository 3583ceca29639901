package utils

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML config. Flags set on the command line take
// precedence over every field here.
type FileConfig struct {
	Timeout         time.Duration `yaml:"timeout"`
	KATimeout       time.Duration `yaml:"keep_alive_timeout"`
	UserAgent       string        `yaml:"user_agent"`
	DefaultFilename string        `yaml:"default_filename"`
	Debug           bool          `yaml:"debug"`
}

func ReadConfig(path string) (FileConfig, error) {
	var cfg FileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("error reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("error parsing config file: %w", err)
	}
	if cfg.Timeout < 0 || cfg.KATimeout < 0 {
		return cfg, fmt.Errorf("error parsing config file: negative timeout")
	}
	return cfg, nil
}
