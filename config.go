package dircache

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads and validates the yaml config file located at path
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fail to read config file %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates the provided yaml config
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("fail to decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate makes sure all directories have a unique non empty name
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Directories))
	for i, directory := range c.Directories {
		name := strings.TrimSpace(directory.Name)
		if name == "" {
			return fmt.Errorf("directory at index %d: %w", i, ErrDirectoryNameRequired)
		}
		if _, ok := seen[name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateDirectory, name)
		}
		seen[name] = struct{}{}
	}
	return nil
}

// Timeout returns CacheTimeout as time.Duration
func (d DirectoryConfig) Timeout() time.Duration {
	return time.Duration(d.CacheTimeout) * time.Second
}
