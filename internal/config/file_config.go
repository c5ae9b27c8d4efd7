package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/creasty/defaults"

	"gopkg.in/yaml.v3"
)

// FileConfig is the structure of the optional YAML configuration file. Values
// set here take precedence over their environment variable counterparts.
type FileConfig struct {
	AllowedEnvironments []string `yaml:"allowed_environments" default:"[]"` // AllowedEnvironments overrides SECRETS_ALLOWED_ENVIRONMENTS
	BasePrefix          string   `yaml:"base_prefix" default:""`            // BasePrefix overrides SECRETS_BASE_PREFIX
	ConfigCacheFile     string   `yaml:"config_cache_file" default:""`      // ConfigCacheFile overrides CONFIG_CACHE_FILE
}

func (c *FileConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	err := defaults.Set(c)
	if err != nil {
		return err
	}

	type Plain FileConfig

	if err := unmarshal((*Plain)(c)); err != nil {
		return err
	}

	return nil
}

// FromYAML reads the configuration file at f. A missing file is not an error;
// it returns a nil config so the environment-sourced values stay in effect.
func FromYAML(f string) (*FileConfig, error) {
	b, err := os.ReadFile(f)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))

	var c FileConfig

	err = dec.Decode(&c)
	if err != nil {
		if err == io.EOF {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to decode yaml: %w", err)
	}

	return &c, nil
}
