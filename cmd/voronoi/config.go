package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Settings that can be kept in a YAML file instead of being passed as flags.
// Flags override the file.
type Config struct {
	Strict  bool         `yaml:"strict"`
	Verbose bool         `yaml:"verbose"`
	Render  RenderConfig `yaml:"render"`
}

type RenderConfig struct {
	// PNG output path. Nothing is rendered if this is empty.
	Path    string  `yaml:"path"`
	Scale   float64 `yaml:"scale"`
	Labels  bool    `yaml:"labels"`
	Preview bool    `yaml:"preview"`
}

func loadConfig(path string) (Config, error) {
	var config Config
	file, err := os.Open(path)
	if err != nil {
		return config, errors.Wrap(err, "reading config")
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}
	return config, nil
}
