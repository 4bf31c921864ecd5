package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadGuardrailsConfig reads the YAML config named by GUARDRAILS_CONFIG_PATH
// (default configs/guardrails.yaml). A missing file yields the built-in
// defaults; a present but invalid file is an error.
func LoadGuardrailsConfig() (*GuardrailsConfig, error) {
	path := os.Getenv("GUARDRAILS_CONFIG_PATH")
	if path == "" {
		path = "configs/guardrails.yaml"
	}

	var cfg GuardrailsConfig

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
