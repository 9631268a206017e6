package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Validator is implemented by configuration types that can check
// themselves after loading.
type Validator interface {
	Validate() error
}

// Load reads filename, expands environment variables and decodes the YAML
// over target, so fields the file omits keep their current values.
func Load[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", filename, err)
	}
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), target); err != nil {
		return fmt.Errorf("config: parse %s: %w", filename, err)
	}
	if validator, ok := any(target).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return fmt.Errorf("config: validation failed: %w", err)
		}
	}
	return nil
}

// LoadOptional behaves like Load but leaves target untouched, apart from
// validation, when filename does not exist.
func LoadOptional[T any](filename string, target *T) error {
	if filename != "" {
		if _, err := os.Stat(filename); err == nil {
			return Load(filename, target)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config: stat %s: %w", filename, err)
		}
	}
	if validator, ok := any(target).(Validator); ok {
		if err := validator.Validate(); err != nil {
			return fmt.Errorf("config: validation failed: %w", err)
		}
	}
	return nil
}
