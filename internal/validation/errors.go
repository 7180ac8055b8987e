// Package validation holds the configuration error type shared by the
// generation pipeline.
package validation

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every error caused by missing or invalid
// generation input. Use errors.Is to detect it.
var ErrConfiguration = errors.New("configuration error")

// ConfigError describes a single invalid input field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// Errorf builds a ConfigError for field with a formatted reason.
func Errorf(field, format string, args ...interface{}) error {
	return &ConfigError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

// IsConfigError reports whether err was caused by invalid configuration.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrConfiguration)
}
