package config

import (
	"github.com/thoreinstein/skillindex/internal/errors"
)

// Validate checks the logging settings.
// Every failure wraps errors.ErrInvalidConfig.
func Validate(l Logging) error {
	switch l.Format {
	case "text", "json":
	default:
		return errors.Wrapf(errors.ErrInvalidConfig, "unsupported log_format %q (valid: text, json)", l.Format)
	}

	if l.Verbosity < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity must be >= 0, got %d", l.Verbosity)
	}

	return nil
}
