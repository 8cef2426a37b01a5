package config

import (
	"fmt"
	"strings"

	"github.com/input-output-hk/git-fixme/errors"
)

// Validate checks that the configuration can drive a scan.
// Lines are matched without their terminator, so a key containing a line
// break could never match.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New(errors.CodeInvalidConfig, "configuration is nil")
	}
	if len(c.Keys) == 0 {
		return errors.New(errors.CodeInvalidConfig, "at least one marker key is required")
	}

	var invalid []string
	for _, key := range c.Keys {
		if key == "" || strings.ContainsAny(key, "\r\n") {
			invalid = append(invalid, fmt.Sprintf("%q", key))
		}
	}
	if len(invalid) > 0 {
		return errors.New(errors.CodeInvalidConfig,
			fmt.Sprintf("invalid marker keys: %s", strings.Join(invalid, ", ")))
	}

	return nil
}
