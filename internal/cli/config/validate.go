package config

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/gaphor/iconname/internal/cli/output"
	"github.com/gaphor/iconname/pkg/uml"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	var errs []error

	if !output.Mode(c.OutputFormat).Valid() {
		errs = append(errs, fmt.Errorf("output: unknown format %q (want one of %s)", c.OutputFormat, strings.Join(output.Modes, ", ")))
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	names := make([]string, 0, len(c.Overrides))
	for name := range c.Overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, ok := uml.Lookup(name); !ok {
			errs = append(errs, fmt.Errorf("overrides: unknown element type %q", name))
			continue
		}
		if strings.TrimSpace(c.Overrides[name]) == "" {
			errs = append(errs, fmt.Errorf("overrides: empty icon name for %q", name))
		}
	}

	return errors.Join(errs...)
}

// ParseLogLevel parses debug, info, warn or error. The empty string is warn.
func ParseLogLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelWarn, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return level, nil
}
