package config

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/okkero/Advent-of-Code-2023/internal/cli/output"
)

// ParseLogLevel converts debug|info|warn|error to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q (want debug, info, warn or error)", s)
	}
	return level, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return fmt.Errorf("input_dir is required")
	}
	if !slices.Contains(output.Modes(), strings.ToLower(c.OutputFormat)) {
		return fmt.Errorf("invalid output %q (want %s)", c.OutputFormat, strings.Join(output.Modes(), ", "))
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ValidateInputDir checks that the input directory exists.
func (c *Config) ValidateInputDir() error {
	info, err := os.Stat(c.InputDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("input directory does not exist: %s\nHint: Create the directory or use --input-dir to specify a different path", c.InputDir)
	}
	if err != nil {
		return fmt.Errorf("failed to stat input directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("input path is not a directory: %s", c.InputDir)
	}
	return nil
}
