package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// configKey is used to store the loaded config in context.
type configKey struct{}

// maxUpwardSearchLevels limits how far up the directory tree to search for config files.
const maxUpwardSearchLevels = 10

// pathFlags are flags whose values are paths relative to the working
// directory rather than to the project root.
var pathFlags = map[string]string{
	"input-dir":    "input_dir",
	"answers-file": "answers_file",
}

var (
	k              = koanf.New(".")
	configFileUsed string
	currentConfig  *Config
)

// configIn returns the config file inside dir, or "".
func configIn(dir string) string {
	for _, name := range configFileNames {
		candidate := filepath.Join(dir, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return ""
}

// findConfigUpward searches upward from startDir for a config file.
func findConfigUpward(startDir string) string {
	dir := startDir
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if path := configIn(dir); path != "" {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

// ResetConfig resets the koanf instance. Used for testing.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
	currentConfig = nil
}

// LoadConfig loads configuration from file, environment variables, and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
func LoadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k = koanf.New(".")

	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"input_dir":    DefaultInputDir,
		"answers_file": DefaultAnswersFile,
		"output":       DefaultOutput,
		"verbose":      false,
		"log_level":    DefaultLogLevel,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file: explicit, else searched upward from CWD
	configFileUsed = cfgFile
	if configFileUsed == "" {
		configFileUsed = findConfigUpward(cwd)
	}
	projectRoot := cwd
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
		if abs, err := filepath.Abs(configFileUsed); err == nil {
			projectRoot = filepath.Dir(abs)
		}
	}

	// 3. Environment: AOC_INPUT_DIR -> input_dir
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only those explicitly set
	flagPaths := make(map[string]string)
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if _, ok := pathFlags[f.Name]; ok {
				if abs, err := filepath.Abs(f.Value.String()); err == nil {
					flagPaths[key] = abs
				}
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	// 5. Decode
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// 6. Paths given as flags are relative to CWD, everything else to the
	// project root.
	cfg.ProjectRoot = projectRoot
	if p, ok := flagPaths["input_dir"]; ok {
		cfg.InputDir = p
	} else {
		cfg.InputDir = resolvePathRelativeTo(cfg.InputDir, projectRoot)
	}
	if p, ok := flagPaths["answers_file"]; ok {
		cfg.AnswersFile = p
	} else {
		cfg.AnswersFile = resolvePathRelativeTo(cfg.AnswersFile, projectRoot)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	currentConfig = &cfg
	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// GetCurrentConfig returns the configuration loaded by the last LoadConfig.
func GetCurrentConfig() *Config {
	return currentConfig
}

// NewLogger builds a text logger writing to w at the configured level.
// Verbose forces debug.
func NewLogger(cfg *Config, w io.Writer) *slog.Logger {
	level, err := ParseLogLevel(cfg.LogLevel)
	if err != nil {
		level = slog.LevelWarn
	}
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// WithConfig returns a context carrying cfg.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext retrieves the config stored by WithConfig.
func FromContext(ctx context.Context) (*Config, bool) {
	if ctx == nil {
		return nil, false
	}
	cfg, ok := ctx.Value(configKey{}).(*Config)
	return cfg, ok && cfg != nil
}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}
