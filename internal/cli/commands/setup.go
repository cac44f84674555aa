package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/okkero/Advent-of-Code-2023/internal/cli/config"
	"github.com/okkero/Advent-of-Code-2023/internal/cli/output"
	"github.com/okkero/Advent-of-Code-2023/internal/harness"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Renderer *output.Renderer
	Opener   harness.DirOpener
	Runner   *harness.Runner
}

// NewCommandContext creates a CommandContext from the loaded configuration.
func NewCommandContext(cmd *cobra.Command) *CommandContext {
	cfg := getConfig(cmd.Context())
	logger := config.GetLogger(cmd.Context())
	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)
	opener := harness.DirOpener{Dir: cfg.InputDir}

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Renderer: r,
		Opener:   opener,
		Runner:   harness.NewRunner(opener, logger),
	}
}

// getConfig returns the config loaded into ctx, then the last loaded config,
// falling back to environment variables and defaults.
func getConfig(ctx context.Context) *config.Config {
	if cfg, ok := config.FromContext(ctx); ok {
		return cfg
	}
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		InputDir:     getEnvOrDefault(config.EnvPrefix+"INPUT_DIR", config.DefaultInputDir),
		AnswersFile:  getEnvOrDefault(config.EnvPrefix+"ANSWERS_FILE", config.DefaultAnswersFile),
		OutputFormat: getEnvOrDefault(config.EnvPrefix+"OUTPUT", config.DefaultOutput),
		Verbose:      os.Getenv(config.EnvPrefix+"VERBOSE") == "true",
		LogLevel:     getEnvOrDefault(config.EnvPrefix+"LOG_LEVEL", config.DefaultLogLevel),
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
