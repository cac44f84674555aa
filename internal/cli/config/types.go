// Package config provides configuration management for the aoc CLI.
//
// Values are layered from defaults, an aoc.yaml file, AOC_ environment
// variables and explicitly set flags, in increasing order of precedence.
package config

// Config holds all CLI configuration options.
type Config struct {
	InputDir     string `koanf:"input_dir"`
	AnswersFile  string `koanf:"answers_file"`
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
	LogLevel     string `koanf:"log_level"`

	// ProjectRoot is the directory relative paths were resolved against.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultInputDir    = "puzzle-input"
	DefaultAnswersFile = "answers.yaml"
	DefaultOutput      = "auto" // TTY=text, non-TTY=markdown
	DefaultLogLevel    = "warn"
)

// configFileNames are searched for in order.
var configFileNames = []string{"aoc.yaml", "aoc.yml"}

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "AOC_"
