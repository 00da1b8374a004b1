package logx

import (
	"os"

	"github.com/jfk9w-go/flu"
)

type (
	// A single logger config. Defines the minimal level and outputs.
	LoggerConfig struct {

		// Level is the lowest log level to be printed.
		Level string `yaml:"level"`

		// Output is the list of output log files.
		// Environment variables are expanded.
		// Two special values exist:
		// stdout - standard output
		// stderr - standard error output
		Output []string `yaml:"output"`
	}

	// Logger factory config.
	Config struct {

		// Default configuration is used when a logger name is not recognized.
		Default LoggerConfig `yaml:"default"`

		// Custom contains logger-specific configurations resolved by name.
		Custom map[string]LoggerConfig `yaml:"custom"`
	}

	embeddedConfig struct {
		Logging *Config `yaml:"logx"`
	}
)

// DefaultConfig prints everything from info level to stderr.
var DefaultConfig = Config{
	Default: LoggerConfig{
		Level:  "info",
		Output: []string{"stderr"},
	},
}

// ReadConfig reads the logx section of a YAML document.
// DefaultConfig is returned if the section is missing.
func ReadConfig(in flu.Input) (Config, error) {
	ec := new(embeddedConfig)
	if err := flu.DecodeFrom(in, flu.YAML(ec)); err != nil {
		return Config{}, err
	}

	if ec.Logging == nil {
		return DefaultConfig, nil
	}

	return *ec.Logging, nil
}

func config() Config {
	path := os.Getenv("LOGX")
	if len(path) == 0 {
		return DefaultConfig
	}

	config, err := ReadConfig(flu.File(path))
	if err != nil {
		panic(err)
	}

	return config
}
