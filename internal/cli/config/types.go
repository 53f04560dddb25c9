// Package config provides configuration management for the iconname CLI.
package config

// Default configuration values.
const (
	DefaultOutput   = "auto" // TTY=text, non-TTY=markdown
	DefaultLogLevel = "warn"
	EnvPrefix       = "ICONNAME_"
)

// ConfigFileNames are searched in the working directory, in order.
var ConfigFileNames = []string{"iconname.yaml", "iconname.yml", ".iconname.yaml", ".iconname.yml"}

// Config holds all CLI configuration options.
type Config struct {
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
	LogLevel     string `koanf:"log_level"`

	// Overrides maps element type names to fixed icon names.
	Overrides map[string]string `koanf:"overrides"`

	// ConfigFile is the file the configuration was read from, if any.
	ConfigFile string `koanf:"-"`
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		OutputFormat: DefaultOutput,
		LogLevel:     DefaultLogLevel,
	}
}
