// Package config loads the dangler configuration from an optional YAML file
// and the command-line flags, flags taking precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds all settings for one invocation.
type Config struct {
	// Output format: text, plain, json, table
	Output string `mapstructure:"output"`

	// Async resolves the batch concurrently instead of one domain at a time
	Async bool `mapstructure:"async"`

	// NameServer is the resolver endpoint IP; empty uses the system resolvers
	NameServer string `mapstructure:"nameserver"`

	// DoH resolves over DNS-over-HTTPS instead of plaintext DNS
	DoH bool `mapstructure:"doh"`

	// DoHURL overrides the default DNS-over-HTTPS endpoint
	DoHURL string `mapstructure:"doh-url"`

	// Color forces colorized output; NoColor disables it
	Color   bool `mapstructure:"color"`
	NoColor bool `mapstructure:"no-color"`

	// Verbose enables debug logging
	Verbose bool `mapstructure:"verbose"`

	// InputFile is a file with one domain per line (or a JSON array with JSONInput)
	InputFile string `mapstructure:"input-file"`

	// JSONInput parses the input file or stdin as a JSON string array
	JSONInput bool `mapstructure:"json-input"`

	// JSON is the combined switch: implies JSONInput and JSON output
	JSON bool `mapstructure:"json"`
}

// RegisterFlags declares all configuration flags on the given flag set.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.StringP("output", "o", "text", "output format: text, plain, json, table")
	flags.BoolP("async", "a", false, "resolve the whole batch concurrently")
	flags.StringP("nameserver", "n", "", "IP address of the name server to use (default: system resolvers)")
	flags.Bool("doh", false, "resolve over DNS-over-HTTPS")
	flags.String("doh-url", "", "DNS-over-HTTPS endpoint URL (default: Quad9)")
	flags.BoolP("color", "c", false, "force colorized output")
	flags.Bool("no-color", false, "disable colorized output")
	flags.BoolP("verbose", "v", false, "enable verbose logging (debug level)")
	flags.StringP("input-file", "i", "", "file with a list of domains to check")
	flags.Bool("json-input", false, "parse the input as a JSON string array")
	flags.BoolP("json", "j", false, "shorthand for --json-input with JSON output")
}

// DefaultConfigPath returns the OS-appropriate default config file path,
// creating the app config directory if needed. userConfigDir is injected for
// testability; pass os.UserConfigDir.
func DefaultConfigPath(userConfigDir func() (string, error)) (string, error) {
	configDir, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating user config directory: %w", err)
	}
	appConfigDir := filepath.Join(configDir, "dangler")
	if err := os.MkdirAll(appConfigDir, 0o700); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}
	return filepath.Join(appConfigDir, "config.yaml"), nil
}

// Load reads the config file at configPath (or the default location when
// empty) and overlays the flag values. A missing config file is not an error.
func Load(configPath string, flags *pflag.FlagSet, userConfigDir func() (string, error)) (*Config, error) {
	if configPath == "" {
		var err error
		configPath, err = DefaultConfigPath(userConfigDir)
		if err != nil {
			return nil, err
		}
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	setDefaults(v)

	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// setDefaults configures viper defaults matching the flag defaults.
func setDefaults(v *viper.Viper) {
	v.SetDefault("output", "text")
	v.SetDefault("async", false)
	v.SetDefault("nameserver", "")
	v.SetDefault("doh", false)
	v.SetDefault("doh-url", "")
	v.SetDefault("color", false)
	v.SetDefault("no-color", false)
	v.SetDefault("verbose", false)
	v.SetDefault("input-file", "")
	v.SetDefault("json-input", false)
	v.SetDefault("json", false)
}
