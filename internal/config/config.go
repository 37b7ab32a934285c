// Package config loads must settings from an optional YAML file and MUST_* environment variables.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/nilaykumar/must/internal/task"
)

// Config holds all must configuration
type Config struct {
	Data  DataConfig  `mapstructure:"data"`
	Tasks TasksConfig `mapstructure:"tasks"`
}

// DataConfig holds data file settings
type DataConfig struct {
	// Dir overrides the data directory. Empty means ~/must.
	Dir    string `mapstructure:"dir"`
	File   string `mapstructure:"file"`
	Format string `mapstructure:"format"`
}

// TasksConfig holds task list behaviour settings
type TasksConfig struct {
	IDPolicy   string `mapstructure:"id_policy"`
	KeepSpaces bool   `mapstructure:"keep_spaces"`
	List       string `mapstructure:"list"`
}

// Validate checks that enumerated settings hold known values.
func (c *Config) Validate() error {
	if c.Data.File == "" {
		return fmt.Errorf("data.file must not be empty")
	}

	switch c.Data.Format {
	case FormatFlat, FormatGrouped:
	default:
		return fmt.Errorf("data.format must be %q or %q, got %q", FormatFlat, FormatGrouped, c.Data.Format)
	}

	if !task.IDPolicy(c.Tasks.IDPolicy).IsValid() {
		return fmt.Errorf("tasks.id_policy must be %q or %q, got %q", task.IDPolicyMax, task.IDPolicyIncrement, c.Tasks.IDPolicy)
	}

	if c.Data.Format == FormatGrouped && strings.TrimSpace(c.Tasks.List) == "" {
		return fmt.Errorf("tasks.list must not be empty for the grouped format")
	}
	if strings.ContainsAny(c.Tasks.List, "=\n\r") {
		return fmt.Errorf("tasks.list must not contain '=' or line breaks, got %q", c.Tasks.List)
	}

	return nil
}

// IDPolicy returns the configured id policy as a task.IDPolicy.
func (c *Config) IDPolicy() task.IDPolicy {
	return task.IDPolicy(c.Tasks.IDPolicy)
}

// CodecOptions returns the decode options derived from the configuration.
func (c *Config) CodecOptions() task.Options {
	return task.Options{KeepSpaces: c.Tasks.KeepSpaces}
}

// LoadConfigWithFile loads configuration from a specific file if provided,
// otherwise from the global config path.
func LoadConfigWithFile(configFile string) (*Config, error) {
	if configFile != "" {
		return LoadConfigFromPath(configFile)
	}

	globalPath, err := GlobalConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFromPath(globalPath)
}

// LoadConfig loads configuration from must.yaml in the given directory.
// If no config file exists, defaults are returned.
func LoadConfig(dir string) (*Config, error) {
	v := newViper()

	v.SetConfigName(DefaultConfigName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	// Read config file (ignore not found errors)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	return unmarshal(v)
}

// LoadConfigFromPath loads configuration from a specific file path.
// A missing file yields defaults.
func LoadConfigFromPath(configPath string) (*Config, error) {
	v := newViper()

	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return unmarshal(v)
		}
		return nil, err
	}

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// setDefaults sets all default values for configuration
func setDefaults(v *viper.Viper) {
	// Data defaults
	v.SetDefault("data.dir", "")
	v.SetDefault("data.file", DefaultDataFile)
	v.SetDefault("data.format", DefaultDataFormat)

	// Tasks defaults
	v.SetDefault("tasks.id_policy", DefaultIDPolicy)
	v.SetDefault("tasks.keep_spaces", DefaultKeepSpaces)
	v.SetDefault("tasks.list", DefaultList)
}
