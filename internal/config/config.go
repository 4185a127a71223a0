package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/irenetello/react-doctor/internal/project"
	"github.com/irenetello/react-doctor/internal/schema"
)

// Config represents the react-doctor configuration.
type Config struct {
	Root         string   `mapstructure:"root"`
	Exclude      []string `mapstructure:"exclude"`
	Format       string   `mapstructure:"format"`
	Output       string   `mapstructure:"output"`
	FailOn       string   `mapstructure:"failOn"`
	Quiet        bool     `mapstructure:"quiet"`
	Verbose      bool     `mapstructure:"verbose"`
	MaxFileLines int      `mapstructure:"maxFileLines"`
}

// ProjectConfigName is the per-project configuration file probed at the root.
const ProjectConfigName = ".reactdoctor.yaml"

// LoadConfig loads configuration from defaults, rc files, the project
// config, environment variables, and flags (already bound to viper).
func LoadConfig(rootPath string) (*Config, error) {
	viper.SetDefault("root", "")
	viper.SetDefault("format", "console")
	viper.SetDefault("failOn", "error")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("maxFileLines", 300)

	// Config file locations
	configPaths := []string{".reactdoctorrc.json", ".reactdoctorrc.yaml", ".reactdoctorrc.yml"}
	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			viper.SetConfigFile(path)
			if err := viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("error reading config file %s: %w", path, err)
			}
			break
		}
	}

	// Environment variables
	viper.SetEnvPrefix("REACTDOCTOR")
	viper.AutomaticEnv()

	// Resolve the project root before probing for the project config
	root := rootPath
	if root == "" {
		root = viper.GetString("root")
	}
	if root == "" {
		detected, err := project.FindProjectRoot(".")
		if err != nil {
			return nil, fmt.Errorf("error finding project root: %w", err)
		}
		root = detected
	}
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("invalid root path %q: %w", root, err)
	}

	// Project-level config, schema-validated before it can take effect
	projectConfig := filepath.Join(absRoot, ProjectConfigName)
	if _, err := os.Stat(projectConfig); err == nil {
		data, problems, err := schema.LoadProjectConfig(projectConfig)
		if err != nil {
			return nil, fmt.Errorf("error loading %s: %w", ProjectConfigName, err)
		}
		if len(problems) > 0 {
			return nil, fmt.Errorf("invalid %s: %s", ProjectConfigName, strings.Join(problems, "; "))
		}
		if err := viper.MergeConfigMap(data); err != nil {
			return nil, fmt.Errorf("error merging %s: %w", ProjectConfigName, err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	config.Root = absRoot

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.FailOn != "error" && config.FailOn != "warning" && config.FailOn != "info" {
		return fmt.Errorf("invalid fail-on level: %s. Must be 'error', 'warning', or 'info'", config.FailOn)
	}

	if config.MaxFileLines < 1 {
		return fmt.Errorf("maxFileLines must be at least 1")
	}

	return nil
}
