package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mesh-intelligence/herbarium/internal/logging"
	"github.com/mesh-intelligence/herbarium/internal/paths"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "HERBARIUM"

	cfgKeyLogLevel  = "log_level"
	cfgKeyLogFormat = "log_format"

	defaultLogLevel  = "info"
	defaultLogFormat = logging.FormatText
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// loadConfig reads config.yaml from configDir using Viper. A missing file
// is not an error; defaults apply. HERBARIUM_LOG_LEVEL and
// HERBARIUM_LOG_FORMAT override file values.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyLogFormat, defaultLogFormat)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// writeConfigIfMissing creates config.yaml in configDir with default values.
// It reports whether a file was written; an existing file is left untouched.
func writeConfigIfMissing(configDir string) (bool, error) {
	path := paths.ConfigFile(configDir)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(&configFile{
		LogLevel:  defaultLogLevel,
		LogFormat: defaultLogFormat,
	})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
