package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rileyhilliard/sysmon/internal/errors"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".sysmon.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/sysmon"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
	// EnvPrefix prefixes environment overrides, e.g. SYSMON_INTERVAL.
	EnvPrefix = "SYSMON"
	// DotEnvFile is loaded from the working directory when present.
	DotEnvFile = ".env"
)

// Load reads config from the specified path, applying environment overrides.
func Load(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Check the path passed to --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .sysmon.yaml in current directory
// 3. ~/.config/sysmon/config.yaml
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		explicit = ExpandTilde(explicit)
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	// 2. Current directory
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot determine current directory",
			"Check directory permissions")
	}

	localConfig := filepath.Join(cwd, ConfigFileName)
	if _, err := os.Stat(localConfig); err == nil {
		return localConfig, nil
	}

	// 3. Global config
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads .env, then the config found by Find(explicit). With no
// config file it returns defaults with environment overrides applied.
func LoadOrDefault(explicit string) (*Config, error) {
	if err := LoadDotEnv(DotEnvFile); err != nil {
		return nil, err
	}

	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return parseConfig(newViper(), "")
	}

	return Load(path)
}

// LoadDotEnv loads KEY=value pairs from path into the process environment.
// Variables that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read "+path,
			"Check the file uses KEY=value lines")
	}
	return nil
}

// newViper returns a viper instance with defaults and SYSMON_ env binding.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	// Unmarshal into config
	if err := v.Unmarshal(cfg); err != nil {
		where := "your environment overrides"
		if path != "" {
			where = path
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+where)
	}

	cfg.Log.File = ExpandPath(cfg.Log.File)
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	cfg.Color = strings.ToLower(strings.TrimSpace(cfg.Color))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))

	return cfg, nil
}

// setDefaults registers every key so AutomaticEnv can override keys the
// config file doesn't mention.
func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("version", def.Version)
	v.SetDefault("interval", def.Interval.String())
	v.SetDefault("backend", def.Backend)
	v.SetDefault("color", def.Color)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)
}
