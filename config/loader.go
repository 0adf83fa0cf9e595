package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/CodeContextHQ/ccc/traverse"
)

// configName is the config file name without extension.
const configName = ".ccc"

// configType is the config file format.
const configType = "yaml"

// envPrefix is the environment variable prefix for ccc settings.
const envPrefix = "CCC"

// envKeySeparator is the nested key separator in environment variable names.
const envKeySeparator = "_"

// flagBindings maps config keys to the command-line flag overriding them.
var flagBindings = map[string]string{
	"roots":        "root",
	"max_depth":    "max-depth",
	"sig_tokens":   "sig-tokens",
	"sig_only":     "sig-only",
	"sig_detailed": "sig-detailed",
	"output":       "output",
	"find":         "find",
	"verbose":      "verbose",
}

// Load loads configuration from file, env vars, defaults, and (when a flag
// set is supplied) explicitly set command-line flags, which take precedence
// over everything else. If configPath is non-empty, it is used as the
// explicit config file path. Otherwise, the config file is searched in CWD
// and $HOME. Missing config file is not an error; defaults are used.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	viperCfg := viper.New()

	applyDefaults(viperCfg)

	viperCfg.SetConfigType(configType)
	viperCfg.SetEnvPrefix(envPrefix)
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	viperCfg.AutomaticEnv()

	if flags != nil {
		for key, flagName := range flagBindings {
			if flag := flags.Lookup(flagName); flag != nil && flag.Changed {
				if err := viperCfg.BindPFlag(key, flag); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flagName, err)
				}
			}
		}
	}

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName(configName)
		viperCfg.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viperCfg.AddConfigPath(home)
		}
	}

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFound) {
			return nil, fmt.Errorf("read config: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, fmt.Errorf("validate config: %w", validateErr)
	}

	return &cfg, nil
}

func applyDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("roots", []string{})
	viperCfg.SetDefault("max_depth", traverse.UnlimitedDepth)
	viperCfg.SetDefault("sig_tokens", 0)
	viperCfg.SetDefault("sig_only", false)
	viperCfg.SetDefault("sig_detailed", false)
	viperCfg.SetDefault("output", "")
	viperCfg.SetDefault("find", "")
	viperCfg.SetDefault("verbose", false)
}
