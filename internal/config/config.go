package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info" validate:"oneof=debug info warn error"`
	LogFile     string  `yaml:"log-file" env:"LOG_FILE"`
	TraceFile   string  `yaml:"trace-file" env:"TRACE_FILE"`
	MetricsFile string  `yaml:"metrics-file" env:"METRICS_FILE"`
	Console     Console `yaml:"console"`
}

type Console struct {
	HideHints bool   `yaml:"hide-hints" env:"CONSOLE_HIDE_HINTS"`
	Prompt    string `yaml:"prompt" env:"CONSOLE_PROMPT" env-default:"> "`
}

// MustLoad - load configuration from the config.yml file, or from the environment when the file is absent.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to load config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = validator.New(validator.WithRequiredStructEnabled()).Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}
