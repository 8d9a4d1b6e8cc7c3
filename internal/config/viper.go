package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Output struct {
		Suffix string `mapstructure:"suffix" yaml:"suffix"`
		Indent string `mapstructure:"indent" yaml:"indent"`
	} `mapstructure:"output" yaml:"output"`

	Convert struct {
		StrictValidation bool   `mapstructure:"strict_validation" yaml:"strict_validation"`
		BankTxCodeRules  string `mapstructure:"bank_tx_code_rules" yaml:"bank_tx_code_rules"`
	} `mapstructure:"convert" yaml:"convert"`
}

// InitializeConfig loads the configuration: defaults first, then an optional
// config file, then CAMT_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.camt-convert")
	v.AddConfigPath(".camt-convert")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CAMT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// The unprefixed log variables stay supported alongside CAMT_LOG_*.
	if err := v.BindEnv("log.level", "CAMT_LOG_LEVEL", "LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("log.format", "CAMT_LOG_FORMAT", "LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind LOG_FORMAT: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("output.suffix", "_08")
	v.SetDefault("output.indent", "    ")

	v.SetDefault("convert.strict_validation", true)
	v.SetDefault("convert.bank_tx_code_rules", "")
}

func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q", config.Log.Level)
	}
	switch config.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", config.Log.Format)
	}
	if config.Output.Suffix == "" {
		return fmt.Errorf("output suffix must not be empty")
	}
	return nil
}

// ConfigureLoggingFromConfig applies the log settings to the global logger.
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logLevel, err := logrus.ParseLevel(config.Log.Level)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	Logger.SetLevel(logLevel)

	if config.Log.Format == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	return Logger
}
