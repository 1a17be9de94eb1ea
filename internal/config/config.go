package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StageProd = "prod"
	StageDev  = "dev"
)

const (
	LogFlagsStd   = "std"
	LogFlagsMicro = "micro"
	LogFlagsNone  = "none"
)

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Stage   string        `mapstructure:"stage" validate:"required,oneof=dev prod"`
	Log     LogConfig     `mapstructure:"log"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type LogConfig struct {
	Prefix string `mapstructure:"prefix"`
	Flags  string `mapstructure:"flags" validate:"required,oneof=std micro none"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// Listen address of the /metrics endpoint
	Addr string `mapstructure:"addr" validate:"required,hostname_port"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("stage", StageDev)
	v.SetDefault("log.prefix", "battleship ")
	v.SetDefault("log.flags", LogFlagsStd)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.addr", "127.0.0.1:9191")
}

// LoadConfig loads configuration with priority:
// 1. Environment variables, BATTLESHIP_ prefixed
// 2. Config file (battleship.yaml)
// 3. Defaults
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("battleship")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("BATTLESHIP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configPath != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := NewValidator().Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Applies the log settings to the standard logger
func (c *Config) SetupLogger() {
	log.SetPrefix(c.Log.Prefix)

	switch c.Log.Flags {
	case LogFlagsMicro:
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	case LogFlagsNone:
		log.SetFlags(0)
	default:
		log.SetFlags(log.LstdFlags)
	}
}
