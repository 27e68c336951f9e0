package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	PARALLEL_TRACKS_OVERWRITE = "overwrite"
	PARALLEL_TRACKS_SUM       = "sum"
	PARALLEL_TRACKS_MAX       = "max"

	FLOW_MODE_EDMONDS_KARP = "edmonds-karp"
	FLOW_MODE_FORWARD_ONLY = "forward-only"
)

type Config struct {
	Engine  EngineConfig  `mapstructure:"engine"`
	Log     LogConfig     `mapstructure:"log"`
	Network NetworkConfig `mapstructure:"network"`
}

type EngineConfig struct {
	// ParallelTracks decides how tracks sharing the same (start, end) pair are merged into one arc.
	ParallelTracks string `mapstructure:"parallel_tracks" validate:"oneof=overwrite sum max"`
	FlowMode       string `mapstructure:"flow_mode" validate:"oneof=edmonds-karp forward-only"`
}

type LogConfig struct {
	Level      string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File       string `mapstructure:"file"` // empty means stderr
	MaxSizeMB  int    `mapstructure:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" validate:"gte=0"`
	Compress   bool   `mapstructure:"compress"`
}

type NetworkConfig struct {
	Path string `mapstructure:"path"`
}

func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		ParallelTracks: PARALLEL_TRACKS_OVERWRITE,
		FlowMode:       FLOW_MODE_EDMONDS_KARP,
	}
}

func DefaultConfig() Config {
	return Config{
		Engine: DefaultEngineConfig(),
		Log: LogConfig{
			Level:      "info",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Network: NetworkConfig{
			Path: "./data/network.yaml",
		},
	}
}

// NewViper returns a viper instance with every key defaulted and MCMETRO_* environment overrides enabled.
func NewViper() *viper.Viper {
	v := viper.New()
	def := DefaultConfig()

	v.SetDefault("engine.parallel_tracks", def.Engine.ParallelTracks)
	v.SetDefault("engine.flow_mode", def.Engine.FlowMode)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.max_size_mb", def.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", def.Log.MaxBackups)
	v.SetDefault("log.max_age_days", def.Log.MaxAgeDays)
	v.SetDefault("log.compress", def.Log.Compress)
	v.SetDefault("network.path", def.Network.Path)

	v.SetEnvPrefix("MCMETRO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// ReadConfig loads the config file at path into v. With an empty path it looks for config.{yaml,json,toml}
// under ./data/ and falls back to the defaults when none exists.
func ReadConfig(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./data/")
	}

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("fatal error config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("fatal error config file: %w", err)
	}

	if err := ValidateStruct(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
