package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Width     int    `mapstructure:"width"`
	Height    int    `mapstructure:"height"`
	MineCount int    `mapstructure:"mine_count"`
	Seed      uint64 `mapstructure:"seed"`
	LogFile   string `mapstructure:"log_file"`
}

// Load reads configuration with built-in defaults (the reference
// 16x16 board with 32 mines), SWEEPER_-prefixed environment overrides
// and, when path is non-empty, a config file. Seed 0 means
// time-seeded.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault("width", 16)
	v.SetDefault("height", 16)
	v.SetDefault("mine_count", 32)
	v.SetDefault("seed", 0)
	v.SetDefault("log_file", "sweeper.log")

	v.SetEnvPrefix("SWEEPER")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, fmt.Errorf(
			"invalid board size %dx%d", cfg.Width, cfg.Height,
		)
	}
	if cfg.MineCount < 0 {
		return nil, fmt.Errorf("invalid mine count %d", cfg.MineCount)
	}
	return &cfg, nil
}
