package config

import (
	"time"

	"github.com/maxviazov/bjj-scoreboard/internal/logger"
	"github.com/maxviazov/bjj-scoreboard/internal/model"
)

type Config struct {
	App      AppConfig              `mapstructure:"app"`
	Logger   logger.LoggerConfig    `mapstructure:"logger" validate:"-"`
	Match    model.MatchInformation `mapstructure:"match"`
	Terminal TerminalConfig         `mapstructure:"terminal"`
	HTTP     HTTPConfig             `mapstructure:"http"`
}

type AppConfig struct {
	Name string `mapstructure:"name" validate:"required"`
	Env  string `mapstructure:"env" validate:"oneof=dev staging prod"`
	// Mode picks the presentation layer driving the match.
	Mode string `mapstructure:"mode" validate:"oneof=terminal http"`
}

type TerminalConfig struct {
	FrameInterval time.Duration `mapstructure:"frame_interval" validate:"min=1ms"`
	// AutoStart starts the match clock as soon as the board is shown.
	AutoStart bool `mapstructure:"auto_start"`
}

type HTTPConfig struct {
	Addr              string        `mapstructure:"addr" validate:"required"`
	FeedInterval      time.Duration `mapstructure:"feed_interval" validate:"min=1ms"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}
