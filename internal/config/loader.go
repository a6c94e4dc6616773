package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/maxviazov/bjj-scoreboard/internal/model"
)

// Load reads defaults, then the YAML file at path (skipped when path is empty),
// then APP_* environment overrides, e.g. APP_MATCH_MAT_NUMBER=3.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if config.Logger.Env == "" {
		config.Logger.Env = config.App.Env
	}
	config.Match = config.Match.Normalized()

	if err := validator.New().Struct(&config); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("invalid config at %s: %w", verrs[0].Namespace(), err)
		}
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &config, nil
}

// every key gets a default so that AutomaticEnv can override it without a file entry
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "bjj-scoreboard")
	v.SetDefault("app.env", "prod")
	v.SetDefault("app.mode", "terminal")

	v.SetDefault("logger.level", "")
	v.SetDefault("logger.format", "")
	v.SetDefault("logger.output_target", "")
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.env", "")

	m := model.DefaultMatchInformation()
	setCompetitorDefaults(v, "match.competitor_one", m.CompetitorOne)
	setCompetitorDefaults(v, "match.competitor_two", m.CompetitorTwo)
	v.SetDefault("match.match_time_minutes", m.MatchTimeMinutes)
	v.SetDefault("match.mat_number", m.MatNumber)
	v.SetDefault("match.fight_number", m.FightNumber)

	v.SetDefault("terminal.frame_interval", "50ms")
	v.SetDefault("terminal.auto_start", true)

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.feed_interval", "100ms")
	v.SetDefault("http.read_header_timeout", "5s")
	v.SetDefault("http.shutdown_timeout", "10s")
}

func setCompetitorDefaults(v *viper.Viper, prefix string, c model.Competitor) {
	v.SetDefault(prefix+".first_name", c.FirstName)
	v.SetDefault(prefix+".last_name", c.LastName)
	v.SetDefault(prefix+".team_name", c.TeamName)
	v.SetDefault(prefix+".country", string(c.Country))
}
