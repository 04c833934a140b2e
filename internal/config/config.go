package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	LogLevel   string `yaml:"log-level" env:"UTTT_LOG_LEVEL" env-default:"info"`
	Opponent   string `yaml:"opponent" env:"UTTT_OPPONENT" env-default:"human"`
	PlayerMark string `yaml:"player-mark" env:"UTTT_PLAYER_MARK" env-default:"X"`
	BotSeed    int64  `yaml:"bot-seed" env:"UTTT_BOT_SEED" env-default:"0"`
}

// Load - reads the config file at path, or only the environment when path is empty.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(config)
	} else {
		err = cleanenv.ReadConfig(path, config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - same as Load, panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	switch that.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log-level %q", ErrInvalidConfig, that.LogLevel)
	}

	if that.Opponent != entity.OpponentHuman && that.Opponent != entity.OpponentBot {
		return fmt.Errorf("%w: opponent %q", ErrInvalidConfig, that.Opponent)
	}

	if _, err := entity.ParseMark(that.PlayerMark); err != nil {
		return fmt.Errorf("%w: player-mark: %w", ErrInvalidConfig, err)
	}

	return nil
}

// Mark - mark of the first human player.
func (that *Config) Mark() entity.Mark {
	mark, err := entity.ParseMark(that.PlayerMark)
	if err != nil {
		return entity.MarkX
	}

	return mark
}
