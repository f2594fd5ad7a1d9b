package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/ratel-online/uno/consts"
)

const envPrefix = "UNO_"

type Config struct {
	Mode        consts.Mode   `mapstructure:"MODE"`
	GameName    string        `mapstructure:"GAME_NAME"`
	Addr        string        `mapstructure:"ADDR"`
	TCPAddr     string        `mapstructure:"TCP_ADDR"`
	LogDir      string        `mapstructure:"LOG_DIR"`
	RedisAddr   string        `mapstructure:"REDIS_ADDR"`
	RedisDB     int           `mapstructure:"REDIS_DB"`
	PlayerCount int           `mapstructure:"PLAYER_COUNT"`
	HumanName   string        `mapstructure:"HUMAN_NAME"`
	PlayDelay   time.Duration `mapstructure:"PLAY_DELAY"`
	DrawDelay   time.Duration `mapstructure:"DRAW_DELAY"`
	GinMode     string        `mapstructure:"GIN_MODE"`
}

func Default() Config {
	return Config{
		Mode:        consts.ModeConsole,
		GameName:    "uno",
		Addr:        ":8080",
		TCPAddr:     ":9999",
		LogDir:      "logs",
		PlayerCount: 4,
		HumanName:   consts.HumanName,
		PlayDelay:   consts.PlayDelay,
		DrawDelay:   consts.DrawDelay,
		GinMode:     "release",
	}
}

// Load reads the given .env files, if present, then the UNO_* variables of
// the environment over the defaults.
func Load(files ...string) (Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}
	return FromEnv(os.Environ())
}

// FromEnv decodes KEY=VALUE pairs over the defaults.
func FromEnv(environ []string) (Config, error) {
	values := map[string]interface{}{}
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(key, envPrefix) || value == "" {
			continue
		}
		values[strings.TrimPrefix(key, envPrefix)] = value
	}

	cfg := Default()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := decoder.Decode(values); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Mode {
	case consts.ModeConsole, consts.ModeTCP, consts.ModeHTTP:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.PlayerCount < consts.MinPlayers || c.PlayerCount > consts.MaxPlayers {
		return consts.ErrorsPlayerCountInvalid
	}
	if strings.TrimSpace(c.GameName) == "" {
		return consts.ErrorsGameNameInvalid
	}
	if c.PlayDelay < 0 || c.DrawDelay < 0 {
		return fmt.Errorf("negative delay")
	}
	return nil
}
