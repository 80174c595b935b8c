package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ModeText     = "text"
	ModeTerminal = "terminal"
)

type Config struct {
	Mode          string `yaml:"mode" env:"GAME_MODE" env-default:"text" env-description:"text or terminal"`
	LogLevel      string `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn"`
	LogFile       string `yaml:"log-file" env:"LOG_FILE" env-default:""`
	StartPolicy   string `yaml:"start-policy" env:"START_POLICY" env-default:"first" env-description:"first, alternate or loser"`
	PlayerAName   string `yaml:"player-a-name" env:"PLAYER_A_NAME" env-default:"Player X"`
	PlayerASymbol string `yaml:"player-a-symbol" env:"PLAYER_A_SYMBOL" env-default:"X"`
	PlayerBName   string `yaml:"player-b-name" env:"PLAYER_B_NAME" env-default:"Player O"`
	PlayerBSymbol string `yaml:"player-b-symbol" env:"PLAYER_B_SYMBOL" env-default:"O"`
}

var AppConfig *Config

// LoadConfig reads the yaml file at path when it exists and applies the
// environment on top of it. Without a file only the environment is used.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" && fileExists(path) {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("unable to load config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("unable to read config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	AppConfig = cfg
	return AppConfig, nil
}

func (c *Config) Validate() error {
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	if c.Mode != ModeText && c.Mode != ModeTerminal {
		return fmt.Errorf("invalid mode %q: expected %s or %s", c.Mode, ModeText, ModeTerminal)
	}

	if _, err := domain.ParseStartPolicy(c.StartPolicy); err != nil {
		return fmt.Errorf("invalid start policy %q: %w", c.StartPolicy, err)
	}

	for _, s := range []string{c.PlayerASymbol, c.PlayerBSymbol} {
		if utf8.RuneCountInString(s) != 1 || strings.TrimSpace(s) == "" || s == "." {
			return fmt.Errorf("invalid player symbol %q: must be a single visible character other than '.'", s)
		}
	}
	if c.PlayerASymbol == c.PlayerBSymbol {
		return errors.New("players must use different symbols")
	}

	return nil
}

// Policy is the parsed StartPolicy. Validate has already rejected bad values.
func (c *Config) Policy() domain.StartPolicy {
	p, err := domain.ParseStartPolicy(c.StartPolicy)
	if err != nil {
		return domain.StartFirst
	}
	return p
}

func (c *Config) Players() (domain.Player, domain.Player) {
	a, _ := utf8.DecodeRuneInString(c.PlayerASymbol)
	b, _ := utf8.DecodeRuneInString(c.PlayerBSymbol)

	return domain.Player{Name: c.PlayerAName, Disc: domain.PlayerA, Symbol: a},
		domain.Player{Name: c.PlayerBName, Disc: domain.PlayerB, Symbol: b}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
