package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Settings replaces the global mutable settings table of the old program
// with an explicit value passed into the session at construction.
type Settings struct {
	OpponentName    string `env:"RPSLS_OPPONENT_NAME" envDefault:"Monty"`
	PointsToWin     int    `env:"RPSLS_POINTS_TO_WIN" envDefault:"3"`
	ScoreboardWidth int    `env:"RPSLS_SCOREBOARD_WIDTH" envDefault:"23"`
	NoColor         bool   `env:"RPSLS_NO_COLOR" envDefault:"false"`
}

// Load reads settings from the environment, with an optional .env file
// for local development.
func Load() (Settings, error) {
	_ = godotenv.Load() // a missing .env is fine

	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := s.validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) validate() error {
	if s.PointsToWin < 1 {
		return fmt.Errorf("points to win must be at least 1, got %d", s.PointsToWin)
	}
	if s.ScoreboardWidth < 11 {
		return fmt.Errorf("scoreboard width must be at least 11, got %d", s.ScoreboardWidth)
	}
	if s.OpponentName == "" {
		return fmt.Errorf("opponent name must not be empty")
	}
	return nil
}
