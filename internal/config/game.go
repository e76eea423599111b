package config

import (
	"fmt"

	"github.com/ryanjbharat/janggi-go/internal/errors"
	"github.com/ryanjbharat/janggi-go/internal/janggi"
)

// GameConfig holds settings for setting up a game.
type GameConfig struct {
	// StartPosition is a position string to start from instead of the
	// standard opening. Empty means the standard opening.
	StartPosition string
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{}
}

// Position returns the starting position.
func (g *GameConfig) Position() (*janggi.Position, error) {
	text := g.StartPosition
	if text == "" {
		text = janggi.InitialPosition
	}
	return janggi.ParsePosition(text)
}

// Validate checks that the starting position parses.
func (g *GameConfig) Validate() error {
	if g.StartPosition == "" {
		return nil
	}
	if _, err := janggi.ParsePosition(g.StartPosition); err != nil {
		return fmt.Errorf("start position %q: %v: %w", g.StartPosition, err, errors.ErrInvalidConfig)
	}
	return nil
}
