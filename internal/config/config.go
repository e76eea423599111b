// Package config provides configuration for the Janggi engine and its CLI.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/ryanjbharat/janggi-go/internal/errors"
)

// Verbosity levels for the game log.
const (
	Silent  = 0 // nothing
	Events  = 1 // checks and game over
	Verbose = 2 // every accepted and rejected move
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=check and game-over events, 2=every move

	// Game holds the starting position.
	Game GameConfig

	// Display controls board rendering after each move.
	Display DisplayConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  Events,
		Game:       *NewGameConfig(),
		Display:    *NewDisplayConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Verbosity < Silent {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	return c.Game.Validate()
}

// Logf writes a diagnostic line to the log file when the verbosity is at
// least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
