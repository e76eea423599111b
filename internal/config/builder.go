package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithStartPosition sets the position string the game starts from.
func (b *ConfigBuilder) WithStartPosition(position string) *ConfigBuilder {
	b.cfg.Game.StartPosition = position
	return b
}

// WithBoardDisplay controls whether the board is printed after each move.
func (b *ConfigBuilder) WithBoardDisplay(enabled bool) *ConfigBuilder {
	b.cfg.Display.ShowBoard = enabled
	return b
}

// WithPositionDisplay controls whether the position string is printed after each move.
func (b *ConfigBuilder) WithPositionDisplay(enabled bool) *ConfigBuilder {
	b.cfg.Display.ShowPosition = enabled
	return b
}

// WithLegalMoveDisplay controls whether the legal moves are listed after each move.
func (b *ConfigBuilder) WithLegalMoveDisplay(enabled bool) *ConfigBuilder {
	b.cfg.Display.ShowLegalMoves = enabled
	return b
}
