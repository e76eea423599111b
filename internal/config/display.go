package config

// DisplayConfig holds settings related to board output.
type DisplayConfig struct {
	// ShowBoard prints the board after every accepted move
	ShowBoard bool

	// ShowPosition prints the position string after every accepted move
	ShowPosition bool

	// ShowLegalMoves lists the legal moves of the side to move
	ShowLegalMoves bool
}

// NewDisplayConfig creates a DisplayConfig with default values.
func NewDisplayConfig() *DisplayConfig {
	return &DisplayConfig{
		ShowBoard: true,
	}
}
