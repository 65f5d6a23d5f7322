package config

// OutputConfig holds settings related to game output.
type OutputConfig struct {
	// JSONFormat writes one JSON record per game instead of boards
	JSONFormat bool

	// NoColor disables coloured boards even on a terminal
	NoColor bool

	// ShowBoard prints the final board of each game
	ShowBoard bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{ShowBoard: true}
}

// Validate checks that the output configuration is valid.
func (o *OutputConfig) Validate() error {
	return nil
}
