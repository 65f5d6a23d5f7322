package config

import (
	"github.com/lgbarn/minimax-chess/internal/engine"
)

// GameConfig holds settings for self-play games.
type GameConfig struct {
	// Games is how many games to play
	Games int

	// Workers is how many games run at once; 0 means one per CPU
	Workers int

	// MaxPlies stops a game unfinished after this many plies; 0 is unlimited
	MaxPlies int

	// StartFEN is the position every game starts from
	StartFEN string
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		Games:    1,
		MaxPlies: 200,
		StartFEN: engine.InitialFEN,
	}
}

// Validate checks that the game configuration is valid.
func (g *GameConfig) Validate() error {
	switch {
	case g.Games < 1:
		return invalidf("games %d is below 1", g.Games)
	case g.Workers < 0:
		return invalidf("workers %d is negative", g.Workers)
	case g.MaxPlies < 0:
		return invalidf("max plies %d is negative", g.MaxPlies)
	}
	if _, err := engine.NewPositionFromFEN(g.StartFEN); err != nil {
		return invalidf("start position: %v", err)
	}
	return nil
}
