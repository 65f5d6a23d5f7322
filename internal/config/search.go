package config

// DefaultDepth is the search depth used when none is configured.
const DefaultDepth = 3

// SearchConfig holds settings for the move search.
type SearchConfig struct {
	// Depth is the number of plies searched per move
	Depth int

	// Seed seeds tie-breaking; game i uses Seed+2i and Seed+2i+1
	Seed int64

	// SeedSet records whether Seed was given explicitly
	SeedSet bool
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{Depth: DefaultDepth}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < 1 {
		return invalidf("search depth %d is below 1", s.Depth)
	}
	return nil
}
