package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and to size its timestep.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 30)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState represents the current state of a round.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	HoleIndex   int  // Zero-based index of the hole in play
	HoleStrokes int  // Strokes taken on the current hole
	Total       int  // Strokes taken across the round so far
	Over        bool // Whether the round has ended
	Paused      bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
