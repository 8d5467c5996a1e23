package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size, seed their RNG and read time.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Loop iterations per second (sets the inter-frame delay)
	Seed     int64 // RNG seed
	Clock    Clock // Time source for every timing gate; nil means SystemClock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 25,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ClockOrSystem returns the configured clock, falling back to the system clock.
func (c RuntimeConfig) ClockOrSystem() Clock {
	if c.Clock == nil {
		return SystemClock{}
	}
	return c.Clock
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Final score, set once the game is won
	Moves    int    // Successful moves so far
	Seconds  int    // Whole seconds played, frozen at game over
	GameOver bool   // Whether the game has ended (won or lost)
	Won      bool   // Whether the game ended in a win
	Message  string // Outcome message once the game is over
}

// StepResult is returned by Game.Step() after each loop iteration.
type StepResult struct {
	State GameState
}
