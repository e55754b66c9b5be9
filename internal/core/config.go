package core

// RuntimeConfig contains configuration passed to the dungeon at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames polled per second (default 60)
	Seed     int64 // RNG seed for monster identities
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status the platform reads after every frame.
type GameState struct {
	Score    int  // Current score
	Kills    int  // Monsters destroyed this run
	GameOver bool // Whether the run has ended
}
