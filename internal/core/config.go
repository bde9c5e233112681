package core

// DefaultBoardSize is the board dimension used when none is configured.
const DefaultBoardSize = 4

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	BoardSize int   // Board dimension N
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		BoardSize: DefaultBoardSize,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the session has ended (won or lost)
	Won      bool // Whether the session ended with a winning tile
}

// Event describes what a single step did.
type Event int

const (
	EventNone    Event = iota
	EventMoved         // Tiles moved and a new tile was spawned
	EventWon           // The move produced a winning tile
	EventLost          // The move left no legal moves
	EventNewGame       // A new game was started
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventMoved:
		return "moved"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	case EventNewGame:
		return "new_game"
	default:
		return "unknown"
	}
}

// StepResult is returned by Game.Step() after each input.
type StepResult struct {
	State GameState
	Event Event
}
