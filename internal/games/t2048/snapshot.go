package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateWon      GameStateType = "won"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Mode    string // "classic" or "endless"
	Games   int    // Games started since Reset, including the current one
	Size    int
	Score   int
	Grid    [][]int
	MaxTile int
	State   GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch g.notice {
	case noticeWon:
		state = StateWon
	case noticeLost:
		state = StateGameOver
	}

	snap := Snapshot{
		Tick:  g.tick,
		Mode:  string(g.mode),
		Games: g.games,
		State: state,
	}
	if g.board != nil {
		snap.Size = g.board.Size()
		snap.Score = g.board.Score()
		snap.Grid = g.board.Grid()
		snap.MaxTile = g.board.MaxTile()
	}
	return snap
}
