// Package engine implements the 2048 board: sliding and merging lines,
// scoring, random tile insertion, and win/lose detection.
//
// The engine has no dependencies on any UI. Callers drive a session in this
// order: Move, and only if it returned true, AddRandomTile followed by the
// terminal checks HasWinningTile and CanMove.
package engine

import "fmt"

// Direction represents a move direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in a fixed order.
var Directions = []Direction{Left, Right, Up, Down}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "unknown"
	}
}

// WinningTile is the tile value that wins the game.
const WinningTile = 2048

// fourChance is the 1-in-N chance that a spawned tile is a 4.
const fourChance = 10

// Board holds an N×N grid and the running score.
type Board struct {
	size  int
	grid  [][]int
	score int
	rnd   RandSource
}

// New creates an empty board of the given size.
// The range of sensible sizes is the caller's concern; size must be at least 1.
func New(size int, rnd RandSource) *Board {
	if size < 1 {
		panic(fmt.Sprintf("engine: invalid board size %d", size))
	}

	grid := make([][]int, size)
	for r := range grid {
		grid[r] = make([]int, size)
	}

	return &Board{
		size: size,
		grid: grid,
		rnd:  rnd,
	}
}

// FromGrid creates a board with a copy of the given square grid and zero score.
func FromGrid(grid [][]int, rnd RandSource) *Board {
	b := New(len(grid), rnd)
	for r := range grid {
		if len(grid[r]) != b.size {
			panic(fmt.Sprintf("engine: row %d has %d cells, want %d", r, len(grid[r]), b.size))
		}
		copy(b.grid[r], grid[r])
	}
	return b
}

// Size returns the board dimension N.
func (b *Board) Size() int {
	return b.size
}

// Score returns the current score.
func (b *Board) Score() int {
	return b.score
}

// Cell returns the value at (row, col).
func (b *Board) Cell(row, col int) int {
	return b.grid[row][col]
}

// Grid returns a copy of the grid.
func (b *Board) Grid() [][]int {
	out := make([][]int, b.size)
	for r := range b.grid {
		out[r] = make([]int, b.size)
		copy(out[r], b.grid[r])
	}
	return out
}

// NewGame clears the grid, resets the score and places two random tiles.
func (b *Board) NewGame() {
	for r := range b.grid {
		for c := range b.grid[r] {
			b.grid[r][c] = 0
		}
	}
	b.score = 0

	b.AddRandomTile()
	b.AddRandomTile()
}

// Move slides every row or column toward the given edge, merging equal
// neighbours once per move. Returns true if any line changed.
// Move never inserts a tile.
func (b *Board) Move(dir Direction) bool {
	moved := false

	for i := range b.size {
		line := b.line(dir, i)

		work := line
		if dir == Right || dir == Down {
			work = Reverse(work)
		}

		slid, gained := SlideLine(work)
		b.score += gained

		if dir == Right || dir == Down {
			slid = Reverse(slid)
		}

		if !equalLines(line, slid) {
			b.setLine(dir, i, slid)
			moved = true
		}
	}

	return moved
}

// line extracts row i for horizontal moves or column i for vertical ones.
func (b *Board) line(dir Direction, i int) []int {
	out := make([]int, b.size)
	switch dir {
	case Left, Right:
		copy(out, b.grid[i])
	case Up, Down:
		for r := range b.size {
			out[r] = b.grid[r][i]
		}
	}
	return out
}

func (b *Board) setLine(dir Direction, i int, values []int) {
	switch dir {
	case Left, Right:
		copy(b.grid[i], values)
	case Up, Down:
		for r := range b.size {
			b.grid[r][i] = values[r]
		}
	}
}

// emptyCells returns the coordinates of all empty cells in row-major order.
func (b *Board) emptyCells() [][2]int {
	var cells [][2]int
	for r := range b.size {
		for c := range b.size {
			if b.grid[r][c] == 0 {
				cells = append(cells, [2]int{r, c})
			}
		}
	}
	return cells
}

// AddRandomTile places a 2 (90%) or a 4 (10%) on a uniformly chosen empty
// cell. Does nothing when the grid is full.
func (b *Board) AddRandomTile() {
	empty := b.emptyCells()
	if len(empty) == 0 {
		return
	}

	pos := empty[b.rnd.IntN(len(empty))]

	value := 2
	if b.rnd.IntN(fourChance) == 0 {
		value = 4
	}

	b.grid[pos[0]][pos[1]] = value
}

// HasWinningTile reports whether any cell holds WinningTile.
func (b *Board) HasWinningTile() bool {
	for r := range b.size {
		for c := range b.size {
			if b.grid[r][c] == WinningTile {
				return true
			}
		}
	}
	return false
}

// CanMove reports whether any move is possible: an empty cell exists or two
// adjacent cells hold the same value.
//
// Only the right and lower neighbour of each cell are compared; every adjacent
// pair is therefore checked exactly once.
func (b *Board) CanMove() bool {
	for r := range b.size {
		for c := range b.size {
			val := b.grid[r][c]
			if val == 0 {
				return true
			}
			if c < b.size-1 && b.grid[r][c+1] == val {
				return true
			}
			if r < b.size-1 && b.grid[r+1][c] == val {
				return true
			}
		}
	}
	return false
}

// EmptyCount returns the number of empty cells.
func (b *Board) EmptyCount() int {
	return len(b.emptyCells())
}

// MaxTile returns the highest tile value on the board.
func (b *Board) MaxTile() int {
	maxVal := 0
	for r := range b.size {
		for c := range b.size {
			if b.grid[r][c] > maxVal {
				maxVal = b.grid[r][c]
			}
		}
	}
	return maxVal
}
