package engine

import (
	"slices"
	"testing"
)

// scriptedRand returns queued values in order, reduced modulo n.
type scriptedRand struct {
	values []int
	calls  int
}

func (s *scriptedRand) IntN(n int) int {
	if s.calls >= len(s.values) {
		panic("scriptedRand: sequence exhausted")
	}
	v := s.values[s.calls] % n
	s.calls++
	return v
}

func gridEqual(a, b [][]int) bool {
	return slices.EqualFunc(a, b, func(x, y []int) bool { return slices.Equal(x, y) })
}

func countNonZero(b *Board) int {
	count := 0
	for r := range b.Size() {
		for c := range b.Size() {
			if b.Cell(r, c) != 0 {
				count++
			}
		}
	}
	return count
}

func TestMoveLeft(t *testing.T) {
	b := FromGrid([][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}, nil)

	expected := [][]int{
		{4, 0, 0, 0},
		{8, 0, 0, 0},
		{4, 4, 0, 0},
		{2, 0, 0, 0},
	}

	if !b.Move(Left) {
		t.Error("Move(Left) should report the board changed")
	}
	if got := b.Grid(); !gridEqual(got, expected) {
		t.Errorf("Move(Left): got\n%v\nwant\n%v", got, expected)
	}
	if b.Score() != 4+8+4+4 {
		t.Errorf("Score = %d, want 20", b.Score())
	}
}

func TestMoveRight(t *testing.T) {
	b := FromGrid([][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}, nil)

	expected := [][]int{
		{0, 0, 0, 4},
		{0, 0, 0, 8},
		{0, 0, 4, 4},
		{0, 0, 0, 2},
	}

	if !b.Move(Right) {
		t.Error("Move(Right) should report the board changed")
	}
	if got := b.Grid(); !gridEqual(got, expected) {
		t.Errorf("Move(Right): got\n%v\nwant\n%v", got, expected)
	}
}

func TestMoveUp(t *testing.T) {
	b := FromGrid([][]int{
		{2, 4, 2, 0},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 2},
	}, nil)

	expected := [][]int{
		{4, 8, 4, 2},
		{0, 0, 4, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}

	if !b.Move(Up) {
		t.Error("Move(Up) should report the board changed")
	}
	if got := b.Grid(); !gridEqual(got, expected) {
		t.Errorf("Move(Up): got\n%v\nwant\n%v", got, expected)
	}
}

func TestMoveDown(t *testing.T) {
	b := FromGrid([][]int{
		{2, 4, 2, 2},
		{2, 0, 2, 0},
		{0, 4, 2, 0},
		{0, 0, 2, 0},
	}, nil)

	expected := [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 4, 0},
		{4, 8, 4, 2},
	}

	if !b.Move(Down) {
		t.Error("Move(Down) should report the board changed")
	}
	if got := b.Grid(); !gridEqual(got, expected) {
		t.Errorf("Move(Down): got\n%v\nwant\n%v", got, expected)
	}
}

func TestMoveDirectionalSymmetry(t *testing.T) {
	left := FromGrid([][]int{{2, 2, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, nil)
	left.Move(Left)
	if got := left.Grid()[0]; !slices.Equal(got, []int{4, 0, 0, 0}) {
		t.Errorf("[2,2,0,0] left = %v, want [4 0 0 0]", got)
	}

	right := FromGrid([][]int{{0, 0, 2, 2}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, nil)
	right.Move(Right)
	if got := right.Grid()[0]; !slices.Equal(got, []int{0, 0, 0, 4}) {
		t.Errorf("[0,0,2,2] right = %v, want [0 0 0 4]", got)
	}

	// A column moved down mirrors the same column moved up.
	up := FromGrid([][]int{{2, 0, 0}, {2, 0, 0}, {4, 0, 0}}, nil)
	up.Move(Up)
	down := FromGrid([][]int{{4, 0, 0}, {2, 0, 0}, {2, 0, 0}}, nil)
	down.Move(Down)
	for r := range 3 {
		if up.Cell(r, 0) != down.Cell(2-r, 0) {
			t.Errorf("Up/Down mismatch at row %d: up=%v down=%v", r, up.Grid(), down.Grid())
		}
	}
	if up.Score() != down.Score() {
		t.Errorf("Up score %d != Down score %d", up.Score(), down.Score())
	}
}

func TestMoveNoDoubleMerge(t *testing.T) {
	b := FromGrid([][]int{{2, 2, 2, 2}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, nil)
	b.Move(Left)

	if got := b.Grid()[0]; !slices.Equal(got, []int{4, 4, 0, 0}) {
		t.Errorf("[2,2,2,2] left = %v, want [4 4 0 0]", got)
	}
	if b.Score() != 8 {
		t.Errorf("Score = %d, want 8", b.Score())
	}
}

func TestMoveNoChange(t *testing.T) {
	tests := []struct {
		name string
		grid [][]int
		dir  Direction
	}{
		{"packed upward", [][]int{{2, 4}, {0, 0}}, Up},
		{"packed left", [][]int{{4, 2, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}, Left},
		{"empty board", [][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}, Down},
		{"packed right no pairs", [][]int{{0, 2, 4}, {0, 0, 8}, {2, 4, 2}}, Right},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromGrid(tt.grid, nil)
			if b.Move(tt.dir) {
				t.Errorf("Move(%s) = true, want false", tt.dir)
			}
			if !gridEqual(b.Grid(), tt.grid) {
				t.Errorf("grid changed: %v", b.Grid())
			}
			if b.Score() != 0 {
				t.Errorf("Score = %d, want 0", b.Score())
			}
		})
	}
}

func TestMoveDoesNotSpawn(t *testing.T) {
	rnd := &scriptedRand{}
	b := FromGrid([][]int{{2, 0, 0}, {0, 0, 0}, {0, 0, 2}}, rnd)

	b.Move(Right)

	if countNonZero(b) != 2 {
		t.Errorf("Move inserted a tile: %v", b.Grid())
	}
	if rnd.calls != 0 {
		t.Errorf("Move consumed %d random values", rnd.calls)
	}
}

func TestAddRandomTile(t *testing.T) {
	tests := []struct {
		name  string
		seq   []int
		row   int
		col   int
		value int
	}{
		// Empty cells in row-major order: (0,1) (1,0) (1,1).
		{"first empty gets 2", []int{0, 5}, 0, 1, 2},
		{"last empty gets 4", []int{2, 0}, 1, 1, 4},
		{"middle empty gets 2", []int{1, 9}, 1, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rnd := &scriptedRand{values: tt.seq}
			b := FromGrid([][]int{{8, 0}, {0, 0}}, rnd)

			b.AddRandomTile()

			if got := b.Cell(tt.row, tt.col); got != tt.value {
				t.Errorf("Cell(%d,%d) = %d, want %d (grid %v)", tt.row, tt.col, got, tt.value, b.Grid())
			}
			if countNonZero(b) != 2 {
				t.Errorf("non-zero cells = %d, want 2", countNonZero(b))
			}
		})
	}
}

func TestAddRandomTileFullBoard(t *testing.T) {
	rnd := &scriptedRand{}
	grid := [][]int{{2, 4}, {8, 16}}
	b := FromGrid(grid, rnd)

	b.AddRandomTile()

	if !gridEqual(b.Grid(), grid) {
		t.Errorf("full board changed: %v", b.Grid())
	}
	if rnd.calls != 0 {
		t.Errorf("AddRandomTile on full board consumed %d random values", rnd.calls)
	}
}

func TestAddRandomTileLegality(t *testing.T) {
	b := New(4, NewRandSource(99))
	fours := 0
	const rounds = 2000

	for range rounds {
		b.NewGame()
		before := countNonZero(b)
		b.AddRandomTile()

		if countNonZero(b) != before+1 {
			t.Fatalf("non-zero cells went from %d to %d", before, countNonZero(b))
		}
		for r := range 4 {
			for c := range 4 {
				if v := b.Cell(r, c); v != 0 && v != 2 && v != 4 {
					t.Fatalf("spawned illegal value %d", v)
				}
				if b.Cell(r, c) == 4 {
					fours++
				}
			}
		}
	}

	// Three spawned tiles per round, about one in ten is a 4.
	ratio := float64(fours) / float64(rounds*3)
	if ratio < 0.06 || ratio > 0.14 {
		t.Errorf("share of 4s = %.3f, want about 0.10", ratio)
	}
}

func TestHasWinningTile(t *testing.T) {
	b := FromGrid([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 2048}}, nil)
	if !b.HasWinningTile() {
		t.Error("board with 2048 should have a winning tile")
	}

	b = FromGrid([][]int{{1024, 1024}, {4096, 0}}, nil)
	if b.HasWinningTile() {
		t.Error("only an exact 2048 tile wins")
	}

	b = FromGrid([][]int{{2048, 2}, {4, 2}}, nil)
	if !b.HasWinningTile() || !b.CanMove() {
		t.Error("winning tile and available moves are independent")
	}
}

func TestCanMove(t *testing.T) {
	tests := []struct {
		name     string
		grid     [][]int
		expected bool
	}{
		{
			name: "full, no pairs",
			grid: [][]int{
				{2, 4, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: false,
		},
		{
			name: "horizontal pair",
			grid: [][]int{
				{2, 2, 8, 16},
				{32, 64, 128, 256},
				{512, 1024, 2048, 4096},
				{8192, 16384, 32768, 65536},
			},
			expected: true,
		},
		{
			name: "vertical pair in last column",
			grid: [][]int{
				{2, 4, 8},
				{4, 8, 16},
				{2, 4, 16},
			},
			expected: true,
		},
		{
			name: "empty cell",
			grid: [][]int{
				{2, 4, 8},
				{4, 0, 2},
				{2, 4, 8},
			},
			expected: true,
		},
		{
			name: "checkerboard",
			grid: [][]int{
				{2, 4, 2},
				{4, 2, 4},
				{2, 4, 2},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FromGrid(tt.grid, nil)
			if got := b.CanMove(); got != tt.expected {
				t.Errorf("CanMove() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestCanMoveMatchesMove(t *testing.T) {
	rnd := NewRandSource(2048)
	values := []int{2, 4, 8, 16}

	for range 300 {
		grid := make([][]int, 3)
		for r := range grid {
			grid[r] = make([]int, 3)
			for c := range grid[r] {
				grid[r][c] = values[rnd.IntN(len(values))]
			}
		}

		anyMove := false
		for _, dir := range Directions {
			if FromGrid(grid, nil).Move(dir) {
				anyMove = true
			}
		}

		if got := FromGrid(grid, nil).CanMove(); got != anyMove {
			t.Fatalf("CanMove() = %v but some move changes the board = %v for %v", got, anyMove, grid)
		}
	}
}

func TestNewGame(t *testing.T) {
	b := New(4, NewRandSource(42))
	b.NewGame()

	if b.Score() != 0 {
		t.Errorf("Score = %d, want 0", b.Score())
	}
	if countNonZero(b) != 2 {
		t.Errorf("non-zero cells = %d, want 2", countNonZero(b))
	}
	for r := range 4 {
		for c := range 4 {
			if v := b.Cell(r, c); v != 0 && v != 2 && v != 4 {
				t.Errorf("initial tile %d at (%d,%d)", v, r, c)
			}
		}
	}
}

func TestNewGameResets(t *testing.T) {
	b := FromGrid([][]int{{2, 2, 4}, {8, 8, 16}, {32, 0, 0}}, NewRandSource(1))
	b.Move(Left)
	if b.Score() == 0 {
		t.Fatal("expected merges to score")
	}

	b.NewGame()

	if b.Score() != 0 {
		t.Errorf("Score after NewGame = %d, want 0", b.Score())
	}
	if countNonZero(b) != 2 {
		t.Errorf("non-zero cells after NewGame = %d, want 2", countNonZero(b))
	}
}

func TestDeterministicSeed(t *testing.T) {
	b1 := New(5, NewRandSource(12345))
	b1.NewGame()
	b2 := New(5, NewRandSource(12345))
	b2.NewGame()

	if !gridEqual(b1.Grid(), b2.Grid()) {
		t.Errorf("same seed should give the same board:\n%v\nvs\n%v", b1.Grid(), b2.Grid())
	}
}

func TestEndToEndScenario(t *testing.T) {
	b := New(4, NewRandSource(3))
	b.NewGame()
	if countNonZero(b) != 2 || b.Score() != 0 {
		t.Fatalf("NewGame: %d tiles, score %d", countNonZero(b), b.Score())
	}

	rnd := &scriptedRand{values: []int{0, 3}}
	b = FromGrid([][]int{
		{0, 2, 0, 2},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, rnd)

	if !b.Move(Left) {
		t.Fatal("Move(Left) = false, want true")
	}
	if got := b.Grid()[0]; !slices.Equal(got, []int{4, 0, 0, 0}) {
		t.Errorf("row 0 = %v, want [4 0 0 0]", got)
	}
	if b.Score() != 4 {
		t.Errorf("Score = %d, want 4", b.Score())
	}

	// Caller's half of the contract: spawn once, then check terminal state.
	b.AddRandomTile()
	if countNonZero(b) != 2 {
		t.Errorf("non-zero cells after spawn = %d, want 2", countNonZero(b))
	}
	if b.HasWinningTile() || !b.CanMove() {
		t.Error("game should still be in progress")
	}
}

func TestGridIsCopy(t *testing.T) {
	b := FromGrid([][]int{{2, 0}, {0, 0}}, nil)
	g := b.Grid()
	g[0][0] = 1024

	if b.Cell(0, 0) != 2 {
		t.Error("Grid() must return a copy")
	}
}

func TestMaxTileAndEmptyCount(t *testing.T) {
	b := FromGrid([][]int{
		{2, 0, 8, 0},
		{0, 64, 0, 256},
		{512, 0, 2048, 0},
		{0, 16, 0, 64},
	}, nil)

	if b.MaxTile() != 2048 {
		t.Errorf("MaxTile = %d, want 2048", b.MaxTile())
	}
	if b.EmptyCount() != 8 {
		t.Errorf("EmptyCount = %d, want 8", b.EmptyCount())
	}
}

func TestNewPanicsOnInvalidSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(0) should panic")
		}
	}()
	New(0, nil)
}

func TestDirectionString(t *testing.T) {
	if Left.String() != "left" || Down.String() != "down" || Direction(9).String() != "unknown" {
		t.Error("unexpected Direction.String() output")
	}
}
