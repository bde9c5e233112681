package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	minTileDigits = 4 // Cells are at least wide enough for 2048
	tilePadding   = 2 // Blank columns around the widest value
	hudHeight     = 3 // Title, score line, spacer
)

// Render draws the game state to the screen. Boards that do not fit with
// a rule between every row fall back to a compact layout without them.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.board == nil {
		return
	}

	rowStep := 2
	w, h := g.boardSize(rowStep)
	if dst.Width() < w || dst.Height() < hudHeight+h {
		rowStep = 1
		w, h = g.boardSize(rowStep)
	}
	if dst.Width() < w || dst.Height() < hudHeight+h {
		g.renderTooSmall(dst)
		return
	}

	board := core.NewRect((dst.Width()-w)/2, hudHeight, w, h)

	g.renderHUD(dst, board)
	g.renderBoard(dst, board, g.cellInnerWidth(), rowStep)
	g.renderOverlays(dst, board)
}

// MinScreenSize returns the smallest screen that fits the board and HUD,
// using the compact layout.
func (g *Game) MinScreenSize() (w, h int) {
	if g.board == nil {
		return 0, 0
	}
	w, h = g.boardSize(1)
	return w, hudHeight + h
}

// boardSize returns the size of the grid with rowStep lines per tile row.
func (g *Game) boardSize(rowStep int) (w, h int) {
	size := g.board.Size()
	w = size*(g.cellInnerWidth()+1) + 1
	if rowStep == 1 {
		return w, size + 2
	}
	return w, size*2 + 1
}

// cellInnerWidth is the width of a cell without its borders, sized to the
// widest value on the board.
func (g *Game) cellInnerWidth() int {
	digits := len(strconv.Itoa(g.board.MaxTile()))
	return max(digits, minTileDigits) + tilePadding
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and max tile.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := g.Title()
	dst.DrawText(board.X+(board.W-len(title))/2, 0, title)

	dst.DrawText(board.X, 1, fmt.Sprintf("Score: %d", g.board.Score()))

	info := fmt.Sprintf("Max: %d", g.board.MaxTile())
	dst.DrawText(max(board.X, board.Right()-len(info)), 1, info)
}

// renderBoard draws the grid lines and the tiles. With a rowStep of 1 only
// the outer horizontal rules are drawn.
func (g *Game) renderBoard(dst *core.Screen, board core.Rect, inner, rowStep int) {
	size := g.board.Size()
	cellW := inner + 1

	for y := range size + 1 {
		if rowStep == 1 && y != 0 && y != size {
			continue
		}
		py := board.Y + y*rowStep
		if y == size {
			py = board.Bottom() - 1
		}

		for x := range size + 1 {
			px := board.X + x*cellW
			dst.SetColored(px, py, junction(x, y, size), core.ColorBoard)
			if x < size {
				for i := 1; i < cellW; i++ {
					dst.SetColored(px+i, py, '─', core.ColorBoard)
				}
			}
		}
	}

	for row := range size {
		cy := board.Y + row*rowStep + 1
		for x := range size + 1 {
			dst.SetColored(board.X+x*cellW, cy, '│', core.ColorBoard)
		}

		for col := range size {
			cell := core.NewRect(board.X+col*cellW+1, cy, inner, 1)

			val := g.board.Cell(row, col)
			if val == 0 {
				dst.FillRect(cell, ' ', core.ColorBoard)
				continue
			}

			color := tileColor(val)
			dst.FillRect(cell, ' ', color)

			label := strconv.Itoa(val)
			dst.DrawTextColored(cell.X+(inner-len(label))/2, cell.Y, label, color)
		}
	}
}

// junction returns the box-drawing rune where grid lines meet at (x, y).
func junction(x, y, size int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == size:
		return '┐'
	case y == size && x == 0:
		return '└'
	case y == size && x == size:
		return '┘'
	case y == 0:
		return '┬'
	case y == size:
		return '┴'
	case x == 0:
		return '├'
	case x == size:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws the win or lose notice over the board.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	switch g.notice {
	case noticeWon:
		drawOverlay(dst, board, "You win!", fmt.Sprintf("Score: %d", g.board.Score()), "Enter: new game")
	case noticeLost:
		drawOverlay(dst, board, "Game over!", fmt.Sprintf("Max tile: %d", g.board.MaxTile()), "Enter: new game")
	}
}

// drawOverlay draws a text box over the middle of the board.
func drawOverlay(dst *core.Screen, board core.Rect, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	cx, cy := board.Center()
	box := core.CenteredRect(cx, cy, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(cx-len(line)/2, box.Y+1+i, line)
	}
}
