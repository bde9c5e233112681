package t2048

import "github.com/vovakirdan/tui-2048/internal/core"

// PaletteSize is the number of tile colors a theme provides.
const PaletteSize = core.TilePaletteSize

// lightTextFrom is the smallest tile value drawn with light text.
const lightTextFrom = 8

// ColorIndex returns the palette index for a tile value: 0 and 2 map to 0,
// 4 to 1, 8 to 2 and so on, clamped to the last palette entry.
func ColorIndex(value int) int {
	idx := 0
	for v := value; v > 2; v /= 2 {
		idx++
	}
	return min(idx, PaletteSize-1)
}

// TextIsLight reports whether a tile value is drawn with light text.
func TextIsLight(value int) bool {
	return value >= lightTextFrom
}

// tileColor returns the screen color for a tile value.
func tileColor(value int) core.Color {
	return core.TileColor(ColorIndex(value), TextIsLight(value))
}
