package core

// Color represents the style of a screen cell. Besides the two plain
// colors, a tile color selects a palette background together with a dark
// or light text color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBoard         // Board background behind the tiles
)

// Tile color slots.
const (
	colorTileDark  Color = 64
	colorTileLight Color = 96

	// TilePaletteSize is the number of tile colors: empty and 2, then 4, 8
	// and so on up to 4096 and beyond.
	TilePaletteSize = 12
)

// TileColor returns the color for palette entry idx with dark or light text.
// Indices outside [0, TilePaletteSize) are clamped.
func TileColor(idx int, lightText bool) Color {
	idx = Clamp(idx, 0, TilePaletteSize-1)
	if lightText {
		return colorTileLight + Color(idx)
	}
	return colorTileDark + Color(idx)
}

// Tile reports whether c is a tile color and, if so, its palette index and
// text variant.
func (c Color) Tile() (idx int, lightText bool, ok bool) {
	switch {
	case c >= colorTileDark && c < colorTileDark+TilePaletteSize:
		return int(c - colorTileDark), false, true
	case c >= colorTileLight && c < colorTileLight+TilePaletteSize:
		return int(c - colorTileLight), true, true
	default:
		return 0, false, false
	}
}
