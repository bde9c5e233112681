package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It mirrors defaults/t2048.yaml and is used if the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Board: BoardConfig{
			Size:   4,
			Prompt: true,
		},
		Theme: ThemeConfig{
			Board:     "#BBADA0",
			TextDark:  "#776E65",
			TextLight: "#F9F6F2",
			Tiles: []string{
				"#CDC1B4", "#EEE4DA", "#EDE0C8", "#F2B179",
				"#F59563", "#F67C5F", "#F65E3B", "#EDCF72",
				"#EDCC61", "#EDC850", "#EDC53F", "#EDC22E",
			},
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/scores.db",
		},
		Log: LogConfig{
			File:  "~/.t2048/t2048.log",
			Level: "info",
		},
	}
}
