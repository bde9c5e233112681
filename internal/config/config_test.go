package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	embedded := embeddedDefault()
	hardcoded := DefaultConfig()

	if embedded.Board != hardcoded.Board {
		t.Errorf("board: embedded %+v, hardcoded %+v", embedded.Board, hardcoded.Board)
	}
	if len(embedded.Theme.Tiles) != len(hardcoded.Theme.Tiles) {
		t.Fatalf("tiles: embedded %d, hardcoded %d", len(embedded.Theme.Tiles), len(hardcoded.Theme.Tiles))
	}
	for i := range embedded.Theme.Tiles {
		if embedded.Theme.Tiles[i] != hardcoded.Theme.Tiles[i] {
			t.Errorf("tile %d: embedded %s, hardcoded %s", i, embedded.Theme.Tiles[i], hardcoded.Theme.Tiles[i])
		}
	}
	if embedded.Storage != hardcoded.Storage || embedded.Log != hardcoded.Log {
		t.Error("storage/log sections differ between embedded and hardcoded defaults")
	}
	if err := embedded.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  size: 6\n  prompt: false\nlog:\n  level: debug\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Board.Size != 6 || cfg.Board.Prompt {
		t.Errorf("board = %+v, want size 6 without prompt", cfg.Board)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}
	// Keys not in the file keep their defaults.
	if len(cfg.Theme.Tiles) != 12 {
		t.Errorf("tiles = %d, want 12 from defaults", len(cfg.Theme.Tiles))
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load of missing file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("board: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load of malformed YAML should fail")
	}

	big := filepath.Join(dir, "big.yaml")
	if err := os.WriteFile(big, []byte("board:\n  size: 11\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(big); !errors.Is(err, ErrInvalidBoardSize) {
		t.Errorf("Load with size 11: err = %v, want ErrInvalidBoardSize", err)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".t2048")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("board:\n  size: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Size != 5 {
		t.Errorf("board size = %d, want 5 from user config", cfg.Board.Size)
	}
}

func TestLoadFallsBackToDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Board.Size != 4 {
		t.Errorf("board size = %d, want default 4", cfg.Board.Size)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"size too small", func(c *Config) { c.Board.Size = 2 }, false},
		{"size too large", func(c *Config) { c.Board.Size = 11 }, false},
		{"no tiles", func(c *Config) { c.Theme.Tiles = nil }, false},
		{"short palette", func(c *Config) { c.Theme.Tiles = c.Theme.Tiles[:11] }, false},
		{"long palette", func(c *Config) {
			c.Theme.Tiles = append(c.Theme.Tiles, "#3C3A32", "#3C3A32", "#3C3A32", "#3C3A32")
		}, false},
		{"bad color", func(c *Config) { c.Theme.Board = "brown" }, false},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, false},
		{"max size", func(c *Config) { c.Board.Size = 10 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && err == nil {
				t.Error("Validate() = nil, want error")
			}
		})
	}
}

func TestParseBoardSize(t *testing.T) {
	tests := []struct {
		input string
		want  int
		err   error
	}{
		{"4", 4, nil},
		{" 10 ", 10, nil},
		{"3", 3, nil},
		{"2", 0, ErrInvalidBoardSize},
		{"11", 0, ErrInvalidBoardSize},
		{"-4", 0, ErrInvalidBoardSize},
		{"four", 0, ErrNotInteger},
		{"4.5", 0, ErrNotInteger},
		{"", 0, ErrNotInteger},
	}

	for _, tt := range tests {
		got, err := ParseBoardSize(tt.input)
		if !errors.Is(err, tt.err) || (tt.err == nil && err != nil) {
			t.Errorf("ParseBoardSize(%q) error = %v, want %v", tt.input, err, tt.err)
		}
		if got != tt.want {
			t.Errorf("ParseBoardSize(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ExpandPath("~/.t2048/t2048.log")
	if err != nil {
		t.Fatalf("ExpandPath() failed: %v", err)
	}
	if want := filepath.Join(home, ".t2048", "t2048.log"); got != want {
		t.Errorf("ExpandPath = %q, want %q", got, want)
	}

	if got, _ := ExpandPath("/tmp/x"); got != "/tmp/x" {
		t.Errorf("absolute path changed: %q", got)
	}
}
