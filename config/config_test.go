package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Game.DefaultBoardSize != 9 {
		t.Fatalf("DefaultBoardSize = %d, want 9", cfg.Game.DefaultBoardSize)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
	}{
		{"control rune", func(c *Config) { c.Theme.Symbols.Piece = '\t' }},
		{"C1 rune", func(c *Config) { c.Theme.Symbols.Empty = 130 }},
		{"board too small", func(c *Config) { c.Game.DefaultBoardSize = 7 }},
		{"board too large", func(c *Config) { c.Game.DefaultBoardSize = 27 }},
		{"unknown player", func(c *Config) { c.Game.RestrictPlayer = 3 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig
			tc.modify(&cfg)
			var invalid *InvalidConfig
			if err := cfg.Validate(); !errors.As(err, &invalid) {
				t.Fatalf("Validate() = %v, want *InvalidConfig", err)
			}
		})
	}
}

func TestReadCfgFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"game": {"default_board_size": 12, "restrict_player": 1}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig
	if err := readCfgFile(path, &cfg); err != nil {
		t.Fatalf("readCfgFile: %v", err)
	}
	if cfg.Game.DefaultBoardSize != 12 || cfg.Game.RestrictPlayer != 1 {
		t.Fatalf("game = %+v", cfg.Game)
	}
	if cfg.Theme.Symbols.Piece != DefaultTheme.Symbols.Piece {
		t.Fatal("fields missing from the file should keep their defaults")
	}
}

func TestReadCfgFileInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg := DefaultConfig
	var invalid *InvalidConfig
	if err := readCfgFile(path, &cfg); !errors.As(err, &invalid) {
		t.Fatalf("readCfgFile error = %v, want *InvalidConfig", err)
	}
}

func TestSaveCfgFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := DefaultConfig
	cfg.Theme.Colors.BoardColor = 230
	if err := saveCfgFile(path, &cfg, 0644); err != nil {
		t.Fatalf("saveCfgFile: %v", err)
	}
	loaded := DefaultConfig
	if err := readCfgFile(path, &loaded); err != nil {
		t.Fatal(err)
	}
	if loaded.Theme.Colors.BoardColor != 230 {
		t.Fatalf("BoardColor = %d, want 230", loaded.Theme.Colors.BoardColor)
	}
}
