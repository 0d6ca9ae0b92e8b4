package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"termleap/board"
)

var (
	cfgFile      = "termleap/config.json"
	positionsDir = "termleap/positions"
	debugLogFile = "termleap/debug.log"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type ConfigColors struct {
	BoardColor        int `json:"board"`
	BoardColorAlt     int `json:"board_alt"`
	PlayerAColor      int `json:"player_a"`
	PlayerBColor      int `json:"player_b"`
	EmptyColor        int `json:"empty"`
	CursorColorBG     int `json:"cursor_bg"`
	HoverColorBG      int `json:"hover_bg"`
	SelectedColorBG   int `json:"selected_bg"`
	DestinationColor  int `json:"destination"`
	LastPlayedColorBG int `json:"last_played_bg"`
}

type ConfigSymbols struct {
	Piece       rune `json:"piece"`
	Empty       rune `json:"empty"`
	Destination rune `json:"destination"`
	LastPlayed  rune `json:"last_played"`
}

type Theme struct {
	DrawCursorBackground     bool          `json:"draw_cursor_bg"`
	DrawLastPlayedBackground bool          `json:"draw_last_played_bg"`
	CheckeredBoard           bool          `json:"checkered_board"`
	Colors                   ConfigColors  `json:"colors"`
	Symbols                  ConfigSymbols `json:"symbols"`
}

// GameDefaults holds the settings a new game starts with.
type GameDefaults struct {
	DefaultBoardSize int  `json:"default_board_size"`
	RestrictPlayer   int  `json:"restrict_player"` // 0=none, 1=A, 2=B
	EnableMouse      bool `json:"enable_mouse"`
}

type Config struct {
	Theme Theme        `json:"theme"`
	Game  GameDefaults `json:"game"`
}

func InitConfig() (*Config, error) {
	config := DefaultConfig
	absPath, err := xdg.SearchConfigFile(cfgFile)
	if err == nil {
		if err := readCfgFile(absPath, &config); err != nil {
			return nil, err
		}
	}
	if err = config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func (c *Config) Validate() error {
	for _, r := range []rune{c.Theme.Symbols.Piece, c.Theme.Symbols.Empty, c.Theme.Symbols.Destination, c.Theme.Symbols.LastPlayed} {
		if r < 32 || (r >= 127 && r <= 159) {
			return &InvalidConfig{"Unicode characters 1-31 and 127-159 are not allowed"}
		}
	}
	if board.CheckPlayableSize(c.Game.DefaultBoardSize) != nil {
		return &InvalidConfig{fmt.Sprintf("default_board_size must be between %d and %d", board.MinRecommendedSize, board.MaxNamedSize)}
	}
	if c.Game.RestrictPlayer < 0 || c.Game.RestrictPlayer > 2 {
		return &InvalidConfig{"restrict_player must be 0 (none), 1 (A) or 2 (B)"}
	}
	return nil
}

func (c *Config) Save() error {
	absPath, err := xdg.ConfigFile(cfgFile)
	if err != nil {
		return fmt.Errorf("locate config file: %w", err)
	}
	return saveCfgFile(absPath, c, 0664)
}

// PositionsDir returns the directory saved positions are written to.
func PositionsDir() (string, error) {
	// xdg.DataFile creates the parent directory of the path it returns.
	marker, err := xdg.DataFile(positionsDir + "/.keep")
	if err != nil {
		return "", err
	}
	return filepath.Dir(marker), nil
}

// DebugLogPath returns the path of the debug log in the user's cache dir.
func DebugLogPath() (string, error) {
	return xdg.CacheFile(debugLogFile)
}

func saveCfgFile(filePath string, a interface{}, perm fs.FileMode) error {
	jsonData, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, jsonData, perm)
}

func readCfgFile(filePath string, a interface{}) error {
	configReader, err := os.ReadFile(filePath)
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(configReader, a); err != nil {
		return &InvalidConfig{fmt.Sprintf("%s: %s", filePath, err)}
	}
	return nil
}
