package config

import "termleap/board"

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		CheckeredBoard:           true,
		Colors: ConfigColors{
			BoardColor:        180,
			BoardColorAlt:     179,
			PlayerAColor:      160,
			PlayerBColor:      25,
			EmptyColor:        94,
			CursorColorBG:     4,
			HoverColorBG:      187,
			SelectedColorBG:   220,
			DestinationColor:  28,
			LastPlayedColorBG: 144,
		},
		Symbols: ConfigSymbols{
			Piece:       '●',
			Empty:       '·',
			Destination: '◦',
			LastPlayed:  '▪',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Game: GameDefaults{
			DefaultBoardSize: board.DefaultSize,
			RestrictPlayer:   0,
			EnableMouse:      true,
		},
	}
}
