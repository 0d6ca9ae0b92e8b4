// termleap is a terminal application to play a Halma-style leaping game.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termleap/config"
	"termleap/engine"
	"termleap/position"
	"termleap/types"
	"termleap/ui"
)

// Version is set at build time via ldflags
var Version = "dev"

// Command-line flags
var (
	flagBoardSize  = flag.Int("size", 0, "Board size (8-26)")
	flagPlayer     = flag.String("player", "", "Only allow selecting this player's pieces (a or b)")
	flagPosition   = flag.String("position", "", "Start from a saved position file")
	flagQuickStart = flag.Bool("play", false, "Start game immediately with defaults")
	flagFocus      = flag.Bool("focus", false, "Start in focus mode (fullscreen board)")
	flagNoMouse    = flag.Bool("nomouse", false, "Disable mouse input")
	flagVersion    = flag.Bool("version", false, "Print version and exit")
)

var app *tview.Application
var rootPage *tview.Pages
var gameBoard *ui.BoardUI
var gameFrame *tview.Flex
var gameHint *tview.TextView
var cfg *config.Config

func main() {
	flag.Parse()

	if *flagVersion {
		fmt.Printf("termleap %s\n", Version)
		return
	}

	var err error
	cfg, err = config.InitConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if logPath, err := config.DebugLogPath(); err == nil {
		if f, err := engine.OpenDebugLog(logPath); err == nil {
			defer f.Close()
		}
	}

	quickStart := *flagQuickStart || *flagBoardSize > 0 || *flagPlayer != "" || *flagPosition != "" || *flagFocus

	app = tview.NewApplication()
	app.EnableMouse(cfg.Game.EnableMouse && !*flagNoMouse)
	rootPage = tview.NewPages()
	rootPage.SetBorder(true).SetTitle(" ◆ termleap ")

	// Game view setup
	gameHint = tview.NewTextView()
	gameHint.SetBorder(true)
	gameHint.SetBorderPadding(0, 0, 1, 1)
	gameHint.SetTitle(" Status ")
	gameHint.SetTitleAlign(tview.AlignLeft)
	gameBoard = ui.NewBoardUI(app, cfg, gameHint)

	gameFrame = ui.CreateGameLayout(gameBoard, gameHint)

	// Game board input handling
	gameBoard.Box.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyRune && event.Rune() == 'q' {
			if gameBoard.HasSelection() {
				gameBoard.Deselect()
			} else if gameBoard.CursorTile() != nil {
				gameBoard.ResetCursor()
			} else {
				showSetup()
			}
			return nil
		}
		switch event.Key() {
		case tcell.KeyUp:
			gameBoard.MoveCursor(0, -1)
		case tcell.KeyDown:
			gameBoard.MoveCursor(0, 1)
		case tcell.KeyLeft:
			gameBoard.MoveCursor(-1, 0)
		case tcell.KeyRight:
			gameBoard.MoveCursor(1, 0)
		case tcell.KeyEnter:
			gameBoard.ClickCursor()
		case tcell.KeyEsc:
			gameBoard.Deselect()
		case tcell.KeyRune:
			switch event.Rune() {
			case 'h':
				gameBoard.MoveCursor(-1, 0)
			case 'j':
				gameBoard.MoveCursor(0, 1)
			case 'k':
				gameBoard.MoveCursor(0, -1)
			case 'l':
				gameBoard.MoveCursor(1, 0)
			case ' ':
				gameBoard.ClickCursor()
			case 'c':
				gameBoard.ClearLastMove()
			case 'x':
				gameBoard.ToggleLock()
			case 'w':
				dir, err := config.PositionsDir()
				if err == nil {
					gameBoard.SavePosition(dir)
				}
			case 'f':
				if gameBoard.ToggleFocusMode() {
					ui.BuildFocusLayout(gameFrame, gameBoard)
				} else {
					ui.RebuildNormalLayout(gameFrame, gameBoard, gameHint)
				}
			}
		}
		return event
	})

	// Color configuration screen
	colorConfig := ui.NewColorConfig(cfg, func() {
		gameBoard.SetConfig(cfg)
		showSetup()
	})
	colorConfig.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEsc || (event.Key() == tcell.KeyRune && event.Rune() == 'q') {
			showSetup()
			return nil
		}
		if event.Key() == tcell.KeyTab {
			colorConfig.ToggleMode()
			return nil
		}
		return event
	})

	rootPage.AddPage("gameview", gameFrame, true, quickStart)
	rootPage.AddPage("colors", colorConfig.Flex(), true, false)

	if quickStart {
		startGame(buildGameConfigFromFlags())
		if *flagFocus {
			gameBoard.SetFocusMode(true)
			ui.BuildFocusLayout(gameFrame, gameBoard)
		}
	} else {
		showSetup()
	}

	if err := app.SetRoot(rootPage, true).Run(); err != nil {
		panic(err)
	}
}

// showSetup rebuilds the setup form so it lists the current saved positions.
func showSetup() {
	var positions []position.Info
	if dir, err := config.PositionsDir(); err == nil {
		positions, _ = position.ListPositions(dir)
	}
	setupUI := ui.NewGameSetup(defaultGameConfig(), positions,
		func(gameCfg engine.GameConfig) {
			startGame(gameCfg)
		},
		func() {
			app.Stop()
		},
		func() {
			rootPage.SwitchToPage("colors")
		},
	)
	setupUI.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyCtrlS {
			startGame(setupUI.Config())
			return nil
		}
		return event
	})
	rootPage.AddAndSwitchToPage("setup", ui.CreateCenteredForm(setupUI.Form(), 70), true)
}

// startGame starts a game with the given configuration.
func startGame(gameCfg engine.GameConfig) {
	game, err := engine.NewGame(gameCfg)
	if err != nil {
		modal := tview.NewModal().
			SetText(fmt.Sprintf("Failed to start game:\n%s", err.Error())).
			AddButtons([]string{"OK"}).
			SetDoneFunc(func(buttonIndex int, buttonLabel string) {
				rootPage.RemovePage("error")
			})
		rootPage.AddPage("error", modal, true, true)
		return
	}
	gameBoard.ConnectGame(game)
	rootPage.SwitchToPage("gameview")
}

// defaultGameConfig creates a GameConfig from the config file defaults.
func defaultGameConfig() engine.GameConfig {
	gameCfg := engine.DefaultConfig()
	gameCfg.BoardSize = cfg.Game.DefaultBoardSize
	gameCfg.RestrictPlayer = types.Occupancy(cfg.Game.RestrictPlayer)
	return gameCfg
}

// buildGameConfigFromFlags creates a GameConfig from command-line flags.
func buildGameConfigFromFlags() engine.GameConfig {
	gameCfg := defaultGameConfig()

	if *flagBoardSize > 0 {
		gameCfg.BoardSize = *flagBoardSize
	}

	switch strings.ToLower(*flagPlayer) {
	case "a":
		gameCfg.RestrictPlayer = types.PlayerA
	case "b":
		gameCfg.RestrictPlayer = types.PlayerB
	}

	gameCfg.PositionPath = *flagPosition
	return gameCfg
}
