package ui

import (
	"fmt"

	"github.com/rivo/tview"

	"termleap/board"
	"termleap/engine"
	"termleap/types"
)

// GameInfoPanel displays session and selection details alongside the board.
type GameInfoPanel struct {
	box  *tview.TextView
	game *engine.Game
}

// NewGameInfoPanel creates a new game info panel.
func NewGameInfoPanel() *GameInfoPanel {
	panel := &GameInfoPanel{
		box: tview.NewTextView(),
	}

	panel.box.SetDynamicColors(true)
	panel.box.SetBorder(false)
	panel.box.SetTextAlign(tview.AlignLeft)

	return panel
}

// Box returns the underlying tview component.
func (p *GameInfoPanel) Box() *tview.TextView {
	return p.box
}

// SetGame points the panel at a game session.
func (p *GameInfoPanel) SetGame(game *engine.Game) {
	p.game = game
	p.Refresh()
}

// Refresh updates the panel text.
func (p *GameInfoPanel) Refresh() {
	if p.game == nil {
		p.box.SetText("")
		return
	}
	p.box.SetText(infoText(p.game))
}

func infoText(game *engine.Game) string {
	ctl := game.Controller
	size := game.Board.Size()

	var text string

	text += "[white::b]Game Info[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	text += fmt.Sprintf("[white]Session:[-:-:-] %s\n", game.ID.String()[:8])
	text += fmt.Sprintf("[white]Board:[-:-:-] %dx%d\n", size, size)
	text += fmt.Sprintf("[white]Moves:[-:-:-] %d\n", game.MoveCount())

	restrict := "either player"
	if p := ctl.RestrictedPlayer(); p != types.Empty {
		restrict = fmt.Sprintf("%s only", p)
	}
	text += fmt.Sprintf("[white]Select:[-:-:-] %s\n", restrict)
	if ctl.Locked() {
		text += "[yellow]Locked[-]\n"
	}

	text += "\n[white::b]Position[-:-:-]\n"
	text += "[dimgray]──────────────────────[-:-:-]\n"
	if m, ok := ctl.LastMove(); ok {
		text += fmt.Sprintf("[white]Last:[-:-:-] %s → %s\n",
			board.CellName(m.FromX, m.FromY), board.CellName(m.ToX, m.ToY))
	} else {
		text += "[dimgray]Last: none[-]\n"
	}
	if sel, ok := ctl.Selected(); ok {
		text += fmt.Sprintf("[white]Selected:[-:-:-] %s\n", board.CellName(sel.X, sel.Y))
		text += fmt.Sprintf("[white]Targets:[-:-:-] %d\n", len(ctl.LegalDestinations()))
	}
	text += fmt.Sprintf("[dimgray]A moves:[-] %d\n", len(game.Board.Moves(types.PlayerA)))
	text += fmt.Sprintf("[dimgray]B moves:[-] %d\n", len(game.Board.Moves(types.PlayerB)))

	return text
}

// CreateGameLayout creates the main game layout with board and side panel.
func CreateGameLayout(boardUI *BoardUI, hint *tview.TextView) *tview.Flex {
	mainFlex := tview.NewFlex()
	RebuildNormalLayout(mainFlex, boardUI, hint)
	return mainFlex
}

// CreateCenteredForm creates a centered form container for the setup screen.
func CreateCenteredForm(form *tview.Flex, maxWidth int) *tview.Flex {
	centered := tview.NewFlex().SetDirection(tview.FlexColumn)
	centered.AddItem(nil, 0, 1, false)        // Left spacer
	centered.AddItem(form, maxWidth, 0, true) // Form with max width
	centered.AddItem(nil, 0, 1, false)        // Right spacer

	return centered
}

// RebuildNormalLayout restores the normal game layout with board, info panel, and hint.
func RebuildNormalLayout(gameFrame *tview.Flex, boardUI *BoardUI, hint *tview.TextView) {
	gameFrame.Clear()

	infoPanel := NewGameInfoPanel()
	boardUI.infoPanel = infoPanel
	if boardUI.game != nil {
		infoPanel.SetGame(boardUI.game)
	}

	boardRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	boardRow.AddItem(boardUI.Box, 0, 1, true)
	boardRow.AddItem(infoPanel.Box(), 26, 0, false)

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(boardRow, 0, 1, true)
	gameFrame.AddItem(hint, 4, 0, false)
}

// BuildFocusLayout builds the focus mode layout with just the centered board.
func BuildFocusLayout(gameFrame *tview.Flex, boardUI *BoardUI) {
	gameFrame.Clear()
	boardUI.infoPanel = nil

	boardWidth := board.DefaultSize*2 + labelWidth
	boardHeight := board.DefaultSize + 2
	if size := boardUI.size(); size > 0 {
		boardWidth = size*2 + labelWidth
		boardHeight = size + 2
	}

	gameFrame.SetDirection(tview.FlexRow)
	gameFrame.AddItem(nil, 0, 1, false) // top spacer

	centerRow := tview.NewFlex().SetDirection(tview.FlexColumn)
	centerRow.AddItem(nil, 0, 1, false)
	centerRow.AddItem(boardUI.Box, boardWidth, 0, true)
	centerRow.AddItem(nil, 0, 1, false)

	gameFrame.AddItem(centerRow, boardHeight, 0, true)
	gameFrame.AddItem(nil, 0, 1, false) // bottom spacer
}
