// Package ui specifies custom controls for tview to play termleap in the terminal.
package ui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termleap/board"
	"termleap/config"
	"termleap/engine"
	"termleap/types"
)

// Columns left of the board reserved for row numbers.
const labelWidth = 4

// Indexes into BoardUI.styles.
const (
	colorBoard = iota
	colorBoardAlt
	colorPlayerA
	colorPlayerB
	colorEmpty
	colorCursor
	colorHover
	colorSelected
	colorDestination
	colorLastPlayed
)

type BoardUI struct {
	Box       *tview.Box
	game      *engine.Game
	hint      *tview.TextView
	cfg       *config.Config
	app       *tview.Application
	styles    []tcell.Color
	infoPanel *GameInfoPanel
	focusMode bool
	status    string

	// keyboard cursor, -1 when hidden
	curX int
	curY int

	hover    types.BoardPos
	hovering bool

	// top-left screen cell of the board at the last draw
	left int
	top  int
}

// ToggleFocusMode toggles focus mode and returns the new state.
func (g *BoardUI) ToggleFocusMode() bool {
	g.focusMode = !g.focusMode
	g.refreshHint()
	return g.focusMode
}

// SetFocusMode sets focus mode to the given state.
func (g *BoardUI) SetFocusMode(enabled bool) {
	g.focusMode = enabled
	g.refreshHint()
}

// IsFocusMode returns true if focus mode is enabled.
func (g *BoardUI) IsFocusMode() bool {
	return g.focusMode
}

// Game returns the connected game, or nil.
func (g *BoardUI) Game() *engine.Game {
	return g.game
}

func (g *BoardUI) size() int {
	if g.game == nil {
		return 0
	}
	return g.game.Board.Size()
}

func (g *BoardUI) CursorTile() *types.BoardPos {
	if g.curX == -1 && g.curY == -1 {
		return nil
	}
	return &types.BoardPos{X: g.curX, Y: g.curY}
}

// MoveCursor moves the keyboard cursor by h columns and v screen rows.
// Screen rows grow downwards while board y grows upwards.
func (g *BoardUI) MoveCursor(h, v int) {
	size := g.size()
	if size == 0 {
		return
	}
	if g.CursorTile() == nil {
		if sel, ok := g.game.Controller.Selected(); ok {
			g.curX, g.curY = sel.X, sel.Y
		} else if m, ok := g.game.Controller.LastMove(); ok {
			g.curX, g.curY = m.ToX, m.ToY
		} else {
			g.curX, g.curY = size/2, size/2
		}
		return
	}
	nx, ny := g.curX+h, g.curY-v
	if nx < 0 || nx >= size || ny < 0 || ny >= size {
		return
	}
	g.curX, g.curY = nx, ny
}

func (g *BoardUI) ResetCursor() {
	g.curX = -1
	g.curY = -1
}

// CellAt maps a terminal cell to the board cell drawn there. It reports
// false for anything outside the board, so only in-range cells reach the game.
func (g *BoardUI) CellAt(screenX, screenY int) (types.BoardPos, bool) {
	return cellAt(screenX, screenY, g.left, g.top, g.size())
}

func cellAt(screenX, screenY, left, top, size int) (types.BoardPos, bool) {
	dx, dy := screenX-left, screenY-top
	if dx < 0 || dy < 0 {
		return types.BoardPos{}, false
	}
	x := dx / 2
	if x >= size || dy >= size {
		return types.BoardPos{}, false
	}
	return types.BoardPos{X: x, Y: size - 1 - dy}, true
}

func NewBoardUI(app *tview.Application, c *config.Config, hint *tview.TextView) *BoardUI {
	boardUI := &BoardUI{
		Box:  tview.NewBox(),
		hint: hint,
		app:  app,
		curX: -1,
		curY: -1,
	}
	boardUI.SetConfig(c)
	boardUI.Box.SetDrawFunc(boardUI.draw)
	boardUI.Box.SetMouseCapture(boardUI.handleMouse)
	return boardUI
}

func (g *BoardUI) draw(screen tcell.Screen, x int, y int, width int, height int) (int, int, int, int) {
	size := g.size()
	if size == 0 {
		return x, y, 1, 1
	}
	g.left, g.top = x+labelWidth, y

	ctl := g.game.Controller
	sel, selected := ctl.Selected()
	last, hasLast := ctl.LastMove()
	theme := g.cfg.Theme

	for row := 0; row < size; row++ {
		boardY := size - row - 1
		for boardX := 0; boardX < size; boardX++ {
			cell, _ := g.game.Board.At(boardX, boardY)

			bg := g.styles[colorBoard]
			if theme.CheckeredBoard && (boardX+boardY)%2 == 1 {
				bg = g.styles[colorBoardAlt]
			}

			var fg tcell.Color
			var drawRune rune
			switch cell {
			case types.PlayerA:
				fg, drawRune = g.styles[colorPlayerA], theme.Symbols.Piece
			case types.PlayerB:
				fg, drawRune = g.styles[colorPlayerB], theme.Symbols.Piece
			default:
				fg, drawRune = g.styles[colorEmpty], theme.Symbols.Empty
			}

			if hasLast && ((last.FromX == boardX && last.FromY == boardY) || (last.ToX == boardX && last.ToY == boardY)) {
				if theme.DrawLastPlayedBackground {
					bg = g.styles[colorLastPlayed]
				} else if cell == types.Empty {
					drawRune = theme.Symbols.LastPlayed
				}
			}
			if ctl.IsDestination(boardX, boardY) {
				fg, drawRune = g.styles[colorDestination], theme.Symbols.Destination
			}
			if g.hovering && g.hover.X == boardX && g.hover.Y == boardY {
				bg = g.styles[colorHover]
			}
			if selected && sel.X == boardX && sel.Y == boardY {
				bg = g.styles[colorSelected]
			}
			if theme.DrawCursorBackground && boardX == g.curX && boardY == g.curY {
				bg = g.styles[colorCursor]
			}

			drawCell(screen, tcell.StyleDefault.Background(bg).Foreground(fg), drawRune, boardX, row, g.left, g.top)
		}
	}
	drawCoordinates(screen, x, y, g)
	return x, y, size*2 + labelWidth, size + 2
}

func (g *BoardUI) handleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if g.game == nil {
		return action, event
	}
	pos, ok := g.CellAt(event.Position())
	switch action {
	case tview.MouseMove:
		if ok != g.hovering || pos != g.hover {
			g.hover, g.hovering = pos, ok
			go func() {
				g.app.QueueUpdateDraw(func() {})
			}()
		}
	case tview.MouseLeftDown:
		if ok {
			g.Click(pos.X, pos.Y)
		}
	}
	return action, event
}

// ConnectGame attaches a new game session to the board.
func (g *BoardUI) ConnectGame(game *engine.Game) {
	g.game = game
	g.status = ""
	g.hovering = false
	g.ResetCursor()

	game.OnMove(func(fromX, fromY, toX, toY int) {
		g.status = fmt.Sprintf("Moved %s → %s", board.CellName(fromX, fromY), board.CellName(toX, toY))
	})

	if g.infoPanel != nil {
		g.infoPanel.SetGame(game)
	}
	g.refreshHint()
}

// Click forwards a click on board cell (x, y) to the game.
func (g *BoardUI) Click(x, y int) {
	if g.game == nil {
		return
	}
	if err := g.game.Click(x, y); err != nil {
		g.status = err.Error()
	}
	g.refreshHint()
}

// ClickCursor clicks the cell under the keyboard cursor.
func (g *BoardUI) ClickCursor() {
	if cur := g.CursorTile(); cur != nil {
		g.Click(cur.X, cur.Y)
	}
}

// HasSelection returns true if a piece is selected.
func (g *BoardUI) HasSelection() bool {
	if g.game == nil {
		return false
	}
	_, ok := g.game.Controller.Selected()
	return ok
}

func (g *BoardUI) Deselect() {
	if g.game == nil {
		return
	}
	g.game.Controller.Deselect()
	g.refreshHint()
}

func (g *BoardUI) ClearLastMove() {
	if g.game == nil {
		return
	}
	g.game.Controller.ClearLastMove()
	g.refreshHint()
}

// ToggleLock locks or unlocks input to the board and returns the new state.
func (g *BoardUI) ToggleLock() bool {
	if g.game == nil {
		return false
	}
	ctl := g.game.Controller
	if ctl.Locked() {
		ctl.Unlock()
	} else {
		ctl.Lock()
	}
	g.refreshHint()
	return ctl.Locked()
}

// SavePosition writes the current board to dir and reports the result in the hint.
func (g *BoardUI) SavePosition(dir string) {
	if g.game == nil {
		return
	}
	path, err := g.game.SavePosition(dir, time.Now())
	if err != nil {
		g.status = fmt.Sprintf("Save failed: %s", err)
	} else {
		g.status = fmt.Sprintf("Saved %s", path)
	}
	g.refreshHint()
}

func (g *BoardUI) SetConfig(c *config.Config) {
	g.styles = []tcell.Color{
		tcell.PaletteColor(c.Theme.Colors.BoardColor),
		tcell.PaletteColor(c.Theme.Colors.BoardColorAlt),
		tcell.PaletteColor(c.Theme.Colors.PlayerAColor),
		tcell.PaletteColor(c.Theme.Colors.PlayerBColor),
		tcell.PaletteColor(c.Theme.Colors.EmptyColor),
		tcell.PaletteColor(c.Theme.Colors.CursorColorBG),
		tcell.PaletteColor(c.Theme.Colors.HoverColorBG),
		tcell.PaletteColor(c.Theme.Colors.SelectedColorBG),
		tcell.PaletteColor(c.Theme.Colors.DestinationColor),
		tcell.PaletteColor(c.Theme.Colors.LastPlayedColorBG),
	}
	g.cfg = c
}

func (g *BoardUI) refreshHint() {
	if g.infoPanel != nil {
		g.infoPanel.Refresh()
	}

	if g.focusMode {
		g.hint.SetText("  f to toggle")
		return
	}

	var statusLine, turnLine string
	if g.status != "" {
		statusLine = fmt.Sprintf("  %s\n", g.status)
	}

	if g.game != nil {
		ctl := g.game.Controller
		switch {
		case ctl.Locked():
			turnLine = "  ◌ Board locked (x to unlock)"
		case g.HasSelection():
			sel, _ := ctl.Selected()
			turnLine = fmt.Sprintf("  ● %s selected, %d targets", board.CellName(sel.X, sel.Y), len(ctl.LegalDestinations()))
		case ctl.RestrictedPlayer() != types.Empty:
			turnLine = fmt.Sprintf("  ● Select a %s piece", ctl.RestrictedPlayer())
		default:
			turnLine = "  ● Select a piece"
		}
	}

	controlsLine := `
  hjkl/↑↓←→ move  ⏎ click  c clear  x lock  w save  f focus  q back`

	g.hint.SetText(fmt.Sprintf("%s%s%s", statusLine, turnLine, controlsLine))
}

// drawCell draws a board cell (2 characters wide)
func drawCell(s tcell.Screen, c tcell.Style, r rune, x, row, l, t int) {
	s.SetContent(l+x*2, t+row, r, nil, c)
	s.SetContent(l+x*2+1, t+row, ' ', nil, c)
}

func drawCoordinates(s tcell.Screen, x, y int, ui *BoardUI) {
	size := ui.size()

	style := tcell.StyleDefault
	highlight := tcell.StyleDefault.Background(ui.styles[colorCursor])

	for ix := 0; ix < size; ix++ {
		_style := style
		if ix == ui.curX {
			_style = highlight
		}
		s.SetContent(x+labelWidth+(ix*2), y+size+1, rune('a'+ix), nil, _style)
		s.SetContent(x+labelWidth+(ix*2)+1, y+size+1, ' ', nil, _style)
	}

	for row := 0; row < size; row++ {
		boardY := size - row - 1
		_style := style
		if boardY == ui.curY {
			_style = highlight
		}
		label := fmt.Sprintf("%2d", boardY+1)
		s.SetContent(x+1, y+row, rune(label[0]), nil, _style)
		s.SetContent(x+2, y+row, rune(label[1]), nil, _style)
	}
}
