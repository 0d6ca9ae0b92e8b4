package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termleap/config"
	"termleap/engine"
	"termleap/types"
)

func TestCellAt(t *testing.T) {
	// 9x9 board drawn with its top-left cell at screen (10, 2).
	cases := []struct {
		sx, sy int
		want   types.BoardPos
		ok     bool
	}{
		{10, 2, types.BoardPos{X: 0, Y: 8}, true},
		{11, 2, types.BoardPos{X: 0, Y: 8}, true},
		{12, 2, types.BoardPos{X: 1, Y: 8}, true},
		{10, 10, types.BoardPos{X: 0, Y: 0}, true},
		{27, 10, types.BoardPos{X: 8, Y: 0}, true},
		{9, 5, types.BoardPos{}, false},
		{28, 5, types.BoardPos{}, false},
		{12, 1, types.BoardPos{}, false},
		{12, 11, types.BoardPos{}, false},
	}
	for _, c := range cases {
		got, ok := cellAt(c.sx, c.sy, 10, 2, 9)
		if ok != c.ok || got != c.want {
			t.Errorf("cellAt(%d, %d) = %v, %v; want %v, %v", c.sx, c.sy, got, ok, c.want, c.ok)
		}
	}
}

func newTestBoardUI(t *testing.T) (*BoardUI, *engine.Game) {
	t.Helper()
	cfg := config.DefaultConfig
	ui := NewBoardUI(tview.NewApplication(), &cfg, tview.NewTextView())
	game, err := engine.NewGame(engine.DefaultConfig())
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	ui.ConnectGame(game)
	return ui, game
}

func TestMoveCursor(t *testing.T) {
	ui, _ := newTestBoardUI(t)
	if ui.CursorTile() != nil {
		t.Fatal("cursor should start hidden")
	}
	ui.MoveCursor(1, 0)
	if cur := ui.CursorTile(); cur == nil || *cur != (types.BoardPos{X: 4, Y: 4}) {
		t.Fatalf("first move should show the cursor at the center, got %v", cur)
	}
	// Down on screen is towards y = 0.
	ui.MoveCursor(0, 1)
	ui.MoveCursor(1, 0)
	if cur := ui.CursorTile(); *cur != (types.BoardPos{X: 5, Y: 3}) {
		t.Fatalf("cursor = %v, want (5, 3)", *cur)
	}
	for i := 0; i < 10; i++ {
		ui.MoveCursor(1, 0)
	}
	if cur := ui.CursorTile(); cur.X != 8 {
		t.Fatalf("cursor should stop at the edge, got %v", *cur)
	}
}

func TestClickCursorMovesPiece(t *testing.T) {
	ui, game := newTestBoardUI(t)
	ui.curX, ui.curY = 3, 3
	ui.ClickCursor()
	if !ui.HasSelection() {
		t.Fatal("piece should be selected")
	}
	ui.MoveCursor(1, 0)
	ui.ClickCursor()
	if ui.HasSelection() {
		t.Fatal("selection should clear after the move")
	}
	if o, _ := game.Board.At(4, 3); o != types.PlayerA {
		t.Fatalf("(4, 3) = %v, want A", o)
	}
	if game.MoveCount() != 1 {
		t.Fatalf("MoveCount() = %d", game.MoveCount())
	}
}

func TestToggleLock(t *testing.T) {
	ui, game := newTestBoardUI(t)
	if !ui.ToggleLock() || !game.Controller.Locked() {
		t.Fatal("first toggle should lock")
	}
	ui.Click(3, 3)
	if ui.HasSelection() {
		t.Fatal("locked board accepted a click")
	}
	if ui.ToggleLock() {
		t.Fatal("second toggle should unlock")
	}
}

func TestDrawMarksSelectionAndTargets(t *testing.T) {
	ui, _ := newTestBoardUI(t)
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 24)

	ui.Click(3, 3)
	ui.Box.SetRect(0, 0, 40, 20)
	ui.Box.Draw(screen)

	// The box has no border, so the board starts at (labelWidth, 0).
	if ui.left != labelWidth || ui.top != 0 {
		t.Fatalf("board origin = (%d, %d)", ui.left, ui.top)
	}
	sym := config.DefaultTheme.Symbols

	// (4, 3) is a target: column 4, row 9-1-3 = 5.
	r, _, _, _ := screen.GetContent(labelWidth+4*2, 5)
	if r != sym.Destination {
		t.Errorf("target cell rune = %q, want %q", r, sym.Destination)
	}
	r, _, style, _ := screen.GetContent(labelWidth+3*2, 5)
	if r != sym.Piece {
		t.Errorf("selected cell rune = %q, want %q", r, sym.Piece)
	}
	if _, bg, _ := style.Decompose(); bg != tcell.PaletteColor(config.DefaultTheme.Colors.SelectedColorBG) {
		t.Errorf("selected cell background = %v", bg)
	}

	pos, ok := ui.CellAt(labelWidth+4*2+1, 5)
	if !ok || pos != (types.BoardPos{X: 4, Y: 3}) {
		t.Fatalf("CellAt = %v, %v", pos, ok)
	}
}
