package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termleap/board"
	"termleap/config"
	"termleap/types"
)

type colorChoice struct {
	code int
	name string
}

// ColorConfigUI provides a color configuration screen with live preview.
type ColorConfigUI struct {
	flex      *tview.Flex
	colorList *tview.List
	preview   *tview.Box
	cfg       *config.Config
	onDone    func()
	save      func() error
	status    string

	selectedBoardColor       int
	selectedDestinationColor int
	editingDestination       bool // false = editing board color
}

// Board backgrounds (light tones the red and blue pieces show up on)
var boardColors = []colorChoice{
	{230, "Light Cream"},
	{229, "Pale Yellow"},
	{223, "Peach"},
	{187, "Light Khaki"},
	{188, "Light Beige"},
	{180, "Tan"},
	{179, "Light Brown"},
	{144, "Olive Gray"},
	{252, "Light Gray"},
	{250, "Gray"},
	{248, "Medium Gray"},
	{194, "Mint"},
	{195, "Ice Blue"},
}

// Destination markers (saturated tones that stand out on the board)
var destinationColors = []colorChoice{
	{28, "Green"},
	{22, "Dark Green"},
	{34, "Bright Green"},
	{23, "Teal"},
	{54, "Purple"},
	{90, "Magenta"},
	{130, "Dark Orange"},
	{232, "Black"},
}

// NewColorConfig creates a new color configuration screen.
func NewColorConfig(cfg *config.Config, onDone func()) *ColorConfigUI {
	cc := &ColorConfigUI{
		cfg:                      cfg,
		onDone:                   onDone,
		save:                     cfg.Save,
		selectedBoardColor:       cfg.Theme.Colors.BoardColor,
		selectedDestinationColor: cfg.Theme.Colors.DestinationColor,
	}

	cc.colorList = tview.NewList()
	cc.colorList.SetBorder(true)
	cc.colorList.SetBorderColor(MenuColors.Border)
	cc.colorList.ShowSecondaryText(false)
	cc.colorList.SetMainTextColor(MenuColors.Label)
	cc.colorList.SetSelectedBackgroundColor(MenuColors.ButtonFocus)

	cc.populateColorList()

	// Preview follows the highlighted entry
	cc.colorList.SetChangedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		choices := cc.choices()
		if index < 0 || index >= len(choices) {
			return
		}
		if cc.editingDestination {
			cc.selectedDestinationColor = choices[index].code
		} else {
			cc.selectedBoardColor = choices[index].code
		}
	})

	// Enter applies and saves
	cc.colorList.SetSelectedFunc(func(index int, mainText, secondaryText string, shortcut rune) {
		if index < 0 || index >= len(cc.choices()) {
			return
		}
		cc.apply()
	})

	cc.preview = tview.NewBox()
	cc.preview.SetBorder(true)
	cc.preview.SetBorderColor(MenuColors.Border)
	cc.preview.SetTitle(" Board Preview ")
	cc.preview.SetDrawFunc(cc.drawPreview)

	cc.flex = tview.NewFlex().
		AddItem(cc.colorList, 30, 0, true).
		AddItem(cc.preview, 0, 1, false)

	return cc
}

func (cc *ColorConfigUI) choices() []colorChoice {
	if cc.editingDestination {
		return destinationColors
	}
	return boardColors
}

// populateColorList fills the list with appropriate colors based on editing mode.
func (cc *ColorConfigUI) populateColorList() {
	cc.colorList.Clear()

	current := cc.selectedBoardColor
	cc.colorList.SetTitle(" Board Color (Tab: targets) ")
	if cc.editingDestination {
		current = cc.selectedDestinationColor
		cc.colorList.SetTitle(" Target Color (Tab: board) ")
	}

	for i, c := range cc.choices() {
		cc.colorList.AddItem(fmt.Sprintf("[#%06x]████[-] %s (%d)",
			tcell.PaletteColor(c.code).Hex(), c.name, c.code),
			"", rune('a'+i), nil)
	}
	for i, c := range cc.choices() {
		if c.code == current {
			cc.colorList.SetCurrentItem(i)
			break
		}
	}
}

// apply stores the highlighted color in the config and saves it. Picking a
// target color returns to board colors; picking a board color leaves the
// screen. A failed save keeps the screen open and shows the error.
func (cc *ColorConfigUI) apply() {
	if cc.editingDestination {
		cc.cfg.Theme.Colors.DestinationColor = cc.selectedDestinationColor
		if !cc.saveConfig() {
			return
		}
		cc.editingDestination = false
		cc.populateColorList()
		return
	}
	cc.cfg.Theme.Colors.BoardColor = cc.selectedBoardColor
	cc.cfg.Theme.Colors.BoardColorAlt = cc.selectedBoardColor
	cc.cfg.Theme.CheckeredBoard = false
	if !cc.saveConfig() {
		return
	}
	cc.onDone()
}

func (cc *ColorConfigUI) saveConfig() bool {
	if err := cc.save(); err != nil {
		cc.status = fmt.Sprintf("Save failed: %s", err)
		return false
	}
	cc.status = ""
	return true
}

// A small mid-game position; the targets are A's chain jumps from the top-left piece.
const previewPosition = `
A A . . . . .
A . A . . . .
. . . B . . .
. . . . . . .
. . . . . . .
. . . . . . B
. . . . . B B
`

var previewOrigin = types.BoardPos{X: 0, Y: 6}

var previewBoard, previewTargets = mustPreview()

func mustPreview() (*board.Board, []types.BoardPos) {
	b, err := board.Parse(previewPosition)
	if err != nil {
		panic(err)
	}
	targets, err := b.LegalDestinationsFrom(previewOrigin.X, previewOrigin.Y)
	if err != nil {
		panic(err)
	}
	return b, targets
}

func (cc *ColorConfigUI) drawPreview(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	if width < 20 || height < 10 {
		return x, y, width, height
	}

	boardColor := tcell.PaletteColor(cc.selectedBoardColor)
	emptyStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.EmptyColor))
	aStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.PlayerAColor))
	bStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.cfg.Theme.Colors.PlayerBColor))
	targetStyle := tcell.StyleDefault.Background(boardColor).Foreground(tcell.PaletteColor(cc.selectedDestinationColor))

	startX := x + 2
	startY := y + 1
	symbols := cc.cfg.Theme.Symbols
	size := previewBoard.Size()

	for row := 0; row < size; row++ {
		by := size - row - 1
		for col := 0; col < size; col++ {
			char, style := symbols.Empty, emptyStyle
			cell, _ := previewBoard.At(col, by)
			switch cell {
			case types.PlayerA:
				char, style = symbols.Piece, aStyle
			case types.PlayerB:
				char, style = symbols.Piece, bStyle
			}
			if previewOrigin == (types.BoardPos{X: col, Y: by}) {
				style = style.Background(tcell.PaletteColor(cc.cfg.Theme.Colors.SelectedColorBG))
			}
			for _, t := range previewTargets {
				if t == (types.BoardPos{X: col, Y: by}) {
					char, style = symbols.Destination, targetStyle
				}
			}
			drawCell(screen, style, char, col, row, startX, startY)
		}
	}

	info := fmt.Sprintf("Board: %d  Targets: %d", cc.selectedBoardColor, cc.selectedDestinationColor)
	drawText(screen, startX, startY+size+1, info, tcell.StyleDefault)
	if cc.status != "" {
		drawText(screen, startX, startY+size+2, cc.status, tcell.StyleDefault.Foreground(tcell.ColorRed))
	}

	return x, y, width, height
}

// drawText writes a string to the screen at the given position.
func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

// Flex returns the flex container for this UI.
func (cc *ColorConfigUI) Flex() *tview.Flex {
	return cc.flex
}

// SetInputCapture sets the input capture for the color list.
func (cc *ColorConfigUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	cc.colorList.SetInputCapture(capture)
}

// ToggleMode switches between board color and target color editing.
func (cc *ColorConfigUI) ToggleMode() {
	cc.editingDestination = !cc.editingDestination
	cc.populateColorList()
}
