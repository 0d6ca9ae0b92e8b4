package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termleap/engine"
	"termleap/position"
	"termleap/types"
)

// Board sizes offered in the setup form.
var setupBoardSizes = []int{8, 9, 10, 12, 16}

// GameSetupUI provides a form for configuring a new game.
type GameSetupUI struct {
	form     *tview.Form
	flex     *tview.Flex
	onStart  func(engine.GameConfig)
	onCancel func()
	onColors func()

	positions []position.Info
	config    engine.GameConfig
}

// NewGameSetup creates a new game setup form. positions are offered as
// alternative starting points to the standard layout.
func NewGameSetup(defaults engine.GameConfig, positions []position.Info, onStart func(engine.GameConfig), onCancel func(), onColors func()) *GameSetupUI {
	setup := &GameSetupUI{
		onStart:   onStart,
		onCancel:  onCancel,
		onColors:  onColors,
		positions: positions,
		config:    defaults,
	}

	sizeLabels := make([]string, len(setupBoardSizes))
	sizeIndex := 1
	for i, s := range setupBoardSizes {
		sizeLabels[i] = fmt.Sprintf("%dx%d", s, s)
		if s == defaults.BoardSize {
			sizeIndex = i
		}
	}
	setup.config.BoardSize = setupBoardSizes[sizeIndex]

	players := []string{"Either player", "Player A only", "Player B only"}
	startLabels := []string{"Standard layout"}
	for _, p := range positions {
		startLabels = append(startLabels, fmt.Sprintf("%s (%dx%d)", p.FileName, p.Size, p.Size))
	}

	form := tview.NewForm()

	form.AddDropDown("Board Size", sizeLabels, sizeIndex, func(option string, index int) {
		if index >= 0 && index < len(setupBoardSizes) {
			setup.config.BoardSize = setupBoardSizes[index]
		}
	})

	form.AddDropDown("Selectable", players, int(defaults.RestrictPlayer), func(option string, index int) {
		setup.config.RestrictPlayer = types.Occupancy(index)
	})

	form.AddDropDown("Start From", startLabels, 0, func(option string, index int) {
		setup.config.PositionPath = ""
		if index > 0 && index <= len(setup.positions) {
			setup.config.PositionPath = setup.positions[index-1].FilePath
		}
	})

	form.AddButton("Start Game", func() {
		onStart(setup.config)
	})

	form.AddButton("Board Color", func() {
		if onColors != nil {
			onColors()
		}
	})

	form.AddButton("Quit", func() {
		onCancel()
	})

	form.SetBorder(true)
	form.SetTitle(" New Game ")
	form.SetTitleAlign(tview.AlignCenter)
	form.SetBorderColor(MenuColors.Border)
	form.SetLabelColor(MenuColors.Label)
	form.SetButtonBackgroundColor(MenuColors.ButtonBG)
	form.SetButtonTextColor(MenuColors.ButtonText)

	helpText := tview.NewTextView().
		SetText("Tab/Shift+Tab: navigate fields  |  Arrow keys: change dropdown  |  Enter: confirm  |  Ctrl+S: start").
		SetTextAlign(tview.AlignCenter)
	helpText.SetTextColor(MenuColors.Hint)

	flex := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(form, 0, 1, true).
		AddItem(helpText, 1, 0, false)

	setup.form = form
	setup.flex = flex
	return setup
}

// Form returns the flex container with form and help text.
func (s *GameSetupUI) Form() *tview.Flex {
	return s.flex
}

// Config returns the configuration currently chosen in the form.
func (s *GameSetupUI) Config() engine.GameConfig {
	return s.config
}

// SetInputCapture sets the input capture function for the form.
func (s *GameSetupUI) SetInputCapture(capture func(event *tcell.EventKey) *tcell.EventKey) {
	s.form.SetInputCapture(capture)
}
