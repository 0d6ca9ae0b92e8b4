package ui

import "github.com/gdamore/tcell/v2"

// MenuColors defines the Nord-inspired color palette for the menu screens.
var MenuColors = struct {
	Border      tcell.Color // Muted blue-gray for borders
	Label       tcell.Color // Light gray for labels
	Hint        tcell.Color // Dim gray for hints
	ButtonBG    tcell.Color // Button background
	ButtonFocus tcell.Color // Focused button and list entry
	ButtonText  tcell.Color // Button text
}{
	Border:      tcell.PaletteColor(60),  // Muted blue-gray
	Label:       tcell.PaletteColor(250), // Light gray
	Hint:        tcell.PaletteColor(245), // Dim gray
	ButtonBG:    tcell.PaletteColor(60),  // Nord blue
	ButtonFocus: tcell.PaletteColor(109), // Brighter blue
	ButtonText:  tcell.PaletteColor(255), // White
}
