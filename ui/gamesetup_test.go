package ui

import (
	"testing"

	"termleap/engine"
	"termleap/position"
	"termleap/types"
)

func TestGameSetupConfig(t *testing.T) {
	defaults := engine.DefaultConfig()
	defaults.BoardSize = 12
	defaults.RestrictPlayer = types.PlayerB
	positions := []position.Info{{FilePath: "/tmp/a.pos", FileName: "a.pos", Size: 9}}

	setup := NewGameSetup(defaults, positions, func(engine.GameConfig) {}, func() {}, nil)
	got := setup.Config()
	if got.BoardSize != 12 || got.RestrictPlayer != types.PlayerB || got.PositionPath != "" {
		t.Fatalf("Config() = %+v", got)
	}

	// Sizes the form does not offer fall back to the default entry.
	defaults.BoardSize = 11
	setup = NewGameSetup(defaults, nil, func(engine.GameConfig) {}, func() {}, nil)
	if got := setup.Config().BoardSize; got != 9 {
		t.Fatalf("BoardSize = %d, want 9", got)
	}
}
