// Package engine ties one board and its selection controller into a game session.
package engine

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"termleap/board"
	"termleap/position"
	"termleap/selection"
	"termleap/types"
)

var debugLog = log.New(io.Discard, "", log.Ltime|log.Lmicroseconds)

// OpenDebugLog sends the session debug log to the file at path.
func OpenDebugLog(path string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	debugLog.SetOutput(f)
	return f, nil
}

// GameConfig holds configuration for starting a new game.
type GameConfig struct {
	BoardSize      int             // side of the square board
	RestrictPlayer types.Occupancy // types.Empty lets either player's pieces be selected
	PositionPath   string          // optional position file to start from
}

// DefaultConfig returns a reasonable default configuration.
func DefaultConfig() GameConfig {
	return GameConfig{
		BoardSize:      board.DefaultSize,
		RestrictPlayer: types.Empty,
	}
}

// Game is a single session: one board, the controller that mutates it and
// a little bookkeeping for display.
type Game struct {
	ID         uuid.UUID
	Started    time.Time
	Board      *board.Board
	Controller *selection.Controller

	config    GameConfig
	moveCount int
}

// NewGame creates the board (fresh or loaded from cfg.PositionPath) and its controller.
func NewGame(cfg GameConfig) (*Game, error) {
	var b *board.Board
	var err error
	if cfg.PositionPath != "" {
		b, _, err = position.Read(cfg.PositionPath)
		if err != nil {
			return nil, fmt.Errorf("load position: %w", err)
		}
		if err := board.CheckPlayableSize(b.Size()); err != nil {
			return nil, fmt.Errorf("load position: %w", err)
		}
		cfg.BoardSize = b.Size()
	} else {
		if err := board.CheckPlayableSize(cfg.BoardSize); err != nil {
			return nil, fmt.Errorf("create board: %w", err)
		}
		b, err = board.New(cfg.BoardSize)
		if err != nil {
			return nil, fmt.Errorf("create board: %w", err)
		}
	}

	g := &Game{
		ID:         uuid.New(),
		Started:    time.Now(),
		Board:      b,
		Controller: selection.NewController(b),
		config:     cfg,
	}
	g.Controller.SetRestrictedPlayer(cfg.RestrictPlayer)
	g.Controller.OnMove(func(fromX, fromY, toX, toY int) {
		g.moveCount++
		debugLog.Printf("game %s: move %d %s -> %s", g.ID, g.moveCount,
			board.CellName(fromX, fromY), board.CellName(toX, toY))
	})

	debugLog.Printf("game %s: started %dx%d, restrict=%v, position=%q",
		g.ID, b.Size(), b.Size(), cfg.RestrictPlayer, cfg.PositionPath)
	return g, nil
}

// Config returns the configuration the game was started with. BoardSize
// reflects a loaded position.
func (g *Game) Config() GameConfig {
	return g.config
}

// Click forwards a board click to the controller.
func (g *Game) Click(x, y int) error {
	if err := g.Controller.Click(x, y); err != nil {
		debugLog.Printf("game %s: click (%d, %d): %v", g.ID, x, y, err)
		return err
	}
	return nil
}

// OnMove registers a callback for every executed move.
func (g *Game) OnMove(fn selection.MoveFunc) {
	g.Controller.OnMove(fn)
}

// MoveCount returns the number of moves executed in this session.
func (g *Game) MoveCount() int {
	return g.moveCount
}

// SavePosition writes the current board into dir and returns the file path.
func (g *Game) SavePosition(dir string, now time.Time) (string, error) {
	path := filepath.Join(dir, position.NewFileName(now, g.Board.Size()))
	err := position.Write(path, g.Board, position.Info{
		Saved:   now.Format("2006-01-02 15:04:05"),
		Session: g.ID.String(),
	})
	if err != nil {
		return "", err
	}
	debugLog.Printf("game %s: saved position to %s", g.ID, path)
	return path, nil
}
