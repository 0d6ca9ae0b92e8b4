// Package selection turns clicks on board cells into selections and moves.
package selection

import (
	"termleap/board"
	"termleap/types"
)

// MoveFunc is called once for every move the controller executes.
type MoveFunc func(fromX, fromY, toX, toY int)

// Controller is the click state machine layered on a single board.
// It is Idle when nothing is selected and Selected otherwise.
type Controller struct {
	board *board.Board

	selected     bool
	origin       types.BoardPos
	destinations []types.BoardPos

	hasLastMove bool
	lastMove    types.Move

	restrictPlayer types.Occupancy
	locked         bool

	listeners []MoveFunc
}

// NewController creates an idle, unlocked, unrestricted controller for b.
func NewController(b *board.Board) *Controller {
	return &Controller{board: b}
}

// Board returns the board the controller drives.
func (c *Controller) Board() *board.Board {
	return c.board
}

// SetRestrictedPlayer limits selection to the given player's pieces.
// types.Empty lifts the restriction.
func (c *Controller) SetRestrictedPlayer(player types.Occupancy) {
	c.restrictPlayer = player
}

func (c *Controller) RestrictedPlayer() types.Occupancy {
	return c.restrictPlayer
}

// Lock makes the controller ignore every click until Unlock.
func (c *Controller) Lock() {
	c.locked = true
}

func (c *Controller) Unlock() {
	c.locked = false
}

func (c *Controller) Locked() bool {
	return c.locked
}

// OnMove registers a listener for executed moves.
func (c *Controller) OnMove(fn MoveFunc) {
	c.listeners = append(c.listeners, fn)
}

// Selected returns the selected origin, if any.
func (c *Controller) Selected() (types.BoardPos, bool) {
	return c.origin, c.selected
}

// LegalDestinations returns the cells the selected piece may move to.
func (c *Controller) LegalDestinations() []types.BoardPos {
	if !c.selected {
		return nil
	}
	out := make([]types.BoardPos, len(c.destinations))
	copy(out, c.destinations)
	return out
}

// IsDestination reports whether (x, y) is a legal destination of the selection.
func (c *Controller) IsDestination(x, y int) bool {
	if !c.selected {
		return false
	}
	for _, d := range c.destinations {
		if d.X == x && d.Y == y {
			return true
		}
	}
	return false
}

// LastMove returns the most recent executed move until ClearLastMove is called.
func (c *Controller) LastMove() (types.Move, bool) {
	return c.lastMove, c.hasLastMove
}

func (c *Controller) ClearLastMove() {
	c.hasLastMove = false
	c.lastMove = types.Move{}
}

// Deselect drops the current selection, if any. It is ignored while locked.
func (c *Controller) Deselect() {
	if c.locked {
		return
	}
	c.clearSelection()
}

func (c *Controller) clearSelection() {
	c.selected = false
	c.origin = types.BoardPos{}
	c.destinations = nil
}

// Click handles a click on (x, y). Clicks that select nothing and clicks while
// locked are ignored and return nil; only out-of-range coordinates fail.
func (c *Controller) Click(x, y int) error {
	if c.locked {
		return nil
	}
	cell, err := c.board.At(x, y)
	if err != nil {
		return err
	}

	if c.selected {
		if c.origin.X == x && c.origin.Y == y {
			c.clearSelection()
			return nil
		}
		if c.IsDestination(x, y) {
			return c.move(x, y)
		}
	}

	if !c.selectable(cell) {
		return nil
	}
	dests, err := c.board.LegalDestinationsFrom(x, y)
	if err != nil {
		return err
	}
	c.selected = true
	c.origin = types.BoardPos{X: x, Y: y}
	c.destinations = dests
	return nil
}

func (c *Controller) selectable(cell types.Occupancy) bool {
	if c.restrictPlayer == types.Empty {
		return cell != types.Empty
	}
	return cell == c.restrictPlayer
}

func (c *Controller) move(x, y int) error {
	from := c.origin
	if err := c.board.Relocate(from.X, from.Y, x, y); err != nil {
		return err
	}
	c.lastMove = types.Move{FromX: from.X, FromY: from.Y, ToX: x, ToY: y}
	c.hasLastMove = true
	c.clearSelection()
	for _, fn := range c.listeners {
		fn(from.X, from.Y, x, y)
	}
	return nil
}
