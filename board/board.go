// Package board holds the game grid and computes where a piece may move.
package board

import (
	"errors"
	"fmt"

	"termleap/types"
)

const (
	// CornerSize is the side of the square block each player starts with.
	CornerSize = 4
	// MinRecommendedSize is the smallest board on which the two starting
	// blocks do not overlap.
	MinRecommendedSize = 2 * CornerSize
	// DefaultSize is the board side used when none is chosen.
	DefaultSize = 9
)

var (
	ErrOutOfRange  = errors.New("coordinate out of range")
	ErrInvalidSize = errors.New("invalid board size")
)

// OutOfRangeError reports a coordinate outside [0,Size)x[0,Size).
type OutOfRangeError struct {
	X, Y int
	Size int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("(%d, %d) is outside the %dx%d board", e.X, e.Y, e.Size, e.Size)
}

func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// Board is a size x size grid of cell occupancies stored row-major.
type Board struct {
	size  int
	cells []types.Occupancy
}

// NewEmpty creates a board with every cell empty.
func NewEmpty(size int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Board{
		size:  size,
		cells: make([]types.Occupancy, size*size),
	}, nil
}

// New creates a board in the starting layout: a CornerSize block of PlayerA
// pieces at the origin corner and the mirrored block of PlayerB pieces in the
// far corner. Boards smaller than MinRecommendedSize are accepted, but their
// blocks overlap and PlayerB owns the shared cells.
func New(size int) (*Board, error) {
	if size < CornerSize {
		return nil, fmt.Errorf("%w: %d is smaller than the %dx%d starting block", ErrInvalidSize, size, CornerSize, CornerSize)
	}
	b, err := NewEmpty(size)
	if err != nil {
		return nil, err
	}
	for i := 0; i < CornerSize; i++ {
		for j := 0; j < CornerSize; j++ {
			b.cells[b.index(i, j)] = types.PlayerA
			b.cells[b.index(size-i-1, size-j-1)] = types.PlayerB
		}
	}
	return b, nil
}

// CheckPlayableSize rejects sizes a game should not be started on: boards
// whose starting blocks overlap and boards with columns past 'z'.
func CheckPlayableSize(size int) error {
	if size < MinRecommendedSize || size > MaxNamedSize {
		return fmt.Errorf("%w: %d is outside %d..%d", ErrInvalidSize, size, MinRecommendedSize, MaxNamedSize)
	}
	return nil
}

// Size returns the side length of the board.
func (b *Board) Size() int {
	return b.size
}

// InRange reports whether (x, y) is a cell of the board.
func (b *Board) InRange(x, y int) bool {
	return x >= 0 && x < b.size && y >= 0 && y < b.size
}

func (b *Board) index(x, y int) int {
	return y*b.size + x
}

func (b *Board) check(x, y int) error {
	if !b.InRange(x, y) {
		return &OutOfRangeError{X: x, Y: y, Size: b.size}
	}
	return nil
}

// At returns the occupancy of (x, y).
func (b *Board) At(x, y int) (types.Occupancy, error) {
	if err := b.check(x, y); err != nil {
		return types.Empty, err
	}
	return b.cells[b.index(x, y)], nil
}

// Set overwrites a single cell. It is meant for building positions;
// moves go through Relocate.
func (b *Board) Set(x, y int, o types.Occupancy) error {
	if err := b.check(x, y); err != nil {
		return err
	}
	b.cells[b.index(x, y)] = o
	return nil
}

// Relocate copies the occupancy of the source cell to the destination cell
// and empties the source. Legality is not checked.
func (b *Board) Relocate(fromX, fromY, toX, toY int) error {
	if err := b.check(fromX, fromY); err != nil {
		return err
	}
	if err := b.check(toX, toY); err != nil {
		return err
	}
	b.cells[b.index(toX, toY)] = b.cells[b.index(fromX, fromY)]
	b.cells[b.index(fromX, fromY)] = types.Empty
	return nil
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]types.Occupancy, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}
