// Package types contains shared data structures for termleap.
package types

import (
	"encoding/json"
	"fmt"
)

// Occupancy is the content of a single board cell.
type Occupancy uint8

const (
	Empty Occupancy = iota
	PlayerA
	PlayerB
)

func (o Occupancy) String() string {
	switch o {
	case Empty:
		return "empty"
	case PlayerA:
		return "A"
	case PlayerB:
		return "B"
	}
	return fmt.Sprintf("Occupancy(%d)", uint8(o))
}

// Opponent returns the other player. Empty has no opponent and maps to itself.
func (o Occupancy) Opponent() Occupancy {
	switch o {
	case PlayerA:
		return PlayerB
	case PlayerB:
		return PlayerA
	}
	return Empty
}

// BoardPos represents a position on the board.
type BoardPos struct {
	X int
	Y int
}

// UnmarshalJSON allows BoardPos to be unmarshaled from a JSON array [x, y].
func (p *BoardPos) UnmarshalJSON(data []byte) error {
	var v []int
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if len(v) != 2 {
		return fmt.Errorf("board position needs 2 coordinates, got %d", len(v))
	}
	p.X = v[0]
	p.Y = v[1]
	return nil
}

// MarshalJSON writes BoardPos as a JSON array [x, y].
func (p BoardPos) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

// Move is a completed relocation of one piece.
type Move struct {
	FromX int `json:"from_x"`
	FromY int `json:"from_y"`
	ToX   int `json:"to_x"`
	ToY   int `json:"to_y"`
}

func (m Move) From() BoardPos { return BoardPos{X: m.FromX, Y: m.FromY} }
func (m Move) To() BoardPos   { return BoardPos{X: m.ToX, Y: m.ToY} }

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d) -> (%d, %d)", m.FromX, m.FromY, m.ToX, m.ToY)
}
