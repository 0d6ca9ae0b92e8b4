package board

import (
	"fmt"
	"strings"

	"termleap/types"
)

var occupancyRunes = map[types.Occupancy]rune{
	types.Empty:   '.',
	types.PlayerA: 'A',
	types.PlayerB: 'B',
}

// String prints the board with y = size-1 on the first line, one
// space-separated cell per column: A, B or '.'.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		y := b.size - row - 1
		for x := 0; x < b.size; x++ {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(occupancyRunes[b.cells[b.index(x, y)]])
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// SetRow fills the printed row (0 = top line, y = size-1) from value.
// Spaces are ignored, so both "AA.." and "A A . ." are accepted.
func (b *Board) SetRow(row int, value string) error {
	if row < 0 || row >= b.size {
		return fmt.Errorf("row %d: %w", row, ErrOutOfRange)
	}
	cells := strings.ReplaceAll(strings.TrimSpace(value), " ", "")
	if len([]rune(cells)) != b.size {
		return fmt.Errorf("row %d has %d cells, want %d", row, len([]rune(cells)), b.size)
	}
	y := b.size - 1 - row
	for x, c := range []rune(cells) {
		var o types.Occupancy
		switch c {
		case 'A', 'a':
			o = types.PlayerA
		case 'B', 'b':
			o = types.PlayerB
		case '.':
			o = types.Empty
		default:
			return fmt.Errorf("row %d: unknown cell %q", row, c)
		}
		b.cells[b.index(x, y)] = o
	}
	return nil
}

// Parse builds a board from the output of String. The board size is the
// number of non-blank lines.
func Parse(text string) (*Board, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			rows = append(rows, line)
		}
	}
	b, err := NewEmpty(len(rows))
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := b.SetRow(i, row); err != nil {
			return nil, err
		}
	}
	return b, nil
}
