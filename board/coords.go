package board

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell names:
// - Columns: a, b, c, ... (x = 0 is 'a')
// - Rows: 1, 2, 3, ... (y = 0 is row 1, the bottom of the drawn board)
// - Example: (0, 0) -> a1, (3, 8) -> d9

// MaxNamedSize is the largest board whose columns all have a letter.
const MaxNamedSize = 26

// CellName converts board coordinates to a cell name.
func CellName(x, y int) string {
	return fmt.Sprintf("%c%d", 'a'+rune(x), y+1)
}

// ParseCellName converts a cell name back to board coordinates on a board of
// the given size.
func ParseCellName(name string, size int) (int, int, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if len(name) < 2 {
		return 0, 0, fmt.Errorf("invalid cell name: %q", name)
	}

	x := int(name[0] - 'a')
	if x < 0 || x >= MaxNamedSize {
		return 0, 0, fmt.Errorf("invalid column in cell name: %q", name)
	}

	row, err := strconv.Atoi(name[1:])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid row in cell name: %q", name)
	}
	y := row - 1

	if x >= size || y < 0 || y >= size {
		return 0, 0, &OutOfRangeError{X: x, Y: y, Size: size}
	}
	return x, y, nil
}
