package board

import "termleap/types"

// Orthogonal unit steps: up, right, down, left.
var dir4 = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// LegalDestinationsFrom returns every cell reachable from (x, y) by one step
// onto an empty neighbour or by a chain of jumps, each over an occupied cell
// onto an empty one. The origin's own occupancy is not consulted and the
// origin never appears in the result. Order is unspecified.
func (b *Board) LegalDestinationsFrom(x, y int) ([]types.BoardPos, error) {
	if err := b.check(x, y); err != nil {
		return nil, err
	}
	return b.destinationsFrom(x, y), nil
}

// destinationsFrom expects (x, y) to be in range.
func (b *Board) destinationsFrom(x, y int) []types.BoardPos {
	seen := make(map[types.BoardPos]struct{})
	var result []types.BoardPos
	add := func(p types.BoardPos) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		result = append(result, p)
	}

	for _, d := range dir4 {
		nx, ny := x+d[0], y+d[1]
		if b.InRange(nx, ny) && b.cells[b.index(nx, ny)] == types.Empty {
			add(types.BoardPos{X: nx, Y: ny})
		}
	}

	// Each landing cell is marked before it is queued, so it is queued at most once.
	visited := make([]bool, len(b.cells))
	visited[b.index(x, y)] = true
	queue := []types.BoardPos{{X: x, Y: y}}
	for len(queue) > 0 {
		p := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		for _, d := range dir4 {
			jx, jy := p.X+2*d[0], p.Y+2*d[1]
			if !b.InRange(jx, jy) || visited[b.index(jx, jy)] {
				continue
			}
			if b.cells[b.index(jx, jy)] != types.Empty {
				continue
			}
			if b.cells[b.index(p.X+d[0], p.Y+d[1])] == types.Empty {
				continue
			}
			visited[b.index(jx, jy)] = true
			landing := types.BoardPos{X: jx, Y: jy}
			add(landing)
			queue = append(queue, landing)
		}
	}

	return result
}

// Moves lists every legal move of every piece owned by player.
func (b *Board) Moves(player types.Occupancy) []types.Move {
	if player == types.Empty {
		return nil
	}
	var moves []types.Move
	for y := 0; y < b.size; y++ {
		for x := 0; x < b.size; x++ {
			if b.cells[b.index(x, y)] != player {
				continue
			}
			for _, d := range b.destinationsFrom(x, y) {
				moves = append(moves, types.Move{FromX: x, FromY: y, ToX: d.X, ToY: d.Y})
			}
		}
	}
	return moves
}
