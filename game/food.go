package game

import "math/rand"

// PlaceFood picks a cell uniformly at random among interior cells not covered by snake
// ok is false when the snake fills the whole interior
func PlaceFood(snake Snake, height, width int, rng *rand.Rand) (Position, bool) {
	occupied := make(map[Position]struct{}, len(snake))
	for _, seg := range snake {
		if seg.Interior(height, width) {
			occupied[seg] = struct{}{}
		}
	}

	free := (height-2)*(width-2) - len(occupied)
	if free <= 0 {
		return Position{}, false
	}

	// Walk the interior in row-major order to the k-th free cell
	k := rng.Intn(free)
	for row := 1; row <= height-2; row++ {
		for col := 1; col <= width-2; col++ {
			p := Position{Row: row, Col: col}
			if _, taken := occupied[p]; taken {
				continue
			}
			if k == 0 {
				return p, true
			}
			k--
		}
	}

	return Position{}, false
}
