package game

// Position is a board cell addressed by row and column, origin top-left
type Position struct {
	Row int
	Col int
}

// Add returns the cell one step away in direction d
func (p Position) Add(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// Interior reports whether p lies strictly inside the border of a height x width board
func (p Position) Interior(height, width int) bool {
	return p.Row >= 1 && p.Row <= height-2 && p.Col >= 1 && p.Col <= width-2
}

// Direction of travel
type Direction uint8

const (
	Right Direction = iota
	Left
	Up
	Down
)

// Delta returns the row and column offsets of a single step
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	default:
		return 0, 1
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "right"
	}
}

// Intent is a player command decoded from a key press
type Intent uint8

const (
	IntentNone Intent = iota // Timeout or unmapped key, keeps the current direction
	IntentUp
	IntentDown
	IntentLeft
	IntentRight
	IntentQuit
)

// Direction returns the direction an intent steers to, ok is false for non-steering intents
func (i Intent) Direction() (d Direction, ok bool) {
	switch i {
	case IntentUp:
		return Up, true
	case IntentDown:
		return Down, true
	case IntentLeft:
		return Left, true
	case IntentRight:
		return Right, true
	}
	return Right, false
}

func (i Intent) String() string {
	switch i {
	case IntentUp:
		return "up"
	case IntentDown:
		return "down"
	case IntentLeft:
		return "left"
	case IntentRight:
		return "right"
	case IntentQuit:
		return "quit"
	}
	return "none"
}

// Snake is the ordered body, head at index 0
type Snake []Position

// Head returns the first segment
func (s Snake) Head() Position {
	return s[0]
}

// Len returns the segment count
func (s Snake) Len() int {
	return len(s)
}

// Contains reports whether any segment occupies p
func (s Snake) Contains(p Position) bool {
	for _, seg := range s {
		if seg == p {
			return true
		}
	}
	return false
}
