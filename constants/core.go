package constants

import "time"

// Game Loop Timing
const (
	// TickInterval is the default key-poll timeout, which is also the movement rate
	TickInterval = 120 * time.Millisecond

	// EventQueueSize is the buffer between the terminal event pump and the loop
	EventQueueSize = 64
)

// Board Geometry
const (
	// BoardHeight is the full board height including the border rows
	BoardHeight = 20

	// BoardWidth is the full board width including the border columns
	BoardWidth = 60

	// MinBoardSide is the smallest accepted side length; anything less leaves no room to move
	MinBoardSide = 5
)
