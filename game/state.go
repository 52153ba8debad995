package game

import (
	"errors"
	"math/rand"

	"github.com/lixenwraith/vi-snake/constants"
)

// Phase is the top-level game state
type Phase uint8

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

func (p Phase) String() string {
	if p == PhaseGameOver {
		return "game_over"
	}
	return "playing"
}

// Cause records why the game left PhasePlaying
type Cause uint8

const (
	CauseNone Cause = iota
	CauseQuit
	CauseWall
	CauseSelf
	CauseBoardFull
)

func (c Cause) String() string {
	switch c {
	case CauseQuit:
		return "quit"
	case CauseWall:
		return "wall-collision"
	case CauseSelf:
		return "self-collision"
	case CauseBoardFull:
		return "board-full"
	}
	return "none"
}

// Fatal reports whether the cause is a collision rather than a player quit
func (c Cause) Fatal() bool {
	return c == CauseWall || c == CauseSelf
}

// ErrBoardTooSmall is returned when the initial snake and food cannot fit inside the border
var ErrBoardTooSmall = errors.New("board too small for initial snake")

// State is a complete, self-contained game snapshot
// Tick treats it as a value: the Snake slice of an input state is never written
type State struct {
	Height    int
	Width     int
	Snake     Snake
	Food      Position
	Direction Direction
	Score     int
	Ticks     int
	Phase     Phase
	Cause     Cause
}

// NewState builds the opening position for a height x width board
// The snake is laid out horizontally ending at the configured start cell, heading right
// Food uses the fixed start cell when it is free, otherwise a random free cell
func NewState(height, width int, rng *rand.Rand) (State, error) {
	if height < constants.MinBoardSide || width < constants.MinBoardSide {
		return State{}, ErrBoardTooSmall
	}

	head := Position{Row: constants.StartRow, Col: constants.StartCol}
	// Shrink the start onto smaller boards while keeping the horizontal layout
	if head.Row > height-2 {
		head.Row = height / 2
	}
	if head.Col > width-2 {
		head.Col = width - 2
	}

	snake := make(Snake, 0, constants.StartLength)
	for i := 0; i < constants.StartLength; i++ {
		seg := Position{Row: head.Row, Col: head.Col - i}
		if !seg.Interior(height, width) {
			break
		}
		snake = append(snake, seg)
	}
	if len(snake) == 0 {
		return State{}, ErrBoardTooSmall
	}

	s := State{
		Height:    height,
		Width:     width,
		Snake:     snake,
		Direction: Right,
		Phase:     PhasePlaying,
	}

	food := Position{Row: constants.FoodStartRow, Col: constants.FoodStartCol}
	if !food.Interior(height, width) || snake.Contains(food) {
		var ok bool
		food, ok = PlaceFood(snake, height, width, rng)
		if !ok {
			return State{}, ErrBoardTooSmall
		}
	}
	s.Food = food

	return s, nil
}

// Playing reports whether the game still accepts ticks
func (s State) Playing() bool {
	return s.Phase == PhasePlaying
}
