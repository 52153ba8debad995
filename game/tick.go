package game

import (
	"math/rand"

	"github.com/lixenwraith/vi-snake/constants"
)

// EffectKind identifies a single-cell rendering change
type EffectKind uint8

const (
	EffectErase EffectKind = iota // Cell becomes empty (vacated tail, eaten food)
	EffectFood                    // Food placed
	EffectHead                    // New head drawn
)

// Effect is one cell-level rendering delta produced by a tick
type Effect struct {
	Kind EffectKind
	Pos  Position
}

// Tick advances s by one step under intent in and returns the next state with its rendering deltas
//
// Order within a tick:
//  1. Quit ends the game without moving
//  2. A steering intent replaces the direction, anything else keeps it
//  3. The new head is prepended before any collision test, so a fatal tick keeps it
//  4. Wall: head outside the interior
//  5. Self: head equal to any other segment, tail still attached
//  6. Food grows the snake by one and respawns food, otherwise the tail is dropped
//
// rng is only consulted when food is eaten
func Tick(s State, in Intent, rng *rand.Rand) (State, []Effect) {
	if s.Phase != PhasePlaying {
		return s, nil
	}

	next := s
	if in == IntentQuit {
		next.Phase = PhaseGameOver
		next.Cause = CauseQuit
		return next, nil
	}

	if d, ok := in.Direction(); ok {
		next.Direction = d
	}
	next.Ticks++

	head := s.Snake.Head().Add(next.Direction)

	snake := make(Snake, 0, len(s.Snake)+1)
	snake = append(snake, head)
	snake = append(snake, s.Snake...)
	next.Snake = snake

	if !head.Interior(s.Height, s.Width) {
		next.Phase = PhaseGameOver
		next.Cause = CauseWall
		return next, nil
	}

	if snake[1:].Contains(head) {
		next.Phase = PhaseGameOver
		next.Cause = CauseSelf
		return next, nil
	}

	effects := make([]Effect, 0, 3)
	if head == s.Food {
		next.Score += constants.ScorePerFood
		effects = append(effects, Effect{Kind: EffectErase, Pos: s.Food})

		food, ok := PlaceFood(snake, s.Height, s.Width, rng)
		if !ok {
			next.Phase = PhaseGameOver
			next.Cause = CauseBoardFull
			return next, append(effects, Effect{Kind: EffectHead, Pos: head})
		}
		next.Food = food
		effects = append(effects, Effect{Kind: EffectFood, Pos: food})
	} else {
		tail := snake[len(snake)-1]
		next.Snake = snake[:len(snake)-1]
		effects = append(effects, Effect{Kind: EffectErase, Pos: tail})
	}

	effects = append(effects, Effect{Kind: EffectHead, Pos: head})
	return next, effects
}
