package game

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func mustState(t *testing.T) State {
	t.Helper()
	s, err := NewState(20, 60, newTestRand())
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	return s
}

// TestNewStateDefaults verifies the opening layout
func TestNewStateDefaults(t *testing.T) {
	s := mustState(t)

	want := Snake{{4, 10}, {4, 9}, {4, 8}}
	if diff := cmp.Diff(want, s.Snake); diff != "" {
		t.Errorf("Initial snake mismatch (-want +got):\n%s", diff)
	}
	if s.Food != (Position{10, 20}) {
		t.Errorf("Expected food at (10,20), got %v", s.Food)
	}
	if s.Direction != Right {
		t.Errorf("Expected direction right, got %v", s.Direction)
	}
	if s.Score != 0 {
		t.Errorf("Expected score 0, got %d", s.Score)
	}
	if !s.Playing() {
		t.Error("Expected new state to be playing")
	}
}

// TestNewStateSmallBoard verifies the layout shrinks onto a small board and food stays free
func TestNewStateSmallBoard(t *testing.T) {
	s, err := NewState(7, 7, newTestRand())
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	for _, seg := range s.Snake {
		if !seg.Interior(7, 7) {
			t.Errorf("Segment %v outside interior", seg)
		}
	}
	if s.Snake.Contains(s.Food) {
		t.Errorf("Food %v placed on snake", s.Food)
	}
	if !s.Food.Interior(7, 7) {
		t.Errorf("Food %v outside interior", s.Food)
	}
}

func TestNewStateRejectsTinyBoard(t *testing.T) {
	if _, err := NewState(3, 60, newTestRand()); err != ErrBoardTooSmall {
		t.Errorf("Expected ErrBoardTooSmall, got %v", err)
	}
}

// TestTickMovesWithoutFood covers a plain step to the right
func TestTickMovesWithoutFood(t *testing.T) {
	s := mustState(t)

	next, effects := Tick(s, IntentNone, newTestRand())

	want := Snake{{4, 11}, {4, 10}, {4, 9}}
	if diff := cmp.Diff(want, next.Snake); diff != "" {
		t.Errorf("Snake mismatch (-want +got):\n%s", diff)
	}
	if next.Score != 0 {
		t.Errorf("Expected score 0, got %d", next.Score)
	}

	wantEffects := []Effect{
		{Kind: EffectErase, Pos: Position{4, 8}},
		{Kind: EffectHead, Pos: Position{4, 11}},
	}
	if diff := cmp.Diff(wantEffects, effects); diff != "" {
		t.Errorf("Effects mismatch (-want +got):\n%s", diff)
	}
}

// TestTickEatsFood covers growth, scoring and food respawn
func TestTickEatsFood(t *testing.T) {
	s := mustState(t)
	s.Snake = Snake{{10, 19}, {10, 18}, {10, 17}}
	s.Food = Position{10, 20}

	next, effects := Tick(s, IntentNone, newTestRand())

	if next.Score != 1 {
		t.Errorf("Expected score 1, got %d", next.Score)
	}
	if next.Snake.Len() != s.Snake.Len()+1 {
		t.Errorf("Expected length %d, got %d", s.Snake.Len()+1, next.Snake.Len())
	}
	if next.Snake.Head() != (Position{10, 20}) {
		t.Errorf("Expected head on old food, got %v", next.Snake.Head())
	}
	if next.Snake.Contains(next.Food) {
		t.Errorf("New food %v overlaps snake", next.Food)
	}
	if !next.Food.Interior(next.Height, next.Width) {
		t.Errorf("New food %v outside interior", next.Food)
	}

	if len(effects) != 3 {
		t.Fatalf("Expected 3 effects, got %d", len(effects))
	}
	if effects[0] != (Effect{Kind: EffectErase, Pos: Position{10, 20}}) {
		t.Errorf("Expected old food erase first, got %+v", effects[0])
	}
	if effects[1] != (Effect{Kind: EffectFood, Pos: next.Food}) {
		t.Errorf("Expected new food effect, got %+v", effects[1])
	}
	if effects[2] != (Effect{Kind: EffectHead, Pos: Position{10, 20}}) {
		t.Errorf("Expected head effect last, got %+v", effects[2])
	}
}

// TestTickWallCollision verifies the fatal head stays in the final state
func TestTickWallCollision(t *testing.T) {
	tests := []struct {
		name  string
		snake Snake
		in    Intent
		head  Position
	}{
		{"top", Snake{{1, 10}, {2, 10}, {3, 10}}, IntentUp, Position{0, 10}},
		{"bottom", Snake{{18, 10}, {17, 10}, {16, 10}}, IntentDown, Position{19, 10}},
		{"left", Snake{{5, 1}, {5, 2}, {5, 3}}, IntentLeft, Position{5, 0}},
		{"right", Snake{{5, 58}, {5, 57}, {5, 56}}, IntentRight, Position{5, 59}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustState(t)
			s.Snake = tt.snake
			s.Score = 7

			next, effects := Tick(s, tt.in, newTestRand())

			if next.Phase != PhaseGameOver || next.Cause != CauseWall {
				t.Errorf("Expected game over by wall, got %v/%v", next.Phase, next.Cause)
			}
			if next.Snake.Head() != tt.head {
				t.Errorf("Expected fatal head %v kept, got %v", tt.head, next.Snake.Head())
			}
			if next.Snake.Len() != len(tt.snake)+1 {
				t.Errorf("Expected inserted head to remain, length %d", next.Snake.Len())
			}
			if next.Score != 7 {
				t.Errorf("Expected score retained at 7, got %d", next.Score)
			}
			if effects != nil {
				t.Errorf("Expected no effects on collision, got %v", effects)
			}
		})
	}
}

// TestTickReversalIsSelfCollision keeps the unfiltered reversal of the classic game
func TestTickReversalIsSelfCollision(t *testing.T) {
	s := mustState(t)

	next, _ := Tick(s, IntentLeft, newTestRand())

	if next.Cause != CauseSelf {
		t.Errorf("Expected self collision, got %v", next.Cause)
	}
	if next.Snake.Head() != (Position{4, 9}) {
		t.Errorf("Expected fatal head (4,9), got %v", next.Snake.Head())
	}
}

// TestTickTailCellIsFatal checks the tail is still attached during the self test
func TestTickTailCellIsFatal(t *testing.T) {
	s := mustState(t)
	// Square loop: head moving down lands on the tail
	s.Snake = Snake{{5, 5}, {5, 6}, {6, 6}, {6, 5}}
	s.Direction = Down

	next, _ := Tick(s, IntentNone, newTestRand())

	if next.Cause != CauseSelf {
		t.Errorf("Expected self collision on tail cell, got %v", next.Cause)
	}
}

func TestTickQuit(t *testing.T) {
	s := mustState(t)

	next, effects := Tick(s, IntentQuit, newTestRand())

	if next.Phase != PhaseGameOver || next.Cause != CauseQuit {
		t.Errorf("Expected quit game over, got %v/%v", next.Phase, next.Cause)
	}
	if diff := cmp.Diff(s.Snake, next.Snake); diff != "" {
		t.Errorf("Quit must not move the snake (-before +after):\n%s", diff)
	}
	if len(effects) != 0 {
		t.Errorf("Expected no effects, got %v", effects)
	}
}

func TestTickSteering(t *testing.T) {
	s := mustState(t)

	next, _ := Tick(s, IntentDown, newTestRand())
	if next.Direction != Down {
		t.Errorf("Expected direction down, got %v", next.Direction)
	}
	if next.Snake.Head() != (Position{5, 10}) {
		t.Errorf("Expected head (5,10), got %v", next.Snake.Head())
	}

	// No input keeps heading down
	next, _ = Tick(next, IntentNone, newTestRand())
	if next.Snake.Head() != (Position{6, 10}) {
		t.Errorf("Expected head (6,10), got %v", next.Snake.Head())
	}
}

// TestTickDoesNotMutateInput verifies value semantics of State
func TestTickDoesNotMutateInput(t *testing.T) {
	s := mustState(t)
	before := append(Snake(nil), s.Snake...)

	Tick(s, IntentDown, newTestRand())

	if diff := cmp.Diff(before, s.Snake); diff != "" {
		t.Errorf("Input snake mutated (-before +after):\n%s", diff)
	}
	if s.Direction != Right || s.Ticks != 0 {
		t.Errorf("Input state mutated: direction %v ticks %d", s.Direction, s.Ticks)
	}
}

func TestTickAfterGameOverIsNoop(t *testing.T) {
	s := mustState(t)
	s.Phase = PhaseGameOver
	s.Cause = CauseWall

	next, effects := Tick(s, IntentUp, newTestRand())

	if diff := cmp.Diff(s, next); diff != "" {
		t.Errorf("Game over state changed (-before +after):\n%s", diff)
	}
	if effects != nil {
		t.Errorf("Expected no effects, got %v", effects)
	}
}

// TestTickBoardFull fills the last free cell of a 5x5 board
func TestTickBoardFull(t *testing.T) {
	s, err := NewState(5, 5, newTestRand())
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	s.Snake = Snake{{1, 2}, {1, 3}, {2, 3}, {2, 2}, {2, 1}, {3, 1}, {3, 2}, {3, 3}}
	s.Food = Position{1, 1}

	next, effects := Tick(s, IntentLeft, newTestRand())

	if next.Cause != CauseBoardFull {
		t.Errorf("Expected board full, got %v", next.Cause)
	}
	if next.Score != s.Score+1 {
		t.Errorf("Expected final food to score, got %d", next.Score)
	}
	if next.Snake.Len() != 9 {
		t.Errorf("Expected snake to cover the interior, got length %d", next.Snake.Len())
	}
	if len(effects) == 0 || effects[len(effects)-1].Kind != EffectHead {
		t.Errorf("Expected trailing head effect, got %v", effects)
	}
}

// TestTickInvariants runs random games and checks the per-tick properties
func TestTickInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	intents := []Intent{IntentNone, IntentNone, IntentNone, IntentUp, IntentDown, IntentLeft, IntentRight}

	s, err := NewState(20, 60, rng)
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}

	games := 0
	for i := 0; i < 20000; i++ {
		if !s.Playing() {
			games++
			s, _ = NewState(20, 60, rng)
		}

		seen := make(map[Position]bool, s.Snake.Len())
		for _, seg := range s.Snake {
			if seen[seg] {
				t.Fatalf("Tick %d: duplicate segment %v at start of tick", i, seg)
			}
			seen[seg] = true
		}

		next, _ := Tick(s, intents[rng.Intn(len(intents))], rng)
		if !next.Playing() {
			if next.Cause == CauseWall && next.Snake.Head().Interior(20, 60) {
				t.Fatalf("Tick %d: wall cause with interior head %v", i, next.Snake.Head())
			}
			s = next
			continue
		}

		switch next.Score - s.Score {
		case 0:
			if next.Snake.Len() != s.Snake.Len() {
				t.Fatalf("Tick %d: length changed without food: %d -> %d", i, s.Snake.Len(), next.Snake.Len())
			}
		case 1:
			if next.Snake.Len() != s.Snake.Len()+1 {
				t.Fatalf("Tick %d: expected growth by one, %d -> %d", i, s.Snake.Len(), next.Snake.Len())
			}
		default:
			t.Fatalf("Tick %d: score jumped by %d", i, next.Score-s.Score)
		}

		if next.Snake.Contains(next.Food) || !next.Food.Interior(20, 60) {
			t.Fatalf("Tick %d: food %v invalid", i, next.Food)
		}
		s = next
	}

	if games == 0 {
		t.Error("Expected random walk to end at least one game")
	}
}
