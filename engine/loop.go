package engine

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/game"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/terminal"
	"go.uber.org/zap"
)

// SoundPlayer receives gameplay sound cues
type SoundPlayer interface {
	Play(audio.SoundType)
}

type silent struct{}

func (silent) Play(audio.SoundType) {}

// Options configures a Loop; zero values select defaults
type Options struct {
	Tick   time.Duration   // Key-poll timeout, default constants.TickInterval
	Keys   *input.KeyTable // Default bindings via input.FromEvent
	Sounds SoundPlayer     // Default silent
	Logger *zap.Logger     // Default no-op
	Rand   *rand.Rand      // Default clock-seeded
}

// Loop drives one game session: poll a key, advance the state, render the deltas
// Phases: Playing -> GameOver on quit, collision or a full board; GameOver is terminal
type Loop struct {
	screen  terminal.Screen
	resolve func(*tcell.EventKey) game.Intent
	sounds  SoundPlayer
	logger  *zap.Logger
	rng     *rand.Rand
	tick    time.Duration

	state game.State
}

// New creates a loop over screen starting from state
func New(screen terminal.Screen, state game.State, opts Options) *Loop {
	l := &Loop{
		screen:  screen,
		resolve: input.FromEvent,
		sounds:  opts.Sounds,
		logger:  opts.Logger,
		rng:     opts.Rand,
		tick:    opts.Tick,
		state:   state,
	}

	if l.tick <= 0 {
		l.tick = constants.TickInterval
	}
	if opts.Keys != nil {
		l.resolve = opts.Keys.Resolve
	}
	if l.sounds == nil {
		l.sounds = silent{}
	}
	if l.logger == nil {
		l.logger = zap.NewNop()
	}
	if l.rng == nil {
		l.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return l
}

// State returns the current game state
func (l *Loop) State() game.State {
	return l.state
}

// Run draws the opening board and steps until the game is over
// The key poll is the only wait: a key ends it early, otherwise it expires after one tick
// Cancelling ctx is treated as a quit, observed within one tick
func (l *Loop) Run(ctx context.Context) game.State {
	l.drawAll()

	for l.state.Playing() {
		if ctx.Err() != nil {
			l.Step(game.IntentQuit)
			break
		}

		in := game.IntentNone
		if ev, ok := l.screen.PollKey(l.tick); ok {
			in = l.resolve(ev)
		}
		l.Step(in)
	}

	return l.state
}

// Step applies one intent, renders its effects and emits cues
// It is the single transition function of the loop; no-op once the game is over
func (l *Loop) Step(in game.Intent) {
	if !l.state.Playing() {
		return
	}

	prev := l.state
	next, effects := game.Tick(prev, in, l.rng)
	l.state = next

	l.render(effects)

	if next.Score > prev.Score {
		l.sounds.Play(audio.SoundEat)
		l.logger.Debug("food eaten",
			zap.Int("score", next.Score),
			zap.Int("length", next.Snake.Len()),
			zap.Int("food_row", next.Food.Row),
			zap.Int("food_col", next.Food.Col),
		)
	}

	if !next.Playing() {
		if next.Cause.Fatal() {
			l.sounds.Play(audio.SoundCrash)
		}
		l.logger.Info("game over",
			zap.Stringer("cause", next.Cause),
			zap.Int("score", next.Score),
			zap.Int("ticks", next.Ticks),
			zap.Int("length", next.Snake.Len()),
		)
	}
}
