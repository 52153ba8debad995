package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/vi-snake/constants"
)

// Player plays one-shot sound effects through the system speaker
// A nil *Player is a valid silent player
type Player struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	initialized bool

	// pending counts queued sounds that have not finished streaming
	pending sync.WaitGroup
}

// NewPlayer creates a player for cfg; nil cfg uses defaults
func NewPlayer(cfg *AudioConfig) *Player {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &Player{cfg: cfg}
}

// Start opens the speaker
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.cfg.Enabled {
		return ErrAudioDisabled
	}
	if p.initialized {
		return nil
	}

	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	p.initialized = true
	return nil
}

// Play queues a sound effect, no-op when the speaker is not open
func (p *Player) Play(st SoundType) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if s := GetSoundEffect(st, p.cfg); s != nil {
		speaker.Play(p.track(s))
	}
}

// track counts s as pending until its last sample has been streamed
func (p *Player) track(s beep.Streamer) beep.Streamer {
	p.pending.Add(1)
	return beep.Seq(s, beep.Callback(p.pending.Done))
}

// wait blocks until every pending sound has finished or timeout elapses
// Returns false on timeout
func (p *Player) wait(timeout time.Duration) bool {
	done := make(chan struct{})
	go func() {
		p.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return true
	case <-time.After(timeout):
		return false
	}
}

// Stop lets queued sounds finish, bounded by the longest cue, then closes the speaker
func (p *Player) Stop() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.wait(constants.AudioDrainTimeout)
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
