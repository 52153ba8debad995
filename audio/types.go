package audio

import "errors"

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat   SoundType = iota // Food eaten
	SoundCrash                  // Wall or self collision
	soundTypeCount
)

func (st SoundType) String() string {
	switch st {
	case SoundEat:
		return "eat"
	case SoundCrash:
		return "crash"
	}
	return "unknown"
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
