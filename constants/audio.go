package constants

import "time"

// Audio Defaults
const (
	AudioSampleRate   = 44100
	AudioMasterVolume = 0.5

	// AudioBufferDuration sizes the speaker buffer
	AudioBufferDuration = 100 * time.Millisecond
)

// Eat Sound Timing
const (
	EatSoundNote1Duration = 60 * time.Millisecond
	EatSoundNote2Duration = 180 * time.Millisecond
	EatSoundAttack        = 5 * time.Millisecond
	EatSoundNote1Release  = 30 * time.Millisecond
	EatSoundNote2Release  = 140 * time.Millisecond
)

// Crash Sound Timing
const (
	CrashSoundDuration = 250 * time.Millisecond
	CrashSoundAttack   = 5 * time.Millisecond
	CrashSoundRelease  = 180 * time.Millisecond
)

// AudioDrainTimeout bounds how long shutdown waits for queued sounds
const AudioDrainTimeout = CrashSoundDuration + 2*AudioBufferDuration
