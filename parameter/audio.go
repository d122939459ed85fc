package parameter

import "time"

// Audio Engine
const (
	// AudioSampleRate is the speaker sample rate in Hz
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 50 * time.Millisecond

	// AudioDefaultVolume is the master volume when the config omits it
	AudioDefaultVolume = 0.5
)

// Paddle Hit Sound
const (
	PaddleSoundFreq     = 440.0
	PaddleSoundDuration = 60 * time.Millisecond
	PaddleSoundAttack   = 2 * time.Millisecond
	PaddleSoundRelease  = 30 * time.Millisecond
)

// Wall Bounce Sound
const (
	WallSoundFreq     = 220.0
	WallSoundDuration = 40 * time.Millisecond
	WallSoundAttack   = 2 * time.Millisecond
	WallSoundRelease  = 20 * time.Millisecond
)

// Score Sound: two descending notes
const (
	ScoreSoundNote1Freq     = 660.0
	ScoreSoundNote2Freq     = 330.0
	ScoreSoundNote1Duration = 90 * time.Millisecond
	ScoreSoundNote2Duration = 220 * time.Millisecond
	ScoreSoundAttack        = 5 * time.Millisecond
	ScoreSoundNote1Release  = 40 * time.Millisecond
	ScoreSoundNote2Release  = 160 * time.Millisecond
)
