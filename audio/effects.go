package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-pong/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates a fixed-length mono tone on both channels
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a tone of freq Hz lasting duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = -1.0
			if o.phase < 0.5 {
				val = 1.0
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration; attack and release overlap nothing when they fit
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := e.gain(e.position)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

// gain returns the envelope level at sample pos, in [0, 1]
func (e *envelope) gain(pos int) float64 {
	vol := 1.0
	if pos < e.attackSamples {
		vol = float64(pos) / float64(e.attackSamples)
	}
	if remaining := e.totalSamples - pos; e.releaseSamples > 0 && remaining < e.releaseSamples {
		vol = min(vol, float64(remaining)/float64(e.releaseSamples))
	}
	return max(vol, 0)
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol
// effects.Volume is logarithmic, so vol <= 0 maps to Silent instead of Log2(0)
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is an oscillator shaped by an envelope
func tone(freq float64, wave WaveType, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, duration, wave, rate), duration, attack, release, rate)
}

// CreatePaddleSound is a short square blip
func CreatePaddleSound(rate beep.SampleRate, vol float64) beep.Streamer {
	s := tone(parameter.PaddleSoundFreq, WaveSquare,
		parameter.PaddleSoundDuration, parameter.PaddleSoundAttack, parameter.PaddleSoundRelease, rate)
	// Square waves sound louder than sines at equal amplitude
	return newVolume(s, vol*0.5)
}

// CreateWallSound is a low sine tick
func CreateWallSound(rate beep.SampleRate, vol float64) beep.Streamer {
	s := tone(parameter.WallSoundFreq, WaveSine,
		parameter.WallSoundDuration, parameter.WallSoundAttack, parameter.WallSoundRelease, rate)
	return newVolume(s, vol)
}

// CreateScoreSound plays two descending notes back to back
func CreateScoreSound(rate beep.SampleRate, vol float64) beep.Streamer {
	n1 := tone(parameter.ScoreSoundNote1Freq, WaveSine,
		parameter.ScoreSoundNote1Duration, parameter.ScoreSoundAttack, parameter.ScoreSoundNote1Release, rate)
	n2 := tone(parameter.ScoreSoundNote2Freq, WaveSine,
		parameter.ScoreSoundNote2Duration, parameter.ScoreSoundAttack, parameter.ScoreSoundNote2Release, rate)
	return newVolume(beep.Seq(n1, n2), vol)
}

// GetSoundEffect returns a fresh streamer for the given sound, nil if unknown
func GetSoundEffect(s Sound, rate beep.SampleRate, vol float64) beep.Streamer {
	switch s {
	case SoundPaddle:
		return CreatePaddleSound(rate, vol)
	case SoundWall:
		return CreateWallSound(rate, vol)
	case SoundScore:
		return CreateScoreSound(rate, vol)
	default:
		return nil
	}
}
