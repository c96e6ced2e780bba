package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType selects an oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a wave streamer that ends after duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)), // #nosec G404 -- audio noise
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
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
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

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s with attack and release ramps over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. math.Log2(0) is -Inf, so zero is silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is a shaped fixed-length note.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(freq, d, wave, rate)
	return NewEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// sine is a pure tone from the beep generators, cut to d and shaped.
func sine(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	s, err := generators.SineTone(rate, freq)
	if err != nil {
		// frequency above Nyquist; fall back to the local oscillator
		return tone(freq, d, WaveSine, rate)
	}
	return NewEnvelope(beep.Take(rate.N(d), s), d, 5*time.Millisecond, d/2, rate)
}

// Sound identifies one synthesized effect.
type Sound int

const (
	SoundChime  Sound = iota // collectible picked up
	SoundBuzz                // move blocked
	SoundCreak               // "creak" cue
	SoundRustle              // "rustle" cue
	SoundBlip                // any other cue
	SoundWin
	SoundCaught
	soundCount
)

func (s Sound) String() string {
	switch s {
	case SoundChime:
		return "chime"
	case SoundBuzz:
		return "buzz"
	case SoundCreak:
		return "creak"
	case SoundRustle:
		return "rustle"
	case SoundBlip:
		return "blip"
	case SoundWin:
		return "win"
	case SoundCaught:
		return "caught"
	default:
		return "unknown"
	}
}

// CueSound maps a sound-zone cue name to an effect.
func CueSound(cue string) Sound {
	switch cue {
	case "creak":
		return SoundCreak
	case "rustle":
		return SoundRustle
	default:
		return SoundBlip
	}
}

// Synthesize builds the streamer for s at unit gain.
func Synthesize(s Sound, rate beep.SampleRate) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	switch s {
	case SoundChime:
		// A5 with its octave, then E6
		return beep.Seq(
			beep.Mix(newVolume(sine(880, ms(120), rate), 0.7), newVolume(sine(1760, ms(120), rate), 0.3)),
			sine(1318.51, ms(160), rate),
		)
	case SoundBuzz:
		return tone(100, ms(90), WaveSaw, rate)
	case SoundCreak:
		return beep.Seq(tone(180, ms(70), WaveSquare, rate), tone(140, ms(110), WaveSquare, rate))
	case SoundRustle:
		return newVolume(tone(0, ms(220), WaveNoise, rate), 0.4)
	case SoundWin:
		return beep.Seq(
			sine(523.25, ms(120), rate),
			sine(659.25, ms(120), rate),
			sine(783.99, ms(120), rate),
			sine(1046.5, ms(300), rate),
		)
	case SoundCaught:
		return beep.Seq(tone(220, ms(200), WaveSquare, rate), beep.Silence(rate.N(ms(40))), tone(165, ms(350), WaveSquare, rate))
	default:
		return sine(660, ms(60), rate)
	}
}
