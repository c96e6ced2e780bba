package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// maxEffect caps how long any effect may render.
const maxEffect = 2 * time.Second

// Render drains s into 16-bit little-endian stereo PCM, the layout the
// ebiten audio context plays.
func Render(s beep.Streamer, rate beep.SampleRate) []byte {
	s = beep.Take(rate.N(maxEffect), s)
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				x := int16(math.Round(clamp(v) * math.MaxInt16))
				out = append(out, byte(x), byte(x>>8))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func clamp(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > 1:
		return 1
	case v < -1:
		return -1
	default:
		return v
	}
}

// bank lazily renders and keeps one PCM buffer per sound.
type bank struct {
	rate   beep.SampleRate
	volume float64
	pcm    [soundCount][]byte
}

func newBank(rate beep.SampleRate, volume float64) *bank {
	return &bank{rate: rate, volume: volume}
}

func (b *bank) get(s Sound) []byte {
	if s < 0 || s >= soundCount {
		return nil
	}
	if b.pcm[s] == nil {
		b.pcm[s] = Render(newVolume(Synthesize(s, b.rate), b.volume), b.rate)
	}
	return b.pcm[s]
}
