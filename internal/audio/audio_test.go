package audio

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedSherif9/HideAndSeek/internal/world"
)

const rate = beep.SampleRate(44100)

func peak(pcm []byte) int {
	m := 0
	for i := 0; i+1 < len(pcm); i += 2 {
		v := int(int16(binary.LittleEndian.Uint16(pcm[i:])))
		if v < 0 {
			v = -v
		}
		m = max(m, v)
	}
	return m
}

func TestOscillatorEndsAfterDuration(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, rate)
	total := 0
	buf := make([][2]float64, 100)
	for {
		n, ok := osc.Stream(buf)
		total += n
		for _, s := range buf[:n] {
			require.GreaterOrEqual(t, s[0], -1.0)
			require.LessOrEqual(t, s[0], 1.0)
			require.Equal(t, s[0], s[1])
		}
		if !ok {
			break
		}
	}
	assert.Equal(t, rate.N(10*time.Millisecond), total)
	assert.NoError(t, osc.Err())
}

func TestSquareWaveIsBipolar(t *testing.T) {
	osc := NewOscillator(220, 20*time.Millisecond, WaveSquare, rate)
	buf := make([][2]float64, 64)
	n, ok := osc.Stream(buf)
	require.True(t, ok)
	for _, s := range buf[:n] {
		assert.Contains(t, []float64{-1, 1}, s[0])
	}
}

func TestEnvelopeRampsFromSilence(t *testing.T) {
	osc := NewOscillator(0, 50*time.Millisecond, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)
	buf := make([][2]float64, rate.N(50*time.Millisecond))
	n, _ := env.Stream(buf)
	require.Equal(t, len(buf), n)
	assert.InDelta(t, 0, buf[0][0], 1e-9)
	assert.InDelta(t, 1, buf[n/2][0], 1e-9)
	assert.Less(t, buf[n-1][0], 0.01)
}

func TestRender_EverySoundIsAudibleAndBounded(t *testing.T) {
	for s := Sound(0); s < soundCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			pcm := Render(Synthesize(s, rate), rate)
			require.NotEmpty(t, pcm)
			assert.Zero(t, len(pcm)%4, "whole stereo frames")
			assert.LessOrEqual(t, len(pcm), rate.N(maxEffect)*4)
			assert.Greater(t, peak(pcm), 1000)
		})
	}
}

func TestRender_BuzzLength(t *testing.T) {
	pcm := Render(Synthesize(SoundBuzz, rate), rate)
	assert.InDelta(t, rate.N(90*time.Millisecond)*4, len(pcm), 8)
}

func TestRender_Clamps(t *testing.T) {
	loud := newVolume(NewOscillator(0, time.Millisecond, WaveSquare, rate), 4)
	pcm := Render(loud, rate)
	assert.Equal(t, 32767, peak(pcm))
}

func TestBank_ZeroVolumeIsSilent(t *testing.T) {
	b := newBank(rate, 0)
	pcm := b.get(SoundChime)
	require.NotEmpty(t, pcm)
	assert.Zero(t, peak(pcm))
	assert.Nil(t, b.get(soundCount))
}

func TestBank_Caches(t *testing.T) {
	b := newBank(rate, 0.5)
	first := b.get(SoundWin)
	assert.Same(t, &first[0], &b.get(SoundWin)[0])
}

func TestCueSound(t *testing.T) {
	assert.Equal(t, SoundCreak, CueSound("creak"))
	assert.Equal(t, SoundRustle, CueSound("rustle"))
	assert.Equal(t, SoundBlip, CueSound("doorbell"))
}

func TestPlayerWithoutContextIsSilent(t *testing.T) {
	p := NewPlayer(nil, Options{SampleRate: 22050, Volume: 1})
	assert.NotPanics(t, func() {
		p.Collected(world.CollectedEvent{ID: "gem"})
		p.Blocked(world.Move{})
		p.Cue(world.CueEvent{Cue: "creak"})
		p.OutcomeChanged(world.OutcomeWon)
	})
	assert.Empty(t, p.voices)
}
