// Package audio turns session feedback into short synthesized effects.
// Effects are built with beep streamers, rendered once to PCM and played
// through ebiten's audio context; playback never blocks the caller.
package audio

import (
	"log/slog"

	"github.com/gopxl/beep"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/AhmedSherif9/HideAndSeek/internal/world"
)

// maxVoices bounds how many effects may overlap.
const maxVoices = 8

// Options configures a Player.
type Options struct {
	SampleRate int
	Volume     float64 // linear, 0..1
	Logger     *slog.Logger
}

// Player plays effects for session notifications.
type Player struct {
	ctx    *ebaudio.Context
	bank   *bank
	voices []*ebaudio.Player
	logger *slog.Logger
}

// NewPlayer binds to ctx. Only one ebiten audio context may exist per
// process, so the caller owns it.
func NewPlayer(ctx *ebaudio.Context, opts Options) *Player {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	rate := opts.SampleRate
	if ctx != nil {
		rate = ctx.SampleRate()
	}
	return &Player{
		ctx:    ctx,
		bank:   newBank(beep.SampleRate(rate), opts.Volume),
		logger: opts.Logger,
	}
}

// Play starts s and returns immediately.
func (p *Player) Play(s Sound) {
	if p.ctx == nil {
		return
	}
	pcm := p.bank.get(s)
	if len(pcm) == 0 {
		return
	}
	p.reap()
	if len(p.voices) >= maxVoices {
		p.logger.Debug("audio voice limit reached", "sound", s)
		return
	}
	v := p.ctx.NewPlayerFromBytes(pcm)
	v.Play()
	p.voices = append(p.voices, v)
}

// reap drops finished voices.
func (p *Player) reap() {
	live := p.voices[:0]
	for _, v := range p.voices {
		if v.IsPlaying() {
			live = append(live, v)
			continue
		}
		if err := v.Close(); err != nil {
			p.logger.Debug("closing audio voice", "err", err)
		}
	}
	clear(p.voices[len(live):])
	p.voices = live
}

func (p *Player) Collected(world.CollectedEvent) { p.Play(SoundChime) }
func (p *Player) Blocked(world.Move)             { p.Play(SoundBuzz) }
func (p *Player) Cue(ev world.CueEvent)          { p.Play(CueSound(ev.Cue)) }

func (p *Player) OutcomeChanged(o world.Outcome) {
	switch o {
	case world.OutcomeWon:
		p.Play(SoundWin)
	case world.OutcomeCaught:
		p.Play(SoundCaught)
	}
}
