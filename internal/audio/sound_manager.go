/*
 * Copyright (C) 2023 by Jason Figge
 */

package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"gungame/internal/game"
)

const (
	sampleRate = beep.SampleRate(48000)
)

// SoundManager plays the weapon effects. Every method is safe to call
// before Initialize or after Cleanup, in which case it does nothing.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. It fails on machines without an audio
// device; the game keeps running silently in that case.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted silences new effects without closing the speaker, so sound can
// be switched back on while the game runs.
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Handle plays the effects for one frame's events.
func (sm *SoundManager) Handle(ev game.Events) {
	switch {
	case ev.DryFire:
		sm.PlayDryFire()
	case ev.Shot.Fired:
		sm.PlayShot()
		if kills := ev.Shot.Kills(); kills > 0 {
			sm.PlayKill()
		} else if len(ev.Shot.Hits) > 0 {
			sm.PlayHit()
		}
	}
	if ev.Reloaded {
		sm.PlayReload()
	}
}

func (sm *SoundManager) PlayShot() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*180), NewGunshotGenerator(sampleRate)))
}

func (sm *SoundManager) PlayDryFire() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*30), NewClickGenerator(sampleRate, 2400)))
}

func (sm *SoundManager) PlayHit() {
	sm.play(beep.Take(sampleRate.N(time.Millisecond*80), NewToneGenerator(sampleRate, 880)))
}

func (sm *SoundManager) PlayKill() {
	sm.play(beep.Seq(
		beep.Take(sampleRate.N(time.Millisecond*70), NewToneGenerator(sampleRate, 660)),
		beep.Take(sampleRate.N(time.Millisecond*120), NewToneGenerator(sampleRate, 990)),
	))
}

func (sm *SoundManager) PlayReload() {
	sm.play(beep.Seq(
		beep.Take(sampleRate.N(time.Millisecond*40), NewClickGenerator(sampleRate, 1200)),
		beep.Silence(sampleRate.N(time.Millisecond*120)),
		beep.Take(sampleRate.N(time.Millisecond*40), NewClickGenerator(sampleRate, 1600)),
	))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// GunshotGenerator is a noise burst with a fast exponential decay over a
// low thump.
type GunshotGenerator struct {
	sr   beep.SampleRate
	pos  int
	seed int64
}

func NewGunshotGenerator(sr beep.SampleRate) *GunshotGenerator {
	return &GunshotGenerator{sr: sr, seed: 0x5eed}
}

func (g *GunshotGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 30)

		g.seed = (g.seed*1103515245 + 12345) & 0x7fffffff
		noise := float64(g.seed)/float64(0x7fffffff)*2 - 1
		thump := math.Sin(2 * math.Pi * 70 * t)

		sample := envelope * (0.35*noise + 0.25*thump)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *GunshotGenerator) Err() error {
	return nil
}

// ClickGenerator is a very short decaying square click.
type ClickGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewClickGenerator(sr beep.SampleRate, freq float64) *ClickGenerator {
	return &ClickGenerator{sr: sr, freq: freq}
}

func (g *ClickGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		square := 1.0
		if math.Sin(2*math.Pi*g.freq*t) < 0 {
			square = -1
		}
		sample := 0.15 * square * math.Exp(-t*120)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ClickGenerator) Err() error {
	return nil
}

// ToneGenerator is a sine tone with a short fade in.
type ToneGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewToneGenerator(sr beep.SampleRate, freq float64) *ToneGenerator {
	return &ToneGenerator{sr: sr, freq: freq}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Min(t/0.005, 1.0)
		sample := 0.2 * envelope * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
