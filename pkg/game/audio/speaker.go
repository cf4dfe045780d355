package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	minDistance = 1
	maxDistance = 25
)

// note is one tone of a sound effect
type note struct {
	freq     float64
	duration time.Duration
}

// sounds describes each effect as a short tone sequence
var sounds = map[Sound][]note{
	SoundCoin:    {{987.77, 60 * time.Millisecond}, {1318.51, 120 * time.Millisecond}},
	SoundKey:     {{659.25, 80 * time.Millisecond}, {880, 80 * time.Millisecond}, {1046.5, 120 * time.Millisecond}},
	SoundGun:     {{220, 100 * time.Millisecond}, {330, 150 * time.Millisecond}},
	SoundMask:    {{392, 100 * time.Millisecond}, {523.25, 150 * time.Millisecond}},
	SoundCrystal: {{523.25, 100 * time.Millisecond}, {659.25, 100 * time.Millisecond}, {783.99, 100 * time.Millisecond}, {1046.5, 300 * time.Millisecond}},
	SoundDamage:  {{110, 150 * time.Millisecond}, {82.41, 200 * time.Millisecond}},
	SoundDeath:   {{196, 200 * time.Millisecond}, {146.83, 200 * time.Millisecond}, {98, 400 * time.Millisecond}},
}

// Speaker plays synthesised effects on the system audio device.
// Volume falls off with distance from the listener.
type Speaker struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	listener func() mgl32.Vec3
	volume   float64
	muted    bool
}

// NewSpeaker initialises the audio device. listener reports the current listener position.
func NewSpeaker(listener func() mgl32.Vec3) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	s := &Speaker{
		mixer:    &beep.Mixer{},
		listener: listener,
		volume:   0.5,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// SetMuted silences or restores output
func (s *Speaker) SetMuted(muted bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = muted
}

// Muted reports whether output is silenced
func (s *Speaker) Muted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.muted
}

// PlayAt queues the effect on the mixer
func (s *Speaker) PlayAt(snd Sound, pos mgl32.Vec3) {
	s.mu.Lock()
	muted := s.muted
	volume := s.volume
	s.mu.Unlock()
	if muted {
		return
	}

	gain := volume
	if s.listener != nil {
		gain *= float64(Attenuation(pos.Sub(s.listener()).Len(), minDistance, maxDistance))
	}
	if gain <= 0 {
		return
	}

	streamer, err := build(snd, gain)
	if err != nil || streamer == nil {
		return
	}

	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close stops playback
func (s *Speaker) Close() {
	speaker.Clear()
	speaker.Close()
}

// build renders the effect's tone sequence at the given gain
func build(snd Sound, gain float64) (beep.Streamer, error) {
	notes, ok := sounds[snd]
	if !ok {
		return nil, nil
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, fmt.Errorf("tone %.2fHz: %w", n.freq, err)
		}
		parts = append(parts, beep.Take(sampleRate.N(n.duration), tone))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   math.Log2(gain),
	}, nil
}
