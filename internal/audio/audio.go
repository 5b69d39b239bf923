// Package audio plays a short tone whenever a peg is hit.
//
// A Processor observes board snapshots on the stepping goroutine and hands
// new voices to the portaudio callback through a mutex-guarded list. It
// never touches board state from the audio thread.
package audio

import (
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/poggle/internal/pinball"
)

const (
	SampleRate = 44100
	BufferSize = 512

	maxVoices = 32
	// silence is the amplitude below which a voice is dropped.
	silence = 1e-4
)

// pitches per peg type, Hz.
var pitches = map[pinball.PegType]float64{
	pinball.Standard:   440.00,
	pinball.Target:     659.25,
	pinball.PointBoost: 880.00,
	pinball.PowerUp:    523.25,
}

func PitchFor(t pinball.PegType) float64 {
	if f, ok := pitches[t]; ok {
		return f
	}
	return pitches[pinball.Standard]
}

type voice struct {
	freq  float64
	phase float64
	amp   float64
	decay float64
}

type Processor struct {
	Stream *portaudio.Stream

	mu     sync.Mutex
	voices []voice

	FilterState [2]float64
	DelayLine   [2][]float64
	DelayHead   int

	// hits is the previous snapshot's hit flags, touched only by OnStep.
	hits []bool

	Active bool
}

func NewProcessor() *Processor {
	delayLen := int(float64(SampleRate) * 0.12)

	return &Processor{
		voices:    make([]voice, 0, maxVoices),
		DelayLine: [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
	}
}

func (a *Processor) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audio: initialize: %w", err)
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, a.ProcessAudio)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("audio: open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("audio: start stream: %w", err)
	}

	log.Printf("[AUDIO] output stream started, %d Hz", SampleRate)

	a.Stream = stream
	a.Active = true
	return nil
}

func (a *Processor) Stop() {
	if !a.Active {
		return
	}
	if a.Stream != nil {
		a.Stream.Stop()
		a.Stream.Close()
	}
	portaudio.Terminate()
	a.Active = false
}

// Trigger queues a decaying tone. The oldest voice is dropped when the
// list is full.
func (a *Processor) Trigger(freq, amp float64) {
	v := voice{freq: freq, amp: amp, decay: math.Exp(-1 / (0.15 * SampleRate))}

	a.mu.Lock()
	if len(a.voices) >= maxVoices {
		copy(a.voices, a.voices[1:])
		a.voices = a.voices[:len(a.voices)-1]
	}
	a.voices = append(a.voices, v)
	a.mu.Unlock()
}

// Voices is the number of tones still sounding.
func (a *Processor) Voices() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.voices)
}

// OnStep triggers a tone for each peg hit since the previous snapshot.
func (a *Processor) OnStep(s pinball.Snapshot) {
	if len(a.hits) != len(s.Pegs) {
		a.hits = make([]bool, len(s.Pegs))
	}
	for i, p := range s.Pegs {
		if p.IsHit && !a.hits[i] {
			a.Trigger(PitchFor(p.Type), 0.25)
		}
		a.hits[i] = p.IsHit
	}
}

// Triangle Wave: Smooth, flute-like, no harsh buzz
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// Low Pass Filter (One Pole)
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}

// ProcessAudio is the portaudio callback: mixes every live voice, filters
// and adds a short stereo echo.
func (a *Processor) ProcessAudio(out [][]float32) {
	dt := 1.0 / float64(SampleRate)

	a.mu.Lock()
	defer a.mu.Unlock()

	for i := 0; i < len(out[0]); i++ {
		sample := 0.0
		for j := range a.voices {
			v := &a.voices[j]
			sample += triangle(v.phase) * v.amp
			v.phase += v.freq * dt
			v.amp *= v.decay
		}

		var outL, outR float64
		outL, a.FilterState[0] = lpf(sample, 2400, dt, a.FilterState[0])
		outR, a.FilterState[1] = lpf(sample, 2000, dt, a.FilterState[1])

		delayL := a.DelayLine[0][a.DelayHead]
		delayR := a.DelayLine[1][a.DelayHead]

		mixL := outL + delayR*0.25
		mixR := outR + delayL*0.25

		a.DelayLine[0][a.DelayHead] = mixL * 0.5
		a.DelayLine[1][a.DelayHead] = mixR * 0.5
		a.DelayHead = (a.DelayHead + 1) % len(a.DelayLine[0])

		out[0][i] = float32(mixL)
		out[1][i] = float32(mixR)
	}

	live := a.voices[:0]
	for _, v := range a.voices {
		if v.amp > silence {
			live = append(live, v)
		}
	}
	a.voices = live
}
