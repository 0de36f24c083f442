// Package sonify plays Collatz step parities as a stream of short tones.
package sonify

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
)

// Voice is an endless beep.Streamer. Queued notes are played one after
// another, even steps low and odd steps high; an empty queue is silence.
// The game enqueues from its update loop while the speaker streams from
// its own goroutine.
type Voice struct {
	EvenHz, OddHz float64
	Volume        float64

	sampleRate beep.SampleRate
	noteLen    int

	mu    sync.Mutex
	queue []bool
	head  int
	size  int

	// current note
	playing bool
	odd     bool
	pos     int
	phase   float64
}

func NewVoice(sr beep.SampleRate, note time.Duration, capacity int) *Voice {
	n := sr.N(note)
	if n < 1 {
		n = 1
	}
	return &Voice{
		EvenHz:     220,
		OddHz:      330,
		Volume:     0.2,
		sampleRate: sr,
		noteLen:    n,
		queue:      make([]bool, capacity),
	}
}

// Enqueue appends parities until the queue is full and returns how many
// were accepted.
func (v *Voice) Enqueue(odd ...bool) int {
	v.mu.Lock()
	defer v.mu.Unlock()

	accepted := 0
	for _, o := range odd {
		if v.size == len(v.queue) {
			break
		}
		v.queue[(v.head+v.size)%len(v.queue)] = o
		v.size++
		accepted++
	}
	return accepted
}

// Pending returns the number of queued notes, not counting the one playing.
func (v *Voice) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.size
}

func (v *Voice) Stream(samples [][2]float64) (int, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range samples {
		if !v.playing && !v.next() {
			samples[i] = [2]float64{}
			continue
		}

		freq := v.EvenHz
		if v.odd {
			freq = v.OddHz
		}
		s := v.Volume * math.Sin(v.phase)
		samples[i] = [2]float64{s, s}

		v.phase += 2 * math.Pi * freq / float64(v.sampleRate)
		if v.phase >= 2*math.Pi {
			v.phase -= 2 * math.Pi
		}
		v.pos++
		if v.pos >= v.noteLen {
			v.playing = false
		}
	}
	return len(samples), true
}

func (v *Voice) Err() error { return nil }

// next pops the following note. Caller holds mu.
func (v *Voice) next() bool {
	if v.size == 0 {
		return false
	}
	v.odd = v.queue[v.head]
	v.head = (v.head + 1) % len(v.queue)
	v.size--
	v.playing = true
	v.pos = 0
	v.phase = 0
	return true
}
