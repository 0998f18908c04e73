package audio

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/mjibson/go-dsp/fft"
	"golang.org/x/exp/rand"
)

const (
	SampleRate = 44100
	BufferSize = 1024

	// ThunderDecay is the per-second amplitude falloff of a strike.
	ThunderDecay = 3.5
	// ThunderCutoff is the low pass corner for the rumble.
	ThunderCutoff = 180.0
	maxRumble     = 1.5
)

// Synth renders a quiet pad whose brightness follows the kinetic energy
// of the network, plus a noise rumble for every strike. It has no device
// dependency.
type Synth struct {
	mu           sync.Mutex
	pending      float64
	energyTarget float64

	rng          *rand.Rand
	time         float64
	rumble       float64
	energySmooth float64
	filter       [2]float64
	rumbleFilter [2]float64
	delay        [2][]float64
	delayHead    int

	levels      Levels
	analysisBuf []complex128
}

// Levels are smoothed band magnitudes of the rendered output, each in [0,1].
type Levels struct {
	Bass, Mid, High float64
}

func NewSynth(seed uint64) *Synth {
	delayLen := int(float64(SampleRate) * 0.6)
	return &Synth{
		rng:         rand.New(rand.NewSource(seed)),
		delay:       [2][]float64{make([]float64, delayLen), make([]float64, delayLen)},
		analysisBuf: make([]complex128, BufferSize),
	}
}

// Strike queues n thunder bursts for the next buffer.
func (s *Synth) Strike(n int) {
	if n <= 0 {
		return
	}
	s.mu.Lock()
	s.pending += float64(n)
	s.mu.Unlock()
}

func (s *Synth) SetEnergy(e float64) {
	s.mu.Lock()
	s.energyTarget = e
	s.mu.Unlock()
}

func (s *Synth) Levels() Levels {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.levels
}

// Rumble is the current strike envelope.
func (s *Synth) Rumble() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rumble
}

// Triangle Wave: Smooth, flute-like, no harsh buzz
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// Low Pass Filter (One Pole)
func lpf(sample, cutoff, dt, state float64) float64 {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	return state + alpha*(sample-state)
}

// Render fills a stereo buffer. out must hold two equal-length channels.
func (s *Synth) Render(out [][]float32) {
	if len(out) < 2 {
		return
	}

	s.mu.Lock()
	rumble := math.Min(s.rumble+s.pending*0.6, maxRumble)
	s.pending = 0
	target := s.energyTarget
	s.mu.Unlock()

	// G2, Bb2, D3, F3, A3
	freqs := []float64{98.00, 116.54, 146.83, 174.61, 220.00}
	s.energySmooth = s.energySmooth*0.995 + target*0.005
	cutoff := 300.0 + math.Min(s.energySmooth*200, 900.0)
	dt := 1.0 / float64(SampleRate)
	decay := math.Exp(-ThunderDecay * dt)
	const padVol, thunderVol = 0.08, 0.5

	for i := 0; i < len(out[0]) && i < len(out[1]); i++ {
		var padL, padR float64
		for j, f := range freqs {
			lfo := math.Sin(s.time*0.2 + float64(j))
			g := (0.7 + 0.3*lfo) / float64(len(freqs))
			padL += triangle(s.time*f*0.999) * g
			padR += triangle(s.time*f*1.001) * g
		}
		s.filter[0] = lpf(padL, cutoff, dt, s.filter[0])
		s.filter[1] = lpf(padR, cutoff, dt, s.filter[1])

		var thunderL, thunderR float64
		if rumble > 1e-4 {
			s.rumbleFilter[0] = lpf(s.rng.Float64()*2-1, ThunderCutoff, dt, s.rumbleFilter[0])
			s.rumbleFilter[1] = lpf(s.rng.Float64()*2-1, ThunderCutoff, dt, s.rumbleFilter[1])
			thunderL, thunderR = s.rumbleFilter[0]*rumble, s.rumbleFilter[1]*rumble
			rumble *= decay
		} else {
			rumble = 0
		}

		dryL := s.filter[0]*padVol + thunderL*thunderVol
		dryR := s.filter[1]*padVol + thunderR*thunderVol

		// ping pong
		delayL, delayR := s.delay[0][s.delayHead], s.delay[1][s.delayHead]
		mixL := dryL + delayL*0.3 + delayR*0.1
		mixR := dryR + delayR*0.3 + delayL*0.1
		s.delay[0][s.delayHead] = mixL * 0.6
		s.delay[1][s.delayHead] = mixR * 0.6
		s.delayHead = (s.delayHead + 1) % len(s.delay[0])

		out[0][i] = float32(clip(mixL))
		out[1][i] = float32(clip(mixR))
		s.time += dt
	}

	s.mu.Lock()
	s.rumble = rumble
	s.mu.Unlock()

	s.analyze(out[0])
}

func clip(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// analyze updates the band levels from a Hann-windowed spectrum of buf.
func (s *Synth) analyze(buf []float32) {
	n := min(len(buf), BufferSize)
	if n < 8 {
		return
	}
	for i := range s.analysisBuf {
		s.analysisBuf[i] = 0
	}
	for i := 0; i < n; i++ {
		window := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		s.analysisBuf[i] = complex(float64(buf[i])*window, 0)
	}
	spectrum := fft.FFT(s.analysisBuf)

	var bass, mid, high float64
	for i := 1; i < BufferSize/2; i++ {
		mag := cmplx.Abs(spectrum[i])
		switch {
		case i < 5:
			bass += mag
		case i < 46:
			mid += mag
		case i < 460:
			high += mag
		}
	}

	s.mu.Lock()
	s.levels.Bass = s.levels.Bass*0.9 + math.Min(bass/50, 1)*0.1
	s.levels.Mid = s.levels.Mid*0.9 + math.Min(mid/200, 1)*0.1
	s.levels.High = s.levels.High*0.9 + math.Min(high/400, 1)*0.1
	s.mu.Unlock()
}
