package audio

import (
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"
)

var ErrNotStarted = errors.New("stellar: audio stream not started")

// Processor plays a Synth through the default output device.
type Processor struct {
	*Synth
	stream *portaudio.Stream
	active bool
}

func NewProcessor(seed uint64) *Processor {
	return &Processor{Synth: NewSynth(seed)}
}

// Start opens an output-only stream on the default device.
func (p *Processor) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("init portaudio: %w", err)
	}

	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, p.process)
	if err != nil {
		portaudio.Terminate()
		return fmt.Errorf("open stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return fmt.Errorf("start stream: %w", err)
	}

	p.stream = stream
	p.active = true
	return nil
}

func (p *Processor) process(out [][]float32) {
	p.Render(out)
}

func (p *Processor) Active() bool { return p.active }

func (p *Processor) Stop() error {
	if !p.active {
		return ErrNotStarted
	}
	p.active = false
	var errs []error
	if err := p.stream.Stop(); err != nil {
		errs = append(errs, err)
	}
	if err := p.stream.Close(); err != nil {
		errs = append(errs, err)
	}
	if err := portaudio.Terminate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
