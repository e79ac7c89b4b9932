package tui

import (
	"context"
	"log"
	"sync"

	"marquee/internal/frame"
)

// Sink hands frames to a running Model. Present blocks until the model has
// taken the frame, so frames are shown strictly in order.
type Sink struct {
	frames chan frame.Frame
	once   sync.Once
	lastHz float64
}

func NewSink() *Sink {
	return &Sink{frames: make(chan frame.Frame)}
}

// Frames is the stream a Model listens on.
func (s *Sink) Frames() <-chan frame.Frame {
	return s.frames
}

func (s *Sink) Present(ctx context.Context, f frame.Frame, refreshHz float64) error {
	if refreshHz != s.lastHz {
		log.Printf("tui sink refresh %.2f Hz", refreshHz)
		s.lastHz = refreshHz
	}
	select {
	case s.frames <- f:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close ends the stream; the model quits once it sees the close.
// Call it only after the last Present has returned.
func (s *Sink) Close() {
	s.once.Do(func() { close(s.frames) })
}
