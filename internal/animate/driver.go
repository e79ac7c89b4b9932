package animate

import (
	"context"
	"fmt"
	"log"
	"time"

	"marquee/internal/config"
	"marquee/internal/frame"
	"marquee/internal/glyph"
	"marquee/internal/layout"
)

// Sink draws frames. Present must fully redraw the viewport.
type Sink interface {
	Present(ctx context.Context, f frame.Frame, refreshHz float64) error
}

// GeometryFunc reports the current terminal size. It is called once per tick.
type GeometryFunc func() layout.Geometry

// Options wires a driver to its collaborators.
type Options struct {
	Config   config.AnimationConfig
	Renderer glyph.Renderer
	Sink     Sink
	Geometry GeometryFunc
	// Messages optionally replaces the message between passes.
	Messages <-chan string
}

// Driver runs one animation until its pass ends or ctx is cancelled.
type Driver struct {
	cfg      config.AnimationConfig
	renderer glyph.Renderer
	sink     Sink
	geometry GeometryFunc
	messages <-chan string
	seq      Sequence
}

// New builds the mode's sequence up front so configuration errors surface
// before any frame is drawn.
func New(opts Options) (*Driver, error) {
	if opts.Renderer == nil || opts.Sink == nil || opts.Geometry == nil {
		return nil, fmt.Errorf("animate: renderer, sink and geometry are required")
	}
	if !(opts.Config.Delay > 0) {
		return nil, fmt.Errorf("%w: delay must be positive, got %v", config.ErrInvalid, opts.Config.Delay)
	}
	seq, err := NewSequence(opts.Config, opts.Renderer)
	if err != nil {
		return nil, err
	}
	return &Driver{
		cfg:      opts.Config,
		renderer: opts.Renderer,
		sink:     opts.Sink,
		geometry: opts.Geometry,
		messages: opts.Messages,
		seq:      seq,
	}, nil
}

// Run emits frames until the pass completes (loop off) or ctx is cancelled.
// Cancellation is a clean stop and returns nil.
func (d *Driver) Run(ctx context.Context) error {
	interval := d.cfg.TickInterval()
	hz := d.cfg.RefreshHz()
	for pass := 1; ; pass++ {
		log.Printf("pass %d: mode=%s message=%q", pass, d.cfg.Mode, d.cfg.Message)
		ticks := 0
		for {
			if ctx.Err() != nil {
				log.Printf("cancelled during pass %d after %d ticks", pass, ticks)
				return nil
			}
			tick, ok := d.seq.Next(d.geometry())
			if !ok {
				break
			}
			ticks++
			if err := d.sink.Present(ctx, tick.Frame, hz); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("present frame: %w", err)
			}
			if !wait(ctx, interval*time.Duration(max(tick.Pace, 1))) {
				log.Printf("cancelled during pass %d after %d ticks", pass, ticks)
				return nil
			}
		}
		if !d.cfg.Loop {
			log.Printf("pass %d complete, not looping", pass)
			return nil
		}
		// an empty pass still waits a tick so looping never spins
		if ticks == 0 && !wait(ctx, interval) {
			return nil
		}
		if err := d.swapMessage(); err != nil {
			return err
		}
		d.seq.Reset()
	}
}

// swapMessage takes the newest pending message, if any, and rebuilds the sequence for it.
func (d *Driver) swapMessage() error {
	if d.messages == nil {
		return nil
	}
	latest := ""
	for {
		select {
		case msg, ok := <-d.messages:
			if !ok {
				d.messages = nil
				return d.rebuild(latest)
			}
			latest = msg
			continue
		default:
		}
		return d.rebuild(latest)
	}
}

func (d *Driver) rebuild(msg string) error {
	if msg == "" || msg == d.cfg.Message {
		return nil
	}
	cfg := d.cfg
	cfg.Message = msg
	seq, err := NewSequence(cfg, d.renderer)
	if err != nil {
		return err
	}
	log.Printf("message changed to %q", msg)
	d.cfg = cfg
	d.seq = seq
	return nil
}

func wait(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
