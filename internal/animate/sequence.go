package animate

import (
	"fmt"

	"marquee/internal/config"
	"marquee/internal/frame"
	"marquee/internal/glyph"
	"marquee/internal/layout"
	"marquee/internal/palette"
)

// Tick is one frame plus the multiple of the base delay to wait after it.
type Tick struct {
	Frame frame.Frame
	Pace  int
}

// Sequence produces the frames of one animation pass.
type Sequence interface {
	// Next returns the next tick for the given viewport, or false once the pass is complete.
	Next(geo layout.Geometry) (Tick, bool)
	// Reset rewinds to the start of a pass with fresh color state.
	Reset()
}

// NewSequence builds the state machine for cfg.Mode. It fails on a malformed
// base color before any frame exists.
func NewSequence(cfg config.AnimationConfig, r glyph.Renderer) (Sequence, error) {
	base, err := palette.ParseHex(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("%w: color: %w", config.ErrInvalid, err)
	}
	switch cfg.Mode {
	case config.ModeScroll:
		return newScroll(r.Render(cfg.Message), base, cfg.Align), nil
	case config.ModeHueSweep:
		return newSweep(r.Render(cfg.Message), cfg.Align, cfg.HueStep, cfg.PulseTicks()), nil
	case config.ModeLetterFly:
		f, err := newFly(cfg, r)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("%w: unknown animation mode %q (want scroll|obo|swaga)", config.ErrInvalid, cfg.Mode)
	}
}
