package animate

import (
	"marquee/internal/frame"
	"marquee/internal/glyph"
	"marquee/internal/layout"
	"marquee/internal/palette"
)

// sweep scrolls like scroll but colors every tick from a continuous hue
// rotation, and holds the centered block for a pulse once per pass.
type sweep struct {
	scroll
	step       float64
	pulseTicks int
	hue        *palette.HueRotation

	paused  bool
	pulsing int
}

func newSweep(block glyph.Block, align layout.Align, step float64, pulseTicks int) *sweep {
	return &sweep{
		scroll:     scroll{block: block, align: align},
		step:       step,
		pulseTicks: pulseTicks,
		hue:        palette.NewHueRotation(step),
	}
}

func (s *sweep) Next(geo layout.Geometry) (Tick, bool) {
	geo = geo.Sanitize()
	s.start(geo)
	if s.pulsing > 0 {
		return s.pulse(geo), true
	}
	if s.offset >= s.span {
		return Tick{}, false
	}
	if !s.paused && s.offset == s.span/2 {
		s.paused = true
		s.pulsing = s.pulseTicks
		if s.pulsing > 0 {
			return s.pulse(geo), true
		}
	}
	rows := s.window(geo.Width)
	s.offset++
	return Tick{Frame: frame.Compose(rows, s.hue.Next(), geo, s.align), Pace: 1}, true
}

func (s *sweep) pulse(geo layout.Geometry) Tick {
	s.pulsing--
	return Tick{Frame: frame.Compose(s.centered(geo.Width), s.hue.Next(), geo, s.align), Pace: 1}
}

func (s *sweep) Reset() {
	s.scroll.Reset()
	s.paused = false
	s.pulsing = 0
	s.hue = palette.NewHueRotation(s.step)
}
