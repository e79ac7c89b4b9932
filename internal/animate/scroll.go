package animate

import (
	"marquee/internal/frame"
	"marquee/internal/glyph"
	"marquee/internal/layout"
	"marquee/internal/palette"
)

// scroll moves the block from the right edge until it has left on the left.
type scroll struct {
	block glyph.Block
	color palette.Color
	align layout.Align

	started bool
	span    int
	offset  int
}

func newScroll(block glyph.Block, color palette.Color, align layout.Align) *scroll {
	return &scroll{block: block, color: color, align: align}
}

func (s *scroll) Next(geo layout.Geometry) (Tick, bool) {
	geo = geo.Sanitize()
	s.start(geo)
	if s.offset >= s.span {
		return Tick{}, false
	}
	rows := s.window(geo.Width)
	s.offset++
	return Tick{Frame: frame.Compose(rows, s.color, geo, s.align), Pace: 1}, true
}

func (s *scroll) Reset() {
	s.started = false
	s.span = 0
	s.offset = 0
}

// start fixes the pass length from the terminal width seen on the first tick.
func (s *scroll) start(geo layout.Geometry) {
	if s.started {
		return
	}
	s.started = true
	s.span = layout.ScrollWidth(s.block.Width(), geo.Width)
}

func (s *scroll) window(width int) []string {
	rows := make([]string, s.block.Height())
	for i, line := range s.block.Lines {
		rows[i] = layout.HorizontalWindow(line, width, s.offset)
	}
	return rows
}

func (s *scroll) centered(width int) []string {
	rows := make([]string, s.block.Height())
	for i, line := range s.block.Lines {
		rows[i] = layout.Center(line, width)
	}
	return rows
}
