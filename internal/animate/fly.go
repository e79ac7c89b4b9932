package animate

import (
	"fmt"

	"marquee/internal/config"
	"marquee/internal/frame"
	"marquee/internal/glyph"
	"marquee/internal/layout"
	"marquee/internal/palette"
)

// breathPace slows breathing ticks relative to fly-in ticks.
const breathPace = 3

// fly slides each letter in from the right edge until it docks beside the
// letters before it, then breathes the finished block.
type fly struct {
	cfg      config.AnimationConfig
	renderer glyph.Renderer
	letters  []rune
	color    palette.Color
	full     glyph.Block
	breath   *palette.BrightnessBreath

	index    int
	launched bool
	fixed    glyph.Block
	flying   glyph.Block
	x        int
	stopX    int

	breathing bool
	remaining int
}

func newFly(cfg config.AnimationConfig, r glyph.Renderer) (*fly, error) {
	base, err := palette.ParseHex(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("%w: color: %w", config.ErrInvalid, err)
	}
	breath, err := palette.NewBrightnessBreath(cfg.Color, cfg.BreathAmplitude, cfg.BreathSteps)
	if err != nil {
		return nil, fmt.Errorf("%w: breath: %w", config.ErrInvalid, err)
	}
	return &fly{
		cfg:      cfg,
		renderer: r,
		letters:  []rune(cfg.Message),
		color:    base,
		full:     r.Render(cfg.Message),
		breath:   breath,
	}, nil
}

func (f *fly) Next(geo layout.Geometry) (Tick, bool) {
	geo = geo.Sanitize()
	if f.index < len(f.letters) {
		return f.flyIn(geo), true
	}
	if !f.breathing {
		f.breathing = true
		f.remaining = f.cfg.BreathSteps * f.cfg.BreathCycles
	}
	if f.remaining <= 0 {
		return Tick{}, false
	}
	f.remaining--
	return Tick{Frame: frame.Compose(f.full.Lines, f.breath.Next(), geo, f.cfg.Align), Pace: breathPace}, true
}

func (f *fly) flyIn(geo layout.Geometry) Tick {
	if !f.launched {
		f.launch(geo.Width)
	}
	height := max(f.fixed.Height(), f.flying.Height())
	rows := make([]string, height)
	for i := range rows {
		rows[i] = layout.Overlay(f.fixed.Line(i), f.flying.Line(i), f.x, geo.Width)
	}
	tick := Tick{Frame: frame.Compose(rows, f.color, geo, f.cfg.Align), Pace: 1}
	if f.x <= f.stopX {
		f.index++
		f.launched = false
	} else {
		f.x--
	}
	return tick
}

// launch renders the docked prefix and the next letter, placing the letter
// just past the right edge.
func (f *fly) launch(width int) {
	f.fixed = f.renderer.Render(string(f.letters[:f.index]))
	f.flying = f.renderer.Render(string(f.letters[f.index]))
	f.stopX = f.fixed.Width() + f.cfg.LetterSpacing
	f.x = max(width, f.stopX)
	f.launched = true
}

func (f *fly) Reset() {
	f.index = 0
	f.launched = false
	f.breathing = false
	f.remaining = 0
	f.breath.Reset()
}
