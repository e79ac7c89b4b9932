package animate

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marquee/internal/config"
	"marquee/internal/frame"
	"marquee/internal/glyph"
	"marquee/internal/layout"
	"marquee/internal/palette"
)

// stubRenderer draws text as two identical rows and records every call.
type stubRenderer struct {
	calls []string
}

func (s *stubRenderer) Render(text string) glyph.Block {
	s.calls = append(s.calls, text)
	if text == "" {
		return glyph.Block{}
	}
	return glyph.NewBlock([]string{text, text})
}

type recorder struct {
	frames  []frame.Frame
	hz      float64
	onFrame func(n int)
}

func (r *recorder) Present(_ context.Context, f frame.Frame, hz float64) error {
	r.frames = append(r.frames, f)
	r.hz = hz
	if r.onFrame != nil {
		r.onFrame(len(r.frames))
	}
	return nil
}

func fixedGeometry(w, h int) GeometryFunc {
	return func() layout.Geometry { return layout.Geometry{Width: w, Height: h} }
}

func testConfig(mode config.Mode, msg string) config.AnimationConfig {
	cfg := config.Default()
	cfg.Mode = mode
	cfg.Message = msg
	cfg.Color = "#ffffff"
	cfg.Delay = 0.001
	cfg.Loop = false
	return cfg
}

func firstRow(f frame.Frame) string {
	if len(f.Rows) == 0 {
		return ""
	}
	return f.Rows[0].Text
}

func TestScrollSinglePass(t *testing.T) {
	rec := &recorder{}
	d, err := New(Options{
		Config:   testConfig(config.ModeScroll, "AB"),
		Renderer: &stubRenderer{},
		Sink:     rec,
		Geometry: fixedGeometry(4, 2),
	})
	require.NoError(t, err)
	require.NoError(t, d.Run(context.Background()))

	require.Len(t, rec.frames, 6)
	want := []string{"    ", "   A", "  AB", " AB ", "AB  ", "B   "}
	for i, f := range rec.frames {
		assert.Equal(t, want[i], firstRow(f), "tick %d", i)
		for _, row := range f.Rows {
			assert.Len(t, row.Text, 4)
			assert.Equal(t, palette.Color{R: 255, G: 255, B: 255}, row.Color)
		}
	}
	assert.InDelta(t, 1000.0, rec.hz, 1e-6)
}

func TestScrollIsPeriodic(t *testing.T) {
	s := newScroll(glyph.NewBlock([]string{"XYZ"}), palette.Color{}, layout.AlignTop)
	geo := layout.Geometry{Width: 5, Height: 1}
	span := layout.ScrollWidth(3, 5)

	var first []string
	for i := 0; i < span; i++ {
		tick, ok := s.Next(geo)
		require.True(t, ok)
		first = append(first, firstRow(tick.Frame))
	}
	assert.Equal(t, span, s.offset)
	_, ok := s.Next(geo)
	assert.False(t, ok)

	s.Reset()
	assert.Zero(t, s.offset)
	for i := 0; i < span; i++ {
		tick, ok := s.Next(geo)
		require.True(t, ok)
		assert.Equal(t, first[i], firstRow(tick.Frame))
	}
}

func TestSweepPulsesOncePerPass(t *testing.T) {
	s := newSweep(glyph.NewBlock([]string{"AB"}), layout.AlignTop, 120, 2)
	geo := layout.Geometry{Width: 4, Height: 1}

	collect := func() ([]string, []palette.Color) {
		var rows []string
		var colors []palette.Color
		for {
			tick, ok := s.Next(geo)
			if !ok {
				return rows, colors
			}
			rows = append(rows, firstRow(tick.Frame))
			colors = append(colors, tick.Frame.Rows[0].Color)
		}
	}

	rows, colors := collect()
	assert.Equal(t, []string{"    ", "   A", "  AB", " AB ", " AB ", " AB ", "AB  ", "B   "}, rows)
	assert.True(t, s.paused)
	red, green, blue := palette.Color{R: 255}, palette.Color{G: 255}, palette.Color{B: 255}
	assert.Equal(t, []palette.Color{red, green, blue, red, green, blue, red, green}, colors)

	s.Reset()
	assert.False(t, s.paused)
	rows, colors = collect()
	assert.Len(t, rows, 8)
	assert.Equal(t, red, colors[0])
}

func TestSweepWithoutPulseTicks(t *testing.T) {
	s := newSweep(glyph.NewBlock([]string{"AB"}), layout.AlignTop, 5, 0)
	geo := layout.Geometry{Width: 4, Height: 1}
	n := 0
	for {
		if _, ok := s.Next(geo); !ok {
			break
		}
		n++
	}
	assert.Equal(t, 6, n)
}

func TestLetterFlyDocksBeforeBreathing(t *testing.T) {
	cfg := testConfig(config.ModeLetterFly, "HI")
	cfg.BreathSteps = 4
	cfg.BreathCycles = 1
	cfg.BreathAmplitude = 0.5
	r := &stubRenderer{}
	f, err := newFly(cfg, r)
	require.NoError(t, err)

	geo := layout.Geometry{Width: 10, Height: 2}
	var ticks []Tick
	sawSecondLaunch := false
	for {
		tick, ok := f.Next(geo)
		if !ok {
			break
		}
		if f.index == 1 && f.launched && !sawSecondLaunch {
			sawSecondLaunch = true
			assert.Equal(t, r.Render("H"), f.fixed)
			assert.Equal(t, 3, f.stopX)
		}
		ticks = append(ticks, tick)
	}
	require.True(t, sawSecondLaunch)

	// "H" flies from x=10 to x=2, "I" from x=10 to x=3, then four breaths
	require.Len(t, ticks, 9+8+4)
	// each letter launches at x == width, one cell past the visible edge
	assert.Equal(t, "          ", firstRow(ticks[0].Frame))
	assert.Equal(t, "         H", firstRow(ticks[1].Frame))
	assert.Equal(t, "  H       ", firstRow(ticks[8].Frame))
	assert.Equal(t, "H         ", firstRow(ticks[9].Frame))
	assert.Equal(t, "H        I", firstRow(ticks[10].Frame))
	assert.Equal(t, "H  I      ", firstRow(ticks[16].Frame))
	for _, tick := range ticks[:17] {
		assert.Equal(t, 1, tick.Pace)
		assert.Equal(t, palette.Color{R: 255, G: 255, B: 255}, tick.Frame.Rows[0].Color)
	}

	breaths := ticks[17:]
	for _, tick := range breaths {
		assert.Equal(t, breathPace, tick.Pace)
		assert.Equal(t, "HI        ", firstRow(tick.Frame))
	}
	assert.Equal(t, palette.Color{R: 128, G: 128, B: 128}, breaths[0].Frame.Rows[0].Color)
	assert.Equal(t, palette.Color{R: 255, G: 255, B: 255}, breaths[2].Frame.Rows[0].Color)

	f.Reset()
	_, ok := f.Next(geo)
	require.True(t, ok)
	tick, ok := f.Next(geo)
	require.True(t, ok)
	assert.Equal(t, "         H", firstRow(tick.Frame))
}

func TestLetterFlyNarrowTerminalDocksImmediately(t *testing.T) {
	cfg := testConfig(config.ModeLetterFly, "AB")
	cfg.BreathCycles = 0
	f, err := newFly(cfg, &stubRenderer{})
	require.NoError(t, err)

	geo := layout.Geometry{Width: 1, Height: 2}
	n := 0
	for {
		tick, ok := f.Next(geo)
		if !ok {
			break
		}
		for _, row := range tick.Frame.Rows {
			assert.Len(t, row.Text, 1)
		}
		n++
	}
	assert.Equal(t, 2, n)
}

func TestMalformedColorProducesNoFrames(t *testing.T) {
	for _, mode := range []config.Mode{config.ModeScroll, config.ModeHueSweep, config.ModeLetterFly} {
		cfg := testConfig(mode, "HI")
		cfg.Color = "#zzzzzz"
		rec := &recorder{}
		_, err := New(Options{Config: cfg, Renderer: &stubRenderer{}, Sink: rec, Geometry: fixedGeometry(10, 5)})
		assert.ErrorIs(t, err, config.ErrInvalid, mode)
		assert.ErrorIs(t, err, palette.ErrInvalidColorFormat, mode)
		assert.Empty(t, rec.frames)
	}
}

func TestUnknownModeRejected(t *testing.T) {
	cfg := testConfig("wobble", "HI")
	_, err := New(Options{Config: cfg, Renderer: &stubRenderer{}, Sink: &recorder{}, Geometry: fixedGeometry(10, 5)})
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorContains(t, err, "wobble")
}

func TestCancelStopsWithinOneTick(t *testing.T) {
	cfg := testConfig(config.ModeHueSweep, "HELLO")
	cfg.Delay = 0.05
	cfg.Loop = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &recorder{}
	var cancelledAt time.Time
	rec.onFrame = func(n int) {
		if n == 5 {
			cancelledAt = time.Now()
			cancel()
		}
	}
	d, err := New(Options{Config: cfg, Renderer: &stubRenderer{}, Sink: rec, Geometry: fixedGeometry(20, 4)})
	require.NoError(t, err)

	require.NoError(t, d.Run(ctx))
	assert.Len(t, rec.frames, 5)
	assert.Less(t, time.Since(cancelledAt), cfg.TickInterval())
}

func TestCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &recorder{}
	d, err := New(Options{Config: testConfig(config.ModeScroll, "HI"), Renderer: &stubRenderer{}, Sink: rec, Geometry: fixedGeometry(10, 2)})
	require.NoError(t, err)
	require.NoError(t, d.Run(ctx))
	assert.Empty(t, rec.frames)
}

func TestGeometrySampledEveryTick(t *testing.T) {
	calls := 0
	widths := []int{4, 4, 2, 2, 0, 6}
	geo := func() layout.Geometry {
		w := widths[min(calls, len(widths)-1)]
		calls++
		return layout.Geometry{Width: w, Height: 2}
	}
	rec := &recorder{}
	d, err := New(Options{Config: testConfig(config.ModeScroll, "AB"), Renderer: &stubRenderer{}, Sink: rec, Geometry: geo})
	require.NoError(t, err)
	require.NoError(t, d.Run(context.Background()))

	require.Len(t, rec.frames, 6)
	assert.Equal(t, len(rec.frames)+1, calls)
	for i, f := range rec.frames {
		want := widths[min(i, len(widths)-1)]
		for _, row := range f.Rows {
			assert.Len(t, row.Text, want, "tick %d", i)
		}
	}
}

func TestDegenerateGeometryStillTicks(t *testing.T) {
	rec := &recorder{}
	d, err := New(Options{Config: testConfig(config.ModeScroll, "AB"), Renderer: &stubRenderer{}, Sink: rec, Geometry: fixedGeometry(-3, -1)})
	require.NoError(t, err)
	require.NoError(t, d.Run(context.Background()))
	require.Len(t, rec.frames, 2)
	for _, f := range rec.frames {
		assert.Zero(t, f.Height())
	}
}

func TestMessageSwapAtPassBoundary(t *testing.T) {
	cfg := testConfig(config.ModeScroll, "AB")
	cfg.Loop = true
	msgs := make(chan string, 2)
	msgs <- "XY"
	msgs <- "YO"

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &recorder{onFrame: func(n int) {
		if n == 8 {
			cancel()
		}
	}}
	r := &stubRenderer{}
	d, err := New(Options{Config: cfg, Renderer: r, Sink: rec, Geometry: fixedGeometry(2, 2), Messages: msgs})
	require.NoError(t, err)
	require.NoError(t, d.Run(ctx))

	require.Len(t, rec.frames, 8)
	assert.Equal(t, "AB", firstRow(rec.frames[2]))
	assert.Equal(t, "YO", firstRow(rec.frames[6]))
	assert.NotContains(t, strings.Join(r.calls, ","), "XY")
}
