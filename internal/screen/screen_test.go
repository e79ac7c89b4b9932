package screen

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marquee/internal/frame"
	"marquee/internal/palette"
)

func sampleFrame() frame.Frame {
	return frame.Frame{Rows: []frame.Row{
		{Text: " ## ", Color: palette.Color{R: 255}},
		{Text: "#  #", Color: palette.Color{R: 255}},
	}}
}

func TestPresentWritesRows(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink(&buf, termenv.WithProfile(termenv.Ascii))
	require.NoError(t, s.Present(context.Background(), sampleFrame(), 20))
	out := buf.String()
	assert.Contains(t, out, " ## \r\n#  #")
	assert.Equal(t, 20.0, s.lastHz)
}

func TestRenderTrueColor(t *testing.T) {
	var buf bytes.Buffer
	out := termenv.NewOutput(&buf, termenv.WithProfile(termenv.TrueColor))
	got := Render(out, sampleFrame())
	assert.Contains(t, got, "38;2;255;0;0")
	assert.Equal(t, 1, strings.Count(got, "\r\n"))
}

func TestPresentAfterCancel(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink(&buf, termenv.WithProfile(termenv.Ascii))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Present(ctx, sampleFrame(), 20), context.Canceled)
	assert.Zero(t, buf.Len())
}

func TestOpenClose(t *testing.T) {
	var buf bytes.Buffer
	s := NewSink(&buf, termenv.WithProfile(termenv.Ascii))
	s.Open()
	s.Close()
	assert.Contains(t, buf.String(), "\x1b[?1049h")
	assert.Contains(t, buf.String(), "\x1b[?1049l")
}

func TestSizeFallsBackOffTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "notatty")
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, Fallback, Size(f.Fd()))
	assert.Equal(t, Fallback, Sampler(f.Fd())())
}
