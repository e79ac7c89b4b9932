package screen

import (
	"context"
	"io"
	"log"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"marquee/internal/frame"
	"marquee/internal/layout"
)

// Fallback is used when the terminal size cannot be queried.
var Fallback = layout.Geometry{Width: 80, Height: 24}

// Size reports the dimensions of the terminal behind fd.
func Size(fd uintptr) layout.Geometry {
	w, h, err := term.GetSize(int(fd))
	if err != nil {
		return Fallback
	}
	return layout.Geometry{Width: w, Height: h}
}

// Sampler returns a function that queries fd on every call.
func Sampler(fd uintptr) func() layout.Geometry {
	return func() layout.Geometry { return Size(fd) }
}

// Sink writes frames directly to a terminal using ANSI sequences.
type Sink struct {
	out    *termenv.Output
	lastHz float64
}

// NewSink wraps w. Options are passed through to termenv.
func NewSink(w io.Writer, opts ...termenv.OutputOption) *Sink {
	return &Sink{out: termenv.NewOutput(w, opts...)}
}

// Open switches to the alternate screen and hides the cursor.
func (s *Sink) Open() {
	s.out.AltScreen()
	s.out.HideCursor()
	s.out.ClearScreen()
}

// Close restores the cursor and the primary screen.
func (s *Sink) Close() {
	s.out.Reset()
	s.out.ShowCursor()
	s.out.ExitAltScreen()
}

func (s *Sink) Present(ctx context.Context, f frame.Frame, refreshHz float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if refreshHz != s.lastHz {
		log.Printf("plain sink refresh %.2f Hz", refreshHz)
		s.lastHz = refreshHz
	}
	s.out.ClearScreen()
	_, err := io.WriteString(s.out, Render(s.out, f))
	return err
}

// Render styles every row with its color for the given output's profile.
func Render(out *termenv.Output, f frame.Frame) string {
	lines := make([]string, len(f.Rows))
	for i, row := range f.Rows {
		lines[i] = out.String(row.Text).Foreground(out.Color(row.Color.Hex())).String()
	}
	return strings.Join(lines, "\r\n")
}
