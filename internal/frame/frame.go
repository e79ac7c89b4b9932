package frame

import (
	"strings"

	"marquee/internal/layout"
	"marquee/internal/palette"
)

// Row is one line of a frame with its foreground color.
type Row struct {
	Text  string
	Color palette.Color
}

// Frame is a viewport-sized snapshot handed to an output sink.
type Frame struct {
	Rows []Row
}

// Compose places rows vertically according to align and fits every row to
// the viewport width. All rows share color. Rows past the viewport height are
// dropped.
func Compose(rows []string, color palette.Color, geo layout.Geometry, align layout.Align) Frame {
	geo = geo.Sanitize()
	if geo.Height == 0 {
		return Frame{}
	}
	pad := layout.VerticalPadding(len(rows), geo.Height, align)
	out := make([]Row, 0, min(pad+len(rows), geo.Height))
	blank := layout.Fit("", geo.Width)
	for i := 0; i < pad && len(out) < geo.Height; i++ {
		out = append(out, Row{Text: blank, Color: color})
	}
	for _, r := range rows {
		if len(out) >= geo.Height {
			break
		}
		out = append(out, Row{Text: layout.Fit(r, geo.Width), Color: color})
	}
	return Frame{Rows: out}
}

// Text joins the rows without styling.
func (f Frame) Text() string {
	lines := make([]string, len(f.Rows))
	for i, r := range f.Rows {
		lines[i] = r.Text
	}
	return strings.Join(lines, "\n")
}

// Height is the number of rows.
func (f Frame) Height() int {
	return len(f.Rows)
}
