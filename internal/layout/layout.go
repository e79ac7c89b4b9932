package layout

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Align selects where content sits vertically inside the viewport.
type Align string

const (
	AlignTop    Align = "top"
	AlignCenter Align = "center"
	AlignBottom Align = "bottom"
)

// ParseAlign converts user input into an Align constant.
func ParseAlign(value string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "top":
		return AlignTop, nil
	case "center", "centre", "middle", "":
		return AlignCenter, nil
	case "bottom":
		return AlignBottom, nil
	default:
		return "", fmt.Errorf("unknown alignment %q (want top|center|bottom)", value)
	}
}

// Geometry is the terminal size in cells.
type Geometry struct {
	Width  int
	Height int
}

// Sanitize clamps negative dimensions to zero.
func (g Geometry) Sanitize() Geometry {
	return Geometry{Width: max(g.Width, 0), Height: max(g.Height, 0)}
}

// VerticalPadding is the number of blank rows above content of the given height.
func VerticalPadding(contentHeight, terminalHeight int, align Align) int {
	switch align {
	case AlignTop:
		return 0
	case AlignBottom:
		return max(0, terminalHeight-contentHeight)
	default:
		return max(0, (terminalHeight-contentHeight)/2)
	}
}

// ScrollWidth is the number of offsets in one full scroll pass.
func ScrollWidth(lineLength, terminalWidth int) int {
	return max(lineLength, 0) + max(terminalWidth, 0)
}

// HorizontalWindow pads line with terminalWidth blanks on both sides and
// returns exactly terminalWidth cells starting at offset.
func HorizontalWindow(line string, terminalWidth, offset int) string {
	if terminalWidth <= 0 {
		return ""
	}
	blank := strings.Repeat(" ", terminalWidth)
	buffer := []rune(blank + line + blank)
	offset = clamp(offset, 0, len(buffer))
	end := min(offset+terminalWidth, len(buffer))
	return Fit(string(buffer[offset:end]), terminalWidth)
}

// Center pads row equally on both sides; an odd remainder goes to the right.
func Center(row string, width int) string {
	if width <= 0 {
		return row
	}
	rw := runewidth.StringWidth(row)
	if rw >= width {
		return row
	}
	pad := width - rw
	left := pad / 2
	right := pad - left
	return strings.Repeat(" ", left) + row + strings.Repeat(" ", right)
}

// Fit truncates or right-pads row to exactly width cells.
func Fit(row string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(row) > width {
		row = runewidth.Truncate(row, width, "")
	}
	return runewidth.FillRight(row, width)
}

// Overlay draws base at column 0 and top at column x on a blank canvas of
// width cells. Blanks in top are opaque. Cells past the canvas are dropped.
func Overlay(base, top string, x, width int) string {
	if width <= 0 {
		return ""
	}
	canvas := []rune(strings.Repeat(" ", width))
	paint(canvas, []rune(base), 0)
	paint(canvas, []rune(top), x)
	return string(canvas)
}

func paint(canvas, src []rune, x int) {
	for i, r := range src {
		col := x + i
		if col < 0 {
			continue
		}
		if col >= len(canvas) {
			return
		}
		canvas[col] = r
	}
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
