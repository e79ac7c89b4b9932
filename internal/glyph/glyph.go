package glyph

import (
	"fmt"
	"strings"

	figure "github.com/common-nighthawk/go-figure"
	"github.com/mattn/go-runewidth"
)

// DefaultFont is the FIGlet font used when none is configured.
const DefaultFont = "standard"

// Block is the multi-line block-letter rendering of some text.
type Block struct {
	Lines []string
}

// NewBlock pads every line to the widest one so all lines share one reference width.
func NewBlock(lines []string) Block {
	width := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	padded := make([]string, len(lines))
	for i, line := range lines {
		padded[i] = runewidth.FillRight(line, width)
	}
	return Block{Lines: padded}
}

// Width is the reference width shared by every line.
func (b Block) Width() int {
	if len(b.Lines) == 0 {
		return 0
	}
	return runewidth.StringWidth(b.Lines[0])
}

// Height is the number of lines.
func (b Block) Height() int {
	return len(b.Lines)
}

// Line returns row i, or a blank row of the block's width when i is out of range.
func (b Block) Line(i int) string {
	if i < 0 || i >= len(b.Lines) {
		return strings.Repeat(" ", b.Width())
	}
	return b.Lines[i]
}

// Renderer turns text into a glyph block. Implementations must be pure.
type Renderer interface {
	Render(text string) Block
}

// Figlet renders text with a bundled FIGlet font.
type Figlet struct {
	font string
}

// NewFiglet checks that the font can be loaded before any rendering happens.
func NewFiglet(font string) (f *Figlet, err error) {
	if strings.TrimSpace(font) == "" {
		font = DefaultFont
	}
	// go-figure panics on fonts it cannot find.
	defer func() {
		if r := recover(); r != nil {
			f, err = nil, fmt.Errorf("load font %q: %v", font, r)
		}
	}()
	figure.NewFigure("", font, false)
	return &Figlet{font: font}, nil
}

// Font reports the configured font name.
func (f *Figlet) Font() string {
	return f.font
}

func (f *Figlet) Render(text string) Block {
	if text == "" {
		return Block{}
	}
	rows := figure.NewFigure(text, f.font, false).Slicify()
	return NewBlock(rows)
}
