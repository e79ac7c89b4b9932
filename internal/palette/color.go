package palette

import (
	"errors"
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColorFormat is returned when a color string is not a 6-digit hex RGB value.
var ErrInvalidColorFormat = errors.New("invalid color format")

const hexDigits = "0123456789abcdefABCDEF"

// Color is an RGB triple.
type Color struct {
	R, G, B uint8
}

// ParseHex accepts "rrggbb" or "#rrggbb".
func ParseHex(value string) (Color, error) {
	s := strings.TrimSpace(value)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 7 || strings.Trim(s[1:], hexDigits) != "" {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, value)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, value)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// MustParseHex is ParseHex for compile-time constants.
func MustParseHex(value string) Color {
	c, err := ParseHex(value)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// Scale multiplies every channel by factor, rounding and clamping to [0,255].
func (c Color) Scale(factor float64) Color {
	return Color{
		R: scaleChannel(c.R, factor),
		G: scaleChannel(c.G, factor),
		B: scaleChannel(c.B, factor),
	}
}

func scaleChannel(v uint8, factor float64) uint8 {
	scaled := float64(v)*factor + 0.5
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}
