package palette

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultHueStep is the hue advance in degrees used when none is configured.
const DefaultHueStep = 5.0

// Cycle produces an endless sequence of colors.
type Cycle interface {
	Next() Color
}

// HueRotation walks the color wheel at full saturation and value.
type HueRotation struct {
	step float64
	hue  float64
}

// NewHueRotation starts at hue 0. Non-positive steps fall back to DefaultHueStep.
func NewHueRotation(stepDegrees float64) *HueRotation {
	if stepDegrees <= 0 || math.IsNaN(stepDegrees) || math.IsInf(stepDegrees, 0) {
		stepDegrees = DefaultHueStep
	}
	return &HueRotation{step: stepDegrees}
}

// Next returns the color at the current hue and advances the cursor.
func (h *HueRotation) Next() Color {
	c := fromColorful(colorful.Hsv(h.hue, 1, 1))
	h.hue = math.Mod(h.hue+h.step, 360)
	return c
}

// Hue reports the cursor, always in [0,360).
func (h *HueRotation) Hue() float64 {
	return h.hue
}

// Reset rewinds to hue 0.
func (h *HueRotation) Reset() {
	h.hue = 0
}

// BrightnessBreath pulses a base color between 1-amplitude and full brightness.
type BrightnessBreath struct {
	base      Color
	amplitude float64
	steps     int
	phase     int
}

// NewBrightnessBreath validates the base color and parameters up front.
func NewBrightnessBreath(baseHex string, amplitude float64, steps int) (*BrightnessBreath, error) {
	base, err := ParseHex(baseHex)
	if err != nil {
		return nil, err
	}
	if !(amplitude > 0 && amplitude <= 1) {
		return nil, fmt.Errorf("breath amplitude %v outside (0,1]", amplitude)
	}
	if steps < 1 {
		return nil, fmt.Errorf("breath steps must be positive, got %d", steps)
	}
	return &BrightnessBreath{base: base, amplitude: amplitude, steps: steps}, nil
}

// Brightness is the multiplier applied at phase i.
func (b *BrightnessBreath) Brightness(i int) float64 {
	wave := (1 - math.Cos(2*math.Pi*float64(i)/float64(b.steps))) / 2
	return 1 - b.amplitude + b.amplitude*wave
}

// Next returns the color for the current phase and advances it.
func (b *BrightnessBreath) Next() Color {
	c := b.base.Scale(b.Brightness(b.phase))
	b.phase = (b.phase + 1) % b.steps
	return c
}

// Phase reports the cursor, always in [0,steps).
func (b *BrightnessBreath) Phase() int {
	return b.phase
}

// Reset rewinds to phase 0.
func (b *BrightnessBreath) Reset() {
	b.phase = 0
}
