package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"marquee/internal/layout"
	"marquee/internal/palette"
)

// ErrInvalid marks every configuration error. Nothing is animated when it is returned.
var ErrInvalid = errors.New("invalid configuration")

// Mode selects the animation.
type Mode string

const (
	ModeScroll    Mode = "scroll"
	ModeLetterFly Mode = "obo"
	ModeHueSweep  Mode = "swaga"
)

// ParseMode converts user input into a Mode constant.
func ParseMode(value string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "scroll", "":
		return ModeScroll, nil
	case "obo", "letterfly", "fly":
		return ModeLetterFly, nil
	case "swaga", "huesweep", "sweep":
		return ModeHueSweep, nil
	default:
		return "", fmt.Errorf("%w: unknown animation mode %q (want scroll|obo|swaga)", ErrInvalid, value)
	}
}

// AnimationConfig is fixed for the duration of one run.
type AnimationConfig struct {
	Message         string       `yaml:"message"`
	Mode            Mode         `yaml:"animation"`
	Delay           float64      `yaml:"delay"`
	Color           string       `yaml:"color"`
	Loop            bool         `yaml:"loop"`
	Align           layout.Align `yaml:"align"`
	Font            string       `yaml:"font"`
	HueStep         float64      `yaml:"hue_step"`
	BreathSteps     int          `yaml:"breath_steps"`
	BreathCycles    int          `yaml:"breath_cycles"`
	BreathAmplitude float64      `yaml:"breath_amplitude"`
	LetterSpacing   int          `yaml:"letter_spacing"`
}

// Default returns the built-in settings. Color is left empty so the theme accent applies.
func Default() AnimationConfig {
	return AnimationConfig{
		Message:         "HELLO",
		Mode:            ModeScroll,
		Delay:           0.05,
		Loop:            true,
		Align:           layout.AlignCenter,
		Font:            "standard",
		HueStep:         palette.DefaultHueStep,
		BreathSteps:     40,
		BreathCycles:    2,
		BreathAmplitude: 0.6,
		LetterSpacing:   2,
	}
}

// LoadFromFile overlays a YAML file on top of the defaults.
func LoadFromFile(path string) (AnimationConfig, error) {
	cfg := Default()
	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate normalizes enum fields in place and reports the first problem found.
func (c *AnimationConfig) Validate() error {
	mode, err := ParseMode(string(c.Mode))
	if err != nil {
		return err
	}
	c.Mode = mode

	align, err := layout.ParseAlign(string(c.Align))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	c.Align = align

	if !(c.Delay > 0) || math.IsInf(c.Delay, 0) {
		return fmt.Errorf("%w: delay must be positive, got %v", ErrInvalid, c.Delay)
	}
	if _, err := palette.ParseHex(c.Color); err != nil {
		return fmt.Errorf("%w: color: %w", ErrInvalid, err)
	}
	if c.Message == "" {
		return fmt.Errorf("%w: empty message", ErrInvalid)
	}
	if c.BreathSteps < 1 || c.BreathCycles < 0 {
		return fmt.Errorf("%w: breath steps %d cycles %d", ErrInvalid, c.BreathSteps, c.BreathCycles)
	}
	if !(c.BreathAmplitude > 0 && c.BreathAmplitude <= 1) {
		return fmt.Errorf("%w: breath amplitude %v outside (0,1]", ErrInvalid, c.BreathAmplitude)
	}
	if c.LetterSpacing < 0 {
		return fmt.Errorf("%w: negative letter spacing %d", ErrInvalid, c.LetterSpacing)
	}
	return nil
}

// TickInterval is the delay as a duration.
func (c AnimationConfig) TickInterval() time.Duration {
	return time.Duration(c.Delay * float64(time.Second))
}

// RefreshHz is the frame rate implied by the delay.
func (c AnimationConfig) RefreshHz() float64 {
	return 1 / c.Delay
}

// PulseTicks is the number of ticks in a five second pulse.
func (c AnimationConfig) PulseTicks() int {
	return int(math.Ceil(5 / c.Delay))
}
