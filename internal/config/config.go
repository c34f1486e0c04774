package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768
	TPS          = 60

	VisualRingSize = 8192

	// Upload button dimensions
	ButtonWidth  = 140
	ButtonHeight = 32
	ButtonX      = 20
	ButtonY      = 20

	// Instructions overlay, measured from the bottom-left corner
	InstructionsX      = 20
	InstructionsOffset = 130
)

// Level mapping
const (
	LevelInMin     = 0.0
	LevelInMax     = 0.2
	PulseMin       = 0.3
	PulseMax       = 1.8
	PulseSmoothing = 0.15
	DefaultMicGain = 2.0
	ShapeBaseSize  = 300.0
	PictureTintHue = 30.0
	PictureTintA   = 220.0
)

// Spectrum analysis
const (
	FFTSize     = 1024
	MinDecibels = -100.0
	MaxDecibels = -30.0

	// Band edges in Hz for the balance color mode
	LowBandFrom  = 60
	LowBandTo    = 400
	HighBandFrom = 1500
	HighBandTo   = 10000
)

// Motion
const (
	BounceMinSpeed = 3.0
	BounceMaxSpeed = 6.0
	RotationStep   = 1.0
)

// ErrUnknownProfile is returned by ProfileByName for names not in Profiles.
var ErrUnknownProfile = errors.New("unknown profile")

// ColorMode selects how the base hue of a frame is derived.
type ColorMode string

const (
	ColorFrame ColorMode = "frame"
	ColorBand  ColorMode = "band"
)

// ShapeMode selects the default shape drawn when no picture is active.
type ShapeMode string

const (
	ShapeGlowHeart  ShapeMode = "glow-heart"
	ShapeFixedHeart ShapeMode = "fixed-heart"
	ShapeRing       ShapeMode = "ring"
)

// Profile is one visualization variant. The sketches this program grew out of
// differed only in these knobs.
type Profile struct {
	Name       string
	Color      ColorMode
	Shape      ShapeMode
	TrailAlpha uint8   // alpha of the black background wash, lower means longer trails
	Smoothing  float64 // spectrum smoothing time constant in [0,1)
	MicGain    float64

	// Ring only
	RingParticles int
	RingScaling   float64
	RingSpin      float64 // degrees per frame
}

var Profiles = []Profile{
	{
		Name:       "heart",
		Color:      ColorFrame,
		Shape:      ShapeGlowHeart,
		TrailAlpha: 25,
		Smoothing:  0.5,
		MicGain:    DefaultMicGain,
	},
	{
		Name:       "spectrum",
		Color:      ColorBand,
		Shape:      ShapeFixedHeart,
		TrailAlpha: 20,
		Smoothing:  0.8,
		MicGain:    1.0,
	},
	{
		Name:          "ring",
		Color:         ColorFrame,
		Shape:         ShapeRing,
		TrailAlpha:    20,
		Smoothing:     0.8,
		MicGain:       1.0,
		RingParticles: 100,
		RingScaling:   1.0,
		RingSpin:      0.5,
	},
}

// ProfileNames lists the selectable profile names in declaration order.
func ProfileNames() []string {
	names := make([]string, 0, len(Profiles))
	for _, p := range Profiles {
		names = append(names, p.Name)
	}
	return names
}

// ProfileByName looks a profile up case-insensitively.
func ProfileByName(name string) (Profile, error) {
	for _, p := range Profiles {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownProfile, name, strings.Join(ProfileNames(), ", "))
}
