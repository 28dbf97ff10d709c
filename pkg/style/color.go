package style

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/netplot/netplot/pkg/errors"
)

// Single-letter shorthands, matching the usual plotting conventions.
var shorthands = map[string]string{
	"b": "#0000ff",
	"g": "#008000",
	"r": "#ff0000",
	"c": "#00bfbf",
	"m": "#bf00bf",
	"y": "#bfbf00",
	"k": "#000000",
	"w": "#ffffff",
}

// A small set of CSS color names. Anything else must be given as hex.
var named = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"magenta": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"orange":  "#ffa500",
	"purple":  "#800080",
}

// ParseColor parses a color specification into a colorful.Color.
// Accepted forms: single-letter shorthand ("r"), CSS name ("red"),
// or hex ("#ff0000").
func ParseColor(spec string) (colorful.Color, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if hex, ok := shorthands[s]; ok {
		s = hex
	} else if hex, ok := named[s]; ok {
		s = hex
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, errors.New(errors.ErrCodeInvalidColor, "unrecognized color %q", spec)
	}
	return c, nil
}

// ResolveColor parses spec and applies alpha, producing a concrete NRGBA.
func ResolveColor(spec string, alpha float64) (color.NRGBA, error) {
	c, err := ParseColor(spec)
	if err != nil {
		return color.NRGBA{}, err
	}
	return WithAlpha(c, alpha), nil
}

// ResolveColors resolves a slice of color specifications with shared alpha.
func ResolveColors(specs []string, alpha float64) ([]color.Color, error) {
	out := make([]color.Color, len(specs))
	for i, s := range specs {
		c, err := ResolveColor(s, alpha)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

// WithAlpha converts a colorful.Color to NRGBA with the given opacity.
// Alpha is clamped to [0, 1].
func WithAlpha(c colorful.Color, alpha float64) color.NRGBA {
	a := clamp01(alpha)
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(a*255 + 0.5)}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
