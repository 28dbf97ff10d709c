package style

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/netplot/netplot/pkg/errors"
)

// Colormap maps a scalar in [0, 1] onto a color ramp.
// Lookups between stops blend in Lab space for perceptual smoothness.
type Colormap struct {
	name  string
	stops []colorful.Color
}

// Built-in colormap ramps, each a handful of anchor stops.
var colormaps = map[string][]string{
	"viridis":  {"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"},
	"plasma":   {"#0d0887", "#7e03a8", "#cc4778", "#f89540", "#f0f921"},
	"gray":     {"#000000", "#ffffff"},
	"coolwarm": {"#3b4cc0", "#dddddd", "#b40426"},
}

// DefaultCmap is the colormap used when numeric color values are supplied
// without an explicit colormap name.
const DefaultCmap = "viridis"

// LookupCmap returns the named colormap.
// Returns an INVALID_CMAP error for unknown names.
func LookupCmap(name string) (Colormap, error) {
	hexes, ok := colormaps[name]
	if !ok {
		return Colormap{}, errors.New(errors.ErrCodeInvalidCmap, "unknown colormap %q", name)
	}
	stops := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return Colormap{}, errors.Wrap(errors.ErrCodeInternal, err, "colormap %s stop %d", name, i)
		}
		stops[i] = c
	}
	return Colormap{name: name, stops: stops}, nil
}

// Name returns the colormap's registered name.
func (m Colormap) Name() string { return m.name }

// At returns the color at position t, clamped to [0, 1].
func (m Colormap) At(t float64) colorful.Color {
	t = clamp01(t)
	n := len(m.stops)
	if n == 1 {
		return m.stops[0]
	}
	pos := t * float64(n-1)
	i := int(pos)
	if i >= n-1 {
		return m.stops[n-1]
	}
	return m.stops[i].BlendLab(m.stops[i+1], pos-float64(i)).Clamped()
}

// MapValues scales numeric values through the colormap with optional
// vmin/vmax overrides and applies alpha. When vmin or vmax is nil the
// corresponding bound is taken from the data. A degenerate range (all
// values equal) maps everything to the ramp midpoint.
func (m Colormap) MapValues(values []float64, vmin, vmax *float64, alpha float64) []color.Color {
	lo, hi := dataRange(values)
	if vmin != nil {
		lo = *vmin
	}
	if vmax != nil {
		hi = *vmax
	}

	out := make([]color.Color, len(values))
	for i, v := range values {
		t := 0.5
		if hi > lo {
			t = (v - lo) / (hi - lo)
		}
		out[i] = WithAlpha(m.At(t), alpha)
	}
	return out
}

func dataRange(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
