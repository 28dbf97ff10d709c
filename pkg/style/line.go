package style

import "github.com/netplot/netplot/pkg/errors"

// LineStyle identifies the stroke pattern for edge segments.
type LineStyle string

// Supported line styles.
const (
	LineSolid   LineStyle = "solid"
	LineDashed  LineStyle = "dashed"
	LineDotted  LineStyle = "dotted"
	LineDashDot LineStyle = "dashdot"
)

// ParseLineStyle validates a line style specification.
func ParseLineStyle(s string) (LineStyle, error) {
	switch ls := LineStyle(s); ls {
	case LineSolid, LineDashed, LineDotted, LineDashDot:
		return ls, nil
	}
	return "", errors.New(errors.ErrCodeInvalidStyle, "unrecognized line style %q (must be solid, dashed, dotted, or dashdot)", s)
}

// Dashes returns the dash pattern for the style, scaled to the stroke width.
// Solid returns nil (no dashing). Patterns alternate on/off lengths.
func (s LineStyle) Dashes(width float64) []float64 {
	w := width
	if w < 1 {
		w = 1
	}
	switch s {
	case LineDashed:
		return []float64{6 * w, 3 * w}
	case LineDotted:
		return []float64{1 * w, 3 * w}
	case LineDashDot:
		return []float64{6 * w, 3 * w, 1 * w, 3 * w}
	default:
		return nil
	}
}
