package style

import "github.com/netplot/netplot/pkg/errors"

// Marker identifies the shape used for scatter points.
type Marker string

// Supported marker shapes, using the conventional single-character codes.
const (
	MarkerCircle       Marker = "o"
	MarkerSquare       Marker = "s"
	MarkerTriangleUp   Marker = "^"
	MarkerTriangleDown Marker = "v"
	MarkerDiamond      Marker = "d"
)

// ParseMarker validates a marker specification.
func ParseMarker(s string) (Marker, error) {
	switch m := Marker(s); m {
	case MarkerCircle, MarkerSquare, MarkerTriangleUp, MarkerTriangleDown, MarkerDiamond:
		return m, nil
	}
	return "", errors.New(errors.ErrCodeInvalidShape, "unrecognized node shape %q (must be one of o s ^ v d)", s)
}
