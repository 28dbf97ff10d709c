package style

import "github.com/netplot/netplot/pkg/errors"

// Font families and weights understood by the rendering backends.
const (
	FamilySans = "sans-serif"
	FamilyMono = "monospace"

	WeightNormal = "normal"
	WeightBold   = "bold"
)

// Font describes the typeface used for node labels.
type Font struct {
	Family string  // "sans-serif" or "monospace"
	Weight string  // "normal" or "bold"
	Size   float64 // point size
}

// DefaultFont returns the label font defaults.
func DefaultFont() Font {
	return Font{Family: FamilySans, Weight: WeightNormal, Size: 12}
}

// Validate checks the font specification against the supported families
// and weights.
func (f Font) Validate() error {
	switch f.Family {
	case FamilySans, FamilyMono:
	default:
		return errors.New(errors.ErrCodeInvalidFont, "unrecognized font family %q (must be sans-serif or monospace)", f.Family)
	}
	switch f.Weight {
	case WeightNormal, WeightBold:
	default:
		return errors.New(errors.ErrCodeInvalidFont, "unrecognized font weight %q (must be normal or bold)", f.Weight)
	}
	if f.Size <= 0 {
		return errors.New(errors.ErrCodeInvalidFont, "font size must be positive, got %g", f.Size)
	}
	return nil
}
