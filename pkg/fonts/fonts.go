// Package fonts provides font faces for raster text rendering.
//
// The Go fonts are embedded in their upstream packages, so faces are
// available without external font files or system font discovery.
package fonts

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/netplot/netplot/pkg/style"
)

// Parsed fonts are cached after first use; parsing TTF data is not free.
var (
	mu     sync.Mutex
	parsed = map[string]*opentype.Font{}
)

// ttf returns the raw font data for a family/weight combination.
func ttf(family, weight string) ([]byte, error) {
	switch {
	case family == style.FamilySans && weight == style.WeightNormal:
		return goregular.TTF, nil
	case family == style.FamilySans && weight == style.WeightBold:
		return gobold.TTF, nil
	case family == style.FamilyMono && weight == style.WeightNormal:
		return gomono.TTF, nil
	case family == style.FamilyMono && weight == style.WeightBold:
		return gomonobold.TTF, nil
	}
	return nil, fmt.Errorf("no font for family %q weight %q", family, weight)
}

// Face returns a font.Face for the given font specification.
// Faces are rendered at 72 DPI so the point size equals the pixel size.
func Face(f style.Font) (font.Face, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	key := f.Family + "/" + f.Weight
	mu.Lock()
	ft, ok := parsed[key]
	mu.Unlock()

	if !ok {
		data, err := ttf(f.Family, f.Weight)
		if err != nil {
			return nil, err
		}
		ft, err = opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", key, err)
		}
		mu.Lock()
		parsed[key] = ft
		mu.Unlock()
	}

	return opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    f.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
