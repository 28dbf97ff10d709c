package plot

import (
	"errors"
	"fmt"

	"github.com/netplot/netplot/pkg/style"
)

var (
	// ErrLengthMismatch is returned by the Add methods when a per-item
	// style array's length matches neither 1 nor the item count.
	ErrLengthMismatch = errors.New("per-item style array length must match item count")

	// ErrNilPrimitive is returned by the Add methods for a nil primitive.
	ErrNilPrimitive = errors.New("primitive must not be nil")
)

// Axes is the mutable plotting surface. It accumulates primitives and
// text, tracks data limits and the visible view, and carries the hold
// flag consulted by top-level drawing (hold false means a fresh draw
// replaces existing content rather than stacking on top of it).
//
// The zero value is not usable - use [NewAxes].
type Axes struct {
	prims   []Primitive
	xticks  []float64
	yticks  []float64
	dataLim *Rect
	viewLim Rect
	hold    bool
}

// NewAxes creates an empty axes with hold enabled, default tick marks at
// 0 and 1 on both axes, and a unit-square view.
func NewAxes() *Axes {
	return &Axes{
		hold:    true,
		xticks:  []float64{0, 1},
		yticks:  []float64{0, 1},
		viewLim: Rect{Min: Point{0, 0}, Max: Point{1, 1}},
	}
}

// Hold reports the current hold flag.
func (ax *Axes) Hold() bool { return ax.hold }

// SetHold sets the hold flag.
func (ax *Axes) SetHold(h bool) { ax.hold = h }

// Clear removes all primitives and resets the data limits.
// Ticks, view limits, and the hold flag are unaffected.
func (ax *Axes) Clear() {
	ax.prims = nil
	ax.dataLim = nil
}

// Primitives returns the primitives in insertion order.
func (ax *Axes) Primitives() []Primitive {
	out := make([]Primitive, len(ax.prims))
	copy(out, ax.prims)
	return out
}

// SetXTicks replaces the x-axis tick positions. Pass nil to suppress ticks.
func (ax *Axes) SetXTicks(ticks []float64) { ax.xticks = ticks }

// SetYTicks replaces the y-axis tick positions. Pass nil to suppress ticks.
func (ax *Axes) SetYTicks(ticks []float64) { ax.yticks = ticks }

// XTicks returns the x-axis tick positions.
func (ax *Axes) XTicks() []float64 { return ax.xticks }

// YTicks returns the y-axis tick positions.
func (ax *Axes) YTicks() []float64 { return ax.yticks }

// UpdateDataLim expands the tracked data limits to cover r.
func (ax *Axes) UpdateDataLim(r Rect) {
	if ax.dataLim == nil {
		lim := r
		ax.dataLim = &lim
		return
	}
	lim := ax.dataLim.Union(r)
	ax.dataLim = &lim
}

// DataLim returns the tracked data limits. The second return value is
// false until UpdateDataLim has been called.
func (ax *Axes) DataLim() (Rect, bool) {
	if ax.dataLim == nil {
		return Rect{}, false
	}
	return *ax.dataLim, true
}

// AutoscaleView sets the view limits to the tracked data limits.
// Without data limits this is a no-op.
func (ax *Axes) AutoscaleView() {
	if ax.dataLim != nil {
		ax.viewLim = *ax.dataLim
	}
}

// ViewLim returns the visible region in data coordinates.
func (ax *Axes) ViewLim() Rect { return ax.viewLim }

// SetViewLim sets the visible region explicitly.
func (ax *Axes) SetViewLim(r Rect) { ax.viewLim = r }

// AddPoints validates and adds a point collection, returning it as the
// primitive handle.
func (ax *Axes) AddPoints(pc *PointCollection) (*PointCollection, error) {
	if pc == nil {
		return nil, ErrNilPrimitive
	}
	if err := checkLen(len(pc.Sizes), len(pc.XY), "sizes", "points"); err != nil {
		return nil, err
	}
	if err := checkLen(len(pc.Colors), len(pc.XY), "colors", "points"); err != nil {
		return nil, err
	}
	if pc.Marker != "" {
		if _, err := style.ParseMarker(string(pc.Marker)); err != nil {
			return nil, err
		}
	}
	ax.prims = append(ax.prims, pc)
	return pc, nil
}

// AddLines validates and adds a line collection.
func (ax *Axes) AddLines(lc *LineCollection) (*LineCollection, error) {
	if lc == nil {
		return nil, ErrNilPrimitive
	}
	if err := checkLen(len(lc.Widths), len(lc.Segments), "widths", "segments"); err != nil {
		return nil, err
	}
	if err := checkLen(len(lc.Colors), len(lc.Segments), "colors", "segments"); err != nil {
		return nil, err
	}
	if lc.Style != "" {
		if _, err := style.ParseLineStyle(string(lc.Style)); err != nil {
			return nil, err
		}
	}
	ax.prims = append(ax.prims, lc)
	return lc, nil
}

// AddPolys validates and adds a polygon collection.
func (ax *Axes) AddPolys(pc *PolyCollection) (*PolyCollection, error) {
	if pc == nil {
		return nil, ErrNilPrimitive
	}
	if err := checkLen(len(pc.Colors), len(pc.Polys), "colors", "polygons"); err != nil {
		return nil, err
	}
	ax.prims = append(ax.prims, pc)
	return pc, nil
}

// AddText validates and adds a text item.
func (ax *Axes) AddText(t *Text) (*Text, error) {
	if t == nil {
		return nil, ErrNilPrimitive
	}
	if err := t.Font.Validate(); err != nil {
		return nil, err
	}
	ax.prims = append(ax.prims, t)
	return t, nil
}

// checkLen enforces the single-or-per-item rule: a style array may be
// empty (backend default), hold one element, or hold one per item.
func checkLen(got, items int, what, of string) error {
	if got == 0 || got == 1 || got == items {
		return nil
	}
	return fmt.Errorf("%w: %d %s for %d %s", ErrLengthMismatch, got, what, items, of)
}
