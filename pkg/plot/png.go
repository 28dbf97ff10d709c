package plot

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/netplot/netplot/pkg/fonts"
	"github.com/netplot/netplot/pkg/style"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	width      int
	height     int
	background color.Color
}

// WithSize sets the output dimensions in pixels (default 800x600).
func WithSize(w, h int) PNGOption {
	return func(r *pngRenderer) { r.width, r.height = w, h }
}

// WithBackground sets the background fill (default white).
func WithBackground(c color.Color) PNGOption {
	return func(r *pngRenderer) { r.background = c }
}

// RenderPNG rasterizes the axes into a PNG image.
// Primitives render in z-order; text uses faces from [fonts.Face].
func RenderPNG(ax *Axes, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{width: DefaultWidth, height: DefaultHeight, background: color.White}
	for _, opt := range opts {
		opt(&r)
	}

	dc := gg.NewContext(r.width, r.height)
	dc.SetColor(r.background)
	dc.Clear()

	t := newTransform(ax.ViewLim(), r.width, r.height)

	for _, prim := range sortedPrims(ax) {
		switch p := prim.(type) {
		case *PointCollection:
			rasterPoints(dc, t, p)
		case *LineCollection:
			rasterLines(dc, t, p)
		case *PolyCollection:
			rasterPolys(dc, t, p)
		case *Text:
			if err := rasterText(dc, t, p); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("unknown primitive %T", prim)
		}
	}

	rasterTicks(dc, t, ax)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func rasterPoints(dc *gg.Context, t transform, pc *PointCollection) {
	marker := pc.Marker
	if marker == "" {
		marker = style.MarkerCircle
	}
	for i, p := range pc.XY {
		x, y := t.apply(p)
		// Size is marker area; recover the nominal radius from it.
		radius := math.Sqrt(pickFloat(pc.Sizes, i, 300) / math.Pi)
		dc.SetColor(pickColor(pc.Colors, i))
		markerPath(dc, marker, x, y, radius)
		dc.Fill()
	}
}

// markerPath traces the marker outline; y grows downward in pixel space,
// so "up" triangles point toward smaller y.
func markerPath(dc *gg.Context, m style.Marker, x, y, r float64) {
	switch m {
	case style.MarkerSquare:
		dc.DrawRectangle(x-r, y-r, 2*r, 2*r)
	case style.MarkerTriangleUp:
		dc.MoveTo(x, y-r)
		dc.LineTo(x-r, y+r)
		dc.LineTo(x+r, y+r)
		dc.ClosePath()
	case style.MarkerTriangleDown:
		dc.MoveTo(x, y+r)
		dc.LineTo(x-r, y-r)
		dc.LineTo(x+r, y-r)
		dc.ClosePath()
	case style.MarkerDiamond:
		dc.MoveTo(x, y-r)
		dc.LineTo(x+r, y)
		dc.LineTo(x, y+r)
		dc.LineTo(x-r, y)
		dc.ClosePath()
	default:
		dc.DrawCircle(x, y, r)
	}
}

func rasterLines(dc *gg.Context, t transform, lc *LineCollection) {
	for i, seg := range lc.Segments {
		width := pickFloat(lc.Widths, i, 1)
		if dashes := lc.Style.Dashes(width); dashes != nil {
			dc.SetDash(dashes...)
		} else {
			dc.SetDash()
		}
		dc.SetLineWidth(width)
		dc.SetColor(pickColor(lc.Colors, i))
		x1, y1 := t.apply(seg.A)
		x2, y2 := t.apply(seg.B)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
	dc.SetDash()
}

func rasterPolys(dc *gg.Context, t transform, pc *PolyCollection) {
	for i, poly := range pc.Polys {
		if len(poly) == 0 {
			continue
		}
		dc.SetColor(pickColor(pc.Colors, i))
		x, y := t.apply(poly[0])
		dc.MoveTo(x, y)
		for _, p := range poly[1:] {
			x, y = t.apply(p)
			dc.LineTo(x, y)
		}
		dc.ClosePath()
		dc.Fill()
	}
}

func rasterText(dc *gg.Context, t transform, txt *Text) error {
	face, err := fonts.Face(txt.Font)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	c := txt.Color
	if c == nil {
		c = color.NRGBA{A: 255}
	}
	dc.SetColor(c)
	x, y := t.apply(txt.Pos)
	dc.DrawStringAnchored(txt.Content, x, y, 0.5, 0.5)
	return nil
}

func rasterTicks(dc *gg.Context, t transform, ax *Axes) {
	dc.SetDash()
	dc.SetLineWidth(1)
	dc.SetColor(color.NRGBA{A: 255})
	for _, tick := range ax.XTicks() {
		x, _ := t.apply(Point{X: tick, Y: t.view.Min.Y})
		dc.DrawLine(x, t.h, x, t.h-tickLen)
		dc.Stroke()
	}
	for _, tick := range ax.YTicks() {
		_, y := t.apply(Point{X: t.view.Min.X, Y: tick})
		dc.DrawLine(0, y, tickLen, y)
		dc.Stroke()
	}
}
