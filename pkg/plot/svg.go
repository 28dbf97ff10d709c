package plot

import (
	"bytes"
	"fmt"
	"html"
	"image/color"
	"math"

	"github.com/netplot/netplot/pkg/style"
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width      int
	height     int
	background string
}

// WithSVGSize sets the output dimensions in pixels (default 800x600).
func WithSVGSize(w, h int) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = w, h }
}

// WithSVGBackground sets the background fill (default "#ffffff").
// Pass "none" for a transparent background.
func WithSVGBackground(fill string) SVGOption {
	return func(r *svgRenderer) { r.background = fill }
}

// RenderSVG writes the axes as a standalone SVG document.
// Primitives render in z-order.
func RenderSVG(ax *Axes, opts ...SVGOption) []byte {
	r := svgRenderer{width: DefaultWidth, height: DefaultHeight, background: "#ffffff"}
	for _, opt := range opts {
		opt(&r)
	}

	t := newTransform(ax.ViewLim(), r.width, r.height)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		r.width, r.height, r.width, r.height)
	if r.background != "none" {
		fmt.Fprintf(&buf, `<rect width="100%%" height="100%%" fill=%q/>`+"\n", r.background)
	}

	for _, prim := range sortedPrims(ax) {
		switch p := prim.(type) {
		case *PointCollection:
			svgPoints(&buf, t, p)
		case *LineCollection:
			svgLines(&buf, t, p)
		case *PolyCollection:
			svgPolys(&buf, t, p)
		case *Text:
			svgText(&buf, t, p)
		}
	}

	svgTicks(&buf, t, ax)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func svgPoints(buf *bytes.Buffer, t transform, pc *PointCollection) {
	marker := pc.Marker
	if marker == "" {
		marker = style.MarkerCircle
	}
	for i, p := range pc.XY {
		x, y := t.apply(p)
		radius := math.Sqrt(pickFloat(pc.Sizes, i, 300) / math.Pi)
		fill, opacity := svgColor(pickColor(pc.Colors, i))

		if marker == style.MarkerCircle {
			fmt.Fprintf(buf, `<circle cx="%.2f" cy="%.2f" r="%.2f" fill=%q fill-opacity="%.3f"/>`+"\n",
				x, y, radius, fill, opacity)
			continue
		}
		fmt.Fprintf(buf, `<polygon points=%q fill=%q fill-opacity="%.3f"/>`+"\n",
			markerPoints(marker, x, y, radius), fill, opacity)
	}
}

// markerPoints returns the SVG points attribute for a non-circle marker.
func markerPoints(m style.Marker, x, y, r float64) string {
	var pts [][2]float64
	switch m {
	case style.MarkerSquare:
		pts = [][2]float64{{x - r, y - r}, {x + r, y - r}, {x + r, y + r}, {x - r, y + r}}
	case style.MarkerTriangleUp:
		pts = [][2]float64{{x, y - r}, {x - r, y + r}, {x + r, y + r}}
	case style.MarkerTriangleDown:
		pts = [][2]float64{{x, y + r}, {x - r, y - r}, {x + r, y - r}}
	default: // diamond
		pts = [][2]float64{{x, y - r}, {x + r, y}, {x, y + r}, {x - r, y}}
	}
	var b bytes.Buffer
	for i, p := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.2f,%.2f", p[0], p[1])
	}
	return b.String()
}

func svgLines(buf *bytes.Buffer, t transform, lc *LineCollection) {
	for i, seg := range lc.Segments {
		width := pickFloat(lc.Widths, i, 1)
		stroke, opacity := svgColor(pickColor(lc.Colors, i))
		x1, y1 := t.apply(seg.A)
		x2, y2 := t.apply(seg.B)
		fmt.Fprintf(buf, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke=%q stroke-width="%.2f" stroke-opacity="%.3f"%s/>`+"\n",
			x1, y1, x2, y2, stroke, width, opacity, svgDashes(lc.Style, width))
	}
}

func svgDashes(ls style.LineStyle, width float64) string {
	dashes := ls.Dashes(width)
	if dashes == nil {
		return ""
	}
	var b bytes.Buffer
	b.WriteString(` stroke-dasharray="`)
	for i, d := range dashes {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.1f", d)
	}
	b.WriteByte('"')
	return b.String()
}

func svgPolys(buf *bytes.Buffer, t transform, pc *PolyCollection) {
	for i, poly := range pc.Polys {
		if len(poly) == 0 {
			continue
		}
		fill, opacity := svgColor(pickColor(pc.Colors, i))
		var b bytes.Buffer
		for j, p := range poly {
			if j > 0 {
				b.WriteByte(' ')
			}
			x, y := t.apply(p)
			fmt.Fprintf(&b, "%.2f,%.2f", x, y)
		}
		fmt.Fprintf(buf, `<polygon points=%q fill=%q fill-opacity="%.3f"/>`+"\n",
			b.String(), fill, opacity)
	}
}

func svgText(buf *bytes.Buffer, t transform, txt *Text) {
	x, y := t.apply(txt.Pos)
	c := txt.Color
	if c == nil {
		c = color.NRGBA{A: 255}
	}
	fill, opacity := svgColor(c)
	fmt.Fprintf(buf, `<text x="%.2f" y="%.2f" font-family=%q font-size="%.1f" font-weight=%q fill=%q fill-opacity="%.3f" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		x, y, txt.Font.Family, txt.Font.Size, txt.Font.Weight, fill, opacity, html.EscapeString(txt.Content))
}

func svgTicks(buf *bytes.Buffer, t transform, ax *Axes) {
	for _, tick := range ax.XTicks() {
		x, _ := t.apply(Point{X: tick, Y: t.view.Min.Y})
		fmt.Fprintf(buf, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#000000" stroke-width="1"/>`+"\n",
			x, t.h, x, t.h-tickLen)
	}
	for _, tick := range ax.YTicks() {
		_, y := t.apply(Point{X: t.view.Min.X, Y: tick})
		fmt.Fprintf(buf, `<line x1="0" y1="%.2f" x2="%d" y2="%.2f" stroke="#000000" stroke-width="1"/>`+"\n",
			y, tickLen, y)
	}
}

// svgColor splits a color into a hex fill and an opacity in [0, 1].
func svgColor(c color.Color) (string, float64) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "#000000", 0
	}
	// Un-premultiply back to 8-bit channels.
	return fmt.Sprintf("#%02x%02x%02x",
			uint8((r*0xffff/a)>>8), uint8((g*0xffff/a)>>8), uint8((b*0xffff/a)>>8)),
		float64(a) / 0xffff
}
