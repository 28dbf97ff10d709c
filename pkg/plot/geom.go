package plot

// Point is a position in data coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Segment is a straight line between two points.
type Segment struct {
	A, B Point
}

// Polygon is a closed sequence of vertices.
type Polygon []Point

// Rect is an axis-aligned rectangle in data coordinates.
type Rect struct {
	Min, Max Point
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	out := r
	if other.Min.X < out.Min.X {
		out.Min.X = other.Min.X
	}
	if other.Min.Y < out.Min.Y {
		out.Min.Y = other.Min.Y
	}
	if other.Max.X > out.Max.X {
		out.Max.X = other.Max.X
	}
	if other.Max.Y > out.Max.Y {
		out.Max.Y = other.Max.Y
	}
	return out
}

// BoundsOf returns the bounding rectangle of the given points.
// The second return value is false when pts is empty.
func BoundsOf(pts []Point) (Rect, bool) {
	if len(pts) == 0 {
		return Rect{}, false
	}
	r := Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		r = r.Union(Rect{Min: p, Max: p})
	}
	return r, true
}
