package geom

import (
	"errors"
	"fmt"
)

// Sentinel errors for shape validation.
var (
	// ErrDegenerateRect is returned by [Shape.Validate] when a rectangle's
	// max corner is not strictly above and to the right of its min corner.
	ErrDegenerateRect = errors.New("rectangle bounds are degenerate or inverted")

	// ErrDegenerateEllipse is returned by [Shape.Validate] when an ellipse
	// has a non-positive radius.
	ErrDegenerateEllipse = errors.New("ellipse radii must be positive")

	// ErrUnknownShapeKind is returned when a shape carries a kind value
	// outside the defined set. This indicates a decoding bug.
	ErrUnknownShapeKind = errors.New("unknown shape kind")
)

// Point is a position in the document's coordinate space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns the point translated by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Ellipse is an axis-aligned ellipse centered at Center.
type Ellipse struct {
	Center Point   `json:"center"`
	Rx     float64 `json:"rx"`
	Ry     float64 `json:"ry"`
}

// Rect is an axis-aligned rectangle spanning Min to Max.
type Rect struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// ShapeKind discriminates the variants of the Shape union.
type ShapeKind int

const (
	// KindPolygon is a closed point sequence. The zero Shape is an empty polygon.
	KindPolygon ShapeKind = iota
	// KindEllipse is an axis-aligned ellipse.
	KindEllipse
	// KindRect is an axis-aligned rectangle.
	KindRect
)

// String returns the serialized tag for the kind.
func (k ShapeKind) String() string {
	switch k {
	case KindPolygon:
		return "polygon"
	case KindEllipse:
		return "ellipse"
	case KindRect:
		return "rect"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Shape is a tagged union over the geometric outline variants. Exactly one
// payload field is meaningful, selected by Kind. Consumers should switch on
// Kind so new variants surface as compile-visible gaps rather than silent
// fallthroughs.
//
// The zero value is an empty polygon, which is the neutral outline for a
// freshly reserved element.
type Shape struct {
	Kind    ShapeKind
	Polygon []Point // Kind == KindPolygon
	Ellipse Ellipse // Kind == KindEllipse
	Rect    Rect    // Kind == KindRect
}

// PolygonShape builds a polygon shape from the given points.
func PolygonShape(points ...Point) Shape {
	return Shape{Kind: KindPolygon, Polygon: points}
}

// EllipseShape builds an ellipse shape.
func EllipseShape(center Point, rx, ry float64) Shape {
	return Shape{Kind: KindEllipse, Ellipse: Ellipse{Center: center, Rx: rx, Ry: ry}}
}

// RectShape builds a rectangle shape.
func RectShape(min, max Point) Shape {
	return Shape{Kind: KindRect, Rect: Rect{Min: min, Max: max}}
}

// IsEmpty reports whether the shape is an empty polygon, the neutral state
// of an outline no caller has touched.
func (s Shape) IsEmpty() bool {
	return s.Kind == KindPolygon && len(s.Polygon) == 0
}

// Clone returns a deep copy of the shape. Only the polygon payload carries
// shared backing storage.
func (s Shape) Clone() Shape {
	out := s
	if s.Polygon != nil {
		out.Polygon = make([]Point, len(s.Polygon))
		copy(out.Polygon, s.Polygon)
	}
	return out
}

// Validate checks the shape's internal consistency. Empty polygons are
// valid; degenerate ellipses and rectangles are not.
func (s Shape) Validate() error {
	switch s.Kind {
	case KindPolygon:
		return nil
	case KindEllipse:
		if s.Ellipse.Rx <= 0 || s.Ellipse.Ry <= 0 {
			return ErrDegenerateEllipse
		}
		return nil
	case KindRect:
		if s.Rect.Max.X <= s.Rect.Min.X || s.Rect.Max.Y <= s.Rect.Min.Y {
			return ErrDegenerateRect
		}
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownShapeKind, int(s.Kind))
	}
}
