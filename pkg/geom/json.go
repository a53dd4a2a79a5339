package geom

import (
	"encoding/json"
	"fmt"
)

// shapeJSON is the wire form of the Shape union. The "kind" tag selects
// which payload fields are present. Payloads are pointers so absent
// fields are omitted while an empty polygon still serializes its points
// key as [].
type shapeJSON struct {
	Kind   string   `json:"kind"`
	Points *[]Point `json:"points,omitempty"`
	Center *Point   `json:"center,omitempty"`
	Rx     *float64 `json:"rx,omitempty"`
	Ry     *float64 `json:"ry,omitempty"`
	Min    *Point   `json:"min,omitempty"`
	Max    *Point   `json:"max,omitempty"`
}

// MarshalJSON encodes the shape in its tagged wire form, e.g.
// {"kind":"polygon","points":[...]} or {"kind":"rect","min":{...},"max":{...}}.
func (s Shape) MarshalJSON() ([]byte, error) {
	out := shapeJSON{Kind: s.Kind.String()}
	switch s.Kind {
	case KindPolygon:
		pts := s.Polygon
		if pts == nil {
			pts = []Point{}
		}
		out.Points = &pts
	case KindEllipse:
		c := s.Ellipse.Center
		rx, ry := s.Ellipse.Rx, s.Ellipse.Ry
		out.Center, out.Rx, out.Ry = &c, &rx, &ry
	case KindRect:
		mn, mx := s.Rect.Min, s.Rect.Max
		out.Min, out.Max = &mn, &mx
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownShapeKind, int(s.Kind))
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes the tagged wire form produced by MarshalJSON.
// Missing payload fields decode to their zero values so partially written
// documents still produce a structurally usable shape.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var in shapeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	switch in.Kind {
	case "polygon", "":
		var pts []Point
		if in.Points != nil {
			pts = *in.Points
		}
		*s = Shape{Kind: KindPolygon, Polygon: pts}
	case "ellipse":
		e := Ellipse{}
		if in.Center != nil {
			e.Center = *in.Center
		}
		if in.Rx != nil {
			e.Rx = *in.Rx
		}
		if in.Ry != nil {
			e.Ry = *in.Ry
		}
		*s = Shape{Kind: KindEllipse, Ellipse: e}
	case "rect":
		r := Rect{}
		if in.Min != nil {
			r.Min = *in.Min
		}
		if in.Max != nil {
			r.Max = *in.Max
		}
		*s = Shape{Kind: KindRect, Rect: r}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownShapeKind, in.Kind)
	}
	return nil
}
