package geom

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestShapeValidate(t *testing.T) {
	tests := []struct {
		name    string
		shape   Shape
		wantErr error
	}{
		{"zero value", Shape{}, nil},
		{"polygon", PolygonShape(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 0, Y: 1}), nil},
		{"ellipse", EllipseShape(Point{X: 1, Y: 1}, 2, 3), nil},
		{"ellipse zero rx", EllipseShape(Point{}, 0, 3), ErrDegenerateEllipse},
		{"ellipse negative ry", EllipseShape(Point{}, 2, -1), ErrDegenerateEllipse},
		{"rect", RectShape(Point{X: 0, Y: 0}, Point{X: 2, Y: 2}), nil},
		{"rect inverted", RectShape(Point{X: 2, Y: 2}, Point{X: 0, Y: 0}), ErrDegenerateRect},
		{"rect zero width", RectShape(Point{X: 1, Y: 0}, Point{X: 1, Y: 2}), ErrDegenerateRect},
		{"unknown kind", Shape{Kind: ShapeKind(9)}, ErrUnknownShapeKind},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.shape.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestShapeCloneIsDeep(t *testing.T) {
	orig := PolygonShape(Point{X: 1, Y: 1}, Point{X: 2, Y: 2})
	cp := orig.Clone()
	cp.Polygon[0] = Point{X: 99, Y: 99}

	if orig.Polygon[0] != (Point{X: 1, Y: 1}) {
		t.Error("mutating the clone changed the original polygon")
	}
}

func TestShapeJSON(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		wire  string
	}{
		{
			name:  "polygon",
			shape: PolygonShape(Point{X: 1, Y: 2}),
			wire:  `{"kind":"polygon","points":[{"x":1,"y":2}]}`,
		},
		{
			name:  "empty polygon",
			shape: Shape{},
			wire:  `{"kind":"polygon","points":[]}`,
		},
		{
			name:  "ellipse",
			shape: EllipseShape(Point{X: 3, Y: 4}, 5, 6),
			wire:  `{"kind":"ellipse","center":{"x":3,"y":4},"rx":5,"ry":6}`,
		},
		{
			name:  "rect",
			shape: RectShape(Point{X: 0, Y: 0}, Point{X: 7, Y: 8}),
			wire:  `{"kind":"rect","min":{"x":0,"y":0},"max":{"x":7,"y":8}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.shape)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(data) != tt.wire {
				t.Errorf("wire = %s, want %s", data, tt.wire)
			}

			var back Shape
			if err := json.Unmarshal(data, &back); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if back.Kind != tt.shape.Kind {
				t.Errorf("round-trip kind = %v, want %v", back.Kind, tt.shape.Kind)
			}
		})
	}
}

func TestShapeUnmarshalDefaultsToPolygon(t *testing.T) {
	var s Shape
	if err := json.Unmarshal([]byte(`{"points":[{"x":1,"y":1}]}`), &s); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if s.Kind != KindPolygon || len(s.Polygon) != 1 {
		t.Errorf("unexpected shape: %+v", s)
	}
}

func TestShapeUnmarshalRejectsUnknownKind(t *testing.T) {
	var s Shape
	err := json.Unmarshal([]byte(`{"kind":"blob"}`), &s)
	if !errors.Is(err, ErrUnknownShapeKind) {
		t.Errorf("expected ErrUnknownShapeKind, got %v", err)
	}
}

func TestShapeMarshalRejectsUnknownKind(t *testing.T) {
	_, err := json.Marshal(Shape{Kind: ShapeKind(9)})
	if err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestRectDimensions(t *testing.T) {
	r := Rect{Min: Point{X: 1, Y: 2}, Max: Point{X: 4, Y: 8}}
	if r.Width() != 3 {
		t.Errorf("Width() = %v, want 3", r.Width())
	}
	if r.Height() != 6 {
		t.Errorf("Height() = %v, want 6", r.Height())
	}
}

func TestPointAdd(t *testing.T) {
	got := Point{X: 1, Y: 2}.Add(Point{X: 3, Y: -1})
	if got != (Point{X: 4, Y: 1}) {
		t.Errorf("Add = %+v", got)
	}
}
