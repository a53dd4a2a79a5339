package vgraph

import (
	"errors"
	"sync"
	"testing"

	"github.com/vizgraph/vizgraph/pkg/geom"
)

func TestCreateIssuesMonotonicIDs(t *testing.T) {
	b := NewGraphBuilder()

	for i := 0; i < 3; i++ {
		l := b.CreateLayer("layer")
		if int(l.ID) != i {
			t.Errorf("layer %d got id %d", i, int(l.ID))
		}
	}

	// Counters are per kind: the first text still starts at zero.
	if txt := b.CreateText("hello"); txt.ID != 0 {
		t.Errorf("first text id = %d, want 0", int(txt.ID))
	}
	if a := b.CreateAspect("hidden"); a.ID != 0 {
		t.Errorf("first aspect id = %d, want 0", int(a.ID))
	}
}

func TestCreateFeatureDefRejectsInvertedBounds(t *testing.T) {
	tests := []struct {
		name               string
		minItems, maxItems int
		minimum, maximum   float64
	}{
		{"inverted cardinality", 3, 1, 0, 10},
		{"inverted domain", 1, 1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewGraphBuilder()
			_, err := b.CreateFeatureDef("bad", tt.minItems, tt.maxItems, tt.minimum, tt.maximum)
			if !errors.Is(err, ErrInvalidDefinition) {
				t.Fatalf("expected ErrInvalidDefinition, got %v", err)
			}
			if n := len(b.Graph().FeatureDefs); n != 0 {
				t.Errorf("failed create must not mutate the collection, have %d defs", n)
			}
		})
	}
}

func TestMustCreateFeatureDefPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on inverted bounds")
		}
	}()
	NewGraphBuilder().MustCreateFeatureDef("bad", 2, 1, 0, 1)
}

func TestCreateStylistSnapshotsDefIDs(t *testing.T) {
	b := NewGraphBuilder()
	d0 := b.MustCreateFeatureDef("stroke-width", 1, 1, 0, 10)
	d1 := b.MustCreateFeatureDef("dash-pattern", 2, 4, 0, 100)

	s := b.CreateStylist("pen", "1.0", []FeatureDef{d0, d1})
	if len(s.FeatureDefIDs) != 2 || s.FeatureDefIDs[0] != d0.ID || s.FeatureDefIDs[1] != d1.ID {
		t.Fatalf("unexpected def ids: %v", s.FeatureDefIDs)
	}
	if !s.References(d0.ID) || s.References(99) {
		t.Error("References misreports membership")
	}
}

func TestCreateStyle(t *testing.T) {
	b := NewGraphBuilder()
	width := b.MustCreateFeatureDef("stroke-width", 1, 1, 0, 10)
	dash := b.MustCreateFeatureDef("dash-pattern", 2, 4, 0, 100)
	foreign := b.MustCreateFeatureDef("corner-radius", 1, 1, 0, 50)
	stylist := b.CreateStylist("pen", "1.0", []FeatureDef{width, dash})

	features := NewFeatureBuilder().Add1(width, 2).Add2(dash, 4, 2).MustFeatureList()
	style, err := b.CreateStyle(stylist, features)
	if err != nil {
		t.Fatalf("CreateStyle: %v", err)
	}
	if style.StylistID != stylist.ID {
		t.Errorf("style references stylist %d, want %d", int(style.StylistID), int(stylist.ID))
	}

	t.Run("foreign definition", func(t *testing.T) {
		bad := NewFeatureBuilder().Add1(foreign, 5).MustFeatureList()
		_, err := b.CreateStyle(stylist, bad)
		var rerr *ReferenceError
		if !errors.As(err, &rerr) {
			t.Fatalf("expected *ReferenceError, got %v", err)
		}
		if rerr.Collection != "featureDef" || rerr.ID != int(foreign.ID) {
			t.Errorf("unexpected reference error: %+v", rerr)
		}
	})

	t.Run("duplicate definition", func(t *testing.T) {
		dup := NewFeatureBuilder().Add1(width, 1).Add1(width, 2).MustFeatureList()
		_, err := b.CreateStyle(stylist, dup)
		if !errors.Is(err, ErrDuplicateFeatureDef) {
			t.Fatalf("expected ErrDuplicateFeatureDef, got %v", err)
		}
	})

	if n := len(b.Graph().Styles); n != 1 {
		t.Errorf("failed creates must not add styles, have %d", n)
	}
}

func TestCreateStyleStrictCoverage(t *testing.T) {
	b := NewGraphBuilder(WithStrictStyles())
	width := b.MustCreateFeatureDef("stroke-width", 1, 1, 0, 10)
	dash := b.MustCreateFeatureDef("dash-pattern", 2, 4, 0, 100)
	stylist := b.CreateStylist("pen", "1.0", []FeatureDef{width, dash})

	partial := NewFeatureBuilder().Add1(width, 2).MustFeatureList()
	_, err := b.CreateStyle(stylist, partial)
	var rerr *ReferenceError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected coverage error, got %v", err)
	}
	if rerr.ID != int(dash.ID) {
		t.Errorf("uncovered def = %d, want %d", rerr.ID, int(dash.ID))
	}

	full := NewFeatureBuilder().Add1(width, 2).Add2(dash, 4, 2).MustFeatureList()
	if _, err := b.CreateStyle(stylist, full); err != nil {
		t.Fatalf("complete coverage must succeed: %v", err)
	}
}

func TestCreateView(t *testing.T) {
	b := NewGraphBuilder()

	v, err := b.CreateView(geom.Point{X: 100, Y: 100}, geom.Point{X: 0, Y: 0}, 1.414)
	if err != nil {
		t.Fatalf("CreateView: %v", err)
	}
	if v.PageRatio != 1.414 {
		t.Errorf("page ratio = %v", v.PageRatio)
	}

	if _, err := b.CreateView(geom.Point{X: 0, Y: 100}, geom.Point{X: 0, Y: 0}, 1); !errors.Is(err, ErrInvalidViewBounds) {
		t.Errorf("degenerate width: got %v", err)
	}
	if _, err := b.CreateView(geom.Point{X: 100, Y: 0}, geom.Point{X: 0, Y: 100}, 1); !errors.Is(err, ErrInvalidViewBounds) {
		t.Errorf("inverted height: got %v", err)
	}
	if _, err := b.CreateView(geom.Point{X: 100, Y: 100}, geom.Point{X: 0, Y: 0}, 0); !errors.Is(err, ErrInvalidPageRatio) {
		t.Errorf("zero ratio: got %v", err)
	}
}

func TestAddElement(t *testing.T) {
	b := NewGraphBuilder()
	el := b.NewElement().SetCenter(geom.Point{X: 1, Y: 2}).Element()

	if err := b.AddElement(el); err != nil {
		t.Fatalf("AddElement: %v", err)
	}
	if err := b.AddElement(el); !errors.Is(err, ErrDuplicateElement) {
		t.Errorf("second add: got %v, want ErrDuplicateElement", err)
	}

	// Ids the builder never issued are rejected.
	if err := b.AddElement(Element{ID: 42}); !errors.Is(err, ErrForeignElement) {
		t.Errorf("foreign id: got %v, want ErrForeignElement", err)
	}
	if err := b.AddElement(Element{ID: -1}); !errors.Is(err, ErrForeignElement) {
		t.Errorf("negative id: got %v, want ErrForeignElement", err)
	}
}

func TestAbandonedElementLeavesIDGap(t *testing.T) {
	b := NewGraphBuilder()
	_ = b.NewElement() // reserved, never added

	el := b.NewElement().Element()
	if el.ID != 1 {
		t.Fatalf("second builder got id %d, want 1", int(el.ID))
	}
	if err := b.AddElement(el); err != nil {
		t.Fatalf("AddElement: %v", err)
	}

	g := b.Graph()
	if len(g.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(g.Elements))
	}
	if _, ok := g.Element(0); ok {
		t.Error("abandoned id 0 must be absent from the document")
	}
}

func TestAddRelationship(t *testing.T) {
	b := NewGraphBuilder()

	a := b.NewElement().
		AddAnchor(geom.Point{X: 0, Y: 0}).
		AddAnchor(geom.Point{X: 10, Y: 0}).
		Element()
	c := b.NewElement().
		AddAnchor(geom.Point{X: 5, Y: 5}).
		Element()
	if err := b.AddElement(a); err != nil {
		t.Fatal(err)
	}
	if err := b.AddElement(c); err != nil {
		t.Fatal(err)
	}

	r, err := b.AddRelationship(a, c, 1, 0)
	if err != nil {
		t.Fatalf("AddRelationship: %v", err)
	}
	if r.FromElementID != a.ID || r.ToElementID != c.ID || r.FromAnchor != 1 || r.ToAnchor != 0 {
		t.Errorf("unexpected relationship: %+v", r)
	}

	t.Run("self loop", func(t *testing.T) {
		if _, err := b.AddRelationship(a, a, 0, 1); err != nil {
			t.Errorf("self loops are allowed: %v", err)
		}
	})

	t.Run("anchor out of range", func(t *testing.T) {
		if _, err := b.AddRelationship(a, c, 2, 0); !errors.Is(err, ErrInvalidAnchor) {
			t.Errorf("source anchor 2: got %v", err)
		}
		if _, err := b.AddRelationship(a, c, 0, -1); !errors.Is(err, ErrInvalidAnchor) {
			t.Errorf("negative target anchor: got %v", err)
		}
	})

	t.Run("absent endpoint", func(t *testing.T) {
		ghost := b.NewElement().AddAnchor(geom.Point{}).Element() // never added
		_, err := b.AddRelationship(ghost, c, 0, 0)
		var rerr *ReferenceError
		if !errors.As(err, &rerr) {
			t.Fatalf("expected *ReferenceError, got %v", err)
		}
		if rerr.Collection != "element" || rerr.ID != int(ghost.ID) {
			t.Errorf("unexpected reference error: %+v", rerr)
		}
	})
}

func TestGraphSnapshotIsDetached(t *testing.T) {
	b := NewGraphBuilder()
	b.CreateLayer("background")

	snap := b.Graph()
	b.CreateLayer("foreground")

	if len(snap.Layers) != 1 {
		t.Errorf("snapshot grew with the builder: %d layers", len(snap.Layers))
	}

	snap.Layers[0].Name = "mutated"
	if b.Graph().Layers[0].Name != "background" {
		t.Error("mutating a snapshot must not affect the builder")
	}
}

func TestBuilderConcurrentIssue(t *testing.T) {
	b := NewGraphBuilder()

	const n = 50
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.CreateText("t")
			b.NextEntityID()
		}()
	}
	wg.Wait()

	g := b.Graph()
	if len(g.Texts) != n {
		t.Fatalf("expected %d texts, got %d", n, len(g.Texts))
	}
	seen := make(map[TextID]bool, n)
	for _, txt := range g.Texts {
		if seen[txt.ID] {
			t.Fatalf("duplicate text id %d", int(txt.ID))
		}
		seen[txt.ID] = true
	}
}
