package vgraph

import (
	"strings"
	"testing"

	"github.com/vizgraph/vizgraph/pkg/geom"
)

// validTestGraph builds a small document exercising every collection.
func validTestGraph(t *testing.T) *VisualGraph {
	t.Helper()
	b := NewGraphBuilder()
	b.CreateText("title")
	layer := b.CreateLayer("base")
	aspect := b.CreateAspect("hidden")
	blending := b.CreateBlending("multiply")
	b.CreateColor("ink", HSLAValue(210, 0.5, 0.4, 1))
	def := b.MustCreateFeatureDef("stroke-width", 1, 1, 0, 10)
	stylist := b.CreateStylist("pen", "1.0", []FeatureDef{def})
	style, err := b.CreateStyle(stylist, NewFeatureBuilder().Add1(def, 2).MustFeatureList())
	if err != nil {
		t.Fatal(err)
	}

	a := b.NewElement().
		SetLayer(layer).
		SetStyle(style).
		SetBlending(blending).
		AddAspect(aspect).
		SetOutline(geom.RectShape(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 10})).
		AddAnchor(geom.Point{X: 5, Y: 0}).
		Element()
	c := b.NewElement().
		SetLayer(layer).
		AddAnchor(geom.Point{X: 0, Y: 5}).
		Element()
	if err := b.AddElement(a); err != nil {
		t.Fatal(err)
	}
	if err := b.AddElement(c); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddRelationship(a, c, 0, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := b.CreateView(geom.Point{X: 100, Y: 100}, geom.Point{X: 0, Y: 0}, 1.414); err != nil {
		t.Fatal(err)
	}
	return b.Graph()
}

func TestValidateBuiltDocument(t *testing.T) {
	findings := Validate(validTestGraph(t))
	if len(findings) != 0 {
		t.Errorf("builder output must validate cleanly, got %v", findings)
	}
}

func TestValidateFindings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(g *VisualGraph)
		contains string
		severity Severity
	}{
		{
			name:     "duplicate id",
			mutate:   func(g *VisualGraph) { g.Layers = append(g.Layers, Layer{ID: 0, Name: "dup"}) },
			contains: "duplicate id",
			severity: SeverityError,
		},
		{
			name:     "negative id",
			mutate:   func(g *VisualGraph) { g.Texts = append(g.Texts, Text{ID: -3}) },
			contains: "negative id",
			severity: SeverityError,
		},
		{
			name: "unsorted collection",
			mutate: func(g *VisualGraph) {
				g.Layers = append([]Layer{{ID: 5, Name: "late"}}, g.Layers...)
			},
			contains: "not stored in id order",
			severity: SeverityWarning,
		},
		{
			name:     "inverted definition",
			mutate:   func(g *VisualGraph) { g.FeatureDefs[0].MinItems = 5 },
			contains: "minItems 5 > maxItems 1",
			severity: SeverityError,
		},
		{
			name:     "stylist dangling def",
			mutate:   func(g *VisualGraph) { g.Stylists[0].FeatureDefIDs[0] = 42 },
			contains: "unknown featureDef 42",
			severity: SeverityError,
		},
		{
			name:     "style dangling stylist",
			mutate:   func(g *VisualGraph) { g.Styles[0].StylistID = 9 },
			contains: "unknown stylist 9",
			severity: SeverityError,
		},
		{
			name: "style binds def twice",
			mutate: func(g *VisualGraph) {
				g.Styles[0].Features = append(g.Styles[0].Features, g.Styles[0].Features[0])
			},
			contains: "twice",
			severity: SeverityError,
		},
		{
			name:     "feature cardinality",
			mutate:   func(g *VisualGraph) { g.Styles[0].Features[0].Values = nil },
			contains: "has 0 values, allowed [1, 1]",
			severity: SeverityError,
		},
		{
			name:     "feature value outside domain",
			mutate:   func(g *VisualGraph) { g.Styles[0].Features[0].Values[0] = 11 },
			contains: "outside domain [0, 10]",
			severity: SeverityWarning,
		},
		{
			name:     "element dangling style",
			mutate:   func(g *VisualGraph) { g.Elements[0].StyleID = 7 },
			contains: "unknown style 7",
			severity: SeverityError,
		},
		{
			name:     "element dangling layer",
			mutate:   func(g *VisualGraph) { g.Elements[0].LayerID = 7 },
			contains: "unknown layer 7",
			severity: SeverityError,
		},
		{
			name:     "element dangling blending",
			mutate:   func(g *VisualGraph) { g.Elements[0].Blending = 7 },
			contains: "unknown blending 7",
			severity: SeverityError,
		},
		{
			name:     "element dangling aspect",
			mutate:   func(g *VisualGraph) { g.Elements[0].AspectIDs[0] = 7 },
			contains: "unknown aspect 7",
			severity: SeverityError,
		},
		{
			name:     "element degenerate outline",
			mutate:   func(g *VisualGraph) { g.Elements[0].Outline = geom.RectShape(geom.Point{X: 5, Y: 5}, geom.Point{X: 0, Y: 0}) },
			contains: "outline",
			severity: SeverityError,
		},
		{
			name:     "relationship dangling source",
			mutate:   func(g *VisualGraph) { g.Relationships[0].FromElementID = 9 },
			contains: "source element 9 does not exist",
			severity: SeverityError,
		},
		{
			name:     "relationship anchor out of range",
			mutate:   func(g *VisualGraph) { g.Relationships[0].ToAnchor = 3 },
			contains: "target anchor 3 out of range",
			severity: SeverityError,
		},
		{
			name:     "view inverted bounds",
			mutate:   func(g *VisualGraph) { g.Views[0].TopRight = geom.Point{X: -1, Y: -1} },
			contains: "degenerate or inverted",
			severity: SeverityError,
		},
		{
			name:     "view bad page ratio",
			mutate:   func(g *VisualGraph) { g.Views[0].PageRatio = -2 },
			contains: "page ratio -2 is not positive",
			severity: SeverityError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := validTestGraph(t)
			tt.mutate(g)

			findings := Validate(g)
			if len(findings) == 0 {
				t.Fatal("expected findings")
			}
			found := false
			for _, f := range findings {
				if strings.Contains(f.Message, tt.contains) && f.Severity == tt.severity {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("no finding containing %q at severity %v in %v", tt.contains, tt.severity, findings)
			}
		})
	}
}

func TestSentinelReferencesAreNotFindings(t *testing.T) {
	g := validTestGraph(t)
	g.Elements[1].StyleID = NoStyle
	g.Elements[1].LayerID = NoLayer
	g.Elements[1].Blending = NoBlending

	if findings := Validate(g); len(findings) != 0 {
		t.Errorf("sentinel foreign keys must not be flagged: %v", findings)
	}
}

func TestHasErrors(t *testing.T) {
	if HasErrors(nil) {
		t.Error("empty findings must report no errors")
	}
	warnings := []ValidationError{{Severity: SeverityWarning}}
	if HasErrors(warnings) {
		t.Error("warnings alone must not count as errors")
	}
	mixed := append(warnings, ValidationError{Severity: SeverityError})
	if !HasErrors(mixed) {
		t.Error("mixed findings must report errors")
	}
}

func TestValidationErrorString(t *testing.T) {
	itemLevel := ValidationError{Collection: "style", ID: 3, Message: "binds featureDef 1 twice", Severity: SeverityError}
	if got := itemLevel.Error(); got != "[error] style 3: binds featureDef 1 twice" {
		t.Errorf("Error() = %q", got)
	}
	collectionLevel := ValidationError{Collection: "layer", ID: -1, Message: "collection is not stored in id order", Severity: SeverityWarning}
	if got := collectionLevel.Error(); got != "[warning] layer: collection is not stored in id order" {
		t.Errorf("Error() = %q", got)
	}
}
