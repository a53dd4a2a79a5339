package render

import (
	"strings"
	"testing"

	"github.com/vizgraph/vizgraph/pkg/geom"
	"github.com/vizgraph/vizgraph/pkg/vgraph"
)

func buildTestGraph(t *testing.T) *vgraph.VisualGraph {
	t.Helper()
	b := vgraph.NewGraphBuilder()
	base := b.CreateLayer("base")
	b.CreateLayer("empty")

	box := b.NewElement().
		SetLayer(base).
		SetCenter(geom.Point{X: 10, Y: 20}).
		AddAnchor(geom.Point{X: 10, Y: 0}).
		Element()
	free := b.NewElement().
		SetCenter(geom.Point{X: 50, Y: 50}).
		AddAnchor(geom.Point{X: 50, Y: 40}).
		Element()
	if err := b.AddElement(box); err != nil {
		t.Fatal(err)
	}
	if err := b.AddElement(free); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddRelationship(box, free, 0, 0); err != nil {
		t.Fatal(err)
	}
	return b.Graph()
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(buildTestGraph(t), Options{})

	for _, want := range []string{
		"digraph VisualGraph {",
		`subgraph cluster_layer_0 {`,
		`label="base";`,
		`e0 [label="element 0"]`,
		`e1 [label="element 1"]`,
		`e0 -> e1 [taillabel="a0", headlabel="a0"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	if strings.Contains(dot, "cluster_layer_1") {
		t.Error("empty layers must not emit clusters")
	}
}

func TestToDOTUnlayeredElementOutsideClusters(t *testing.T) {
	dot := ToDOT(buildTestGraph(t), Options{})

	// Element 1 has no layer: its node statement sits at top-level indent.
	if !strings.Contains(dot, "\n  e1 [") {
		t.Errorf("unlayered element not emitted at top level:\n%s", dot)
	}
	if strings.Contains(dot, "\n    e1 [") {
		t.Errorf("unlayered element emitted inside a cluster:\n%s", dot)
	}
}

func TestToDOTDetailed(t *testing.T) {
	g := buildTestGraph(t)
	g.Elements[0].EntityID = 7

	dot := ToDOT(g, Options{Detailed: true})
	for _, want := range []string{
		"center: (10, 20)",
		"anchors: 1",
		"entity: 7",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("detailed DOT missing %q:\n%s", want, dot)
		}
	}

	// Unset foreign keys are omitted from labels.
	if strings.Contains(dot, "style: -1") {
		t.Error("sentinel style id leaked into a label")
	}
}

func TestToDOTEmptyDocument(t *testing.T) {
	dot := ToDOT(&vgraph.VisualGraph{}, Options{})
	if !strings.HasPrefix(dot, "digraph VisualGraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("unexpected skeleton:\n%s", dot)
	}
}
