package vgraph_test

import (
	"fmt"

	"github.com/vizgraph/vizgraph/pkg/geom"
	"github.com/vizgraph/vizgraph/pkg/vgraph"
)

// Example builds a two-element document with a styled connection.
func Example() {
	b := vgraph.NewGraphBuilder()

	layer := b.CreateLayer("base")
	width := b.MustCreateFeatureDef("stroke-width", 1, 1, 0, 10)
	stylist := b.CreateStylist("pen", "1.0", []vgraph.FeatureDef{width})
	style, _ := b.CreateStyle(stylist, vgraph.NewFeatureBuilder().Add1(width, 2).MustFeatureList())

	box := b.NewElement().
		SetLayer(layer).
		SetStyle(style).
		SetOutline(geom.RectShape(geom.Point{X: 0, Y: 0}, geom.Point{X: 40, Y: 20})).
		AddAnchor(geom.Point{X: 40, Y: 10}).
		Element()
	disc := b.NewElement().
		SetLayer(layer).
		SetOutline(geom.EllipseShape(geom.Point{X: 80, Y: 10}, 10, 10)).
		AddAnchor(geom.Point{X: 70, Y: 10}).
		Element()

	_ = b.AddElement(box)
	_ = b.AddElement(disc)
	_, _ = b.AddRelationship(box, disc, 0, 0)

	g := b.Graph()
	fmt.Println(len(g.Elements), "elements,", len(g.Relationships), "relationship")
	fmt.Println("findings:", len(vgraph.Validate(g)))
	// Output:
	// 2 elements, 1 relationship
	// findings: 0
}
