// Package render produces structural previews of visual graph documents.
//
// The renderer draws the document's structure — elements grouped by layer,
// relationships as directed edges — as Graphviz DOT, and can rasterize the
// DOT to SVG. It deliberately does not interpret styles: resolving a Style
// and its stylist definitions into concrete visual output belongs to a
// full style-resolution engine outside this repository. What render shows
// is the document's topology, which is what validation and authoring
// workflows need to see.
//
//	dot := render.ToDOT(g, render.Options{})
//	svg, err := render.SVG(dot)
package render
