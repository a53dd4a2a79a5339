package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/vizgraph/vizgraph/pkg/vgraph"
)

// Options configures DOT generation.
type Options struct {
	// Detailed includes center coordinates, anchor counts, and style ids
	// in element labels. When false, only the element id (and text, if an
	// entity text exists) is shown.
	Detailed bool
}

// ToDOT converts a document to Graphviz DOT for structural preview.
// Elements become boxes grouped into one cluster per layer; relationships
// become directed edges annotated with their anchor indices. Elements
// without a layer assignment are emitted outside any cluster.
func ToDOT(g *vgraph.VisualGraph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph VisualGraph {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("\n")

	byLayer := make(map[vgraph.LayerID][]vgraph.Element)
	var unlayered []vgraph.Element
	for _, e := range g.Elements {
		if _, ok := g.Layer(e.LayerID); ok {
			byLayer[e.LayerID] = append(byLayer[e.LayerID], e)
		} else {
			unlayered = append(unlayered, e)
		}
	}

	for _, l := range g.Layers {
		elements := byLayer[l.ID]
		if len(elements) == 0 {
			continue
		}
		fmt.Fprintf(&buf, "  subgraph cluster_layer_%d {\n", int(l.ID))
		fmt.Fprintf(&buf, "    label=%q;\n", l.Name)
		buf.WriteString("    style=dashed;\n")
		for _, e := range elements {
			fmt.Fprintf(&buf, "    %s;\n", nodeStmt(e, opts.Detailed))
		}
		buf.WriteString("  }\n")
	}
	for _, e := range unlayered {
		fmt.Fprintf(&buf, "  %s;\n", nodeStmt(e, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, r := range g.Relationships {
		fmt.Fprintf(&buf, "  e%d -> e%d [taillabel=\"a%d\", headlabel=\"a%d\", fontsize=10];\n",
			int(r.FromElementID), int(r.ToElementID), int(r.FromAnchor), int(r.ToAnchor))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeStmt(e vgraph.Element, detailed bool) string {
	label := fmt.Sprintf("element %d", int(e.ID))
	if detailed {
		parts := []string{
			label,
			fmt.Sprintf("center: (%g, %g)", e.Center.X, e.Center.Y),
			fmt.Sprintf("anchors: %d", len(e.Anchors)),
		}
		if e.StyleID != vgraph.NoStyle {
			parts = append(parts, fmt.Sprintf("style: %d", int(e.StyleID)))
		}
		if e.EntityID != vgraph.NoEntity {
			parts = append(parts, fmt.Sprintf("entity: %d", int(e.EntityID)))
		}
		label = strings.Join(parts, "\n")
	}
	return fmt.Sprintf("e%d [label=%q]", int(e.ID), label)
}

// SVG renders a DOT graph to SVG using Graphviz.
func SVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	parsed, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer parsed.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, parsed, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
