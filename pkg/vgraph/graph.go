package vgraph

import "slices"

// VisualGraph is the aggregate document: every entity collection under one
// root. Collections are append-only during a build session and id-ordered,
// since ids are issued monotonically in creation order. Once handed off by
// a builder the aggregate is a read-only snapshot, safe for unlimited
// concurrent readers.
type VisualGraph struct {
	Texts         []Text         `json:"texts"`
	Layers        []Layer        `json:"layers"`
	Aspects       []Aspect       `json:"aspects"`
	Blendings     []Blending     `json:"blendings"`
	Colors        []Color        `json:"colors"`
	FeatureDefs   []FeatureDef   `json:"featureDefs"`
	Stylists      []Stylist      `json:"stylists"`
	Styles        []Style        `json:"styles"`
	Elements      []Element      `json:"elements"`
	Relationships []Relationship `json:"relationships"`
	Views         []View         `json:"views"`
}

// lookup binary-searches an id-ordered collection. Parsed documents are
// not guaranteed sorted, so fall back to a linear scan if the probe misses.
func lookup[T any](items []T, id int, idOf func(T) int) (T, bool) {
	i, found := slices.BinarySearchFunc(items, id, func(it T, target int) int {
		return idOf(it) - target
	})
	if found {
		return items[i], true
	}
	for _, it := range items {
		if idOf(it) == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// FeatureDef returns the definition with the given id.
func (g *VisualGraph) FeatureDef(id FeatureDefID) (FeatureDef, bool) {
	return lookup(g.FeatureDefs, int(id), func(d FeatureDef) int { return int(d.ID) })
}

// Stylist returns the stylist with the given id.
func (g *VisualGraph) Stylist(id StylistID) (Stylist, bool) {
	return lookup(g.Stylists, int(id), func(s Stylist) int { return int(s.ID) })
}

// Style returns the style with the given id.
func (g *VisualGraph) Style(id StyleID) (Style, bool) {
	return lookup(g.Styles, int(id), func(s Style) int { return int(s.ID) })
}

// Layer returns the layer with the given id.
func (g *VisualGraph) Layer(id LayerID) (Layer, bool) {
	return lookup(g.Layers, int(id), func(l Layer) int { return int(l.ID) })
}

// Aspect returns the aspect with the given id.
func (g *VisualGraph) Aspect(id AspectID) (Aspect, bool) {
	return lookup(g.Aspects, int(id), func(a Aspect) int { return int(a.ID) })
}

// Blending returns the blending mode with the given id.
func (g *VisualGraph) Blending(id BlendingID) (Blending, bool) {
	return lookup(g.Blendings, int(id), func(b Blending) int { return int(b.ID) })
}

// Color returns the color with the given id.
func (g *VisualGraph) Color(id ColorID) (Color, bool) {
	return lookup(g.Colors, int(id), func(c Color) int { return int(c.ID) })
}

// Text returns the text entity with the given id.
func (g *VisualGraph) Text(id TextID) (Text, bool) {
	return lookup(g.Texts, int(id), func(t Text) int { return int(t.ID) })
}

// Element returns the element with the given id. Ids reserved by an
// ElementBuilder that was never finalized are absent, so a miss is not
// necessarily a dangling reference.
func (g *VisualGraph) Element(id ElementID) (Element, bool) {
	return lookup(g.Elements, int(id), func(e Element) int { return int(e.ID) })
}

// View returns the view with the given id.
func (g *VisualGraph) View(id ViewID) (View, bool) {
	return lookup(g.Views, int(id), func(v View) int { return int(v.ID) })
}

// ElementsInLayer returns the elements assigned to the given layer, in id
// order.
func (g *VisualGraph) ElementsInLayer(id LayerID) []Element {
	var out []Element
	for _, e := range g.Elements {
		if e.LayerID == id {
			out = append(out, e)
		}
	}
	return out
}

// RelationshipsFrom returns the relationships originating at the element.
func (g *VisualGraph) RelationshipsFrom(id ElementID) []Relationship {
	var out []Relationship
	for _, r := range g.Relationships {
		if r.FromElementID == id {
			out = append(out, r)
		}
	}
	return out
}

// EntityCount returns the total number of entities across all collections.
func (g *VisualGraph) EntityCount() int {
	return len(g.Texts) + len(g.Layers) + len(g.Aspects) + len(g.Blendings) +
		len(g.Colors) + len(g.FeatureDefs) + len(g.Stylists) + len(g.Styles) +
		len(g.Elements) + len(g.Relationships) + len(g.Views)
}

// Clone returns a deep copy of the document.
func (g *VisualGraph) Clone() *VisualGraph {
	out := &VisualGraph{
		Texts:         slices.Clone(g.Texts),
		Layers:        slices.Clone(g.Layers),
		Aspects:       slices.Clone(g.Aspects),
		Blendings:     slices.Clone(g.Blendings),
		Colors:        slices.Clone(g.Colors),
		FeatureDefs:   slices.Clone(g.FeatureDefs),
		Relationships: slices.Clone(g.Relationships),
		Views:         slices.Clone(g.Views),
	}
	out.Stylists = make([]Stylist, len(g.Stylists))
	for i, s := range g.Stylists {
		out.Stylists[i] = s
		out.Stylists[i].FeatureDefIDs = slices.Clone(s.FeatureDefIDs)
	}
	out.Styles = make([]Style, len(g.Styles))
	for i, s := range g.Styles {
		out.Styles[i] = s
		out.Styles[i].Features = cloneFeatures(s.Features)
	}
	out.Elements = make([]Element, len(g.Elements))
	for i, e := range g.Elements {
		out.Elements[i] = e.Clone()
	}
	return out
}
