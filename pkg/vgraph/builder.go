package vgraph

import (
	"fmt"
	"sync"

	"github.com/vizgraph/vizgraph/pkg/geom"
)

// Option configures a GraphBuilder.
type Option func(*GraphBuilder)

// WithStrictStyles makes CreateStyle require complete coverage: every
// definition the stylist declares must be bound by exactly one feature.
// Without it, uncovered definitions are left to downstream defaulting.
func WithStrictStyles() Option {
	return func(b *GraphBuilder) { b.strict = true }
}

// GraphBuilder is the sole mutator of an in-progress document and the sole
// issuer of entity ids. It owns one monotonic counter per entity kind;
// every create call issues the next id for its kind, constructs the
// record, appends it to the aggregate, and returns it.
//
// All id issuance and collection mutation happen inside one builder-wide
// critical section, so a builder may be shared across goroutines without
// ever issuing duplicate ids. The aggregate returned by [GraphBuilder.Graph]
// is a detached snapshot and needs no synchronization.
type GraphBuilder struct {
	mu     sync.Mutex
	strict bool
	graph  VisualGraph

	nextText         TextID
	nextLayer        LayerID
	nextAspect       AspectID
	nextBlending     BlendingID
	nextColor        ColorID
	nextFeatureDef   FeatureDefID
	nextStylist      StylistID
	nextStyle        StyleID
	nextElement      ElementID
	nextRelationship RelationshipID
	nextView         ViewID
	nextEntity       EntityID
}

// NewGraphBuilder creates an empty document builder.
func NewGraphBuilder(opts ...Option) *GraphBuilder {
	b := &GraphBuilder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// CreateText adds a text entity.
func (b *GraphBuilder) CreateText(text string) Text {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := Text{ID: b.nextText, Text: text}
	b.nextText++
	b.graph.Texts = append(b.graph.Texts, t)
	return t
}

// CreateLayer adds a named layer.
func (b *GraphBuilder) CreateLayer(name string) Layer {
	b.mu.Lock()
	defer b.mu.Unlock()
	l := Layer{ID: b.nextLayer, Name: name}
	b.nextLayer++
	b.graph.Layers = append(b.graph.Layers, l)
	return l
}

// CreateAspect adds a named aspect.
func (b *GraphBuilder) CreateAspect(name string) Aspect {
	b.mu.Lock()
	defer b.mu.Unlock()
	a := Aspect{ID: b.nextAspect, Name: name}
	b.nextAspect++
	b.graph.Aspects = append(b.graph.Aspects, a)
	return a
}

// CreateBlending adds a named blending mode.
func (b *GraphBuilder) CreateBlending(name string) Blending {
	b.mu.Lock()
	defer b.mu.Unlock()
	bl := Blending{ID: b.nextBlending, Name: name}
	b.nextBlending++
	b.graph.Blendings = append(b.graph.Blendings, bl)
	return bl
}

// CreateColor adds a named color.
func (b *GraphBuilder) CreateColor(name string, value ColorValue) Color {
	b.mu.Lock()
	defer b.mu.Unlock()
	c := Color{ID: b.nextColor, Name: name, Value: value}
	b.nextColor++
	b.graph.Colors = append(b.graph.Colors, c)
	return c
}

// CreateFeatureDef adds a feature definition with the given cardinality
// range [minItems, maxItems] and value domain [minimum, maximum]. A
// definition whose ranges are inverted can never be satisfied, so
// construction fails fast with [ErrInvalidDefinition] and the collection
// is left unchanged.
func (b *GraphBuilder) CreateFeatureDef(name string, minItems, maxItems int, minimum, maximum float64) (FeatureDef, error) {
	if minItems > maxItems {
		return FeatureDef{}, fmt.Errorf("%w: minItems %d > maxItems %d", ErrInvalidDefinition, minItems, maxItems)
	}
	if minimum > maximum {
		return FeatureDef{}, fmt.Errorf("%w: minimum %v > maximum %v", ErrInvalidDefinition, minimum, maximum)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	d := FeatureDef{
		ID:       b.nextFeatureDef,
		Name:     name,
		Minimum:  minimum,
		Maximum:  maximum,
		MinItems: minItems,
		MaxItems: maxItems,
	}
	b.nextFeatureDef++
	b.graph.FeatureDefs = append(b.graph.FeatureDefs, d)
	return d, nil
}

// MustCreateFeatureDef is CreateFeatureDef for statically known bounds;
// it panics on inverted ranges.
func (b *GraphBuilder) MustCreateFeatureDef(name string, minItems, maxItems int, minimum, maximum float64) FeatureDef {
	d, err := b.CreateFeatureDef(name, minItems, maxItems, minimum, maximum)
	if err != nil {
		panic(err)
	}
	return d
}

// CreateStylist adds a named, versioned bundle referencing the given
// definitions. The id list is snapshotted at creation; later changes to a
// definition record do not alter which ids the stylist references.
func (b *GraphBuilder) CreateStylist(name, version string, defs []FeatureDef) Stylist {
	ids := make([]FeatureDefID, len(defs))
	for i, d := range defs {
		ids[i] = d.ID
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	s := Stylist{ID: b.nextStylist, Name: name, Version: version, FeatureDefIDs: ids}
	b.nextStylist++
	b.graph.Stylists = append(b.graph.Stylists, s)
	return s
}

// CreateStyle binds a validated feature list to a stylist. Every feature
// must reference one of the stylist's definitions, and no definition may
// be bound twice; under [WithStrictStyles] every definition must also be
// covered. On any violation the style collection is left unchanged
// (zero-or-one, never partial).
func (b *GraphBuilder) CreateStyle(stylist Stylist, features []Feature) (Style, error) {
	seen := make(map[FeatureDefID]bool, len(features))
	for _, f := range features {
		if !stylist.References(f.DefID) {
			return Style{}, &ReferenceError{
				Collection: "featureDef",
				ID:         int(f.DefID),
				Reason:     fmt.Sprintf("style for stylist %q", stylist.Name),
			}
		}
		if seen[f.DefID] {
			return Style{}, fmt.Errorf("%w: def %d in stylist %q", ErrDuplicateFeatureDef, int(f.DefID), stylist.Name)
		}
		seen[f.DefID] = true
	}
	if b.strict {
		for _, id := range stylist.FeatureDefIDs {
			if !seen[id] {
				return Style{}, &ReferenceError{
					Collection: "featureDef",
					ID:         int(id),
					Reason:     fmt.Sprintf("strict coverage of stylist %q", stylist.Name),
				}
			}
		}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	s := Style{ID: b.nextStyle, StylistID: stylist.ID, Features: cloneFeatures(features)}
	b.nextStyle++
	b.graph.Styles = append(b.graph.Styles, s)
	return s, nil
}

// CreateView adds a rectangular viewport. TopRight must be strictly above
// and to the right of BottomLeft, and the page ratio must be positive.
func (b *GraphBuilder) CreateView(topRight, bottomLeft geom.Point, pageRatio float64) (View, error) {
	if topRight.X <= bottomLeft.X || topRight.Y <= bottomLeft.Y {
		return View{}, fmt.Errorf("%w: topRight (%v,%v) bottomLeft (%v,%v)",
			ErrInvalidViewBounds, topRight.X, topRight.Y, bottomLeft.X, bottomLeft.Y)
	}
	if pageRatio <= 0 {
		return View{}, fmt.Errorf("%w: got %v", ErrInvalidPageRatio, pageRatio)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	v := View{ID: b.nextView, TopRight: topRight, BottomLeft: bottomLeft, PageRatio: pageRatio}
	b.nextView++
	b.graph.Views = append(b.graph.Views, v)
	return v, nil
}

// AddElement makes a finalized element visible in the aggregate. The id
// must have been reserved by this builder and not added before. An
// ElementBuilder that is never finalized leaves a reserved-but-absent id
// gap, which is accepted: ids are unique and monotonic per kind, never
// dense.
func (b *GraphBuilder) AddElement(el Element) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if el.ID < 0 || el.ID >= b.nextElement {
		return fmt.Errorf("%w: %d", ErrForeignElement, int(el.ID))
	}
	for _, existing := range b.graph.Elements {
		if existing.ID == el.ID {
			return fmt.Errorf("%w: %d", ErrDuplicateElement, int(el.ID))
		}
	}
	b.graph.Elements = append(b.graph.Elements, el.Clone())
	return nil
}

// AddRelationship adds a directed reference between two elements already
// present in the document, anchored at the given anchor indices. Passing
// the element records (rather than raw ids) keeps this the one place
// where referential integrity is enforced constructively at build time:
// both endpoints are looked up in the elements collection and each anchor
// index is checked against the stored endpoint's anchors. Self-loops are
// allowed.
func (b *GraphBuilder) AddRelationship(from, to Element, fromAnchor, toAnchor AnchorIndex) (Relationship, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	src, ok := b.findElement(from.ID)
	if !ok {
		return Relationship{}, &ReferenceError{Collection: "element", ID: int(from.ID), Reason: "relationship source"}
	}
	dst, ok := b.findElement(to.ID)
	if !ok {
		return Relationship{}, &ReferenceError{Collection: "element", ID: int(to.ID), Reason: "relationship target"}
	}
	if fromAnchor < 0 || int(fromAnchor) >= len(src.Anchors) {
		return Relationship{}, fmt.Errorf("%w: source anchor %d of element %d (have %d)",
			ErrInvalidAnchor, int(fromAnchor), int(from.ID), len(src.Anchors))
	}
	if toAnchor < 0 || int(toAnchor) >= len(dst.Anchors) {
		return Relationship{}, fmt.Errorf("%w: target anchor %d of element %d (have %d)",
			ErrInvalidAnchor, int(toAnchor), int(to.ID), len(dst.Anchors))
	}

	r := Relationship{
		ID:            b.nextRelationship,
		FromElementID: from.ID,
		ToElementID:   to.ID,
		FromAnchor:    fromAnchor,
		ToAnchor:      toAnchor,
	}
	b.nextRelationship++
	b.graph.Relationships = append(b.graph.Relationships, r)
	return r, nil
}

// NextEntityID issues the next application-level entity id. Entity ids
// share the per-kind counter discipline but are attached to elements by
// the caller rather than stored in their own collection.
func (b *GraphBuilder) NextEntityID() EntityID {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextEntity
	b.nextEntity++
	return id
}

// Graph returns a detached deep-copy snapshot of the document built so
// far. The snapshot never changes as the build session continues, so it
// can be handed to renderers, serializers, and concurrent readers.
func (b *GraphBuilder) Graph() *VisualGraph {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.graph.Clone()
}

// reserveElementID issues the next element id for an ElementBuilder.
func (b *GraphBuilder) reserveElementID() ElementID {
	b.mu.Lock()
	defer b.mu.Unlock()
	id := b.nextElement
	b.nextElement++
	return id
}

// findElement is a lock-held lookup in the elements collection.
func (b *GraphBuilder) findElement(id ElementID) (Element, bool) {
	for _, e := range b.graph.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}
