package vgraph

import "github.com/vizgraph/vizgraph/pkg/geom"

// ElementBuilder is a fluent accumulator for a single element. It reserves
// its element id from the backing GraphBuilder at construction, so a
// builder always owns a unique slot even before any field is set. Setters
// mutate the in-progress element and return the builder; list-valued
// setters append rather than replace.
//
// The in-progress element is visible to nobody else: only the immutable
// copy returned by [ElementBuilder.Element] leaves the builder, and only
// [GraphBuilder.AddElement] makes it part of the document.
type ElementBuilder struct {
	gb *GraphBuilder
	el Element
}

// NewElement reserves the next element id and returns a builder for it,
// initialized to neutral defaults: zero center, empty outline, no anchors,
// and unset foreign keys.
func (b *GraphBuilder) NewElement() *ElementBuilder {
	return &ElementBuilder{
		gb: b,
		el: Element{
			ID:       b.reserveElementID(),
			StyleID:  NoStyle,
			LayerID:  NoLayer,
			Blending: NoBlending,
			EntityID: NoEntity,
		},
	}
}

// ID returns the element id reserved for this builder.
func (e *ElementBuilder) ID() ElementID { return e.el.ID }

// SetCenter sets the element's center point.
func (e *ElementBuilder) SetCenter(p geom.Point) *ElementBuilder {
	e.el.Center = p
	return e
}

// SetOutline replaces the element's outline with the given shape.
func (e *ElementBuilder) SetOutline(s geom.Shape) *ElementBuilder {
	e.el.Outline = s.Clone()
	return e
}

// AddOutlinePoint appends a point to the polygon outline. If the outline
// currently holds a non-polygon variant it is replaced by a polygon
// containing only the new point.
func (e *ElementBuilder) AddOutlinePoint(p geom.Point) *ElementBuilder {
	if e.el.Outline.Kind != geom.KindPolygon {
		e.el.Outline = geom.PolygonShape()
	}
	e.el.Outline.Polygon = append(e.el.Outline.Polygon, p)
	return e
}

// AddAnchor appends an attachment point. Relationships reference anchors
// by their index in this list, in insertion order.
func (e *ElementBuilder) AddAnchor(p geom.Point) *ElementBuilder {
	e.el.Anchors = append(e.el.Anchors, p)
	return e
}

// SetStyle references the given style.
func (e *ElementBuilder) SetStyle(s Style) *ElementBuilder {
	e.el.StyleID = s.ID
	return e
}

// SetLayer assigns the element to the given layer.
func (e *ElementBuilder) SetLayer(l Layer) *ElementBuilder {
	e.el.LayerID = l.ID
	return e
}

// SetBlending references the given blending mode.
func (e *ElementBuilder) SetBlending(bl Blending) *ElementBuilder {
	e.el.Blending = bl.ID
	return e
}

// SetEntityID attaches an application-level entity identity.
func (e *ElementBuilder) SetEntityID(id EntityID) *ElementBuilder {
	e.el.EntityID = id
	return e
}

// AddAspect appends a reference to the given aspect.
func (e *ElementBuilder) AddAspect(a Aspect) *ElementBuilder {
	e.el.AspectIDs = append(e.el.AspectIDs, a.ID)
	return e
}

// AddFeature appends a per-element feature override. The value is expected
// to have passed through a [FeatureBuilder].
func (e *ElementBuilder) AddFeature(f Feature) *ElementBuilder {
	e.el.Features = append(e.el.Features, f)
	return e
}

// AddFeatures appends a list of feature overrides.
func (e *ElementBuilder) AddFeatures(fs []Feature) *ElementBuilder {
	e.el.Features = append(e.el.Features, fs...)
	return e
}

// Element returns the finished immutable record. The builder is not
// consumed: calling Element twice without intervening setters returns
// equal records. Hand the result to [GraphBuilder.AddElement] to make it
// visible in the document.
func (e *ElementBuilder) Element() Element {
	return e.el.Clone()
}
