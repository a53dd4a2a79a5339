package vgraph

import (
	"github.com/vizgraph/vizgraph/pkg/geom"
)

// Per-kind id types. Ids are plain integers on the wire but distinct types
// in the API so cross-kind mixups are compile errors.
type (
	// TextID identifies a text entity.
	TextID int
	// LayerID identifies a layer.
	LayerID int
	// AspectID identifies an aspect.
	AspectID int
	// BlendingID identifies a blending mode.
	BlendingID int
	// ColorID identifies a named color.
	ColorID int
	// FeatureDefID identifies a feature definition.
	FeatureDefID int
	// StylistID identifies a stylist.
	StylistID int
	// StyleID identifies a style.
	StyleID int
	// ElementID identifies a graph element.
	ElementID int
	// RelationshipID identifies a relationship.
	RelationshipID int
	// ViewID identifies a graph view.
	ViewID int
	// EntityID is an application-assigned identity for an element, issued
	// from its own counter and opaque to this package.
	EntityID int
)

// Unset foreign-key sentinels. A freshly reserved element references
// nothing; 0 cannot serve as the neutral value because id issuance starts
// at 0.
const (
	NoStyle    StyleID    = -1
	NoLayer    LayerID    = -1
	NoBlending BlendingID = -1
	NoEntity   EntityID   = -1
)

// AnchorIndex is a position in an element's anchors list. Relationships
// reference anchors by index rather than by point so they stay stable
// under coordinate edits.
type AnchorIndex int

// FeatureDef describes a named, bounded numeric vector slot: the value
// domain [Minimum, Maximum] and the allowed cardinality range
// [MinItems, MaxItems] for vectors bound to it.
type FeatureDef struct {
	ID       FeatureDefID `json:"id"`
	Name     string       `json:"name"`
	Minimum  float64      `json:"minimum"`
	Maximum  float64      `json:"maximum"`
	MinItems int          `json:"minItems"`
	MaxItems int          `json:"maxItems"`
}

// Feature is a concrete numeric vector bound to one feature definition.
type Feature struct {
	DefID  FeatureDefID `json:"defId"`
	Values []float64    `json:"values"`
}

// Stylist is a named, versioned bundle of feature definition ids
// describing the configurable surface of a visual treatment.
type Stylist struct {
	ID            StylistID      `json:"id"`
	Name          string         `json:"name"`
	Version       string         `json:"version"`
	FeatureDefIDs []FeatureDefID `json:"featureDefIds"`
}

// References reports whether the stylist's definition set contains id.
func (s Stylist) References(id FeatureDefID) bool {
	for _, d := range s.FeatureDefIDs {
		if d == id {
			return true
		}
	}
	return false
}

// Style is a concrete assignment of validated feature values to a
// stylist's definitions. Elements reference styles, never stylists.
type Style struct {
	ID        StyleID   `json:"id"`
	StylistID StylistID `json:"stylistId"`
	Features  []Feature `json:"features"`
}

// Layer groups elements into a named drawing plane.
type Layer struct {
	ID   LayerID `json:"id"`
	Name string  `json:"name"`
}

// Aspect is a named facet elements can be tagged with.
type Aspect struct {
	ID   AspectID `json:"id"`
	Name string   `json:"name"`
}

// Blending is a named compositing mode.
type Blending struct {
	ID   BlendingID `json:"id"`
	Name string     `json:"name"`
}

// Color is a named color with an HSLA or RGBA value.
type Color struct {
	ID    ColorID    `json:"id"`
	Name  string     `json:"name"`
	Value ColorValue `json:"value"`
}

// Text is a free-standing text entity.
type Text struct {
	ID   TextID `json:"id"`
	Text string `json:"text"`
}

// Element is a positioned, styled graph node, edge glyph, or annotation.
// Anchors are the attachment points relationships refer to by index.
type Element struct {
	ID        ElementID    `json:"id"`
	Center    geom.Point   `json:"center"`
	Outline   geom.Shape   `json:"outline"`
	Anchors   []geom.Point `json:"anchors"`
	StyleID   StyleID      `json:"styleId"`
	LayerID   LayerID      `json:"layerId"`
	AspectIDs []AspectID   `json:"aspectIds"`
	Blending  BlendingID   `json:"blendingId"`
	EntityID  EntityID     `json:"entityId"`
	Features  []Feature    `json:"features"`
}

// Clone returns a deep copy of the element.
func (e Element) Clone() Element {
	out := e
	out.Outline = e.Outline.Clone()
	if e.Anchors != nil {
		out.Anchors = make([]geom.Point, len(e.Anchors))
		copy(out.Anchors, e.Anchors)
	}
	if e.AspectIDs != nil {
		out.AspectIDs = make([]AspectID, len(e.AspectIDs))
		copy(out.AspectIDs, e.AspectIDs)
	}
	out.Features = cloneFeatures(e.Features)
	return out
}

// Relationship is a directed reference between two elements, anchored at
// an anchor index on each. Self-loops are allowed.
type Relationship struct {
	ID            RelationshipID `json:"id"`
	FromElementID ElementID      `json:"fromElementId"`
	ToElementID   ElementID      `json:"toElementId"`
	FromAnchor    AnchorIndex    `json:"fromAnchor"`
	ToAnchor      AnchorIndex    `json:"toAnchor"`
}

// View is a rectangular viewport over the document's coordinate space.
// TopRight must be strictly above and to the right of BottomLeft.
type View struct {
	ID         ViewID     `json:"id"`
	TopRight   geom.Point `json:"topRight"`
	BottomLeft geom.Point `json:"bottomLeft"`
	PageRatio  float64    `json:"pageRatio"`
}

func cloneFeatures(fs []Feature) []Feature {
	if fs == nil {
		return nil
	}
	out := make([]Feature, len(fs))
	for i, f := range fs {
		out[i] = f
		if f.Values != nil {
			out[i].Values = make([]float64, len(f.Values))
			copy(out[i].Values, f.Values)
		}
	}
	return out
}
