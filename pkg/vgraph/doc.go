// Package vgraph defines the in-memory document model for visual graphs:
// styled geometric elements organized into layers, decorated with styles
// drawn from pluggable stylist definitions, and laid out within one or
// more rectangular views.
//
// The package is the authoring and validation layer beneath any renderer
// or persistence format. It owns the canonical representation
// ([VisualGraph]), the rules for constructing it incrementally and
// consistently ([GraphBuilder], [ElementBuilder], [FeatureBuilder]), and
// the rules for checking a deserialized document ([Validate]).
//
// # Identity
//
// Every entity carries a per-collection integer id, issued exclusively by
// a [GraphBuilder] at creation time. Ids are monotonically increasing
// from 0, never reused, and unique only within their own collection — a
// layer and a style may both carry id 3. Each kind has its own id type so
// a StyleID cannot be passed where a LayerID is expected.
//
// # Construction
//
// Callers declare vocabulary through CreateFeatureDef and CreateStylist,
// validate value vectors through a FeatureBuilder, bind them with
// CreateStyle, and assemble elements through ElementBuilders backed by the
// same GraphBuilder. The aggregate the builder hands off is an immutable
// snapshot, safe for unlimited concurrent readers.
//
// # Trust boundary
//
// Documents parsed from serialized form are decoded structurally only.
// Run [Validate] over an externally supplied document before trusting its
// cross-references; the builders are the only path that guarantees them
// by construction.
package vgraph
