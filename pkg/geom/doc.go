// Package geom provides the pure geometry value types used by the visual
// graph document model: 2D points and the tagged Shape union (polygon,
// ellipse, rectangle).
//
// All types are plain values with no identity and no behavior beyond
// construction and validation. They serialize to a compact tagged JSON
// form so documents round-trip without loss.
package geom
