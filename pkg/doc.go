// Package pkg provides the core libraries for vizgraph visual documents.
//
// # Overview
//
// Vizgraph models layered vector diagrams as visual graph documents:
// styled elements connected by anchored relationships, grouped into
// layers, and framed by views. The pkg directory is organized as:
//
//  1. [geom] - Geometric primitives (points, shapes)
//  2. [vgraph] - The document model, builders, and validation
//  3. [io] - JSON document serialization
//  4. [palette] - TOML style vocabularies
//  5. [render] - DOT/SVG structural previews
//  6. [store] - Document persistence (file, Redis, MongoDB)
//  7. [cache] - Render artifact caching
//  8. [errors], [observability], [buildinfo] - Cross-cutting concerns
//
// # Architecture
//
// The typical data flow:
//
//	JSON document
//	     ↓
//	io.ParseGraph (structural decode)
//	     ↓
//	vgraph.Validate (referential integrity)
//	     ↓
//	render.ToDOT → render.SVG, or store.Store
//
// Documents authored in-process go through vgraph.GraphBuilder instead,
// which enforces the same invariants at construction time.
package pkg
