// Package palette loads stylist vocabularies from TOML files.
//
// A palette file declares feature definitions and the stylists that bundle
// them, by name:
//
//	[[defs]]
//	name = "stroke-width"
//	min-items = 1
//	max-items = 1
//	minimum = 0.0
//	maximum = 100.0
//
//	[[stylists]]
//	name = "outline"
//	version = "1.0"
//	defs = ["stroke-width"]
//
// Loading a palette declares its vocabulary through a vgraph.GraphBuilder,
// so the definitions and stylists receive document ids and become part of
// the document being built. The returned Palette indexes both by name for
// convenient lookup while composing styles.
package palette
