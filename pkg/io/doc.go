// Package io reads and writes visual graph documents in their JSON wire
// form.
//
// Decoding is structural only: ReadJSON checks that the input has the
// expected shape and field types, but does not re-run the referential or
// cardinality checks the builders enforce. A structurally well-formed
// document with dangling ids decodes successfully; callers that receive
// documents from untrusted sources should follow up with vgraph.Validate.
// This split is a deliberate trust boundary, not an omission.
//
// The format round-trips: exporting a built document and re-importing it
// yields element-wise equal collections.
package io
