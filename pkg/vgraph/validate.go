package vgraph

import "fmt"

// Severity indicates whether a validation finding invalidates the
// document or is merely advisory.
type Severity int

const (
	// SeverityError marks a violated invariant: the document must not be
	// trusted by downstream consumers.
	SeverityError Severity = iota
	// SeverityWarning marks an advisory finding.
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// ValidationError describes a single finding from [Validate].
type ValidationError struct {
	Collection string   // collection the finding is about ("style", "element", ...)
	ID         int      // id within the collection, -1 for collection-level findings
	Message    string   // human-readable description
	Severity   Severity // error or warning
}

func (e ValidationError) Error() string {
	if e.ID < 0 {
		return fmt.Sprintf("[%s] %s: %s", e.Severity, e.Collection, e.Message)
	}
	return fmt.Sprintf("[%s] %s %d: %s", e.Severity, e.Collection, e.ID, e.Message)
}

// HasErrors reports whether any finding carries error severity.
func HasErrors(findings []ValidationError) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Validate re-checks every structural invariant over a document that did
// not pass through the validating builders: id uniqueness per collection,
// referential integrity across collections, feature cardinality and value
// domains, geometry, and view bounds. An empty result means the document
// is safe to hand to consumers. Validate is read-only and never mutates
// the document.
//
// Documents built through a [GraphBuilder] satisfy these invariants by
// construction; this pass exists for externally supplied documents, which
// the parser decodes structurally but does not trust semantically.
func Validate(g *VisualGraph) []ValidationError {
	var errs []ValidationError
	errs = append(errs, validateIDs(g)...)
	errs = append(errs, validateDefinitions(g)...)
	errs = append(errs, validateStylists(g)...)
	errs = append(errs, validateStyles(g)...)
	errs = append(errs, validateElements(g)...)
	errs = append(errs, validateRelationships(g)...)
	errs = append(errs, validateViews(g)...)
	return errs
}

// validateIDs checks that every collection's ids are non-negative and
// unique, and warns when a collection is not stored in id order (lookups
// still work, but fall back to linear scans).
func validateIDs(g *VisualGraph) []ValidationError {
	var errs []ValidationError
	check := func(collection string, ids []int) {
		seen := make(map[int]bool, len(ids))
		sorted := true
		for i, id := range ids {
			if id < 0 {
				errs = append(errs, ValidationError{
					Collection: collection, ID: id,
					Message:  "negative id",
					Severity: SeverityError,
				})
				continue
			}
			if seen[id] {
				errs = append(errs, ValidationError{
					Collection: collection, ID: id,
					Message:  "duplicate id",
					Severity: SeverityError,
				})
			}
			seen[id] = true
			if i > 0 && ids[i-1] >= id {
				sorted = false
			}
		}
		if !sorted {
			errs = append(errs, ValidationError{
				Collection: collection, ID: -1,
				Message:  "collection is not stored in id order",
				Severity: SeverityWarning,
			})
		}
	}

	check("text", collectIDs(g.Texts, func(t Text) int { return int(t.ID) }))
	check("layer", collectIDs(g.Layers, func(l Layer) int { return int(l.ID) }))
	check("aspect", collectIDs(g.Aspects, func(a Aspect) int { return int(a.ID) }))
	check("blending", collectIDs(g.Blendings, func(b Blending) int { return int(b.ID) }))
	check("color", collectIDs(g.Colors, func(c Color) int { return int(c.ID) }))
	check("featureDef", collectIDs(g.FeatureDefs, func(d FeatureDef) int { return int(d.ID) }))
	check("stylist", collectIDs(g.Stylists, func(s Stylist) int { return int(s.ID) }))
	check("style", collectIDs(g.Styles, func(s Style) int { return int(s.ID) }))
	check("element", collectIDs(g.Elements, func(e Element) int { return int(e.ID) }))
	check("relationship", collectIDs(g.Relationships, func(r Relationship) int { return int(r.ID) }))
	check("view", collectIDs(g.Views, func(v View) int { return int(v.ID) }))
	return errs
}

func collectIDs[T any](items []T, idOf func(T) int) []int {
	ids := make([]int, len(items))
	for i, it := range items {
		ids[i] = idOf(it)
	}
	return ids
}

func validateDefinitions(g *VisualGraph) []ValidationError {
	var errs []ValidationError
	for _, d := range g.FeatureDefs {
		if d.MinItems > d.MaxItems {
			errs = append(errs, ValidationError{
				Collection: "featureDef", ID: int(d.ID),
				Message:  fmt.Sprintf("minItems %d > maxItems %d", d.MinItems, d.MaxItems),
				Severity: SeverityError,
			})
		}
		if d.Minimum > d.Maximum {
			errs = append(errs, ValidationError{
				Collection: "featureDef", ID: int(d.ID),
				Message:  fmt.Sprintf("minimum %v > maximum %v", d.Minimum, d.Maximum),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

func validateStylists(g *VisualGraph) []ValidationError {
	var errs []ValidationError
	for _, s := range g.Stylists {
		seen := make(map[FeatureDefID]bool, len(s.FeatureDefIDs))
		for _, id := range s.FeatureDefIDs {
			if _, ok := g.FeatureDef(id); !ok {
				errs = append(errs, ValidationError{
					Collection: "stylist", ID: int(s.ID),
					Message:  fmt.Sprintf("references unknown featureDef %d", int(id)),
					Severity: SeverityError,
				})
			}
			if seen[id] {
				errs = append(errs, ValidationError{
					Collection: "stylist", ID: int(s.ID),
					Message:  fmt.Sprintf("repeats featureDef %d", int(id)),
					Severity: SeverityWarning,
				})
			}
			seen[id] = true
		}
	}
	return errs
}

func validateStyles(g *VisualGraph) []ValidationError {
	var errs []ValidationError
	for _, s := range g.Styles {
		stylist, ok := g.Stylist(s.StylistID)
		if !ok {
			errs = append(errs, ValidationError{
				Collection: "style", ID: int(s.ID),
				Message:  fmt.Sprintf("references unknown stylist %d", int(s.StylistID)),
				Severity: SeverityError,
			})
			continue
		}
		seen := make(map[FeatureDefID]bool, len(s.Features))
		for _, f := range s.Features {
			if !stylist.References(f.DefID) {
				errs = append(errs, ValidationError{
					Collection: "style", ID: int(s.ID),
					Message:  fmt.Sprintf("binds featureDef %d outside stylist %d", int(f.DefID), int(stylist.ID)),
					Severity: SeverityError,
				})
			}
			if seen[f.DefID] {
				errs = append(errs, ValidationError{
					Collection: "style", ID: int(s.ID),
					Message:  fmt.Sprintf("binds featureDef %d twice", int(f.DefID)),
					Severity: SeverityError,
				})
			}
			seen[f.DefID] = true
			errs = append(errs, validateFeature("style", int(s.ID), g, f)...)
		}
	}
	return errs
}

// validateFeature checks one feature value against its definition:
// the definition must exist, the vector length must fall inside the
// cardinality range, and each value should fall inside the value domain
// (advisory, since builders never enforced it).
func validateFeature(collection string, id int, g *VisualGraph, f Feature) []ValidationError {
	var errs []ValidationError
	def, ok := g.FeatureDef(f.DefID)
	if !ok {
		return append(errs, ValidationError{
			Collection: collection, ID: id,
			Message:  fmt.Sprintf("feature references unknown featureDef %d", int(f.DefID)),
			Severity: SeverityError,
		})
	}
	if len(f.Values) < def.MinItems || len(f.Values) > def.MaxItems {
		errs = append(errs, ValidationError{
			Collection: collection, ID: id,
			Message: fmt.Sprintf("feature %q has %d values, allowed [%d, %d]",
				def.Name, len(f.Values), def.MinItems, def.MaxItems),
			Severity: SeverityError,
		})
	}
	for _, v := range f.Values {
		if v < def.Minimum || v > def.Maximum {
			errs = append(errs, ValidationError{
				Collection: collection, ID: id,
				Message: fmt.Sprintf("feature %q value %v outside domain [%v, %v]",
					def.Name, v, def.Minimum, def.Maximum),
				Severity: SeverityWarning,
			})
		}
	}
	return errs
}

func validateElements(g *VisualGraph) []ValidationError {
	var errs []ValidationError
	for _, e := range g.Elements {
		if e.StyleID != NoStyle {
			if _, ok := g.Style(e.StyleID); !ok {
				errs = append(errs, ValidationError{
					Collection: "element", ID: int(e.ID),
					Message:  fmt.Sprintf("references unknown style %d", int(e.StyleID)),
					Severity: SeverityError,
				})
			}
		}
		if e.LayerID != NoLayer {
			if _, ok := g.Layer(e.LayerID); !ok {
				errs = append(errs, ValidationError{
					Collection: "element", ID: int(e.ID),
					Message:  fmt.Sprintf("references unknown layer %d", int(e.LayerID)),
					Severity: SeverityError,
				})
			}
		}
		if e.Blending != NoBlending {
			if _, ok := g.Blending(e.Blending); !ok {
				errs = append(errs, ValidationError{
					Collection: "element", ID: int(e.ID),
					Message:  fmt.Sprintf("references unknown blending %d", int(e.Blending)),
					Severity: SeverityError,
				})
			}
		}
		for _, aid := range e.AspectIDs {
			if _, ok := g.Aspect(aid); !ok {
				errs = append(errs, ValidationError{
					Collection: "element", ID: int(e.ID),
					Message:  fmt.Sprintf("references unknown aspect %d", int(aid)),
					Severity: SeverityError,
				})
			}
		}
		if err := e.Outline.Validate(); err != nil {
			errs = append(errs, ValidationError{
				Collection: "element", ID: int(e.ID),
				Message:  fmt.Sprintf("outline: %v", err),
				Severity: SeverityError,
			})
		}
		for _, f := range e.Features {
			errs = append(errs, validateFeature("element", int(e.ID), g, f)...)
		}
	}
	return errs
}

func validateRelationships(g *VisualGraph) []ValidationError {
	var errs []ValidationError
	for _, r := range g.Relationships {
		from, okFrom := g.Element(r.FromElementID)
		if !okFrom {
			errs = append(errs, ValidationError{
				Collection: "relationship", ID: int(r.ID),
				Message:  fmt.Sprintf("source element %d does not exist", int(r.FromElementID)),
				Severity: SeverityError,
			})
		}
		to, okTo := g.Element(r.ToElementID)
		if !okTo {
			errs = append(errs, ValidationError{
				Collection: "relationship", ID: int(r.ID),
				Message:  fmt.Sprintf("target element %d does not exist", int(r.ToElementID)),
				Severity: SeverityError,
			})
		}
		if okFrom && (r.FromAnchor < 0 || int(r.FromAnchor) >= len(from.Anchors)) {
			errs = append(errs, ValidationError{
				Collection: "relationship", ID: int(r.ID),
				Message: fmt.Sprintf("source anchor %d out of range (element %d has %d anchors)",
					int(r.FromAnchor), int(r.FromElementID), len(from.Anchors)),
				Severity: SeverityError,
			})
		}
		if okTo && (r.ToAnchor < 0 || int(r.ToAnchor) >= len(to.Anchors)) {
			errs = append(errs, ValidationError{
				Collection: "relationship", ID: int(r.ID),
				Message: fmt.Sprintf("target anchor %d out of range (element %d has %d anchors)",
					int(r.ToAnchor), int(r.ToElementID), len(to.Anchors)),
				Severity: SeverityError,
			})
		}
	}
	return errs
}

func validateViews(g *VisualGraph) []ValidationError {
	var errs []ValidationError
	for _, v := range g.Views {
		if v.TopRight.X <= v.BottomLeft.X || v.TopRight.Y <= v.BottomLeft.Y {
			errs = append(errs, ValidationError{
				Collection: "view", ID: int(v.ID),
				Message:  "bounds are degenerate or inverted",
				Severity: SeverityError,
			})
		}
		if v.PageRatio <= 0 {
			errs = append(errs, ValidationError{
				Collection: "view", ID: int(v.ID),
				Message:  fmt.Sprintf("page ratio %v is not positive", v.PageRatio),
				Severity: SeverityError,
			})
		}
	}
	return errs
}
