package vgraph

import "errors"

// FeatureBuilder accumulates validated feature values for composition into
// a style or an element. Add calls chain; a rejected vector is reported
// through [FeatureBuilder.Err] and [FeatureBuilder.FeatureList] and leaves
// the accumulator untouched, so the builder stays usable after a caller
// corrects its input.
//
// The accumulator is append-only and not deduplicated: adding the same
// definition twice yields two features bound to the same defId. Styles
// must not contain duplicates, so callers composing a style are expected
// to add each definition once.
type FeatureBuilder struct {
	features []Feature
	errs     []error
}

// NewFeatureBuilder creates an empty feature builder.
func NewFeatureBuilder() *FeatureBuilder {
	return &FeatureBuilder{}
}

// Add validates values against def's cardinality range and, on success,
// appends a feature binding them to def. On failure a [*CardinalityError]
// is recorded and the accumulator is left unchanged. Add returns the
// builder for chaining either way.
func (b *FeatureBuilder) Add(def FeatureDef, values []float64) *FeatureBuilder {
	if len(values) < def.MinItems || len(values) > def.MaxItems {
		b.errs = append(b.errs, &CardinalityError{
			DefID:   def.ID,
			DefName: def.Name,
			Min:     def.MinItems,
			Max:     def.MaxItems,
			Count:   len(values),
		})
		return b
	}
	vals := make([]float64, len(values))
	copy(vals, values)
	b.features = append(b.features, Feature{DefID: def.ID, Values: vals})
	return b
}

// Add1 is fixed-arity sugar over Add for single-value features.
func (b *FeatureBuilder) Add1(def FeatureDef, value float64) *FeatureBuilder {
	return b.Add(def, []float64{value})
}

// Add2 is fixed-arity sugar over Add for two-value features.
func (b *FeatureBuilder) Add2(def FeatureDef, v1, v2 float64) *FeatureBuilder {
	return b.Add(def, []float64{v1, v2})
}

// Err returns the accumulated validation errors joined, or nil if every
// Add succeeded so far.
func (b *FeatureBuilder) Err() error {
	return errors.Join(b.errs...)
}

// Len returns the number of accepted features.
func (b *FeatureBuilder) Len() int { return len(b.features) }

// FeatureList returns the accepted features in insertion order along with
// any accumulated errors. The returned slice is a copy; calling
// FeatureList twice without intervening adds yields equal results.
func (b *FeatureBuilder) FeatureList() ([]Feature, error) {
	return cloneFeatures(b.features), b.Err()
}

// MustFeatureList returns the accepted features and panics if any Add was
// rejected. Intended for statically known vocabularies in tests and
// examples.
func (b *FeatureBuilder) MustFeatureList() []Feature {
	fs, err := b.FeatureList()
	if err != nil {
		panic(err)
	}
	return fs
}
