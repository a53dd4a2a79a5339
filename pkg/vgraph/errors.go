package vgraph

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDefinition is returned by [GraphBuilder.CreateFeatureDef]
	// when the cardinality or value domain is inverted. A malformed
	// definition can never be satisfied, so construction fails fast.
	ErrInvalidDefinition = errors.New("feature definition bounds are inverted")

	// ErrInvalidViewBounds is returned by [GraphBuilder.CreateView] when
	// TopRight is not strictly above and to the right of BottomLeft.
	ErrInvalidViewBounds = errors.New("view bounds are degenerate or inverted")

	// ErrInvalidPageRatio is returned by [GraphBuilder.CreateView] when the
	// page ratio is not positive.
	ErrInvalidPageRatio = errors.New("page ratio must be positive")

	// ErrInvalidAnchor is returned by [GraphBuilder.AddRelationship] when an
	// anchor index falls outside the endpoint element's anchors list.
	ErrInvalidAnchor = errors.New("anchor index out of range")

	// ErrDuplicateElement is returned by [GraphBuilder.AddElement] when an
	// element with the same id is already in the document.
	ErrDuplicateElement = errors.New("element id already added")

	// ErrForeignElement is returned by [GraphBuilder.AddElement] when the
	// element's id was not reserved by this builder.
	ErrForeignElement = errors.New("element id was not issued by this builder")

	// ErrDuplicateFeatureDef is returned by [GraphBuilder.CreateStyle] when
	// two features in the same style bind the same definition.
	ErrDuplicateFeatureDef = errors.New("style binds a feature definition twice")
)

// CardinalityError reports a feature value vector whose length falls
// outside its definition's [MinItems, MaxItems] range. It is raised
// synchronously by [FeatureBuilder.Add] and never corrupts accumulated
// state: the rejected vector is simply not appended.
type CardinalityError struct {
	DefID   FeatureDefID
	DefName string
	Min     int // required minimum count
	Max     int // required maximum count
	Count   int // actual count supplied
}

// Error formats the violated bound. Too-short vectors report the minimum,
// too-long vectors the maximum.
func (e *CardinalityError) Error() string {
	if e.Count < e.Min {
		return fmt.Sprintf("%s %d should have at least %d values but got %d",
			e.DefName, int(e.DefID), e.Min, e.Count)
	}
	return fmt.Sprintf("%s %d should have no more than %d values but got %d",
		e.DefName, int(e.DefID), e.Max, e.Count)
}

// ReferenceError reports a cross-collection id that does not resolve:
// a style naming a feature definition outside its stylist, a relationship
// endpoint absent from the document, or a strict-mode style leaving a
// stylist definition uncovered. It is raised at construction time so the
// aggregate stays internally consistent once an operation succeeds.
type ReferenceError struct {
	Collection string // collection the id was looked up in
	ID         int    // the unresolved id
	Reason     string // what referenced it
}

func (e *ReferenceError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s %d does not resolve", e.Reason, e.Collection, e.ID)
	}
	return fmt.Sprintf("%s %d does not resolve", e.Collection, e.ID)
}
