package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/vizgraph/vizgraph/pkg/vgraph"
)

// DecodeError reports that serialized input could not be decoded into the
// document shape. It carries the underlying JSON error; semantic problems
// (dangling ids, violated cardinalities) are not DecodeErrors and are only
// surfaced by vgraph.Validate.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string { return fmt.Sprintf("decode document: %v", e.Err) }

// Unwrap returns the underlying decoding error.
func (e *DecodeError) Unwrap() error { return e.Err }

// ReadJSON decodes a JSON document from r.
//
// The input must be a JSON object mirroring the VisualGraph collections:
//
//	{
//	  "layers": [{"id": 0, "name": "base"}],
//	  "elements": [...],
//	  ...
//	}
//
// Absent collections decode as empty. ReadJSON performs structural
// decoding only; run vgraph.Validate over the result before trusting an
// externally supplied document. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*vgraph.VisualGraph, error) {
	var g vgraph.VisualGraph
	if err := json.NewDecoder(r).Decode(&g); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &g, nil
}

// ParseGraph decodes a serialized document held in memory. It is a
// convenience wrapper around [ReadJSON] for []byte input.
func ParseGraph(content []byte) (*vgraph.VisualGraph, error) {
	var g vgraph.VisualGraph
	if err := json.Unmarshal(content, &g); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &g, nil
}

// ImportJSON reads a JSON document file at path.
func ImportJSON(path string) (*vgraph.VisualGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
