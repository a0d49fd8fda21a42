package converter

import "fmt"

// UnresolvedReferenceError reports a tensor consumed before any layer or
// declared input produced it.
type UnresolvedReferenceError struct {
	Name string
	// Layer is the consuming layer, empty when the reference is a
	// requested model output.
	Layer string
}

func (e *UnresolvedReferenceError) Error() string {
	if e.Layer == "" {
		return fmt.Sprintf("tensor %q was never produced", e.Name)
	}
	return fmt.Sprintf("layer %q references tensor %q that was never produced", e.Layer, e.Name)
}

// UnsupportedLayerError reports a layer type with no registered converter.
type UnsupportedLayerError struct {
	Type  string
	Layer string
}

func (e *UnsupportedLayerError) Error() string {
	return fmt.Sprintf("unsupported layer type %q (layer %q)", e.Type, e.Layer)
}

// ConverterContractError reports a converter that did not return one node
// per top.
type ConverterContractError struct {
	Layer string
	Type  string
	Want  int
	Got   int
}

func (e *ConverterContractError) Error() string {
	return fmt.Sprintf("converter for %s layer %q returned %d nodes, want %d", e.Type, e.Layer, e.Got, e.Want)
}

// MalformedModelError reports a model declaration that cannot be converted.
type MalformedModelError struct {
	Reason string
}

func (e *MalformedModelError) Error() string {
	return "malformed model: " + e.Reason
}
