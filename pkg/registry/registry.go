package registry

import (
	"maps"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/zerfoo/zcaffe/pkg/caffe"
	"github.com/zerfoo/zcaffe/pkg/ir"
)

// ConversionContext holds the graph-level state a converter builds into.
type ConversionContext struct {
	Builder *ir.Builder
	Logger  logrus.FieldLogger
}

// Converter translates one Caffe layer into graph nodes. It must return
// exactly one node per top of the layer, named after outputNames.
type Converter interface {
	Convert(
		ctx *ConversionContext,
		layer *caffe.Layer,
		params []*caffe.Blob,
		inputs []*ir.Node,
		outputNames []string,
	) ([]*ir.Node, error)
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc func(
	ctx *ConversionContext,
	layer *caffe.Layer,
	params []*caffe.Blob,
	inputs []*ir.Node,
	outputNames []string,
) ([]*ir.Node, error)

// Convert calls f.
func (f ConverterFunc) Convert(
	ctx *ConversionContext,
	layer *caffe.Layer,
	params []*caffe.Blob,
	inputs []*ir.Node,
	outputNames []string,
) ([]*ir.Node, error) {
	return f(ctx, layer, params, inputs, outputNames)
}

// Registry maps Caffe layer types to converters. It is filled before any
// conversion runs and only read afterwards.
type Registry struct {
	converters map[string]Converter
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{converters: make(map[string]Converter)}
}

// Register adds a converter for a layer type, replacing any previous one.
func (r *Registry) Register(layerType string, c Converter) {
	if c == nil {
		panic("registry: nil converter for " + layerType)
	}
	r.converters[layerType] = c
}

// RegisterFunc is Register for a plain function.
func (r *Registry) RegisterFunc(layerType string, f ConverterFunc) {
	r.Register(layerType, f)
}

// Get returns the converter for a given layer type.
func (r *Registry) Get(layerType string) (Converter, bool) {
	c, ok := r.converters[layerType]
	return c, ok
}

// Types returns the registered layer types, sorted.
func (r *Registry) Types() []string {
	return slices.Sorted(maps.Keys(r.converters))
}
