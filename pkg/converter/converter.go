// Package converter turns a decoded Caffe network and its weights into a
// uniquely named ZMF graph.
//
// The conversion is a single forward pass over the layer list. Declared
// inputs become graph inputs followed by a cast to float32; every layer is
// handed to the converter registered for its type together with the nodes
// bound to its bottoms, its stored blobs and the graph names of its tops.
// Tensor names that are produced more than once, such as in-place
// activations, are disambiguated so that only the last production keeps the
// bare name.
package converter

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/zerfoo/zmf"

	"github.com/zerfoo/zcaffe/pkg/caffe"
	"github.com/zerfoo/zcaffe/pkg/ir"
	"github.com/zerfoo/zcaffe/pkg/registry"
)

// Engine converts networks using a fixed converter registry. It holds no
// per-conversion state and can be reused.
type Engine struct {
	registry   *registry.Registry
	logger     logrus.FieldLogger
	outputs    []string
	paramDType ir.DType
	graphName  string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for per-layer and diagnostic messages.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithOutputs overrides the model outputs. By default every tensor whose
// final production is never consumed is an output.
func WithOutputs(names ...string) Option {
	return func(e *Engine) {
		e.outputs = names
	}
}

// WithParamDType sets the element type used to store float parameters.
func WithParamDType(dtype ir.DType) Option {
	return func(e *Engine) {
		e.paramDType = dtype
	}
}

// WithGraphName overrides the graph name, which defaults to the net name.
func WithGraphName(name string) Option {
	return func(e *Engine) {
		e.graphName = name
	}
}

// New creates an engine dispatching through reg.
func New(reg *registry.Registry, opts ...Option) *Engine {
	if reg == nil {
		reg = registry.New()
	}
	e := &Engine{
		registry: reg,
		logger:   logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CaffeToZMF converts a network with a one-off engine.
func CaffeToZMF(net *caffe.Net, weights []caffe.LayerBlobs, reg *registry.Registry, opts ...Option) (*Result, error) {
	return New(reg, opts...).Convert(net, weights)
}

// Result is the outcome of a successful conversion.
type Result struct {
	Model *zmf.Model
	// Bindings maps every raw tensor name to the node that produced it last.
	Bindings map[string]*ir.Node
	// Outputs are the raw names exposed as model outputs.
	Outputs     []string
	Diagnostics Diagnostics
}

// Diagnostics are informational findings of a conversion.
type Diagnostics struct {
	// Remaining is the residual production counter of every tensor name.
	Remaining map[string]int
	// Dangling lists the graph names of hidden productions that no layer
	// consumed before the raw name was produced again.
	Dangling []string
}

// Convert runs one conversion. Any failure aborts it and no model is
// returned.
func (e *Engine) Convert(net *caffe.Net, weights []caffe.LayerBlobs) (*Result, error) {
	if net == nil {
		return nil, errors.WithStack(&MalformedModelError{Reason: "nil network"})
	}
	inputs, shapes, err := declaredInputs(net)
	if err != nil {
		return nil, err
	}

	name := e.graphName
	if name == "" {
		name = net.Name
	}
	logger := e.logger.WithField("graph", name)
	builder := ir.NewBuilder(name, ir.WithParamDType(e.paramDType))

	a := &assembly{
		registry: e.registry,
		logger:   logger,
		builder:  builder,
		ctx:      &registry.ConversionContext{Builder: builder, Logger: logger},
		weights:  IndexWeights(weights),
		names:    CountProductions(inputs, net.Layers).Resolver(),
		bindings: make(map[string]*ir.Node),
		current:  make(map[string]int),
	}

	for i, input := range inputs {
		if err := a.materializeInput(input, shapes[i]); err != nil {
			return nil, err
		}
	}
	if err := builder.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to materialize inputs")
	}

	for _, layer := range net.Layers {
		if err := a.convertLayer(layer); err != nil {
			return nil, err
		}
	}

	outputs, err := a.outputs(e.outputs)
	if err != nil {
		return nil, err
	}
	nodeNames := make([]string, len(outputs))
	for i, raw := range outputs {
		nodeNames[i] = a.bindings[raw].Name()
	}
	model, err := builder.Build(nodeNames)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build graph")
	}

	diag := Diagnostics{
		Remaining: a.names.Remaining(),
		Dangling:  a.dangling(),
	}
	logger.WithField("remaining", diag.Remaining).Debug("tensor production counters after conversion")
	for _, d := range diag.Dangling {
		logger.WithField("tensor", d).Warn("hidden tensor is never consumed")
	}
	logger.WithFields(logrus.Fields{
		"layers":  len(net.Layers),
		"nodes":   len(model.GetGraph().GetNodes()),
		"outputs": outputs,
	}).Info("converted network")

	return &Result{
		Model:       model,
		Bindings:    a.bindings,
		Outputs:     outputs,
		Diagnostics: diag,
	}, nil
}

// declaredInputs returns the input names and shapes. When either list is
// empty the model declares no inputs.
func declaredInputs(net *caffe.Net) ([]string, [][]int64, error) {
	if len(net.Inputs) == 0 || len(net.InputShapes) == 0 {
		return nil, nil, nil
	}
	if len(net.Inputs) != len(net.InputShapes) {
		return nil, nil, errors.WithStack(&MalformedModelError{
			Reason: fmt.Sprintf("declared %d inputs but %d input shapes", len(net.Inputs), len(net.InputShapes)),
		})
	}
	return net.Inputs, net.InputShapes, nil
}

// production is one binding of a raw tensor name. A node returned by a
// pass-through converter is bound again as a new production.
type production struct {
	raw      string
	node     *ir.Node
	consumed bool
}

// assembly is the mutable state of a single conversion.
type assembly struct {
	registry    *registry.Registry
	logger      logrus.FieldLogger
	builder     *ir.Builder
	ctx         *registry.ConversionContext
	weights     WeightIndex
	names       *Resolver
	bindings    map[string]*ir.Node
	current     map[string]int
	productions []production
}

func (a *assembly) bind(raw string, node *ir.Node) {
	a.bindings[raw] = node
	a.current[raw] = len(a.productions)
	a.productions = append(a.productions, production{raw: raw, node: node})
}

// claim fails when a graph name is already taken, which happens when a raw
// name looks like a generated one such as x_hide_1 or _origin_x.
func (a *assembly) claim(raw, name, layer string) error {
	if _, ok := a.builder.Lookup(name); !ok {
		return nil
	}
	reason := fmt.Sprintf("tensor %q needs graph name %q, which is already taken", raw, name)
	if layer != "" {
		reason += fmt.Sprintf(" (layer %q)", layer)
	}
	return errors.WithStack(&MalformedModelError{Reason: reason})
}

func (a *assembly) materializeInput(raw string, shape []int64) error {
	name := a.names.Resolve(raw)
	if err := a.claim(raw, ir.OriginPrefix+name, ""); err != nil {
		return err
	}
	if err := a.claim(raw, name, ""); err != nil {
		return err
	}
	a.bind(raw, a.builder.Input(name, shape))
	return nil
}

func (a *assembly) convertLayer(layer *caffe.Layer) error {
	inputs := make([]*ir.Node, len(layer.Bottoms))
	used := make([]int, len(layer.Bottoms))
	for i, bottom := range layer.Bottoms {
		node, ok := a.bindings[bottom]
		if !ok {
			return errors.WithStack(&UnresolvedReferenceError{Name: bottom, Layer: layer.Name})
		}
		inputs[i] = node
		used[i] = a.current[bottom]
	}

	conv, ok := a.registry.Get(layer.Type)
	if !ok {
		return errors.WithStack(&UnsupportedLayerError{Type: layer.Type, Layer: layer.Name})
	}

	outputNames := make([]string, len(layer.Tops))
	for i, top := range layer.Tops {
		outputNames[i] = a.names.Resolve(top)
		if err := a.claim(top, outputNames[i], layer.Name); err != nil {
			return err
		}
	}

	params := a.weights.Lookup(layer.Name)
	nodes, err := conv.Convert(a.ctx, layer, params, inputs, outputNames)
	if err != nil {
		return errors.Wrapf(err, "failed to convert %s layer %q", layer.Type, layer.Name)
	}
	if got := countNodes(nodes); got != len(layer.Tops) || len(nodes) != len(layer.Tops) {
		return errors.WithStack(&ConverterContractError{
			Layer: layer.Name,
			Type:  layer.Type,
			Want:  len(layer.Tops),
			Got:   got,
		})
	}
	if err := a.builder.Err(); err != nil {
		var dup *ir.DuplicateNameError
		if errors.As(err, &dup) {
			return errors.WithStack(&MalformedModelError{
				Reason: fmt.Sprintf("layer %q produces graph name %q, which is already taken", layer.Name, dup.Name),
			})
		}
		return errors.Wrapf(err, "failed to convert %s layer %q", layer.Type, layer.Name)
	}

	for _, p := range used {
		a.productions[p].consumed = true
	}
	for i, top := range layer.Tops {
		a.bind(top, nodes[i])
	}

	a.logger.WithFields(logrus.Fields{
		"layer":  layer.Name,
		"type":   layer.Type,
		"params": len(params),
		"tops":   outputNames,
	}).Debug("converted layer")
	return nil
}

func countNodes(nodes []*ir.Node) int {
	n := 0
	for _, node := range nodes {
		if node != nil {
			n++
		}
	}
	return n
}

// outputs returns the requested outputs, or the raw names whose final
// production is never consumed, in production order.
func (a *assembly) outputs(requested []string) ([]string, error) {
	if len(requested) > 0 {
		for _, name := range requested {
			if _, ok := a.bindings[name]; !ok {
				return nil, errors.WithStack(&UnresolvedReferenceError{Name: name})
			}
		}
		return requested, nil
	}
	var out []string
	seen := make(map[string]bool)
	for i, p := range a.productions {
		if seen[p.raw] || a.current[p.raw] != i || p.consumed {
			continue
		}
		seen[p.raw] = true
		out = append(out, p.raw)
	}
	return out, nil
}

func (a *assembly) dangling() []string {
	var out []string
	for i, p := range a.productions {
		if a.current[p.raw] == i || p.consumed {
			continue
		}
		out = append(out, p.node.Name())
	}
	return out
}
