// Package ir builds ZMF computation graphs.
//
// Graph inputs, constant parameters and operator nodes are created through a
// Builder; every node has a unique name inside its builder and exposes a
// single output under that same name. Errors are recorded on the builder and
// reported by Err and Build, so a converter can chain several calls and check
// once.
//
//	b := ir.NewBuilder("net")
//	x := b.Input("data", []int64{1, 3, 224, 224})
//	y := b.Op("relu1", ir.OpReLU, x)
//	model, err := b.Build([]string{y.Name()})
package ir

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/zerfoo/zmf"

	"github.com/zerfoo/zcaffe/pkg/caffe"
)

// OriginPrefix marks the raw graph input behind a model input. The float32
// cast that follows it carries the user-facing name.
const OriginPrefix = "_origin_"

// Op types emitted by the converters.
const (
	OpCast          = "Cast"
	OpIdentity      = "Identity"
	OpReLU          = "ReLU"
	OpLeakyReLU     = "LeakyReLU"
	OpSigmoid       = "Sigmoid"
	OpTanh          = "Tanh"
	OpSoftmax       = "Softmax"
	OpConcat        = "Concat"
	OpAdd           = "Add"
	OpMul           = "Mul"
	OpMax           = "Max"
	OpFlatten       = "Flatten"
	OpDense         = "Dense"
	OpConv2D        = "Conv2D"
	OpMaxPool2D     = "MaxPool2D"
	OpAvgPool2D     = "AvgPool2D"
	OpBatchNorm     = "BatchNorm"
	OpScale         = "Scale"
	OpGlobalMaxPool = "GlobalMaxPool"
	OpGlobalAvgPool = "GlobalAvgPool"
	OpReshape       = "Reshape"
	OpTranspose     = "Transpose"
)

// Builder accumulates the nodes of one graph.
type Builder struct {
	name       string
	paramDType DType
	nodes      []*Node
	values     map[string]*Node
	inputs     []*Node
	params     map[string]*zmf.Tensor
	err        error // first error encountered during building
}

// Option configures a Builder.
type Option func(*Builder)

// WithParamDType sets the element type used to store constant parameters.
func WithParamDType(dtype DType) Option {
	return func(b *Builder) {
		b.paramDType = dtype
	}
}

// NewBuilder creates an empty graph builder.
func NewBuilder(name string, opts ...Option) *Builder {
	b := &Builder{
		name:       name,
		paramDType: Float32,
		values:     make(map[string]*Node),
		params:     make(map[string]*zmf.Tensor),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the graph name.
func (b *Builder) Name() string {
	return b.name
}

// Err returns the first error encountered during building, if any.
func (b *Builder) Err() error {
	return b.err
}

// DuplicateNameError reports a node name used twice in one graph.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return "duplicate node name " + strconv.Quote(e.Name)
}

func (b *Builder) setErr(err error) {
	if b.err == nil {
		b.err = err
	}
}

// register adds n under its name. A name can only be used once per graph.
func (b *Builder) register(n *Node) *Node {
	if n.name == "" {
		b.setErr(errors.Errorf("%s node with empty name", n.kind))
	} else if _, dup := b.values[n.name]; dup {
		b.setErr(errors.WithStack(&DuplicateNameError{Name: n.name}))
	} else {
		b.values[n.name] = n
	}
	b.nodes = append(b.nodes, n)
	return n
}

// Param adds a graph input of the given shape.
func (b *Builder) Param(name string, shape []int64) *Node {
	n := &Node{name: name, kind: KindParam, shape: shape, builder: b}
	b.inputs = append(b.inputs, n)
	return b.register(n)
}

// Const adds a constant parameter tensor holding the blob data.
func (b *Builder) Const(name string, blob *caffe.Blob) *Node {
	n := &Node{name: name, kind: KindConst, builder: b}
	if blob == nil {
		b.setErr(errors.Errorf("constant %q: nil blob", name))
		return b.register(n)
	}
	tensor, err := blobTensor(blob, b.paramDType)
	if err != nil {
		b.setErr(errors.Wrapf(err, "constant %q", name))
	} else {
		b.params[name] = tensor
		n.shape = tensor.Shape
	}
	return b.register(n)
}

// Op adds an operator node consuming the given inputs.
func (b *Builder) Op(name, opType string, inputs ...*Node) *Node {
	n := &Node{
		name:    name,
		kind:    KindOp,
		opType:  opType,
		inputs:  inputs,
		attrs:   make(map[string]*zmf.Attribute),
		builder: b,
	}
	for i, in := range inputs {
		switch {
		case in == nil:
			b.setErr(errors.Errorf("%s %q: input %d is nil", opType, name, i))
		case in.builder != b:
			b.setErr(errors.Errorf("%s %q: input %q belongs to another graph", opType, name, in.name))
		}
	}
	return b.register(n)
}

// ToFloat casts x to the canonical float32 representation.
func (b *Builder) ToFloat(name string, x *Node) *Node {
	n := b.Op(name, OpCast, x)
	if x != nil {
		n.shape = x.shape
	}
	if err := n.Set("to", "float32"); err != nil {
		b.setErr(err)
	}
	return n
}

// Input adds a model input: a graph input named OriginPrefix+name followed
// by a float32 cast named name. The cast is returned.
func (b *Builder) Input(name string, shape []int64) *Node {
	return b.ToFloat(name, b.Param(OriginPrefix+name, shape))
}

// Lookup returns the node registered under name.
func (b *Builder) Lookup(name string) (*Node, bool) {
	n, ok := b.values[name]
	return n, ok
}

// Build emits the ZMF model. outputs name the nodes exposed as graph outputs.
func (b *Builder) Build(outputs []string) (*zmf.Model, error) {
	if b.err != nil {
		return nil, b.err
	}
	graph := &zmf.Graph{
		Nodes:      make([]*zmf.Node, 0, len(b.nodes)),
		Parameters: b.params,
		Inputs:     make([]*zmf.ValueInfo, 0, len(b.inputs)),
		Outputs:    make([]*zmf.ValueInfo, 0, len(outputs)),
	}
	for _, in := range b.inputs {
		graph.Inputs = append(graph.Inputs, &zmf.ValueInfo{Name: in.name, Shape: in.shape})
	}
	for _, n := range b.nodes {
		if n.kind != KindOp {
			continue
		}
		inputs := make([]string, len(n.inputs))
		for i, in := range n.inputs {
			inputs[i] = in.name
		}
		graph.Nodes = append(graph.Nodes, &zmf.Node{
			Name:       n.name,
			OpType:     n.opType,
			Inputs:     inputs,
			Outputs:    []string{n.name},
			Attributes: n.attrs,
		})
	}
	for _, name := range outputs {
		n, ok := b.values[name]
		if !ok {
			return nil, errors.Errorf("output %q is not a node of graph %q", name, b.name)
		}
		graph.Outputs = append(graph.Outputs, &zmf.ValueInfo{Name: name, Shape: n.shape})
	}
	return &zmf.Model{
		Graph: graph,
		Metadata: &zmf.Metadata{
			ProducerName:    "zcaffe",
			ProducerVersion: "0.1.0",
		},
	}, nil
}
