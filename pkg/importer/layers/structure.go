package layers

import (
	"github.com/pkg/errors"

	caffepb "github.com/zerfoo/zcaffe/internal/caffe"
	"github.com/zerfoo/zcaffe/pkg/caffe"
	"github.com/zerfoo/zcaffe/pkg/ir"
	"github.com/zerfoo/zcaffe/pkg/registry"
)

// ConvertInput converts an Input layer. Every top becomes a model input; a
// single shape applies to all tops.
func ConvertInput(
	ctx *registry.ConversionContext,
	layer *caffe.Layer,
	_ []*caffe.Blob,
	inputs []*ir.Node,
	outputNames []string,
) ([]*ir.Node, error) {
	if len(inputs) != 0 {
		return nil, errors.Errorf("Input layer %s must not have bottoms", layer.Name)
	}
	shapes := layer.Params.GetInputParam().GetShape()
	if len(shapes) != 1 && len(shapes) != len(outputNames) {
		return nil, errors.Errorf("Input layer %s has %d tops but %d shapes", layer.Name, len(outputNames), len(shapes))
	}
	nodes := make([]*ir.Node, len(outputNames))
	for i, name := range outputNames {
		shape := shapes[0]
		if len(shapes) > 1 {
			shape = shapes[i]
		}
		nodes[i] = ctx.Builder.Input(name, shape.GetDim())
	}
	return nodes, nil
}

// ConvertSplit converts a Split layer into one identity per top.
func ConvertSplit(
	ctx *registry.ConversionContext,
	layer *caffe.Layer,
	_ []*caffe.Blob,
	inputs []*ir.Node,
	outputNames []string,
) ([]*ir.Node, error) {
	if len(inputs) != 1 {
		return nil, errors.Errorf("Split layer %s must have 1 input, got %d", layer.Name, len(inputs))
	}
	nodes := make([]*ir.Node, len(outputNames))
	for i, name := range outputNames {
		nodes[i] = ctx.Builder.Op(name, ir.OpIdentity, inputs[0])
	}
	return nodes, nil
}

// ConvertConcat converts a Concat layer. The legacy concat_dim wins over
// axis when present.
func ConvertConcat(
	ctx *registry.ConversionContext,
	layer *caffe.Layer,
	_ []*caffe.Blob,
	inputs []*ir.Node,
	outputNames []string,
) ([]*ir.Node, error) {
	if len(inputs) == 0 || len(outputNames) != 1 {
		return nil, errors.Errorf("Concat layer %s must have inputs and 1 output", layer.Name)
	}
	p := layer.Params.GetConcatParam()
	axis := int64(p.GetAxis())
	if p != nil && p.ConcatDim != nil {
		axis = int64(p.GetConcatDim())
	}
	return single(ctx.Builder.Op(outputNames[0], ir.OpConcat, inputs...).MustSet("axis", axis))
}

// ConvertEltwise converts an Eltwise layer to Mul, Add or Max. Sum
// coefficients, when given, are attached to the Add node.
func ConvertEltwise(
	ctx *registry.ConversionContext,
	layer *caffe.Layer,
	_ []*caffe.Blob,
	inputs []*ir.Node,
	outputNames []string,
) ([]*ir.Node, error) {
	if len(inputs) < 2 || len(outputNames) != 1 {
		return nil, errors.Errorf("Eltwise layer %s must have at least 2 inputs and 1 output", layer.Name)
	}
	p := layer.Params.GetEltwiseParam()
	op := p.GetOperation()
	coeff := p.GetCoeff()
	if len(coeff) > 0 {
		if op != caffepb.EltwiseParameter_SUM {
			return nil, errors.Errorf("Eltwise layer %s: coeff is only valid for SUM", layer.Name)
		}
		if len(coeff) != len(inputs) {
			return nil, errors.Errorf("Eltwise layer %s has %d inputs but %d coefficients", layer.Name, len(inputs), len(coeff))
		}
	}

	switch op {
	case caffepb.EltwiseParameter_PROD:
		return single(ctx.Builder.Op(outputNames[0], ir.OpMul, inputs...))
	case caffepb.EltwiseParameter_MAX:
		return single(ctx.Builder.Op(outputNames[0], ir.OpMax, inputs...))
	}
	n := ctx.Builder.Op(outputNames[0], ir.OpAdd, inputs...)
	if len(coeff) > 0 {
		n.MustSet("coeff", coeff)
	}
	return single(n)
}

// ConvertFlatten converts a Flatten layer over [axis, end_axis].
func ConvertFlatten(
	ctx *registry.ConversionContext,
	layer *caffe.Layer,
	_ []*caffe.Blob,
	inputs []*ir.Node,
	outputNames []string,
) ([]*ir.Node, error) {
	if err := expectArity(layer, inputs, outputNames, 1); err != nil {
		return nil, err
	}
	p := layer.Params.GetFlattenParam()
	n := ctx.Builder.Op(outputNames[0], ir.OpFlatten, inputs[0]).
		MustSet("axis", int64(p.GetAxis())).
		MustSet("end_axis", int64(p.GetEndAxis()))
	return single(n)
}
