package layers

import (
	"github.com/pkg/errors"

	"github.com/zerfoo/zcaffe/pkg/caffe"
	"github.com/zerfoo/zcaffe/pkg/ir"
	"github.com/zerfoo/zcaffe/pkg/registry"
)

// ConvertInnerProduct converts an InnerProduct layer into a Dense node fed by
// the input, the weight matrix and the optional bias.
func ConvertInnerProduct(
	ctx *registry.ConversionContext,
	layer *caffe.Layer,
	params []*caffe.Blob,
	inputs []*ir.Node,
	outputNames []string,
) ([]*ir.Node, error) {
	if err := expectArity(layer, inputs, outputNames, 1); err != nil {
		return nil, err
	}
	p := layer.Params.GetInnerProductParam()
	biasTerm := p.GetBiasTerm()
	want := 1
	if biasTerm {
		want = 2
	}
	if len(params) < want {
		return nil, errors.Errorf("InnerProduct layer %s needs %d blobs, got %d", layer.Name, want, len(params))
	}

	numOutput := int64(p.GetNumOutput())
	if numOutput == 0 {
		return nil, errors.Errorf("InnerProduct layer %s has invalid num_output %d", layer.Name, numOutput)
	}

	name := outputNames[0]
	args := []*ir.Node{inputs[0], constant(ctx, name, "weights", params[0])}
	if biasTerm {
		args = append(args, constant(ctx, name, "bias", params[1]))
	}
	n := ctx.Builder.Op(name, ir.OpDense, args...).
		MustSet("num_output", numOutput).
		MustSet("axis", int64(p.GetAxis())).
		MustSet("transpose", p.GetTranspose()).
		MustSet("bias_term", biasTerm)
	return single(n)
}

// ConvertBatchNorm converts a BatchNorm layer. Caffe stores the running mean
// and variance multiplied by a scale factor held in the third blob; the
// stored constants are divided by it.
func ConvertBatchNorm(
	ctx *registry.ConversionContext,
	layer *caffe.Layer,
	params []*caffe.Blob,
	inputs []*ir.Node,
	outputNames []string,
) ([]*ir.Node, error) {
	if err := expectArity(layer, inputs, outputNames, 1); err != nil {
		return nil, err
	}
	if len(params) < 3 {
		return nil, errors.Errorf("BatchNorm layer %s needs 3 blobs, got %d", layer.Name, len(params))
	}

	var factor float32
	if sf := values(params[2]); len(sf) > 0 && sf[0] != 0 {
		factor = 1 / sf[0]
	}

	name := outputNames[0]
	mean := constant(ctx, name, "mean", scaled(params[0], factor))
	variance := constant(ctx, name, "var", scaled(params[1], factor))
	eps := layer.Params.GetBatchNormParam().GetEps()
	return single(ctx.Builder.Op(name, ir.OpBatchNorm, inputs[0], mean, variance).MustSet("epsilon", eps))
}

func scaled(blob *caffe.Blob, factor float32) *caffe.Blob {
	data := values(blob)
	out := make([]float32, len(data))
	for i, v := range data {
		out[i] = v * factor
	}
	return &caffe.Blob{Shape: blob.Shape, Data: out}
}

// ConvertScale converts a Scale layer. The multiplier comes from the second
// bottom when there is one and from the first blob otherwise; a bias blob
// follows when bias_term is set.
func ConvertScale(
	ctx *registry.ConversionContext,
	layer *caffe.Layer,
	params []*caffe.Blob,
	inputs []*ir.Node,
	outputNames []string,
) ([]*ir.Node, error) {
	if (len(inputs) != 1 && len(inputs) != 2) || len(outputNames) != 1 {
		return nil, errors.Errorf("Scale layer %s must have 1 or 2 inputs and 1 output", layer.Name)
	}
	p := layer.Params.GetScaleParam()
	biasTerm := p.GetBiasTerm()

	name := outputNames[0]
	args := []*ir.Node{inputs[0]}
	next := 0
	if len(inputs) == 2 {
		args = append(args, inputs[1])
	} else {
		if len(params) == 0 {
			return nil, errors.Errorf("Scale layer %s has no scale blob", layer.Name)
		}
		args = append(args, constant(ctx, name, "gamma", params[0]))
		next = 1
	}
	if biasTerm {
		if len(params) <= next {
			return nil, errors.Errorf("Scale layer %s has no bias blob", layer.Name)
		}
		args = append(args, constant(ctx, name, "beta", params[next]))
	}

	n := ctx.Builder.Op(name, ir.OpScale, args...).
		MustSet("axis", int64(p.GetAxis())).
		MustSet("bias_term", biasTerm)
	return single(n)
}
