// Package layers holds the built-in Caffe layer converters.
package layers

import (
	"github.com/pkg/errors"

	"github.com/zerfoo/zcaffe/pkg/caffe"
	"github.com/zerfoo/zcaffe/pkg/ir"
	"github.com/zerfoo/zcaffe/pkg/registry"
)

// Register installs every built-in converter into reg.
func Register(reg *registry.Registry) {
	reg.RegisterFunc("Input", ConvertInput)
	reg.RegisterFunc("ReLU", ConvertReLU)
	reg.RegisterFunc("Sigmoid", ConvertSigmoid)
	reg.RegisterFunc("TanH", ConvertTanH)
	reg.RegisterFunc("Dropout", ConvertDropout)
	reg.RegisterFunc("Softmax", ConvertSoftmax)
	reg.RegisterFunc("Split", ConvertSplit)
	reg.RegisterFunc("Concat", ConvertConcat)
	reg.RegisterFunc("Eltwise", ConvertEltwise)
	reg.RegisterFunc("Flatten", ConvertFlatten)
	reg.RegisterFunc("Reshape", ConvertReshape)
	reg.RegisterFunc("Permute", ConvertPermute)
	reg.RegisterFunc("InnerProduct", ConvertInnerProduct)
	reg.RegisterFunc("Convolution", ConvertConvolution)
	reg.RegisterFunc("Pooling", ConvertPooling)
	reg.RegisterFunc("BatchNorm", ConvertBatchNorm)
	reg.RegisterFunc("Scale", ConvertScale)
}

// NewRegistry returns a registry holding the built-in converters.
func NewRegistry() *registry.Registry {
	reg := registry.New()
	Register(reg)
	return reg
}

// expectArity checks that a single-top layer has exactly n bottoms.
func expectArity(layer *caffe.Layer, inputs []*ir.Node, outputNames []string, n int) error {
	if len(inputs) != n {
		return errors.Errorf("%s layer %s must have %d input(s), got %d", layer.Type, layer.Name, n, len(inputs))
	}
	if len(outputNames) != 1 {
		return errors.Errorf("%s layer %s must have 1 output, got %d", layer.Type, layer.Name, len(outputNames))
	}
	return nil
}

// constant adds a parameter tensor owned by the node named owner.
func constant(ctx *registry.ConversionContext, owner, role string, blob *caffe.Blob) *ir.Node {
	return ctx.Builder.Const("_const_"+owner+"_"+role, blob)
}

// values returns the blob contents as float32, whichever precision it was
// stored in.
func values(blob *caffe.Blob) []float32 {
	if len(blob.Data) > 0 || len(blob.DoubleData) == 0 {
		return blob.Data
	}
	out := make([]float32, len(blob.DoubleData))
	for i, v := range blob.DoubleData {
		out[i] = float32(v)
	}
	return out
}

// single wraps one node into the result slice.
func single(n *ir.Node) ([]*ir.Node, error) {
	return []*ir.Node{n}, nil
}
