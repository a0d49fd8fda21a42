package layers

import (
	"github.com/zerfoo/zcaffe/pkg/caffe"
	"github.com/zerfoo/zcaffe/pkg/ir"
	"github.com/zerfoo/zcaffe/pkg/registry"
)

func unary(ctx *registry.ConversionContext, layer *caffe.Layer, inputs []*ir.Node, outputNames []string, opType string) ([]*ir.Node, error) {
	if err := expectArity(layer, inputs, outputNames, 1); err != nil {
		return nil, err
	}
	return single(ctx.Builder.Op(outputNames[0], opType, inputs[0]))
}

// ConvertSigmoid converts a Sigmoid layer.
func ConvertSigmoid(ctx *registry.ConversionContext, layer *caffe.Layer, _ []*caffe.Blob, inputs []*ir.Node, outputNames []string) ([]*ir.Node, error) {
	return unary(ctx, layer, inputs, outputNames, ir.OpSigmoid)
}

// ConvertTanH converts a TanH layer.
func ConvertTanH(ctx *registry.ConversionContext, layer *caffe.Layer, _ []*caffe.Blob, inputs []*ir.Node, outputNames []string) ([]*ir.Node, error) {
	return unary(ctx, layer, inputs, outputNames, ir.OpTanh)
}

// ConvertDropout converts a Dropout layer, which is the identity at
// inference time.
func ConvertDropout(ctx *registry.ConversionContext, layer *caffe.Layer, _ []*caffe.Blob, inputs []*ir.Node, outputNames []string) ([]*ir.Node, error) {
	return unary(ctx, layer, inputs, outputNames, ir.OpIdentity)
}

// ConvertSoftmax converts a Softmax layer over softmax_param.axis.
func ConvertSoftmax(ctx *registry.ConversionContext, layer *caffe.Layer, _ []*caffe.Blob, inputs []*ir.Node, outputNames []string) ([]*ir.Node, error) {
	nodes, err := unary(ctx, layer, inputs, outputNames, ir.OpSoftmax)
	if err != nil {
		return nil, err
	}
	nodes[0].MustSet("axis", int64(layer.Params.GetSoftmaxParam().GetAxis()))
	return nodes, nil
}
