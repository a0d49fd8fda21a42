package layers

import (
	"github.com/zerfoo/zcaffe/pkg/caffe"
	"github.com/zerfoo/zcaffe/pkg/ir"
	"github.com/zerfoo/zcaffe/pkg/registry"
)

// ConvertReLU converts a ReLU layer. A non-zero negative_slope turns it into
// a LeakyReLU with that slope as alpha.
func ConvertReLU(
	ctx *registry.ConversionContext,
	layer *caffe.Layer,
	_ []*caffe.Blob,
	inputs []*ir.Node,
	outputNames []string,
) ([]*ir.Node, error) {
	if err := expectArity(layer, inputs, outputNames, 1); err != nil {
		return nil, err
	}
	slope := layer.Params.GetReluParam().GetNegativeSlope()
	if slope != 0 {
		return single(ctx.Builder.Op(outputNames[0], ir.OpLeakyReLU, inputs[0]).MustSet("alpha", slope))
	}
	return single(ctx.Builder.Op(outputNames[0], ir.OpReLU, inputs[0]))
}
