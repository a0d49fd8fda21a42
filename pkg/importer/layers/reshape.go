package layers

import (
	"github.com/pkg/errors"

	"github.com/zerfoo/zcaffe/pkg/caffe"
	"github.com/zerfoo/zcaffe/pkg/ir"
	"github.com/zerfoo/zcaffe/pkg/registry"
)

// ConvertReshape converts a Reshape layer. The target dims keep Caffe's
// meaning: 0 copies the input dim and -1 is inferred. axis and num_axes
// select the span of input dims being replaced.
func ConvertReshape(
	ctx *registry.ConversionContext,
	layer *caffe.Layer,
	_ []*caffe.Blob,
	inputs []*ir.Node,
	outputNames []string,
) ([]*ir.Node, error) {
	if err := expectArity(layer, inputs, outputNames, 1); err != nil {
		return nil, err
	}
	p := layer.Params.GetReshapeParam()
	if p.GetShape() == nil {
		return nil, errors.Errorf("Reshape layer %s has no target shape", layer.Name)
	}
	shape := p.GetShape().GetDim()

	inferred := 0
	for _, d := range shape {
		if d == -1 {
			inferred++
		} else if d < -1 {
			return nil, errors.Errorf("Reshape layer %s has invalid dim %d", layer.Name, d)
		}
	}
	if inferred > 1 {
		return nil, errors.Errorf("Reshape layer %s can infer at most one dim, got %d", layer.Name, inferred)
	}

	n := ctx.Builder.Op(outputNames[0], ir.OpReshape, inputs[0]).
		MustSet("shape", shape).
		MustSet("axis", int64(p.GetAxis())).
		MustSet("num_axes", int64(p.GetNumAxes()))
	return single(n)
}
