package layers

import (
	"github.com/pkg/errors"

	"github.com/zerfoo/zcaffe/pkg/caffe"
	"github.com/zerfoo/zcaffe/pkg/ir"
	"github.com/zerfoo/zcaffe/pkg/registry"
)

// ConvertPermute converts a Permute layer into a Transpose.
func ConvertPermute(
	ctx *registry.ConversionContext,
	layer *caffe.Layer,
	_ []*caffe.Blob,
	inputs []*ir.Node,
	outputNames []string,
) ([]*ir.Node, error) {
	if err := expectArity(layer, inputs, outputNames, 1); err != nil {
		return nil, err
	}
	listed := layer.Params.GetPermuteParam().GetOrder()

	order := make([]int64, 0, len(listed))
	seen := make(map[int64]bool, len(listed))
	for _, v := range listed {
		axis := int64(v)
		if seen[axis] {
			return nil, errors.Errorf("Permute layer %s has invalid order %v", layer.Name, listed)
		}
		seen[axis] = true
		order = append(order, axis)
	}

	// Axes left out of order keep their relative position after the listed
	// ones. This needs the input rank, which is only known for static shapes.
	if rank := int64(len(inputs[0].Shape())); rank > 0 {
		for axis := int64(0); axis < rank; axis++ {
			if !seen[axis] {
				order = append(order, axis)
			}
		}
		if int64(len(order)) != rank {
			return nil, errors.Errorf("Permute layer %s order %v does not fit rank %d", layer.Name, order, rank)
		}
	}

	return single(ctx.Builder.Op(outputNames[0], ir.OpTranspose, inputs[0]).MustSet("perm", order))
}
