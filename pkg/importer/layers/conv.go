package layers

import (
	"github.com/pkg/errors"

	caffepb "github.com/zerfoo/zcaffe/internal/caffe"
	"github.com/zerfoo/zcaffe/pkg/caffe"
	"github.com/zerfoo/zcaffe/pkg/ir"
	"github.com/zerfoo/zcaffe/pkg/registry"
)

// spatial expands a 2D hyper-parameter written either as a repeated field or
// as the field_h/field_w pair. h and w are nil when the pair is unset.
func spatial(field string, v []uint32, h, w *uint32, def int64) ([]int64, error) {
	if h != nil || w != nil {
		if len(v) > 0 {
			return nil, errors.Errorf("%s and %s_h/%s_w are exclusive", field, field, field)
		}
		out := []int64{def, def}
		if h != nil {
			out[0] = int64(*h)
		}
		if w != nil {
			out[1] = int64(*w)
		}
		return out, nil
	}
	switch len(v) {
	case 0:
		return []int64{def, def}, nil
	case 1:
		return []int64{int64(v[0]), int64(v[0])}, nil
	case 2:
		return []int64{int64(v[0]), int64(v[1])}, nil
	default:
		return nil, errors.Errorf("%s has %d values, only 2D is supported", field, len(v))
	}
}

// optional lists a scalar field that is either set or absent.
func optional(v *uint32) []uint32 {
	if v == nil {
		return nil
	}
	return []uint32{*v}
}

type window struct {
	kernel, stride, pad []int64
}

func convWindow(p *caffepb.ConvolutionParameter) (window, error) {
	var w window
	var err error
	if p == nil || (len(p.KernelSize) == 0 && p.KernelH == nil && p.KernelW == nil) {
		return w, errors.New("kernel size is not set")
	}
	if w.kernel, err = spatial("kernel", p.GetKernelSize(), p.KernelH, p.KernelW, 0); err != nil {
		return w, err
	}
	if w.stride, err = spatial("stride", p.GetStride(), p.StrideH, p.StrideW, 1); err != nil {
		return w, err
	}
	if w.pad, err = spatial("pad", p.GetPad(), p.PadH, p.PadW, 0); err != nil {
		return w, err
	}
	return w, nil
}

func poolWindow(p *caffepb.PoolingParameter) (window, error) {
	var w window
	var err error
	if p == nil || (p.KernelSize == nil && p.KernelH == nil && p.KernelW == nil) {
		return w, errors.New("kernel size is not set")
	}
	if w.kernel, err = spatial("kernel", optional(p.KernelSize), p.KernelH, p.KernelW, 0); err != nil {
		return w, err
	}
	if w.stride, err = spatial("stride", optional(p.Stride), p.StrideH, p.StrideW, 1); err != nil {
		return w, err
	}
	if w.pad, err = spatial("pad", optional(p.Pad), p.PadH, p.PadW, 0); err != nil {
		return w, err
	}
	return w, nil
}

// ConvertConvolution converts a Convolution layer into a Conv2D node fed by
// the input, the filters and the optional bias.
func ConvertConvolution(
	ctx *registry.ConversionContext,
	layer *caffe.Layer,
	params []*caffe.Blob,
	inputs []*ir.Node,
	outputNames []string,
) ([]*ir.Node, error) {
	if err := expectArity(layer, inputs, outputNames, 1); err != nil {
		return nil, err
	}
	p := layer.Params.GetConvolutionParam()
	w, err := convWindow(p)
	if err != nil {
		return nil, errors.Wrapf(err, "Convolution layer %s", layer.Name)
	}
	dilation, err := spatial("dilation", p.GetDilation(), nil, nil, 1)
	if err != nil {
		return nil, errors.Wrapf(err, "Convolution layer %s", layer.Name)
	}

	biasTerm := p.GetBiasTerm()
	want := 1
	if biasTerm {
		want = 2
	}
	if len(params) < want {
		return nil, errors.Errorf("Convolution layer %s needs %d blobs, got %d", layer.Name, want, len(params))
	}

	name := outputNames[0]
	args := []*ir.Node{inputs[0], constant(ctx, name, "weights", params[0])}
	if biasTerm {
		args = append(args, constant(ctx, name, "bias", params[1]))
	}
	n := ctx.Builder.Op(name, ir.OpConv2D, args...).
		MustSet("num_output", int64(p.GetNumOutput())).
		MustSet("kernel_shape", w.kernel).
		MustSet("strides", w.stride).
		MustSet("pads", w.pad).
		MustSet("dilations", dilation).
		MustSet("group", int64(p.GetGroup())).
		MustSet("bias_term", biasTerm)
	return single(n)
}

// ConvertPooling converts a Pooling layer. Global pooling ignores the
// window; STOCHASTIC pooling has no inference equivalent and is rejected.
func ConvertPooling(
	ctx *registry.ConversionContext,
	layer *caffe.Layer,
	_ []*caffe.Blob,
	inputs []*ir.Node,
	outputNames []string,
) ([]*ir.Node, error) {
	if err := expectArity(layer, inputs, outputNames, 1); err != nil {
		return nil, err
	}
	p := layer.Params.GetPoolingParam()
	pool := p.GetPool()
	if pool == caffepb.PoolingParameter_STOCHASTIC {
		return nil, errors.Errorf("Pooling layer %s: STOCHASTIC pooling is not supported", layer.Name)
	}

	if p.GetGlobalPooling() {
		op := ir.OpGlobalMaxPool
		if pool == caffepb.PoolingParameter_AVE {
			op = ir.OpGlobalAvgPool
		}
		return single(ctx.Builder.Op(outputNames[0], op, inputs[0]))
	}

	w, err := poolWindow(p)
	if err != nil {
		return nil, errors.Wrapf(err, "Pooling layer %s", layer.Name)
	}

	op := ir.OpMaxPool2D
	if pool == caffepb.PoolingParameter_AVE {
		op = ir.OpAvgPool2D
	}
	n := ctx.Builder.Op(outputNames[0], op, inputs[0]).
		MustSet("kernel_shape", w.kernel).
		MustSet("strides", w.stride).
		MustSet("pads", w.pad).
		MustSet("ceil_mode", p.GetRoundMode() == caffepb.PoolingParameter_CEIL)
	return single(n)
}
