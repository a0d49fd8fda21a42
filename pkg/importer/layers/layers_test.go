package layers

import (
	"encoding/binary"
	"fmt"
	"math"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerfoo/zmf"

	"github.com/zerfoo/zcaffe/pkg/caffe"
	"github.com/zerfoo/zcaffe/pkg/converter"
	"github.com/zerfoo/zcaffe/pkg/ir"
	"github.com/zerfoo/zcaffe/pkg/registry"
)

// convert parses a single layer definition and runs its built-in converter
// against n graph inputs named in0, in1, ...
func convert(t *testing.T, src string, params []*caffe.Blob, n int) (*ir.Builder, []*ir.Node, error) {
	t.Helper()
	net, err := caffe.ParsePrototxt([]byte(src))
	require.NoError(t, err)
	require.Len(t, net.Layers, 1)
	layer := net.Layers[0]

	b := ir.NewBuilder("test")
	ctx := &registry.ConversionContext{Builder: b, Logger: logrus.New()}
	inputs := make([]*ir.Node, n)
	for i := range inputs {
		inputs[i] = b.Input(fmt.Sprintf("in%d", i), []int64{1, 3, 4, 4})
	}
	conv, ok := NewRegistry().Get(layer.Type)
	require.True(t, ok, "no converter for %s", layer.Type)

	nodes, err := conv.Convert(ctx, layer, params, inputs, layer.Tops)
	if err == nil {
		require.NoError(t, b.Err())
	}
	return b, nodes, err
}

func attr(t *testing.T, n *ir.Node, key string) *zmf.Attribute {
	t.Helper()
	a, ok := n.Attribute(key)
	require.True(t, ok, "missing attribute %s on %s", key, n.Name())
	return a
}

func inputNames(n *ir.Node) []string {
	var out []string
	for _, in := range n.Inputs() {
		out = append(out, in.Name())
	}
	return out
}

func blob(shape []int64, data ...float32) *caffe.Blob {
	return &caffe.Blob{Shape: shape, Data: data}
}

func floats(t *testing.T, tensor *zmf.Tensor) []float32 {
	t.Helper()
	require.Equal(t, zmf.Tensor_FLOAT32, tensor.GetDtype())
	data := tensor.GetData()
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out
}

func TestNewRegistry(t *testing.T) {
	types := NewRegistry().Types()
	for _, typ := range []string{"Input", "ReLU", "Sigmoid", "TanH", "Dropout", "Softmax", "Split", "Concat",
		"Eltwise", "Flatten", "Reshape", "Permute", "InnerProduct", "Convolution", "Pooling", "BatchNorm", "Scale"} {
		assert.Contains(t, types, typ)
	}
}

func TestActivations(t *testing.T) {
	tests := []struct {
		name string
		src  string
		op   string
	}{
		{"relu", `layer { name: "r" type: "ReLU" bottom: "in0" top: "r" }`, ir.OpReLU},
		{"sigmoid", `layer { name: "s" type: "Sigmoid" bottom: "in0" top: "s" }`, ir.OpSigmoid},
		{"tanh", `layer { name: "t" type: "TanH" bottom: "in0" top: "t" }`, ir.OpTanh},
		{"dropout", `layer { name: "d" type: "Dropout" bottom: "in0" top: "d" dropout_param { dropout_ratio: 0.5 } }`, ir.OpIdentity},
		{"softmax", `layer { name: "p" type: "Softmax" bottom: "in0" top: "p" }`, ir.OpSoftmax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, nodes, err := convert(t, tt.src, nil, 1)
			require.NoError(t, err)
			require.Len(t, nodes, 1)
			assert.Equal(t, tt.op, nodes[0].OpType())
			assert.Equal(t, []string{"in0"}, inputNames(nodes[0]))
		})
	}
}

func TestReLU_NegativeSlope(t *testing.T) {
	_, nodes, err := convert(t, `layer { name: "r" type: "ReLU" bottom: "in0" top: "r" relu_param { negative_slope: 0.1 } }`, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, ir.OpLeakyReLU, nodes[0].OpType())
	assert.InDelta(t, 0.1, attr(t, nodes[0], "alpha").GetF(), 1e-6)
}

func TestSoftmax_Axis(t *testing.T) {
	_, nodes, err := convert(t, `layer { name: "p" type: "Softmax" bottom: "in0" top: "p" }`, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), attr(t, nodes[0], "axis").GetI())

	_, nodes, err = convert(t, `layer { name: "p" type: "Softmax" bottom: "in0" top: "p" softmax_param { axis: 2 } }`, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), attr(t, nodes[0], "axis").GetI())
}

func TestUnary_Arity(t *testing.T) {
	_, _, err := convert(t, `layer { name: "r" type: "ReLU" bottom: "in0" bottom: "in1" top: "r" }`, nil, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must have 1 input(s)")
}

func TestInput(t *testing.T) {
	b, nodes, err := convert(t, `layer { name: "data" type: "Input" top: "data" top: "label"
		input_param { shape { dim: 1 dim: 3 dim: 8 dim: 8 } } }`, nil, 0)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, ir.OpCast, nodes[0].OpType())
	assert.Equal(t, "label", nodes[1].Name())

	origin, ok := b.Lookup("_origin_label")
	require.True(t, ok)
	assert.Equal(t, ir.KindParam, origin.Kind())
	assert.Equal(t, []int64{1, 3, 8, 8}, origin.Shape())

	_, _, err = convert(t, `layer { name: "data" type: "Input" top: "a" top: "b" top: "c"
		input_param { shape { dim: 1 } shape { dim: 2 } } }`, nil, 0)
	assert.Error(t, err)
}

func TestSplit(t *testing.T) {
	_, nodes, err := convert(t, `layer { name: "s" type: "Split" bottom: "in0" top: "a" top: "b" }`, nil, 1)
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	for i, name := range []string{"a", "b"} {
		assert.Equal(t, name, nodes[i].Name())
		assert.Equal(t, ir.OpIdentity, nodes[i].OpType())
	}
}

func TestConcat(t *testing.T) {
	_, nodes, err := convert(t, `layer { name: "c" type: "Concat" bottom: "in0" bottom: "in1" top: "c" }`, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"in0", "in1"}, inputNames(nodes[0]))
	assert.Equal(t, int64(1), attr(t, nodes[0], "axis").GetI())

	_, nodes, err = convert(t, `layer { name: "c" type: "Concat" bottom: "in0" bottom: "in1" top: "c" concat_param { concat_dim: 2 } }`, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), attr(t, nodes[0], "axis").GetI())
}

func TestEltwise(t *testing.T) {
	tests := []struct {
		name  string
		param string
		op    string
	}{
		{"default", ``, ir.OpAdd},
		{"prod", `eltwise_param { operation: PROD }`, ir.OpMul},
		{"max by number", `eltwise_param { operation: 2 }`, ir.OpMax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := `layer { name: "e" type: "Eltwise" bottom: "in0" bottom: "in1" top: "e" ` + tt.param + ` }`
			_, nodes, err := convert(t, src, nil, 2)
			require.NoError(t, err)
			assert.Equal(t, tt.op, nodes[0].OpType())
		})
	}

	_, nodes, err := convert(t, `layer { name: "e" type: "Eltwise" bottom: "in0" bottom: "in1" top: "e"
		eltwise_param { operation: SUM coeff: 1 coeff: -1 } }`, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, -1}, attr(t, nodes[0], "coeff").GetFloats().GetVal())

	errs := []string{
		`layer { name: "e" type: "Eltwise" bottom: "in0" top: "e" }`,
		`layer { name: "e" type: "Eltwise" bottom: "in0" bottom: "in1" top: "e" eltwise_param { coeff: 1 } }`,
		`layer { name: "e" type: "Eltwise" bottom: "in0" bottom: "in1" top: "e" eltwise_param { operation: PROD coeff: 1 coeff: 1 } }`,
	}
	for _, src := range errs {
		net, err := caffe.ParsePrototxt([]byte(src))
		require.NoError(t, err)
		_, _, err = convert(t, src, nil, len(net.Layers[0].Bottoms))
		assert.Error(t, err, src)
	}

	_, err = caffe.ParsePrototxt([]byte(`layer { name: "e" type: "Eltwise" bottom: "in0" bottom: "in1" top: "e"
		eltwise_param { operation: MIN } }`))
	assert.Error(t, err)
}

func TestFlatten(t *testing.T) {
	_, nodes, err := convert(t, `layer { name: "f" type: "Flatten" bottom: "in0" top: "f" flatten_param { axis: 2 } }`, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), attr(t, nodes[0], "axis").GetI())
	assert.Equal(t, int64(-1), attr(t, nodes[0], "end_axis").GetI())
}

func TestReshape(t *testing.T) {
	_, nodes, err := convert(t, `layer { name: "r" type: "Reshape" bottom: "in0" top: "r"
		reshape_param { shape { dim: 0 dim: -1 } } }`, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, ir.OpReshape, nodes[0].OpType())
	assert.Equal(t, []int64{0, -1}, attr(t, nodes[0], "shape").GetInts().GetVal())
	assert.Equal(t, int64(0), attr(t, nodes[0], "axis").GetI())
	assert.Equal(t, int64(-1), attr(t, nodes[0], "num_axes").GetI())

	_, _, err = convert(t, `layer { name: "r" type: "Reshape" bottom: "in0" top: "r"
		reshape_param { shape { dim: -1 dim: -1 } } }`, nil, 1)
	assert.Error(t, err)

	_, _, err = convert(t, `layer { name: "r" type: "Reshape" bottom: "in0" top: "r" }`, nil, 1)
	assert.Error(t, err)
}

func TestPermute(t *testing.T) {
	_, nodes, err := convert(t, `layer { name: "p" type: "Permute" bottom: "in0" top: "p"
		permute_param { order: 0 order: 2 order: 3 order: 1 } }`, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, ir.OpTranspose, nodes[0].OpType())
	assert.Equal(t, []int64{0, 2, 3, 1}, attr(t, nodes[0], "perm").GetInts().GetVal())

	_, nodes, err = convert(t, `layer { name: "p" type: "Permute" bottom: "in0" top: "p"
		permute_param { order: 0 order: 2 } }`, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 2, 1, 3}, attr(t, nodes[0], "perm").GetInts().GetVal())

	_, _, err = convert(t, `layer { name: "p" type: "Permute" bottom: "in0" top: "p"
		permute_param { order: 1 order: 1 } }`, nil, 1)
	assert.Error(t, err)

	_, _, err = convert(t, `layer { name: "p" type: "Permute" bottom: "in0" top: "p"
		permute_param { order: 0 order: 7 } }`, nil, 1)
	assert.Error(t, err)
}

func TestInnerProduct(t *testing.T) {
	weights := blob([]int64{2, 3}, 1, 2, 3, 4, 5, 6)
	bias := blob([]int64{2}, 0.5, -0.5)
	src := `layer { name: "fc" type: "InnerProduct" bottom: "in0" top: "fc" inner_product_param { num_output: 2 } }`

	b, nodes, err := convert(t, src, []*caffe.Blob{weights, bias}, 1)
	require.NoError(t, err)
	n := nodes[0]
	assert.Equal(t, ir.OpDense, n.OpType())
	assert.Equal(t, []string{"in0", "_const_fc_weights", "_const_fc_bias"}, inputNames(n))
	assert.Equal(t, int64(2), attr(t, n, "num_output").GetI())
	assert.Equal(t, int64(1), attr(t, n, "bias_term").GetI())
	assert.Equal(t, int64(0), attr(t, n, "transpose").GetI())

	model, err := b.Build([]string{"fc"})
	require.NoError(t, err)
	assert.Equal(t, []float32{0.5, -0.5}, floats(t, model.GetGraph().GetParameters()["_const_fc_bias"]))

	_, _, err = convert(t, src, []*caffe.Blob{weights}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs 2 blobs")

	_, nodes, err = convert(t, `layer { name: "fc" type: "InnerProduct" bottom: "in0" top: "fc"
		inner_product_param { num_output: 2 bias_term: false } }`, []*caffe.Blob{weights}, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"in0", "_const_fc_weights"}, inputNames(nodes[0]))

	_, _, err = convert(t, `layer { name: "fc" type: "InnerProduct" bottom: "in0" top: "fc" }`, []*caffe.Blob{weights, bias}, 1)
	assert.Error(t, err)
}

func TestConvolution(t *testing.T) {
	filters := blob([]int64{1, 3, 1, 1}, 1, 1, 1)
	bias := blob([]int64{1}, 0)

	_, nodes, err := convert(t, `layer { name: "conv" type: "Convolution" bottom: "in0" top: "conv"
		convolution_param { num_output: 1 kernel_h: 1 kernel_w: 3 stride: 2 pad: 1 group: 1 } }`,
		[]*caffe.Blob{filters, bias}, 1)
	require.NoError(t, err)
	n := nodes[0]
	assert.Equal(t, ir.OpConv2D, n.OpType())
	assert.Equal(t, []int64{1, 3}, attr(t, n, "kernel_shape").GetInts().GetVal())
	assert.Equal(t, []int64{2, 2}, attr(t, n, "strides").GetInts().GetVal())
	assert.Equal(t, []int64{1, 1}, attr(t, n, "pads").GetInts().GetVal())
	assert.Equal(t, []int64{1, 1}, attr(t, n, "dilations").GetInts().GetVal())
	assert.Equal(t, int64(1), attr(t, n, "num_output").GetI())
	assert.Equal(t, []string{"in0", "_const_conv_weights", "_const_conv_bias"}, inputNames(n))

	errs := []string{
		`layer { name: "conv" type: "Convolution" bottom: "in0" top: "conv" convolution_param { num_output: 1 } }`,
		`layer { name: "conv" type: "Convolution" bottom: "in0" top: "conv" convolution_param { kernel_size: 3 kernel_h: 3 kernel_w: 3 } }`,
		`layer { name: "conv" type: "Convolution" bottom: "in0" top: "conv" convolution_param { kernel_size: 1 kernel_size: 1 kernel_size: 1 } }`,
	}
	for _, src := range errs {
		_, _, err := convert(t, src, []*caffe.Blob{filters, bias}, 1)
		assert.Error(t, err, src)
	}

	_, _, err = convert(t, `layer { name: "conv" type: "Convolution" bottom: "in0" top: "conv"
		convolution_param { kernel_size: 1 } }`, []*caffe.Blob{filters}, 1)
	assert.Error(t, err)
}

func TestPooling(t *testing.T) {
	_, nodes, err := convert(t, `layer { name: "pool" type: "Pooling" bottom: "in0" top: "pool"
		pooling_param { pool: MAX kernel_size: 2 stride: 2 } }`, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, ir.OpMaxPool2D, nodes[0].OpType())
	assert.Equal(t, []int64{2, 2}, attr(t, nodes[0], "kernel_shape").GetInts().GetVal())
	assert.Equal(t, int64(1), attr(t, nodes[0], "ceil_mode").GetI())

	_, nodes, err = convert(t, `layer { name: "pool" type: "Pooling" bottom: "in0" top: "pool"
		pooling_param { pool: AVE kernel_size: 3 round_mode: FLOOR } }`, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, ir.OpAvgPool2D, nodes[0].OpType())
	assert.Equal(t, int64(0), attr(t, nodes[0], "ceil_mode").GetI())

	_, nodes, err = convert(t, `layer { name: "pool" type: "Pooling" bottom: "in0" top: "pool"
		pooling_param { pool: AVE global_pooling: true } }`, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, ir.OpGlobalAvgPool, nodes[0].OpType())

	_, _, err = convert(t, `layer { name: "pool" type: "Pooling" bottom: "in0" top: "pool"
		pooling_param { pool: STOCHASTIC kernel_size: 2 } }`, nil, 1)
	assert.Error(t, err)

	_, _, err = convert(t, `layer { name: "pool" type: "Pooling" bottom: "in0" top: "pool" }`, nil, 1)
	assert.Error(t, err)

	_, nodes, err = convert(t, `layer { name: "pool" type: "Pooling" bottom: "in0" top: "pool"
		pooling_param { kernel_h: 2 kernel_w: 3 stride_h: 1 stride_w: 2 pad_w: 1 } }`, nil, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 3}, attr(t, nodes[0], "kernel_shape").GetInts().GetVal())
	assert.Equal(t, []int64{1, 2}, attr(t, nodes[0], "strides").GetInts().GetVal())
	assert.Equal(t, []int64{0, 1}, attr(t, nodes[0], "pads").GetInts().GetVal())

	for _, bad := range []string{"stride: two", "pad: 1.5", "kernel_size: 2 kernel_size: 3"} {
		_, err = caffe.ParsePrototxt([]byte(`layer { name: "pool" type: "Pooling" bottom: "in0" top: "pool"
			pooling_param { pool: MAX kernel_size: 2 ` + bad + ` } }`))
		assert.Error(t, err, bad)
	}
}

func TestBatchNorm(t *testing.T) {
	params := []*caffe.Blob{
		blob([]int64{2}, 2, 4),
		blob([]int64{2}, 1, 1),
		blob([]int64{1}, 2),
	}
	b, nodes, err := convert(t, `layer { name: "bn" type: "BatchNorm" bottom: "in0" top: "bn"
		batch_norm_param { eps: 0.001 } }`, params, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"in0", "_const_bn_mean", "_const_bn_var"}, inputNames(nodes[0]))
	assert.InDelta(t, 0.001, attr(t, nodes[0], "epsilon").GetF(), 1e-9)

	model, err := b.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, []float32{1, 2}, floats(t, model.GetGraph().GetParameters()["_const_bn_mean"]))
	assert.Equal(t, []float32{0.5, 0.5}, floats(t, model.GetGraph().GetParameters()["_const_bn_var"]))

	params[2] = blob([]int64{1}, 0)
	b, _, err = convert(t, `layer { name: "bn" type: "BatchNorm" bottom: "in0" top: "bn" }`, params, 1)
	require.NoError(t, err)
	model, err = b.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, []float32{0, 0}, floats(t, model.GetGraph().GetParameters()["_const_bn_mean"]))

	_, _, err = convert(t, `layer { name: "bn" type: "BatchNorm" bottom: "in0" top: "bn" }`, params[:2], 1)
	assert.Error(t, err)
}

func TestScale(t *testing.T) {
	gamma := blob([]int64{3}, 1, 2, 3)
	beta := blob([]int64{3}, 0, 0, 1)

	_, nodes, err := convert(t, `layer { name: "sc" type: "Scale" bottom: "in0" top: "sc" scale_param { bias_term: true } }`,
		[]*caffe.Blob{gamma, beta}, 1)
	require.NoError(t, err)
	assert.Equal(t, ir.OpScale, nodes[0].OpType())
	assert.Equal(t, []string{"in0", "_const_sc_gamma", "_const_sc_beta"}, inputNames(nodes[0]))
	assert.Equal(t, int64(1), attr(t, nodes[0], "bias_term").GetI())

	_, nodes, err = convert(t, `layer { name: "sc" type: "Scale" bottom: "in0" bottom: "in1" top: "sc" }`, nil, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"in0", "in1"}, inputNames(nodes[0]))

	_, _, err = convert(t, `layer { name: "sc" type: "Scale" bottom: "in0" top: "sc" }`, nil, 1)
	assert.Error(t, err)

	_, _, err = convert(t, `layer { name: "sc" type: "Scale" bottom: "in0" top: "sc" scale_param { bias_term: true } }`,
		[]*caffe.Blob{gamma}, 1)
	assert.Error(t, err)
}

const tinyNet = `
name: "tiny"
layer { name: "data" type: "Input" top: "data" input_param { shape { dim: 1 dim: 1 dim: 4 dim: 4 } } }
layer {
  name: "conv1" type: "Convolution" bottom: "data" top: "conv1"
  convolution_param { num_output: 2 kernel_size: 3 }
}
layer { name: "relu1" type: "ReLU" bottom: "conv1" top: "conv1" }
layer {
  name: "pool1" type: "Pooling" bottom: "conv1" top: "pool1"
  pooling_param { pool: MAX kernel_size: 2 stride: 2 }
}
layer {
  name: "ip1" type: "InnerProduct" bottom: "pool1" top: "ip1"
  inner_product_param { num_output: 3 }
}
layer { name: "prob" type: "Softmax" bottom: "ip1" top: "prob" }
`

func TestConvertTinyNet(t *testing.T) {
	net, err := caffe.ParsePrototxt([]byte(tinyNet))
	require.NoError(t, err)

	trained := &caffe.Net{Name: "tiny", Layers: []*caffe.Layer{
		{Name: "conv1", Type: "Convolution", Blobs: []*caffe.Blob{
			blob([]int64{2, 1, 3, 3}, make([]float32, 18)...),
			blob([]int64{2}, 0.1, 0.2),
		}},
		{Name: "ip1", Type: "InnerProduct", Blobs: []*caffe.Blob{
			blob([]int64{3, 2}, 1, 2, 3, 4, 5, 6),
			blob([]int64{3}, 0, 0, 0),
		}},
	}}
	data, err := caffe.EncodeCaffemodel(trained)
	require.NoError(t, err)
	decoded, err := caffe.DecodeCaffemodel(data)
	require.NoError(t, err)

	res, err := converter.CaffeToZMF(net, decoded.Weights(), NewRegistry())
	require.NoError(t, err)

	g := res.Model.GetGraph()
	var names []string
	for _, n := range g.GetNodes() {
		names = append(names, n.GetName())
	}
	assert.Equal(t, []string{"data", "conv1_hide_1", "conv1", "pool1", "ip1", "prob"}, names)
	assert.Equal(t, []string{"conv1_hide_1"}, g.GetNodes()[2].GetInputs())
	assert.Contains(t, g.GetParameters(), "_const_conv1_hide_1_weights")
	assert.Contains(t, g.GetParameters(), "_const_ip1_bias")
	assert.Len(t, g.GetParameters(), 4)
	require.Len(t, g.GetOutputs(), 1)
	assert.Equal(t, "prob", g.GetOutputs()[0].GetName())
	assert.Equal(t, []string{"prob"}, res.Outputs)
}
