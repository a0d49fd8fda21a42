package caffe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"

	caffepb "github.com/zerfoo/zcaffe/internal/caffe"
)

const lenetDeploy = `
name: "LeNet"  # deploy net
input: "data"
input_shape { dim: 64 dim: 1 dim: 28 dim: 28 }
layer {
  name: "conv1"
  type: "Convolution"
  bottom: "data"
  top: "conv1"
  param { lr_mult: 1 }
  convolution_param {
    num_output: 20
    kernel_size: 5
    stride: 1
    weight_filler { type: "xavier" }
  }
}
layer {
  name: "relu1"
  type: "ReLU"
  bottom: "conv1"
  top: "conv1"
  relu_param: { negative_slope: 0.1 }
}
layer {
  name: 'prob'
  type: "Softmax"
  bottom: "conv1"
  top: "prob"
}
`

func TestParsePrototxt(t *testing.T) {
	net, err := ParsePrototxt([]byte(lenetDeploy))
	require.NoError(t, err)

	assert.Equal(t, "LeNet", net.Name)
	assert.Equal(t, []string{"data"}, net.Inputs)
	assert.Equal(t, [][]int64{{64, 1, 28, 28}}, net.InputShapes)
	require.Len(t, net.Layers, 3)

	conv := net.Layers[0]
	assert.Equal(t, "conv1", conv.Name)
	assert.Equal(t, "Convolution", conv.Type)
	assert.Equal(t, []string{"data"}, conv.Bottoms)
	assert.Equal(t, []string{"conv1"}, conv.Tops)
	cp := conv.Params.GetConvolutionParam()
	assert.Equal(t, uint32(20), cp.GetNumOutput())
	assert.Equal(t, []uint32{5}, cp.GetKernelSize())
	assert.Equal(t, "xavier", cp.GetWeightFiller().GetType())
	assert.Empty(t, cp.GetPad())
	assert.True(t, cp.GetBiasTerm())

	relu := net.Layers[1]
	assert.InDelta(t, 0.1, relu.Params.GetReluParam().GetNegativeSlope(), 1e-6)
	assert.Equal(t, "prob", net.Layers[2].Name)
	assert.Nil(t, net.Layers[2].Params.GetPoolingParam())
}

func TestParsePrototxt_Rejects(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{name: "enum name where int expected", src: `layer { name: "p" type: "Pooling" pooling_param { pool: MAX kernel_size: 2 stride: two } }`},
		{name: "float where int expected", src: `layer { name: "p" type: "Pooling" pooling_param { pool: MAX kernel_size: 2 pad: 1.5 } }`},
		{name: "unknown enum value", src: `layer { name: "e" type: "Eltwise" eltwise_param { operation: MIN } }`},
		{name: "unknown field", src: `layer { name: "c" type: "Convolution" convolution_param { kernal_size: 3 } }`},
		{name: "negative unsigned", src: `layer { name: "c" type: "Convolution" convolution_param { num_output: -4 } }`},
		{name: "unterminated block", src: "layer {\n name: \"x\"\n"},
		{name: "unterminated string", src: "name: \"x\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePrototxt([]byte(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to parse NetParameter text")
		})
	}
}

func TestParsePrototxt_LegacyLayers(t *testing.T) {
	src := `
input: "a"
input_dim: 1 input_dim: 3 input_dim: 8 input_dim: 8
input: "b"
input_dim: 1
input_dim: 1
input_dim: 2
input_dim: 2
layers {
  name: "fc"
  type: INNER_PRODUCT
  bottom: "a"
  top: "fc"
  inner_product_param { num_output: 10 bias_term: false }
}
layers { name: "pool" type: POOLING bottom: "fc" top: "pool" pooling_param { pool: AVE } }
`
	net, err := ParsePrototxt([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, net.Inputs)
	assert.Equal(t, [][]int64{{1, 3, 8, 8}, {1, 1, 2, 2}}, net.InputShapes)
	require.Len(t, net.Layers, 2)
	assert.Equal(t, "InnerProduct", net.Layers[0].Type)
	assert.Equal(t, uint32(10), net.Layers[0].Params.GetInnerProductParam().GetNumOutput())
	assert.False(t, net.Layers[0].Params.GetInnerProductParam().GetBiasTerm())
	assert.Equal(t, "Pooling", net.Layers[1].Type)
	assert.Equal(t, caffepb.PoolingParameter_AVE, net.Layers[1].Params.GetPoolingParam().GetPool())
}

func TestParsePrototxt_MixedLayerFormats(t *testing.T) {
	src := `
layers { name: "fc" type: INNER_PRODUCT bottom: "a" top: "fc" }
layer { name: "relu" type: "ReLU" bottom: "fc" top: "fc" }
`
	_, err := ParsePrototxt([]byte(src))
	require.ErrorIs(t, err, ErrMixedLayerFormats)
}

func TestCaffemodelRoundTrip(t *testing.T) {
	in := &Net{
		Name:        "tiny",
		Inputs:      []string{"data"},
		InputShapes: [][]int64{{1, 4}},
		Layers: []*Layer{
			{
				Name: "fc1", Type: "InnerProduct", Bottoms: []string{"data"}, Tops: []string{"fc1"},
				Blobs: []*Blob{
					{Shape: []int64{2, 4}, Data: []float32{1, 2, 3, 4, 5, 6, 7, 8}},
					{Shape: []int64{2}, Data: []float32{0.5, -0.5}},
				},
			},
			{Name: "relu1", Type: "ReLU", Bottoms: []string{"fc1"}, Tops: []string{"fc1"}},
		},
	}

	data, err := EncodeCaffemodel(in)
	require.NoError(t, err)
	out, err := DecodeCaffemodel(data)
	require.NoError(t, err)
	assert.Equal(t, "tiny", out.Name)
	assert.Equal(t, in.Inputs, out.Inputs)
	assert.Equal(t, in.InputShapes, out.InputShapes)
	require.Len(t, out.Layers, 2)
	assert.Equal(t, in.Layers[0].Blobs, out.Layers[0].Blobs)
	assert.Empty(t, out.Layers[1].Blobs)

	weights := out.Weights()
	require.Len(t, weights, 1)
	assert.Equal(t, "fc1", weights[0].Name)
}

func TestCaffemodelKeepsLayerParams(t *testing.T) {
	net, err := ParsePrototxt([]byte(lenetDeploy))
	require.NoError(t, err)

	data, err := EncodeCaffemodel(net)
	require.NoError(t, err)
	out, err := DecodeCaffemodel(data)
	require.NoError(t, err)
	require.Len(t, out.Layers, 3)
	assert.Equal(t, uint32(20), out.Layers[0].Params.GetConvolutionParam().GetNumOutput())
}

func TestDecodeCaffemodel_LegacyEncodings(t *testing.T) {
	np := &caffepb.NetParameter{
		InputDim: []int32{1, 1, 2, 2},
		Input:    []string{"data"},
		Layers: []*caffepb.V1LayerParameter{{
			Name: proto.String("conv1"),
			Type: caffepb.V1LayerParameter_CONVOLUTION.Enum(),
			Blobs: []*caffepb.BlobProto{{
				Num:        proto.Int32(2),
				Channels:   proto.Int32(1),
				Height:     proto.Int32(1),
				Width:      proto.Int32(1),
				DoubleData: []float64{1.5, -2},
			}},
			ConvolutionParam: &caffepb.ConvolutionParameter{NumOutput: proto.Uint32(2)},
		}},
	}
	data, err := proto.Marshal(np)
	require.NoError(t, err)

	out, err := DecodeCaffemodel(data)
	require.NoError(t, err)
	require.Len(t, out.Layers, 1)
	conv := out.Layers[0]
	assert.Equal(t, "conv1", conv.Name)
	assert.Equal(t, "Convolution", conv.Type)
	assert.Equal(t, uint32(2), conv.Params.GetConvolutionParam().GetNumOutput())
	require.Len(t, conv.Blobs, 1)
	assert.Equal(t, []int64{2, 1, 1, 1}, conv.Blobs[0].Shape)
	assert.Equal(t, []float64{1.5, -2}, conv.Blobs[0].DoubleData)
	assert.Equal(t, int64(2), conv.Blobs[0].Count())
	assert.Equal(t, [][]int64{{1, 1, 2, 2}}, out.InputShapes)
}

func TestDecodeCaffemodel_Truncated(t *testing.T) {
	data, err := EncodeCaffemodel(&Net{Name: "broken"})
	require.NoError(t, err)
	_, err = DecodeCaffemodel(data[:len(data)-2])
	require.Error(t, err)
}
