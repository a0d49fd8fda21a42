package inspector

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerfoo/zmf"
	"google.golang.org/protobuf/proto"

	"github.com/zerfoo/zcaffe/pkg/caffe"
)

const prototxt = `
name: "tiny"
input: "data"
input_shape { dim: 1 dim: 3 }
layer { name: "fc" type: "InnerProduct" bottom: "data" top: "fc" inner_product_param { num_output: 2 } }
layer { name: "loss" type: "SoftmaxWithLoss" bottom: "fc" top: "loss" }
`

// Helper function to create a dummy Caffe model pair
func createDummyCaffeModel(t *testing.T, dir string) (string, string) {
	t.Helper()
	netFile := filepath.Join(dir, "deploy.prototxt")
	require.NoError(t, os.WriteFile(netFile, []byte(prototxt), 0o644))

	weights := &caffe.Net{Layers: []*caffe.Layer{{
		Name: "fc",
		Type: "InnerProduct",
		Blobs: []*caffe.Blob{
			{Shape: []int64{2, 3}, Data: make([]float32, 6)},
			{Shape: []int64{2}, DoubleData: []float64{1, 2}},
		},
	}}}
	weightsFile := filepath.Join(dir, "tiny.caffemodel")
	data, err := caffe.EncodeCaffemodel(weights)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(weightsFile, data, 0o644))
	return netFile, weightsFile
}

// Helper function to create a dummy ZMF model file
func createDummyZmfModel(t *testing.T, dir, filename string) string {
	t.Helper()
	zmfModel := &zmf.Model{
		Metadata: &zmf.Metadata{
			ProducerName:    "test-producer",
			ProducerVersion: "1.0",
			OpsetVersion:    1,
		},
		Graph: &zmf.Graph{
			Nodes: []*zmf.Node{
				{
					Name:   "zmf_node1",
					OpType: "Softmax",
					Inputs: []string{"x"},
					Attributes: map[string]*zmf.Attribute{
						"axis":  {Value: &zmf.Attribute_I{I: 1}},
						"alpha": {Value: &zmf.Attribute_F{F: 0.5}},
					},
				},
			},
			Parameters: make(map[string]*zmf.Tensor),
			Inputs:     []*zmf.ValueInfo{{Name: "x", Shape: []int64{1, 4}}},
			Outputs:    []*zmf.ValueInfo{{Name: "zmf_node1"}},
		},
	}
	data, err := proto.Marshal(zmfModel)
	require.NoError(t, err)
	filePath := filepath.Join(dir, filename)
	require.NoError(t, os.WriteFile(filePath, data, 0o644))
	return filePath
}

func TestInspectCaffe(t *testing.T) {
	netFile, weightsFile := createDummyCaffeModel(t, t.TempDir())

	var out bytes.Buffer
	require.NoError(t, InspectCaffe(&out, netFile, weightsFile))

	output := out.String()
	assert.Contains(t, output, "Inspecting Caffe model from:")
	assert.Contains(t, output, "Network: tiny")
	assert.Contains(t, output, "Input: data [1 3]")
	assert.Contains(t, output, "Network has 2 layers.")
	assert.Contains(t, output, "- Layer: fc, Type: InnerProduct")
	assert.Contains(t, output, "Unsupported layer types: [SoftmaxWithLoss]")
	assert.Contains(t, output, "Weights (1 layers):")
	assert.Contains(t, output, "Blob 0: shape [2 3], 6 values")
	assert.Contains(t, output, "Blob 1: shape [2], 2 values")
}

func TestInspectCaffe_Errors(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	err := InspectCaffe(&out, filepath.Join(dir, "missing.prototxt"), "")
	assert.ErrorContains(t, err, "failed to load Caffe model")

	netFile, _ := createDummyCaffeModel(t, dir)
	err = InspectCaffe(&out, netFile, filepath.Join(dir, "missing.caffemodel"))
	assert.ErrorContains(t, err, "failed to load Caffe weights")
}

func TestInspectZMF(t *testing.T) {
	zmfFile := createDummyZmfModel(t, t.TempDir(), "test.zmf")

	var out bytes.Buffer
	require.NoError(t, InspectZMF(&out, zmfFile))

	output := out.String()
	assert.Contains(t, output, "Inspecting ZMF model from:")
	assert.Contains(t, output, "Producer: test-producer 1.0")
	assert.Contains(t, output, "Opset version: 1")
	assert.Contains(t, output, "Graph has 1 nodes.")
	assert.Contains(t, output, "Input: x [1 4]")
	assert.Contains(t, output, "Output: zmf_node1")
	assert.Contains(t, output, "- Node: zmf_node1, OpType: Softmax")
	assert.Contains(t, output, "    - alpha: 0.5\n    - axis: 1\n")
}

func TestInspectZMF_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.zmf")
	require.NoError(t, os.WriteFile(bad, []byte{0xff, 0xff}, 0o644))

	var out bytes.Buffer
	err := InspectZMF(&out, bad)
	assert.ErrorContains(t, err, "failed to load ZMF model")
}
