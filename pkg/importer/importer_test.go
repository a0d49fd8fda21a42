package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerfoo/zmf"
	"google.golang.org/protobuf/proto"

	"github.com/zerfoo/zcaffe/pkg/caffe"
	"github.com/zerfoo/zcaffe/pkg/converter"
	"github.com/zerfoo/zcaffe/pkg/ir"
	"github.com/zerfoo/zcaffe/pkg/registry"
)

const deploy = `
name: "mlp"
input: "data"
input_shape { dim: 1 dim: 4 }
layer {
  name: "fc1"
  type: "InnerProduct"
  bottom: "data"
  top: "fc1"
  inner_product_param { num_output: 2 }
}
layer { name: "relu1" type: "ReLU" bottom: "fc1" top: "fc1" }
layer { name: "prob" type: "Softmax" bottom: "fc1" top: "prob" }
`

func writeFixtures(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()

	prototxt := filepath.Join(dir, "deploy.prototxt")
	require.NoError(t, os.WriteFile(prototxt, []byte(deploy), 0o644))

	trained := &caffe.Net{Name: "mlp", Layers: []*caffe.Layer{
		{Name: "fc1", Type: "InnerProduct", Blobs: []*caffe.Blob{
			{Shape: []int64{2, 4}, Data: []float32{1, 0, 0, 0, 0, 1, 0, 0}},
			{Shape: []int64{2}, Data: []float32{0, 1}},
		}},
		{Name: "relu1", Type: "ReLU"},
	}}
	caffemodel := filepath.Join(dir, "mlp.caffemodel")
	data, err := caffe.EncodeCaffemodel(trained)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(caffemodel, data, 0o644))
	return prototxt, caffemodel
}

func TestConvertCaffeToZmf(t *testing.T) {
	prototxt, caffemodel := writeFixtures(t)

	result, err := ConvertCaffeToZmf(prototxt, caffemodel, nil, converter.WithParamDType(ir.Float16))
	require.NoError(t, err)

	g := result.Model.GetGraph()
	require.Len(t, g.GetNodes(), 4)
	assert.Equal(t, "fc1_hide_1", g.GetNodes()[1].GetName())
	assert.Equal(t, []string{"fc1_hide_1"}, g.GetNodes()[2].GetInputs())
	assert.Equal(t, zmf.Tensor_FLOAT16, g.GetParameters()["_const_fc1_hide_1_weights"].GetDtype())
	assert.Equal(t, []string{"prob"}, result.Outputs)
}

func TestConvertCaffeToZmf_WithoutWeights(t *testing.T) {
	prototxt, _ := writeFixtures(t)

	_, err := ConvertCaffeToZmf(prototxt, "", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs 2 blobs")
}

func TestConvertCaffeToZmf_CustomRegistry(t *testing.T) {
	prototxt, caffemodel := writeFixtures(t)

	reg := NewRegistry(func(r *registry.Registry) {
		r.RegisterFunc("Softmax", func(ctx *registry.ConversionContext, _ *caffe.Layer, _ []*caffe.Blob, inputs []*ir.Node, names []string) ([]*ir.Node, error) {
			return []*ir.Node{ctx.Builder.Op(names[0], ir.OpIdentity, inputs...)}, nil
		})
	})
	result, err := ConvertCaffeToZmf(prototxt, caffemodel, reg)
	require.NoError(t, err)
	nodes := result.Model.GetGraph().GetNodes()
	assert.Equal(t, ir.OpIdentity, nodes[len(nodes)-1].GetOpType())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadNet(filepath.Join(dir, "missing.prototxt"))
	assert.ErrorContains(t, err, "failed to read prototxt file")

	bad := filepath.Join(dir, "bad.prototxt")
	require.NoError(t, os.WriteFile(bad, []byte(`layer { name: "x"`), 0o644))
	_, err = LoadNet(bad)
	assert.ErrorContains(t, err, "failed to parse prototxt file")

	truncated := filepath.Join(dir, "bad.caffemodel")
	require.NoError(t, os.WriteFile(truncated, []byte{0x0a, 0x10, 'x'}, 0o644))
	_, err = LoadWeights(truncated)
	assert.ErrorContains(t, err, "failed to decode caffemodel file")

	_, err = ConvertCaffeToZmf(bad, "", nil)
	assert.Error(t, err)
}

func TestSaveAndLoadModel(t *testing.T) {
	prototxt, caffemodel := writeFixtures(t)
	result, err := ConvertCaffeToZmf(prototxt, caffemodel, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mlp.zmf")
	require.NoError(t, SaveModel(result.Model, path))

	loaded, err := LoadModel(path)
	require.NoError(t, err)
	assert.True(t, proto.Equal(result.Model, loaded))

	_, err = LoadModel(filepath.Join(t.TempDir(), "none.zmf"))
	assert.ErrorContains(t, err, "failed to read ZMF file")
}
