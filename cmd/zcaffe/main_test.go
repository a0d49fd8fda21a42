package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zerfoo/zmf"

	"github.com/zerfoo/zcaffe/pkg/caffe"
	"github.com/zerfoo/zcaffe/pkg/importer"
)

const deploy = `
name: "cli"
input: "data"
input_shape { dim: 1 dim: 2 }
layer { name: "fc" type: "InnerProduct" bottom: "data" top: "fc" inner_product_param { num_output: 2 } }
layer { name: "relu" type: "ReLU" bottom: "fc" top: "fc" }
layer { name: "split" type: "Split" bottom: "fc" top: "a" top: "b" }
`

// run executes the CLI in-process and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(context.Background(), append([]string{"zcaffe"}, args...))
	return out.String(), err
}

func writeModel(t *testing.T, dir string) (string, string) {
	t.Helper()
	prototxt := filepath.Join(dir, "cli.prototxt")
	require.NoError(t, os.WriteFile(prototxt, []byte(deploy), 0o644))

	weights := &caffe.Net{Layers: []*caffe.Layer{{Name: "fc", Type: "InnerProduct", Blobs: []*caffe.Blob{
		{Shape: []int64{2, 2}, Data: []float32{1, 0, 0, 1}},
		{Shape: []int64{2}, Data: []float32{0, 0}},
	}}}}
	caffemodel := filepath.Join(dir, "cli.caffemodel")
	data, err := caffe.EncodeCaffemodel(weights)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(caffemodel, data, 0o644))
	return prototxt, caffemodel
}

func TestConvertCommand(t *testing.T) {
	dir := t.TempDir()
	prototxt, caffemodel := writeModel(t, dir)
	output := filepath.Join(dir, "out.zmf")
	logFile := filepath.Join(dir, "zcaffe.log")

	out, err := run(t, "--log-file", logFile, "convert", "--output", output, "--param-dtype", "fp16", "--graph-name", "lenet", prototxt, caffemodel)
	require.NoError(t, err)
	assert.Contains(t, out, "Model outputs: a, b")
	assert.Contains(t, out, "Successfully converted and saved model to: "+output)

	model, err := importer.LoadModel(output)
	require.NoError(t, err)
	params := model.GetGraph().GetParameters()
	require.Contains(t, params, "_const_fc_hide_1_weights")
	assert.Equal(t, zmf.Tensor_FLOAT16, params["_const_fc_hide_1_weights"].GetDtype())

	logged, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logged), "converted network")
	assert.Contains(t, string(logged), "graph=lenet")

	out, err = run(t, "--log-file", logFile, "inspect", output)
	require.NoError(t, err)
	assert.Contains(t, out, "Producer: zcaffe")
	assert.Contains(t, out, "- Node: fc, OpType: ReLU")
}

func TestConvertCommand_RequestedOutputs(t *testing.T) {
	dir := t.TempDir()
	prototxt, caffemodel := writeModel(t, dir)
	output := filepath.Join(dir, "out.zmf")

	out, err := run(t, "--log-file", "", "convert", "--output", output, "--outputs", "fc,a", prototxt, caffemodel)
	require.NoError(t, err)
	assert.Contains(t, out, "Model outputs: fc, a")

	_, err = run(t, "--log-file", "", "convert", "--output", output, "--outputs", "missing", prototxt, caffemodel)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"missing"`)
}

func TestConvertCommand_Errors(t *testing.T) {
	_, err := run(t, "--log-file", "", "convert")
	assert.ErrorContains(t, err, "network definition is required")

	_, err = run(t, "--log-file", "", "--log-level", "loud", "convert")
	assert.Error(t, err)

	_, err = run(t, "--log-file", "", "convert", "--param-dtype", "int8", "net.prototxt")
	assert.ErrorContains(t, err, "unknown parameter dtype")
}

func TestInspectCommand(t *testing.T) {
	dir := t.TempDir()
	prototxt, caffemodel := writeModel(t, dir)

	out, err := run(t, "--log-file", "", "inspect", "--weights", caffemodel, prototxt)
	require.NoError(t, err)
	assert.Contains(t, out, "Network: cli")
	assert.Contains(t, out, "Blob 0: shape [2 2], 4 values")

	_, err = run(t, "--log-file", "", "inspect", filepath.Join(dir, "model.bin"))
	assert.ErrorContains(t, err, "could not infer file type")

	_, err = run(t, "--log-file", "", "inspect", "--type", "onnx", prototxt)
	assert.ErrorContains(t, err, "unsupported model type")
}

func TestDownloadCommand(t *testing.T) {
	tests := []struct {
		name          string
		apiKey        string // API key passed via flag
		envAPIKey     string // API key passed via environment variable
		wantKey       string
		expectedError string
	}{
		{name: "Successful public download"},
		{name: "Authenticated download via flag", apiKey: "test-api-key-flag", wantKey: "test-api-key-flag"},
		{name: "Authenticated download via env var", envAPIKey: "test-api-key-env", wantKey: "test-api-key-env"},
		{
			name:          "Authenticated download unauthorized",
			apiKey:        "wrong-api-key",
			wantKey:       "right-api-key",
			expectedError: "HuggingFace API returned non-OK status: 401 Unauthorized",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HF_API_KEY", tt.envAPIKey)
			authorized := func(r *http.Request) bool {
				return tt.wantKey == "" || r.Header.Get("Authorization") == "Bearer "+tt.wantKey
			}

			apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if !authorized(r) {
					http.Error(w, "Unauthorized", http.StatusUnauthorized)
					return
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = fmt.Fprint(w, `{"modelId": "test-org/lenet","siblings": [{"rfilename": "lenet_deploy.prototxt"},{"rfilename": "lenet.caffemodel"}]}`)
			}))
			defer apiServer.Close()
			cdnServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if !authorized(r) {
					http.Error(w, "Unauthorized", http.StatusUnauthorized)
					return
				}
				_, _ = fmt.Fprint(w, "content of "+filepath.Base(r.URL.Path))
			}))
			defer cdnServer.Close()

			outputPath := t.TempDir()
			args := []string{"--log-file", "", "download",
				"--model", "test-org/lenet",
				"--output", outputPath,
				"--api-url", apiServer.URL + "/",
				"--cdn-url", cdnServer.URL + "/",
			}
			if tt.apiKey != "" {
				args = append(args, "--api-key", tt.apiKey)
			}

			out, err := run(t, args...)
			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.True(t, strings.Contains(out, "Weights: "+filepath.Join(outputPath, "lenet.caffemodel")), out)
			assert.FileExists(t, filepath.Join(outputPath, "lenet_deploy.prototxt"))
			assert.FileExists(t, filepath.Join(outputPath, "lenet.caffemodel"))
		})
	}
}

func TestDownloadCommand_RequiresModel(t *testing.T) {
	_, err := run(t, "--log-file", "", "download")
	assert.Error(t, err)
}
