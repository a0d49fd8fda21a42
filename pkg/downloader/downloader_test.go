package downloader

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockModelSource is a mock implementation of the ModelSource interface for testing.
type MockModelSource struct {
	mockDownloadModel func(modelID string, destination string) (*DownloadResult, error)
}

func (m *MockModelSource) DownloadModel(modelID string, destination string) (*DownloadResult, error) {
	if m.mockDownloadModel != nil {
		return m.mockDownloadModel(modelID, destination)
	}
	return nil, errors.New("DownloadModel not implemented for mock")
}

func TestNewDownloader(t *testing.T) {
	mockSource := &MockModelSource{}
	d := NewDownloader(mockSource)

	require.NotNil(t, d)
	assert.Same(t, mockSource, d.source)
}

func TestDownloader_Download(t *testing.T) {
	tests := []struct {
		name          string
		modelID       string
		mockResult    *DownloadResult
		mockError     error
		expectedError bool
	}{
		{
			name:    "Successful download",
			modelID: "test-model",
			mockResult: &DownloadResult{
				ModelPath:   "/tmp/download/deploy.prototxt",
				WeightsPath: "/tmp/download/model.caffemodel",
			},
		},
		{
			name:          "Download with error",
			modelID:       "error-model",
			mockError:     errors.New("mock download error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDownloader(&MockModelSource{
				mockDownloadModel: func(string, string) (*DownloadResult, error) {
					return tt.mockResult, tt.mockError
				},
			})

			result, err := d.Download(tt.modelID, "/tmp/download")
			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.mockResult, result)
		})
	}
}

func Test_downloadFile(t *testing.T) {
	tempDir := t.TempDir()

	tests := []struct {
		name           string
		apiKey         string
		serverHandler  http.HandlerFunc
		fileName       string
		expectedErrMsg string
	}{
		{
			name: "Successful download",
			serverHandler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, "test content")
			},
			fileName: "test.txt",
		},
		{
			name:   "Authorized download",
			apiKey: "secret",
			serverHandler: func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") != "Bearer secret" {
					http.Error(w, "Unauthorized", http.StatusUnauthorized)
					return
				}
				_, _ = fmt.Fprint(w, "test content")
			},
			fileName: "private.txt",
		},
		{
			name: "HTTP error status",
			serverHandler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "Not Found", http.StatusNotFound)
			},
			fileName:       "error.txt",
			expectedErrMsg: "status code 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.serverHandler)
			defer server.Close()

			filePath := filepath.Join(tempDir, "nested", tt.fileName)
			err := downloadFile(server.Client(), server.URL, tt.apiKey, filePath)

			if tt.expectedErrMsg != "" {
				assert.ErrorContains(t, err, tt.expectedErrMsg)
				_, statErr := os.Stat(filePath)
				assert.True(t, os.IsNotExist(statErr), "file %s should not exist on error", filePath)
				return
			}
			require.NoError(t, err)
			content, err := os.ReadFile(filePath)
			require.NoError(t, err)
			assert.Equal(t, "test content", string(content))
		})
	}
}

func Test_copyFile(t *testing.T) {
	for _, input := range []string{"", "hello world"} {
		dst := &bytes.Buffer{}
		n, err := copyFile(bytes.NewBufferString(input), dst)
		require.NoError(t, err)
		assert.Equal(t, int64(len(input)), n)
		assert.Equal(t, input, dst.String())
	}
}

func Test_classify(t *testing.T) {
	tests := map[string]fileRole{
		"models/deploy.prototxt":    roleNet,
		"train_val.prototxt":        roleNet,
		"solver.prototxt":           roleIgnored,
		"bvlc_alexnet.caffemodel":   roleWeights,
		"imagenet_mean.binaryproto": roleExtra,
		"synset_words.txt":          roleExtra,
		"README.md":                 roleIgnored,
	}
	for path, want := range tests {
		assert.Equal(t, want, classify(path), path)
	}
	assert.Equal(t, "b/deploy.prototxt", pickNet([]string{"a/train_val.prototxt", "b/deploy.prototxt"}))
	assert.Equal(t, "net.prototxt", pickNet([]string{"net.prototxt"}))
}

func TestHuggingFaceSource_DownloadModel(t *testing.T) {
	tests := []struct {
		name            string
		modelID         string
		apiHandler      http.HandlerFunc
		cdnHandler      http.HandlerFunc
		expectedModel   string
		expectedWeights string
		expectedExtras  []string
		expectedError   string
	}{
		{
			name:    "Successful download of network, weights and extras",
			modelID: "test-org/alexnet",
			apiHandler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, `{"modelId": "test-org/alexnet","siblings": [
					{"rfilename": "train_val.prototxt"},
					{"rfilename": "deploy.prototxt"},
					{"rfilename": "solver.prototxt"},
					{"rfilename": "alexnet.caffemodel"},
					{"rfilename": "synset_words.txt"},
					{"rfilename": "README.md"}]}`)
			},
			cdnHandler: func(w http.ResponseWriter, r *http.Request) {
				base := filepath.Base(r.URL.Path)
				if base == "README.md" || base == "solver.prototxt" {
					http.Error(w, "Not Found", http.StatusNotFound)
					return
				}
				_, _ = fmt.Fprint(w, base+" content")
			},
			expectedModel:   "deploy.prototxt",
			expectedWeights: "alexnet.caffemodel",
			expectedExtras:  []string{"synset_words.txt"},
		},
		{
			name:    "Definition without weights",
			modelID: "test-org/untrained",
			apiHandler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, `{"modelId": "test-org/untrained","siblings": [{"rfilename": "net.prototxt"}]}`)
			},
			cdnHandler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, "net")
			},
			expectedModel: "net.prototxt",
		},
		{
			name:    "Model not found on HuggingFace API",
			modelID: "nonexistent/model",
			apiHandler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "Not Found", http.StatusNotFound)
			},
			expectedError: "HuggingFace API returned non-OK status: 404 Not Found",
		},
		{
			name:    "No network definition in repository",
			modelID: "test-org/no-caffe",
			apiHandler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = fmt.Fprint(w, `{"modelId": "test-org/no-caffe","siblings": [{"rfilename": "model.onnx"}]}`)
			},
			expectedError: "no Caffe network definition found for model ID: test-org/no-caffe",
		},
		{
			name:    "CDN download failure",
			modelID: "test-org/cdn-fail",
			apiHandler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, `{"modelId": "test-org/cdn-fail","siblings": [{"rfilename": "deploy.prototxt"}]}`)
			},
			cdnHandler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			},
			expectedError: "failed to download network definition: failed to download file from",
		},
		{
			name:    "Malformed API response",
			modelID: "test-org/garbage",
			apiHandler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = fmt.Fprint(w, `{"siblings": [`)
			},
			expectedError: "failed to decode HuggingFace API response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			apiServer := httptest.NewServer(tt.apiHandler)
			defer apiServer.Close()

			cdnHandler := tt.cdnHandler
			if cdnHandler == nil {
				cdnHandler = func(w http.ResponseWriter, r *http.Request) {
					http.Error(w, "Not Found", http.StatusNotFound)
				}
			}
			cdnServer := httptest.NewServer(cdnHandler)
			defer cdnServer.Close()

			oldHuggingFaceAPI := huggingFaceAPI
			oldHuggingFaceCDN := huggingFaceCDN
			huggingFaceAPI = apiServer.URL + "/"
			huggingFaceCDN = cdnServer.URL + "/"
			defer func() {
				huggingFaceAPI = oldHuggingFaceAPI
				huggingFaceCDN = oldHuggingFaceCDN
			}()

			logger, hook := logtest.NewNullLogger()
			logger.SetLevel(logrus.DebugLevel)
			result, err := NewHuggingFaceSource("").WithLogger(logger).DownloadModel(tt.modelID, tempDir)

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, result)

			assert.Equal(t, filepath.Join(tempDir, tt.expectedModel), result.ModelPath)
			assert.FileExists(t, result.ModelPath)
			if tt.expectedWeights != "" {
				assert.Equal(t, filepath.Join(tempDir, tt.expectedWeights), result.WeightsPath)
				content, err := os.ReadFile(result.WeightsPath)
				require.NoError(t, err)
				assert.True(t, strings.HasPrefix(string(content), tt.expectedWeights))
			} else {
				assert.Empty(t, result.WeightsPath)
			}
			require.Len(t, result.ExtraPaths, len(tt.expectedExtras))
			for i, extra := range tt.expectedExtras {
				assert.Equal(t, filepath.Join(tempDir, extra), result.ExtraPaths[i])
			}
			assert.NotEmpty(t, hook.AllEntries())
		})
	}
}
