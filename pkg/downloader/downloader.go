// Package downloader fetches Caffe models from a model hub.
package downloader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Overridable for testing and mirrors.
var (
	huggingFaceAPI = "https://huggingface.co/api/models/"
	huggingFaceCDN = "https://huggingface.co/" // Base URL for direct file downloads
)

func init() {
	if apiURL := os.Getenv("HUGGINGFACE_API_URL"); apiURL != "" {
		huggingFaceAPI = apiURL
	}
	if cdnURL := os.Getenv("HUGGINGFACE_CDN_URL"); cdnURL != "" {
		huggingFaceCDN = cdnURL
	}
}

// ModelSource defines the interface for a model source, such as HuggingFace.
type ModelSource interface {
	// DownloadModel downloads the network definition, the trained weights
	// and any companion files of a model to destination.
	DownloadModel(modelID string, destination string) (*DownloadResult, error)
}

// DownloadResult contains the paths to the downloaded files.
type DownloadResult struct {
	// ModelPath is the network definition (.prototxt).
	ModelPath string
	// WeightsPath is the trained weights (.caffemodel), empty when the
	// repository has none.
	WeightsPath string
	// ExtraPaths are companion files such as mean images and label lists.
	ExtraPaths []string
}

// Downloader handles the overall download process using a ModelSource.
type Downloader struct {
	source ModelSource
}

// NewDownloader creates a new Downloader with the given ModelSource.
func NewDownloader(source ModelSource) *Downloader {
	return &Downloader{source: source}
}

// Download fetches a model using the configured ModelSource.
func (d *Downloader) Download(modelID string, destination string) (*DownloadResult, error) {
	return d.source.DownloadModel(modelID, destination)
}

// downloadFile downloads a single file from a URL to a local path. A
// non-empty apiKey is sent as a bearer token.
func downloadFile(client *http.Client, url, apiKey, filePath string) (err error) {
	dir := filepath.Dir(filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	resp, err := get(client, url, apiKey)
	if err != nil {
		return fmt.Errorf("failed to download file from %s: %w", url, err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close response body for %s: %w", url, cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to download file from %s: status code %s", url, resp.Status)
	}

	out, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", filePath, err)
	}
	if _, err := copyFile(resp.Body, out); err != nil {
		return errors.Join(
			fmt.Errorf("failed to write file %s: %w", filePath, err),
			out.Close(),
			os.Remove(filePath),
		)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close file %s: %w", filePath, err)
	}
	return nil
}

// copyFile copies content from a source reader to a destination writer.
func copyFile(src io.Reader, dst io.Writer) (int64, error) {
	return io.Copy(dst, src)
}

func get(client *http.Client, url, apiKey string) (*http.Response, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+apiKey)
	}
	return client.Do(req)
}

// HuggingFaceSource implements the ModelSource interface for HuggingFace Hub.
type HuggingFaceSource struct {
	client *http.Client
	apiKey string
	apiURL string
	cdnURL string
	logger logrus.FieldLogger
}

// NewHuggingFaceSource creates a new HuggingFaceSource. apiKey may be empty
// for public repositories.
func NewHuggingFaceSource(apiKey string) *HuggingFaceSource {
	return &HuggingFaceSource{
		client: &http.Client{},
		apiKey: apiKey,
		apiURL: huggingFaceAPI,
		cdnURL: huggingFaceCDN,
		logger: logrus.StandardLogger(),
	}
}

// WithEndpoints points the source at a mirror. Empty URLs keep the current
// endpoint.
func (h *HuggingFaceSource) WithEndpoints(apiURL, cdnURL string) *HuggingFaceSource {
	if apiURL != "" {
		h.apiURL = apiURL
	}
	if cdnURL != "" {
		h.cdnURL = cdnURL
	}
	return h
}

// WithLogger sets the logger that reports each downloaded file.
func (h *HuggingFaceSource) WithLogger(logger logrus.FieldLogger) *HuggingFaceSource {
	h.logger = logger
	return h
}

// HuggingFaceModelInfo represents the structure of the JSON response from HuggingFace API.
type HuggingFaceModelInfo struct {
	ModelID  string `json:"modelId"`
	Siblings []struct {
		RPath string `json:"rfilename"` // Relative path of the file
	} `json:"siblings"`
}

// fileRole classifies a repository file.
type fileRole int

const (
	roleIgnored fileRole = iota
	roleNet
	roleWeights
	roleExtra
)

func classify(rPath string) fileRole {
	base := strings.ToLower(filepath.Base(rPath))
	switch {
	case strings.HasSuffix(base, ".prototxt"):
		if strings.Contains(base, "solver") {
			return roleIgnored
		}
		return roleNet
	case strings.HasSuffix(base, ".caffemodel"):
		return roleWeights
	case strings.HasSuffix(base, ".binaryproto"), strings.HasSuffix(base, ".txt"):
		return roleExtra
	}
	return roleIgnored
}

// pickNet prefers a deploy definition over training ones.
func pickNet(paths []string) string {
	for _, p := range paths {
		if strings.Contains(strings.ToLower(filepath.Base(p)), "deploy") {
			return p
		}
	}
	return paths[0]
}

// DownloadModel downloads the specified model and its associated files from HuggingFace Hub.
func (h *HuggingFaceSource) DownloadModel(modelID string, destination string) (result *DownloadResult, err error) {
	apiURL := h.apiURL + modelID

	resp, err := get(h.client, apiURL, h.apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch model info from HuggingFace API: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil && err == nil {
			result = nil
			err = fmt.Errorf("failed to close response body for %s: %w", apiURL, cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HuggingFace API returned non-OK status: %s", resp.Status)
	}

	var modelInfo HuggingFaceModelInfo
	if err := json.NewDecoder(resp.Body).Decode(&modelInfo); err != nil {
		return nil, fmt.Errorf("failed to decode HuggingFace API response: %w", err)
	}

	var nets, weights, extras []string
	for _, sibling := range modelInfo.Siblings {
		switch classify(sibling.RPath) {
		case roleNet:
			nets = append(nets, sibling.RPath)
		case roleWeights:
			weights = append(weights, sibling.RPath)
		case roleExtra:
			extras = append(extras, sibling.RPath)
		}
	}
	if len(nets) == 0 {
		return nil, fmt.Errorf("no Caffe network definition found for model ID: %s", modelID)
	}

	result = &DownloadResult{}
	if result.ModelPath, err = h.fetch(modelID, pickNet(nets), destination); err != nil {
		return nil, fmt.Errorf("failed to download network definition: %w", err)
	}
	if len(weights) > 0 {
		if result.WeightsPath, err = h.fetch(modelID, weights[0], destination); err != nil {
			return nil, fmt.Errorf("failed to download Caffe weights %s: %w", weights[0], err)
		}
	}
	for _, rPath := range extras {
		path, err := h.fetch(modelID, rPath, destination)
		if err != nil {
			return nil, fmt.Errorf("failed to download companion file %s: %w", rPath, err)
		}
		result.ExtraPaths = append(result.ExtraPaths, path)
	}
	return result, nil
}

func (h *HuggingFaceSource) fetch(modelID, rPath, destination string) (string, error) {
	filePath := filepath.Join(destination, filepath.Base(rPath))
	downloadURL := h.cdnURL + modelID + "/resolve/main/" + rPath
	downloadURL = strings.ReplaceAll(downloadURL, "//resolve/main/", "/resolve/main/")
	if err := downloadFile(h.client, downloadURL, h.apiKey, filePath); err != nil {
		return "", err
	}
	h.logger.WithFields(logrus.Fields{"model": modelID, "file": rPath}).Debug("downloaded file")
	return filePath, nil
}
