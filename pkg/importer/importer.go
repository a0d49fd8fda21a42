// Package importer loads Caffe model files from disk and converts them to
// ZMF.
package importer

import (
	"fmt"
	"os"

	"github.com/zerfoo/zcaffe/pkg/caffe"
	"github.com/zerfoo/zcaffe/pkg/converter"
	"github.com/zerfoo/zcaffe/pkg/registry"
)

// ConvertCaffeToZmf loads a network definition and its trained weights and
// converts them to a ZMF model. An empty caffemodelPath converts the network
// without weights. A nil registry uses the built-in converters.
func ConvertCaffeToZmf(prototxtPath, caffemodelPath string, reg *registry.Registry, opts ...converter.Option) (*converter.Result, error) {
	net, err := LoadNet(prototxtPath)
	if err != nil {
		return nil, err
	}

	var weights []caffe.LayerBlobs
	if caffemodelPath != "" {
		weights, err = LoadWeights(caffemodelPath)
		if err != nil {
			return nil, err
		}
	}

	if reg == nil {
		reg = NewRegistry()
	}
	result, err := converter.CaffeToZMF(net, weights, reg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to convert %s: %w", prototxtPath, err)
	}
	return result, nil
}

// LoadNet reads a network definition in protobuf text format.
func LoadNet(path string) (*caffe.Net, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prototxt file: %w", err)
	}
	net, err := caffe.ParsePrototxt(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prototxt file %s: %w", path, err)
	}
	return net, nil
}

// LoadWeights reads a binary caffemodel and returns the blobs of every layer
// that stores any.
func LoadWeights(path string) ([]caffe.LayerBlobs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read caffemodel file: %w", err)
	}
	net, err := caffe.DecodeCaffemodel(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode caffemodel file %s: %w", path, err)
	}
	return net.Weights(), nil
}
