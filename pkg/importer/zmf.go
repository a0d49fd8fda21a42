package importer

import (
	"fmt"
	"os"

	"github.com/zerfoo/zmf"
	"google.golang.org/protobuf/proto"
)

// SaveModel serializes a ZMF model to path.
func SaveModel(model *zmf.Model, path string) error {
	data, err := proto.Marshal(model)
	if err != nil {
		return fmt.Errorf("failed to marshal ZMF model: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write ZMF file: %w", err)
	}
	return nil
}

// LoadModel reads and deserializes a ZMF model from path.
func LoadModel(path string) (*zmf.Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ZMF file: %w", err)
	}
	model := &zmf.Model{}
	if err := proto.Unmarshal(data, model); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ZMF protobuf: %w", err)
	}
	return model, nil
}
