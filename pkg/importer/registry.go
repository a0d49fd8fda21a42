package importer

import (
	"github.com/zerfoo/zcaffe/pkg/importer/layers"
	"github.com/zerfoo/zcaffe/pkg/registry"
)

// NewRegistry returns the built-in converters. Each extension runs after
// them and may add converters or replace built-in ones.
func NewRegistry(extensions ...func(*registry.Registry)) *registry.Registry {
	reg := layers.NewRegistry()
	for _, extend := range extensions {
		extend(reg)
	}
	return reg
}
