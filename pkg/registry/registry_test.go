package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerfoo/zcaffe/pkg/caffe"
	"github.com/zerfoo/zcaffe/pkg/ir"
)

func identity(ctx *ConversionContext, _ *caffe.Layer, _ []*caffe.Blob, inputs []*ir.Node, names []string) ([]*ir.Node, error) {
	return []*ir.Node{ctx.Builder.Op(names[0], ir.OpIdentity, inputs...)}, nil
}

func TestRegistry(t *testing.T) {
	r := New()
	_, ok := r.Get("Dropout")
	assert.False(t, ok)

	r.RegisterFunc("Dropout", identity)
	r.RegisterFunc("Split", identity)

	c, ok := r.Get("Dropout")
	require.True(t, ok)
	assert.Equal(t, []string{"Dropout", "Split"}, r.Types())

	b := ir.NewBuilder("g")
	x := b.Param("x", nil)
	nodes, err := c.Convert(&ConversionContext{Builder: b}, &caffe.Layer{Name: "drop"}, nil, []*ir.Node{x}, []string{"y"})
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, "y", nodes[0].Name())
}

func TestRegistry_NilConverter(t *testing.T) {
	assert.Panics(t, func() { New().Register("ReLU", nil) })
}
