package converter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerfoo/zcaffe/pkg/caffe"
)

func TestCountProductions(t *testing.T) {
	layers := []*caffe.Layer{
		{Name: "conv1", Tops: []string{"conv1"}},
		{Name: "relu1", Tops: []string{"conv1"}},
		{Name: "split", Tops: []string{"a", "b"}},
		{Name: "pre", Tops: []string{"data"}},
	}
	u := CountProductions([]string{"data"}, layers)

	assert.Equal(t, 2, u.Total("data"))
	assert.Equal(t, 2, u.Total("conv1"))
	assert.Equal(t, 1, u.Total("a"))
	assert.Equal(t, 0, u.Total("never"))
	assert.Equal(t, []string{"data", "conv1", "a", "b"}, u.Names())
}

func TestResolver_LastWriteKeepsBareName(t *testing.T) {
	layers := make([]*caffe.Layer, 4)
	for i := range layers {
		layers[i] = &caffe.Layer{Tops: []string{"x"}}
	}
	r := CountProductions(nil, layers).Resolver()

	got := []string{r.Resolve("x"), r.Resolve("x"), r.Resolve("x"), r.Resolve("x")}
	assert.Equal(t, []string{"x_hide_3", "x_hide_2", "x_hide_1", "x"}, got)
	assert.Equal(t, map[string]int{"x": 1}, r.Remaining())
}

func TestResolver_SingleUsePassthrough(t *testing.T) {
	r := CountProductions([]string{"data"}, []*caffe.Layer{{Tops: []string{"y"}}}).Resolver()
	assert.Equal(t, "data", r.Resolve("data"))
	assert.Equal(t, "y", r.Resolve("y"))
	assert.Equal(t, "unknown", r.Resolve("unknown"))
}

func TestResolver_Independent(t *testing.T) {
	u := CountProductions([]string{"x", "x"}, nil)
	first := u.Resolver()
	require.Equal(t, "x_hide_1", first.Resolve("x"))

	second := u.Resolver()
	assert.Equal(t, "x_hide_1", second.Resolve("x"))
	assert.Equal(t, 2, u.Total("x"))
}

func TestIndexWeights(t *testing.T) {
	old := &caffe.Blob{Data: []float32{1}}
	latest := &caffe.Blob{Data: []float32{2}}
	index := IndexWeights([]caffe.LayerBlobs{
		{Name: "fc", Blobs: []*caffe.Blob{old}},
		{Name: "fc", Blobs: []*caffe.Blob{latest}},
		{Name: "empty"},
	})

	assert.Equal(t, []*caffe.Blob{latest}, index.Lookup("fc"))
	assert.NotNil(t, index.Lookup("relu1"))
	assert.Empty(t, index.Lookup("relu1"))
	assert.NotNil(t, index.Lookup("empty"))
}
