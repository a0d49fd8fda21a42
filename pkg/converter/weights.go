package converter

import "github.com/zerfoo/zcaffe/pkg/caffe"

// WeightIndex maps layer names to their stored parameter blobs.
type WeightIndex map[string][]*caffe.Blob

// IndexWeights builds the index. A layer name that appears twice keeps its
// last entry.
func IndexWeights(weights []caffe.LayerBlobs) WeightIndex {
	index := make(WeightIndex, len(weights))
	for _, w := range weights {
		index[w.Name] = w.Blobs
	}
	return index
}

// Lookup returns the blobs of a layer, or an empty list for layers that
// store none.
func (w WeightIndex) Lookup(layer string) []*caffe.Blob {
	if blobs, ok := w[layer]; ok && blobs != nil {
		return blobs
	}
	return []*caffe.Blob{}
}
