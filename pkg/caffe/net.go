// Package caffe holds the decoded form of a Caffe model: the network
// description read from a prototxt file and the parameter blobs read from a
// caffemodel file.
package caffe

import caffepb "github.com/zerfoo/zcaffe/internal/caffe"

// Net is a decoded network description: the declared model inputs and the
// ordered layer list.
type Net struct {
	Name        string
	Inputs      []string
	InputShapes [][]int64
	Layers      []*Layer
}

// Layer is one layer record of a network.
type Layer struct {
	Name    string
	Type    string
	Bottoms []string
	Tops    []string
	// Blobs are the parameter blobs stored inline with the layer, only
	// present when the layer was decoded from a caffemodel.
	Blobs []*Blob
	// Params is the full layer message, so converters can read type
	// specific blocks such as GetConvolutionParam. Nil getters are safe.
	Params *caffepb.LayerParameter
}

// Blob is a stored parameter tensor.
type Blob struct {
	Shape      []int64
	Data       []float32
	DoubleData []float64
}

// Count returns the number of elements described by the blob shape.
func (b *Blob) Count() int64 {
	if len(b.Shape) == 0 {
		return int64(len(b.Data) + len(b.DoubleData))
	}
	n := int64(1)
	for _, d := range b.Shape {
		n *= d
	}
	return n
}

// LayerBlobs is one entry of a weights container.
type LayerBlobs struct {
	Name  string
	Blobs []*Blob
}

// Weights returns the weights container view of a network decoded from a
// caffemodel: every layer that carries blobs, in file order.
func (n *Net) Weights() []LayerBlobs {
	var out []LayerBlobs
	for _, l := range n.Layers {
		if len(l.Blobs) == 0 {
			continue
		}
		out = append(out, LayerBlobs{Name: l.Name, Blobs: l.Blobs})
	}
	return out
}
