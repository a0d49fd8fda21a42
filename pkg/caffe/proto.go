package caffe

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"

	caffepb "github.com/zerfoo/zcaffe/internal/caffe"
)

// ErrMixedLayerFormats is returned for a net that declares both "layer" and
// the deprecated "layers" blocks, whose relative order cannot be recovered.
var ErrMixedLayerFormats = errors.New("net includes both 'layer' and 'layers' fields")

// ParsePrototxt parses a network description in protobuf text format.
// Unknown fields and values of the wrong type are rejected.
func ParsePrototxt(data []byte) (*Net, error) {
	np := &caffepb.NetParameter{}
	if err := prototext.Unmarshal(data, np); err != nil {
		return nil, errors.Wrap(err, "failed to parse NetParameter text")
	}
	return FromProto(np)
}

// DecodeCaffemodel decodes a binary NetParameter. Layers keep their stored
// blobs.
func DecodeCaffemodel(data []byte) (*Net, error) {
	np := &caffepb.NetParameter{}
	if err := proto.Unmarshal(data, np); err != nil {
		return nil, errors.Wrap(err, "failed to decode NetParameter")
	}
	return FromProto(np)
}

// EncodeCaffemodel writes the binary NetParameter form of a network.
func EncodeCaffemodel(net *Net) ([]byte, error) {
	data, err := proto.Marshal(ToProto(net))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode NetParameter")
	}
	return data, nil
}

// FromProto builds the network view of a NetParameter. Deprecated "layers"
// blocks are upgraded to the modern layer form.
func FromProto(np *caffepb.NetParameter) (*Net, error) {
	if len(np.GetLayer()) > 0 && len(np.GetLayers()) > 0 {
		return nil, ErrMixedLayerFormats
	}
	net := &Net{
		Name:   np.GetName(),
		Inputs: np.GetInput(),
	}
	for _, s := range np.GetInputShape() {
		net.InputShapes = append(net.InputShapes, dims(s))
	}
	if len(net.InputShapes) == 0 {
		inputDims := make([]int64, 0, len(np.GetInputDim()))
		for _, d := range np.GetInputDim() {
			inputDims = append(inputDims, int64(d))
		}
		net.InputShapes = splitInputDims(inputDims)
	}
	for _, lp := range np.GetLayer() {
		net.Layers = append(net.Layers, fromLayer(lp))
	}
	for i, v1 := range np.GetLayers() {
		lp, err := upgradeV1(v1)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to upgrade layers[%d] %q", i, v1.GetName())
		}
		net.Layers = append(net.Layers, fromLayer(lp))
	}
	return net, nil
}

// ToProto builds the NetParameter for a network. Layers without params get
// a bare LayerParameter carrying their name, type, bottoms, tops and blobs.
func ToProto(net *Net) *caffepb.NetParameter {
	np := &caffepb.NetParameter{Input: net.Inputs}
	if net.Name != "" {
		np.Name = proto.String(net.Name)
	}
	for _, s := range net.InputShapes {
		np.InputShape = append(np.InputShape, &caffepb.BlobShape{Dim: s})
	}
	for _, l := range net.Layers {
		lp := &caffepb.LayerParameter{}
		if l.Params != nil {
			lp = proto.Clone(l.Params).(*caffepb.LayerParameter)
		}
		lp.Name = proto.String(l.Name)
		lp.Type = proto.String(l.Type)
		lp.Bottom = l.Bottoms
		lp.Top = l.Tops
		lp.Blobs = nil
		for _, b := range l.Blobs {
			lp.Blobs = append(lp.Blobs, toBlob(b))
		}
		np.Layer = append(np.Layer, lp)
	}
	return np
}

func fromLayer(lp *caffepb.LayerParameter) *Layer {
	l := &Layer{
		Name:    lp.GetName(),
		Type:    lp.GetType(),
		Bottoms: lp.GetBottom(),
		Tops:    lp.GetTop(),
		Params:  lp,
	}
	for _, b := range lp.GetBlobs() {
		l.Blobs = append(l.Blobs, fromBlob(b))
	}
	return l
}

func fromBlob(b *caffepb.BlobProto) *Blob {
	blob := &Blob{Data: b.GetData(), DoubleData: b.GetDoubleData()}
	switch {
	case b.GetShape() != nil:
		blob.Shape = dims(b.GetShape())
	case b.Num != nil || b.Channels != nil || b.Height != nil || b.Width != nil:
		blob.Shape = []int64{
			int64(b.GetNum()), int64(b.GetChannels()), int64(b.GetHeight()), int64(b.GetWidth()),
		}
	}
	return blob
}

func toBlob(b *Blob) *caffepb.BlobProto {
	bp := &caffepb.BlobProto{Data: b.Data, DoubleData: b.DoubleData}
	if b.Shape != nil {
		bp.Shape = &caffepb.BlobShape{Dim: b.Shape}
	}
	return bp
}

func dims(s *caffepb.BlobShape) []int64 {
	d := s.GetDim()
	if d == nil {
		return []int64{}
	}
	return d
}

// splitInputDims folds the legacy input_dim list, four dims per input.
func splitInputDims(dims []int64) [][]int64 {
	if len(dims) == 0 {
		return nil
	}
	if len(dims)%4 != 0 {
		return [][]int64{dims}
	}
	var shapes [][]int64
	for i := 0; i < len(dims); i += 4 {
		shapes = append(shapes, dims[i:i+4])
	}
	return shapes
}
