package ir

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
	"github.com/x448/float16"
	"github.com/zerfoo/zmf"

	"github.com/zerfoo/zcaffe/pkg/caffe"
)

// DType is the element type used to store float parameters.
type DType int

const (
	Float32 DType = iota
	Float16
)

// ParseDType maps "float32"/"fp32" and "float16"/"fp16"/"half" to a DType.
func ParseDType(s string) (DType, error) {
	switch s {
	case "", "float32", "fp32":
		return Float32, nil
	case "float16", "fp16", "half":
		return Float16, nil
	}
	return Float32, errors.Errorf("unknown parameter dtype %q", s)
}

func (d DType) String() string {
	if d == Float16 {
		return "float16"
	}
	return "float32"
}

// blobTensor encodes a blob as a little-endian ZMF tensor. Double blobs keep
// their precision.
func blobTensor(blob *caffe.Blob, dtype DType) (*zmf.Tensor, error) {
	shape := blob.Shape
	n := len(blob.Data)
	if n == 0 {
		n = len(blob.DoubleData)
	}
	if shape == nil {
		shape = []int64{int64(n)}
	}
	if want := blob.Count(); want != int64(n) {
		return nil, errors.Errorf("blob shape %v holds %d values, got %d", shape, want, n)
	}

	if len(blob.Data) == 0 && len(blob.DoubleData) > 0 {
		data := make([]byte, 8*len(blob.DoubleData))
		for i, v := range blob.DoubleData {
			binary.LittleEndian.PutUint64(data[i*8:], math.Float64bits(v))
		}
		return &zmf.Tensor{Dtype: zmf.Tensor_FLOAT64, Shape: shape, Data: data}, nil
	}

	switch dtype {
	case Float16:
		data := make([]byte, 2*len(blob.Data))
		for i, v := range blob.Data {
			binary.LittleEndian.PutUint16(data[i*2:], float16.Fromfloat32(v).Bits())
		}
		return &zmf.Tensor{Dtype: zmf.Tensor_FLOAT16, Shape: shape, Data: data}, nil
	default:
		data := make([]byte, 4*len(blob.Data))
		for i, v := range blob.Data {
			binary.LittleEndian.PutUint32(data[i*4:], math.Float32bits(v))
		}
		return &zmf.Tensor{Dtype: zmf.Tensor_FLOAT32, Shape: shape, Data: data}, nil
	}
}
