package ir

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
	"github.com/zerfoo/zmf"

	"github.com/zerfoo/zcaffe/pkg/caffe"
)

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder("net")
	x := b.ToFloat("data", b.Param("_origin_data", []int64{1, 4}))
	w := b.Const("_const_fc_weights", &caffe.Blob{Shape: []int64{2, 4}, Data: make([]float32, 8)})
	fc := b.Op("fc", OpDense, x, w)
	require.NoError(t, fc.Set("num_output", 2))
	require.NoError(t, fc.Set("transpose", false))
	relu := b.Op("relu", OpReLU, fc)
	require.NoError(t, b.Err())

	model, err := b.Build([]string{relu.Name()})
	require.NoError(t, err)

	g := model.GetGraph()
	require.Len(t, g.GetInputs(), 1)
	assert.Equal(t, "_origin_data", g.GetInputs()[0].GetName())
	assert.Equal(t, []int64{1, 4}, g.GetInputs()[0].GetShape())

	require.Len(t, g.GetNodes(), 3)
	assert.Equal(t, "data", g.GetNodes()[0].GetName())
	assert.Equal(t, OpCast, g.GetNodes()[0].GetOpType())
	assert.Equal(t, "float32", g.GetNodes()[0].GetAttributes()["to"].GetS())
	assert.Equal(t, []string{"data", "_const_fc_weights"}, g.GetNodes()[1].GetInputs())
	assert.Equal(t, []string{"fc"}, g.GetNodes()[1].GetOutputs())
	assert.Equal(t, int64(2), g.GetNodes()[1].GetAttributes()["num_output"].GetI())
	assert.Equal(t, int64(0), g.GetNodes()[1].GetAttributes()["transpose"].GetI())

	require.Contains(t, g.GetParameters(), "_const_fc_weights")
	assert.Equal(t, zmf.Tensor_FLOAT32, g.GetParameters()["_const_fc_weights"].GetDtype())
	assert.Len(t, g.GetParameters()["_const_fc_weights"].GetData(), 32)

	require.Len(t, g.GetOutputs(), 1)
	assert.Equal(t, "relu", g.GetOutputs()[0].GetName())
	assert.Equal(t, "zcaffe", model.GetMetadata().GetProducerName())
}

func TestBuilder_DuplicateName(t *testing.T) {
	b := NewBuilder("net")
	x := b.Param("x", []int64{1})
	b.Op("y", OpReLU, x)
	b.Op("y", OpTanh, x)

	require.Error(t, b.Err())
	assert.Contains(t, b.Err().Error(), `duplicate node name "y"`)
	var dup *DuplicateNameError
	require.ErrorAs(t, b.Err(), &dup)
	assert.Equal(t, "y", dup.Name)
	_, err := b.Build(nil)
	require.Error(t, err)
}

func TestBuilder_InvalidInputs(t *testing.T) {
	other := NewBuilder("other")
	foreign := other.Param("x", nil)

	b := NewBuilder("net")
	b.Op("y", OpReLU, foreign)
	assert.Contains(t, b.Err().Error(), "belongs to another graph")

	b = NewBuilder("net")
	b.Op("y", OpReLU, nil)
	assert.Contains(t, b.Err().Error(), "input 0 is nil")
}

func TestBuilder_UnknownOutput(t *testing.T) {
	b := NewBuilder("net")
	b.Param("x", nil)
	_, err := b.Build([]string{"missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `output "missing"`)
}

func TestNode_Set(t *testing.T) {
	b := NewBuilder("net")
	n := b.Op("op", OpConv2D)

	tests := []struct {
		name  string
		value any
		check func(t *testing.T, a *zmf.Attribute)
	}{
		{"int", 3, func(t *testing.T, a *zmf.Attribute) { assert.Equal(t, int64(3), a.GetI()) }},
		{"bool", true, func(t *testing.T, a *zmf.Attribute) { assert.Equal(t, int64(1), a.GetI()) }},
		{"float64", 0.25, func(t *testing.T, a *zmf.Attribute) { assert.Equal(t, float32(0.25), a.GetF()) }},
		{"string", "MAX", func(t *testing.T, a *zmf.Attribute) { assert.Equal(t, "MAX", a.GetS()) }},
		{"ints", []int{1, 2}, func(t *testing.T, a *zmf.Attribute) { assert.Equal(t, []int64{1, 2}, a.GetInts().GetVal()) }},
		{"floats", []float64{0.5}, func(t *testing.T, a *zmf.Attribute) { assert.Equal(t, []float32{0.5}, a.GetFloats().GetVal()) }},
		{"strings", []string{"a"}, func(t *testing.T, a *zmf.Attribute) { assert.Equal(t, []string{"a"}, a.GetStrings().GetVal()) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, n.Set(tt.name, tt.value))
			a, ok := n.Attribute(tt.name)
			require.True(t, ok)
			tt.check(t, a)
		})
	}

	assert.Error(t, n.Set("bad", struct{}{}))
	assert.Error(t, b.Param("p", nil).Set("k", 1))
}

func TestConst_Encodings(t *testing.T) {
	blob := &caffe.Blob{Shape: []int64{2}, Data: []float32{1.5, -2}}

	b := NewBuilder("net", WithParamDType(Float16))
	b.Const("half", blob)
	b.Const("double", &caffe.Blob{DoubleData: []float64{3.25}})
	model, err := b.Build(nil)
	require.NoError(t, err)

	half := model.GetGraph().GetParameters()["half"]
	assert.Equal(t, zmf.Tensor_FLOAT16, half.GetDtype())
	require.Len(t, half.GetData(), 4)
	assert.Equal(t, float16.Fromfloat32(-2).Bits(), binary.LittleEndian.Uint16(half.GetData()[2:]))

	double := model.GetGraph().GetParameters()["double"]
	assert.Equal(t, zmf.Tensor_FLOAT64, double.GetDtype())
	assert.Equal(t, []int64{1}, double.GetShape())
	assert.Equal(t, 3.25, math.Float64frombits(binary.LittleEndian.Uint64(double.GetData())))
}

func TestConst_ShapeMismatch(t *testing.T) {
	b := NewBuilder("net")
	b.Const("w", &caffe.Blob{Shape: []int64{2, 2}, Data: []float32{1}})
	require.Error(t, b.Err())
	assert.Contains(t, b.Err().Error(), `constant "w"`)
}

func TestParseDType(t *testing.T) {
	d, err := ParseDType("fp16")
	require.NoError(t, err)
	assert.Equal(t, Float16, d)
	d, err = ParseDType("")
	require.NoError(t, err)
	assert.Equal(t, Float32, d)
	_, err = ParseDType("int8")
	assert.Error(t, err)
}
