package converter

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zerfoo/zcaffe/pkg/caffe"
	"github.com/zerfoo/zcaffe/pkg/ir"
	"github.com/zerfoo/zcaffe/pkg/registry"
)

// call records one converter invocation.
type call struct {
	layer  string
	params int
	inputs []string
	names  []string
}

// recorder builds one op per top and records what it was handed.
type recorder struct {
	calls []call
}

func (r *recorder) Convert(ctx *registry.ConversionContext, layer *caffe.Layer, params []*caffe.Blob, inputs []*ir.Node, names []string) ([]*ir.Node, error) {
	c := call{layer: layer.Name, params: len(params), names: names}
	for _, in := range inputs {
		c.inputs = append(c.inputs, in.Name())
	}
	r.calls = append(r.calls, c)

	out := make([]*ir.Node, len(names))
	for i, name := range names {
		out[i] = ctx.Builder.Op(name, layer.Type, inputs...)
	}
	return out, nil
}

func newTestEngine(t *testing.T, types ...string) (*Engine, *recorder, *logtest.Hook) {
	t.Helper()
	rec := &recorder{}
	reg := registry.New()
	for _, typ := range types {
		reg.Register(typ, rec)
	}
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return New(reg, WithLogger(logger)), rec, hook
}

func layer(name, typ string, bottoms, tops []string) *caffe.Layer {
	return &caffe.Layer{Name: name, Type: typ, Bottoms: bottoms, Tops: tops}
}

func TestConvert_InPlaceRedefinition(t *testing.T) {
	engine, rec, _ := newTestEngine(t, "A", "B", "C")
	net := &caffe.Net{
		Name:        "scenario",
		Inputs:      []string{"data"},
		InputShapes: [][]int64{{1, 3}},
		Layers: []*caffe.Layer{
			layer("L1", "A", []string{"data"}, []string{"x"}),
			layer("L2", "B", []string{"x"}, []string{"x"}),
			layer("L3", "C", []string{"x"}, []string{"y"}),
		},
	}

	res, err := engine.Convert(net, nil)
	require.NoError(t, err)

	require.Len(t, rec.calls, 3)
	assert.Equal(t, []string{"x_hide_1"}, rec.calls[0].names)
	assert.Equal(t, []string{"data"}, rec.calls[0].inputs)
	assert.Equal(t, []string{"x"}, rec.calls[1].names)
	assert.Equal(t, []string{"x_hide_1"}, rec.calls[1].inputs)
	assert.Equal(t, []string{"y"}, rec.calls[2].names)
	assert.Equal(t, []string{"x"}, rec.calls[2].inputs, "L3 must read the most recent producer of x")

	assert.Equal(t, "x", res.Bindings["x"].Name())
	assert.Equal(t, "y", res.Bindings["y"].Name())
	assert.Equal(t, []string{"y"}, res.Outputs)
	assert.Empty(t, res.Diagnostics.Dangling)

	g := res.Model.GetGraph()
	require.Len(t, g.GetInputs(), 1)
	assert.Equal(t, "_origin_data", g.GetInputs()[0].GetName())
	assert.Equal(t, []int64{1, 3}, g.GetInputs()[0].GetShape())
	require.Len(t, g.GetNodes(), 4)
	assert.Equal(t, ir.OpCast, g.GetNodes()[0].GetOpType())
	assert.Equal(t, []string{"_origin_data"}, g.GetNodes()[0].GetInputs())
	require.Len(t, g.GetOutputs(), 1)
	assert.Equal(t, "y", g.GetOutputs()[0].GetName())
}

func TestConvert_MissingWeightsGiveEmptyParams(t *testing.T) {
	engine, rec, _ := newTestEngine(t, "InnerProduct", "ReLU")
	net := &caffe.Net{
		Inputs:      []string{"data"},
		InputShapes: [][]int64{{1, 4}},
		Layers: []*caffe.Layer{
			layer("fc1", "InnerProduct", []string{"data"}, []string{"fc1"}),
			layer("relu1", "ReLU", []string{"fc1"}, []string{"fc1"}),
		},
	}
	weights := []caffe.LayerBlobs{{Name: "fc1", Blobs: []*caffe.Blob{{Data: []float32{1}}, {Data: []float32{0}}}}}

	_, err := engine.Convert(net, weights)
	require.NoError(t, err)
	require.Len(t, rec.calls, 2)
	assert.Equal(t, 2, rec.calls[0].params)
	assert.Equal(t, 0, rec.calls[1].params)
}

func TestConvert_ForwardReference(t *testing.T) {
	engine, rec, _ := newTestEngine(t, "A")
	net := &caffe.Net{
		Layers: []*caffe.Layer{
			layer("L1", "A", []string{"later"}, []string{"x"}),
			layer("L2", "A", nil, []string{"later"}),
		},
	}

	res, err := engine.Convert(net, nil)
	require.Error(t, err)
	assert.Nil(t, res)

	var unresolved *UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, "later", unresolved.Name)
	assert.Equal(t, "L1", unresolved.Layer)
	assert.Empty(t, rec.calls)
}

func TestConvert_UnsupportedLayer(t *testing.T) {
	engine, rec, _ := newTestEngine(t, "A")
	net := &caffe.Net{
		Layers: []*caffe.Layer{
			layer("L1", "A", nil, []string{"x"}),
			layer("L2", "Mystery", []string{"x"}, []string{"y"}),
			layer("L3", "A", []string{"y"}, []string{"z"}),
		},
	}

	_, err := engine.Convert(net, nil)
	var unsupported *UnsupportedLayerError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "Mystery", unsupported.Type)
	assert.Contains(t, err.Error(), `"Mystery"`)
	assert.Len(t, rec.calls, 1)
}

func TestConvert_EmptyRegistry(t *testing.T) {
	net := &caffe.Net{Layers: []*caffe.Layer{layer("L1", "Input", nil, []string{"data"})}}
	_, err := New(nil).Convert(net, nil)

	var unsupported *UnsupportedLayerError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, "Input", unsupported.Type)
}

func TestConvert_ConverterContract(t *testing.T) {
	rec := &recorder{}
	reg := registry.New()
	reg.Register("Input", rec)
	reg.Register("ReLU", rec)
	reg.RegisterFunc("Split", func(ctx *registry.ConversionContext, _ *caffe.Layer, _ []*caffe.Blob, inputs []*ir.Node, names []string) ([]*ir.Node, error) {
		return []*ir.Node{ctx.Builder.Op(names[0], ir.OpIdentity, inputs...)}, nil
	})
	net := &caffe.Net{
		Layers: []*caffe.Layer{
			layer("in", "Input", nil, []string{"data"}),
			layer("split", "Split", []string{"data"}, []string{"a", "b"}),
			layer("relu", "ReLU", []string{"a"}, []string{"r"}),
		},
	}

	_, err := New(reg, WithLogger(logrus.New())).Convert(net, nil)
	var contract *ConverterContractError
	require.True(t, errors.As(err, &contract))
	assert.Equal(t, "split", contract.Layer)
	assert.Equal(t, 2, contract.Want)
	assert.Equal(t, 1, contract.Got)
	assert.Len(t, rec.calls, 1, "no layer after the failing one is converted")
}

func TestConvert_NilNodeBreaksContract(t *testing.T) {
	reg := registry.New()
	reg.RegisterFunc("Broken", func(*registry.ConversionContext, *caffe.Layer, []*caffe.Blob, []*ir.Node, []string) ([]*ir.Node, error) {
		return []*ir.Node{nil}, nil
	})
	net := &caffe.Net{Layers: []*caffe.Layer{layer("b", "Broken", nil, []string{"x"})}}

	_, err := New(reg).Convert(net, nil)
	var contract *ConverterContractError
	require.True(t, errors.As(err, &contract))
	assert.Equal(t, 0, contract.Got)
}

func TestConvert_MalformedInputs(t *testing.T) {
	engine, rec, _ := newTestEngine(t, "A")
	net := &caffe.Net{
		Inputs:      []string{"a", "b"},
		InputShapes: [][]int64{{1}},
		Layers:      []*caffe.Layer{layer("L1", "A", []string{"a"}, []string{"x"})},
	}

	_, err := engine.Convert(net, nil)
	var malformed *MalformedModelError
	require.True(t, errors.As(err, &malformed))
	assert.Contains(t, malformed.Reason, "2 inputs but 1 input shapes")
	assert.Empty(t, rec.calls)

	_, err = engine.Convert(nil, nil)
	assert.True(t, errors.As(err, &malformed))
}

func TestConvert_InputsWithoutShapesAreAbsent(t *testing.T) {
	engine, _, _ := newTestEngine(t, "A")
	net := &caffe.Net{
		Inputs: []string{"data"},
		Layers: []*caffe.Layer{layer("L1", "A", []string{"data"}, []string{"x"})},
	}

	_, err := engine.Convert(net, nil)
	var unresolved *UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, "data", unresolved.Name)
}

func TestConvert_RedefinedDeclaredInput(t *testing.T) {
	engine, rec, _ := newTestEngine(t, "Scale")
	net := &caffe.Net{
		Inputs:      []string{"data"},
		InputShapes: [][]int64{{1, 3, 8, 8}},
		Layers:      []*caffe.Layer{layer("pre", "Scale", []string{"data"}, []string{"data"})},
	}

	res, err := engine.Convert(net, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"data_hide_1"}, rec.calls[0].inputs)
	assert.Equal(t, "_origin_data_hide_1", res.Model.GetGraph().GetInputs()[0].GetName())
	assert.Equal(t, []string{"data"}, res.Outputs)
}

func TestConvert_UniqueNames(t *testing.T) {
	engine, _, _ := newTestEngine(t, "Op")
	var layers []*caffe.Layer
	tops := []string{"a", "b", "a", "c", "a", "b", "data"}
	prev := "data"
	for i, top := range tops {
		layers = append(layers, layer(fmt.Sprintf("L%d", i), "Op", []string{prev}, []string{top}))
		prev = top
	}
	net := &caffe.Net{Inputs: []string{"data"}, InputShapes: [][]int64{{1}}, Layers: layers}

	res, err := engine.Convert(net, nil)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, n := range res.Model.GetGraph().GetNodes() {
		assert.False(t, seen[n.GetName()], "duplicate node %s", n.GetName())
		seen[n.GetName()] = true
	}
	for _, name := range []string{"a_hide_2", "a_hide_1", "a", "b_hide_1", "b", "c", "data_hide_1", "data"} {
		assert.True(t, seen[name], "missing node %s", name)
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 1, "c": 1, "data": 1}, res.Diagnostics.Remaining)
}

func TestConvert_DanglingAndOutputs(t *testing.T) {
	engine, _, hook := newTestEngine(t, "Op")
	net := &caffe.Net{
		Layers: []*caffe.Layer{
			layer("L1", "Op", nil, []string{"t"}),
			layer("L2", "Op", nil, []string{"t"}),
			layer("L3", "Op", nil, []string{"u"}),
		},
	}

	res, err := engine.Convert(net, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"t_hide_1"}, res.Diagnostics.Dangling)
	assert.Equal(t, []string{"t", "u"}, res.Outputs)

	var warned bool
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.WarnLevel && e.Data["tensor"] == "t_hide_1" {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestConvert_PassThroughConverterKeepsOutput(t *testing.T) {
	reg := registry.New()
	reg.RegisterFunc("Dropout", func(_ *registry.ConversionContext, _ *caffe.Layer, _ []*caffe.Blob, inputs []*ir.Node, _ []string) ([]*ir.Node, error) {
		return inputs[:1], nil
	})
	logger, _ := logtest.NewNullLogger()
	net := &caffe.Net{
		Inputs:      []string{"data"},
		InputShapes: [][]int64{{1, 4}},
		Layers:      []*caffe.Layer{layer("drop", "Dropout", []string{"data"}, []string{"out"})},
	}

	res, err := New(reg, WithLogger(logger)).Convert(net, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"out"}, res.Outputs)
	assert.Empty(t, res.Diagnostics.Dangling)
	assert.Same(t, res.Bindings["data"], res.Bindings["out"])
	require.Len(t, res.Model.GetGraph().GetOutputs(), 1)
	assert.Equal(t, "data", res.Model.GetGraph().GetOutputs()[0].GetName())
}

func TestConvert_GeneratedNameCollision(t *testing.T) {
	tests := []struct {
		name string
		net  *caffe.Net
	}{
		{
			name: "top named like a hidden production",
			net: &caffe.Net{Layers: []*caffe.Layer{
				layer("L1", "Op", nil, []string{"x"}),
				layer("L2", "Op", nil, []string{"x"}),
				layer("L3", "Op", nil, []string{"x_hide_1"}),
			}},
		},
		{
			name: "hidden production named like an earlier top",
			net: &caffe.Net{Layers: []*caffe.Layer{
				layer("L1", "Op", nil, []string{"x_hide_1"}),
				layer("L2", "Op", nil, []string{"x"}),
				layer("L3", "Op", nil, []string{"x"}),
			}},
		},
		{
			name: "top named like an origin input",
			net: &caffe.Net{
				Inputs:      []string{"data"},
				InputShapes: [][]int64{{1}},
				Layers:      []*caffe.Layer{layer("L1", "Op", []string{"data"}, []string{"_origin_data"})},
			},
		},
		{
			name: "input named like an origin input",
			net: &caffe.Net{
				Inputs:      []string{"_origin_x", "x"},
				InputShapes: [][]int64{{1}, {1}},
			},
		},
		{
			name: "auxiliary node named like an earlier top",
			net: &caffe.Net{Layers: []*caffe.Layer{
				layer("L1", "Op", nil, []string{"_aux_y"}),
				layer("L2", "Aux", nil, []string{"y"}),
			}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine, _, _ := newTestEngine(t, "Op")
			engine.registry.RegisterFunc("Aux", func(ctx *registry.ConversionContext, layer *caffe.Layer, _ []*caffe.Blob, _ []*ir.Node, names []string) ([]*ir.Node, error) {
				aux := ctx.Builder.Param("_aux_"+names[0], nil)
				return []*ir.Node{ctx.Builder.Op(names[0], layer.Type, aux)}, nil
			})

			_, err := engine.Convert(tt.net, nil)
			var malformed *MalformedModelError
			require.True(t, errors.As(err, &malformed), "got %v", err)
			assert.Contains(t, malformed.Reason, "already taken")
		})
	}
}

func TestConvert_RequestedOutputs(t *testing.T) {
	engine, _, _ := newTestEngine(t, "Op")
	net := &caffe.Net{
		Layers: []*caffe.Layer{
			layer("L1", "Op", nil, []string{"x"}),
			layer("L2", "Op", []string{"x"}, []string{"y"}),
		},
	}

	res, err := New(engine.registry, WithOutputs("x", "y")).Convert(net, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, res.Outputs)
	require.Len(t, res.Model.GetGraph().GetOutputs(), 2)

	_, err = New(engine.registry, WithOutputs("nope")).Convert(net, nil)
	var unresolved *UnresolvedReferenceError
	require.True(t, errors.As(err, &unresolved))
	assert.Empty(t, unresolved.Layer)
}

func TestConvert_ConverterFailure(t *testing.T) {
	reg := registry.New()
	reg.RegisterFunc("Bad", func(*registry.ConversionContext, *caffe.Layer, []*caffe.Blob, []*ir.Node, []string) ([]*ir.Node, error) {
		return nil, errors.New("missing weights")
	})
	net := &caffe.Net{Layers: []*caffe.Layer{layer("fc9", "Bad", nil, []string{"x"})}}

	_, err := New(reg).Convert(net, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Bad layer "fc9": missing weights`)
}

func TestConvert_ConverterIgnoringNames(t *testing.T) {
	reg := registry.New()
	reg.RegisterFunc("Fixed", func(ctx *registry.ConversionContext, _ *caffe.Layer, _ []*caffe.Blob, _ []*ir.Node, _ []string) ([]*ir.Node, error) {
		return []*ir.Node{ctx.Builder.Op("fixed", ir.OpIdentity)}, nil
	})
	net := &caffe.Net{Layers: []*caffe.Layer{
		layer("a", "Fixed", nil, []string{"x"}),
		layer("b", "Fixed", nil, []string{"y"}),
	}}

	_, err := CaffeToZMF(net, nil, reg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate node name "fixed"`)
}

func TestEngine_ReusableAcrossRuns(t *testing.T) {
	engine, _, _ := newTestEngine(t, "Op")
	net := &caffe.Net{Layers: []*caffe.Layer{
		layer("L1", "Op", nil, []string{"x"}),
		layer("L2", "Op", []string{"x"}, []string{"x"}),
	}}

	for i := 0; i < 2; i++ {
		res, err := engine.Convert(net, nil)
		require.NoError(t, err)
		assert.Equal(t, "x", res.Bindings["x"].Name())
		assert.Equal(t, []string{"x"}, res.Outputs)
	}
}
