package ir

import (
	"github.com/pkg/errors"
	"github.com/zerfoo/zmf"
)

// Kind tells graph inputs, constants and operators apart.
type Kind int

const (
	KindParam Kind = iota
	KindConst
	KindOp
)

func (k Kind) String() string {
	switch k {
	case KindParam:
		return "param"
	case KindConst:
		return "const"
	case KindOp:
		return "op"
	}
	return "unknown"
}

// Node is a single-output node of a graph under construction.
type Node struct {
	name    string
	kind    Kind
	opType  string
	inputs  []*Node
	shape   []int64
	attrs   map[string]*zmf.Attribute
	builder *Builder
}

// Name returns the node name, which is also the name of its output.
func (n *Node) Name() string {
	return n.name
}

// Kind returns what the node is.
func (n *Node) Kind() Kind {
	return n.kind
}

// OpType returns the operator type, empty for params and constants.
func (n *Node) OpType() string {
	return n.opType
}

// Inputs returns the nodes consumed by an operator.
func (n *Node) Inputs() []*Node {
	return n.inputs
}

// Shape returns the static shape when known.
func (n *Node) Shape() []int64 {
	return n.shape
}

// Attribute returns the attribute stored under key.
func (n *Node) Attribute(key string) (*zmf.Attribute, bool) {
	a, ok := n.attrs[key]
	return a, ok
}

// Set attaches an attribute to an operator node. Supported values are ints,
// floats, bools (stored as 0/1), strings and slices of those.
func (n *Node) Set(key string, value any) error {
	if n.kind != KindOp {
		return errors.Errorf("cannot set attribute %q on %s node %q", key, n.kind, n.name)
	}
	attr := &zmf.Attribute{}
	switch v := value.(type) {
	case int:
		attr.Value = &zmf.Attribute_I{I: int64(v)}
	case int32:
		attr.Value = &zmf.Attribute_I{I: int64(v)}
	case int64:
		attr.Value = &zmf.Attribute_I{I: v}
	case bool:
		var i int64
		if v {
			i = 1
		}
		attr.Value = &zmf.Attribute_I{I: i}
	case float32:
		attr.Value = &zmf.Attribute_F{F: v}
	case float64:
		attr.Value = &zmf.Attribute_F{F: float32(v)}
	case string:
		attr.Value = &zmf.Attribute_S{S: v}
	case []int:
		ints := make([]int64, len(v))
		for i, x := range v {
			ints[i] = int64(x)
		}
		attr.Value = &zmf.Attribute_Ints{Ints: &zmf.Ints{Val: ints}}
	case []int64:
		attr.Value = &zmf.Attribute_Ints{Ints: &zmf.Ints{Val: v}}
	case []float32:
		attr.Value = &zmf.Attribute_Floats{Floats: &zmf.Floats{Val: v}}
	case []float64:
		floats := make([]float32, len(v))
		for i, x := range v {
			floats[i] = float32(x)
		}
		attr.Value = &zmf.Attribute_Floats{Floats: &zmf.Floats{Val: floats}}
	case []string:
		attr.Value = &zmf.Attribute_Strings{Strings: &zmf.Strings{Val: v}}
	default:
		return errors.Errorf("unsupported value %T for attribute %q of node %q", value, key, n.name)
	}
	n.attrs[key] = attr
	return nil
}

// MustSet is Set for converters that build several attributes in a row: a
// failure is recorded on the builder instead of being returned.
func (n *Node) MustSet(key string, value any) *Node {
	if err := n.Set(key, value); err != nil {
		n.builder.setErr(err)
	}
	return n
}
