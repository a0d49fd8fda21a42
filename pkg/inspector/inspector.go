// Package inspector prints human-readable summaries of Caffe and ZMF models.
package inspector

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/zerfoo/zmf"

	"github.com/zerfoo/zcaffe/pkg/caffe"
	"github.com/zerfoo/zcaffe/pkg/importer"
)

// InspectCaffe prints the layers of a Caffe network. When weightsFile is set
// the stored blob shapes are listed too.
func InspectCaffe(w io.Writer, prototxtFile, weightsFile string) error {
	fmt.Fprintf(w, "Inspecting Caffe model from: %s\n", prototxtFile)

	net, err := importer.LoadNet(prototxtFile)
	if err != nil {
		return fmt.Errorf("failed to load Caffe model: %w", err)
	}

	fmt.Fprintf(w, "Network: %s\n", net.Name)
	for i, input := range net.Inputs {
		var shape []int64
		if i < len(net.InputShapes) {
			shape = net.InputShapes[i]
		}
		fmt.Fprintf(w, "Input: %s %v\n", input, shape)
	}
	fmt.Fprintf(w, "Network has %d layers.\n", len(net.Layers))

	reg := importer.NewRegistry()
	unsupported := make(map[string]bool)
	fmt.Fprintln(w, "\nLayers:")
	for _, layer := range net.Layers {
		fmt.Fprintf(w, "- Layer: %s, Type: %s\n", layer.Name, layer.Type)
		fmt.Fprintf(w, "  Bottoms: %v\n", layer.Bottoms)
		fmt.Fprintf(w, "  Tops: %v\n", layer.Tops)
		if _, ok := reg.Get(layer.Type); !ok {
			unsupported[layer.Type] = true
		}
	}
	if len(unsupported) > 0 {
		fmt.Fprintf(w, "\nUnsupported layer types: %v\n", slices.Sorted(maps.Keys(unsupported)))
	}

	if weightsFile == "" {
		return nil
	}
	weights, err := importer.LoadWeights(weightsFile)
	if err != nil {
		return fmt.Errorf("failed to load Caffe weights: %w", err)
	}
	fmt.Fprintf(w, "\nWeights (%d layers):\n", len(weights))
	for _, lb := range weights {
		fmt.Fprintf(w, "- Layer: %s\n", lb.Name)
		for i, blob := range lb.Blobs {
			fmt.Fprintf(w, "  Blob %d: shape %v, %d values\n", i, blob.Shape, blobLen(blob))
		}
	}
	return nil
}

func blobLen(blob *caffe.Blob) int {
	if len(blob.Data) > 0 {
		return len(blob.Data)
	}
	return len(blob.DoubleData)
}

// InspectZMF prints a summary of a ZMF model file.
func InspectZMF(w io.Writer, inputFile string) error {
	fmt.Fprintf(w, "Inspecting ZMF model from: %s\n", inputFile)

	model, err := importer.LoadModel(inputFile)
	if err != nil {
		return fmt.Errorf("failed to load ZMF model: %w", err)
	}

	printModel(w, model)
	return nil
}

func printModel(w io.Writer, model *zmf.Model) {
	graph := model.GetGraph()
	fmt.Fprintf(w, "Producer: %s %s\n", model.GetMetadata().GetProducerName(), model.GetMetadata().GetProducerVersion())
	fmt.Fprintf(w, "Opset version: %d\n", model.GetMetadata().GetOpsetVersion())
	fmt.Fprintf(w, "Graph has %d nodes.\n", len(graph.GetNodes()))
	fmt.Fprintf(w, "Graph has %d parameters.\n", len(graph.GetParameters()))

	for _, in := range graph.GetInputs() {
		fmt.Fprintf(w, "Input: %s %v\n", in.GetName(), in.GetShape())
	}
	for _, out := range graph.GetOutputs() {
		fmt.Fprintf(w, "Output: %s\n", out.GetName())
	}

	fmt.Fprintln(w, "\nNodes:")
	for _, node := range graph.GetNodes() {
		fmt.Fprintf(w, "- Node: %s, OpType: %s\n", node.GetName(), node.GetOpType())
		fmt.Fprintf(w, "  Inputs: %v\n", node.GetInputs())
		fmt.Fprintf(w, "  Outputs: %v\n", node.GetOutputs())
		attrs := node.GetAttributes()
		if len(attrs) > 0 {
			fmt.Fprintln(w, "  Attributes:")
			for _, name := range slices.Sorted(maps.Keys(attrs)) {
				fmt.Fprintf(w, "    - %s: %s\n", name, attributeString(attrs[name]))
			}
		}
	}
}

func attributeString(a *zmf.Attribute) string {
	switch v := a.GetValue().(type) {
	case *zmf.Attribute_I:
		return fmt.Sprint(v.I)
	case *zmf.Attribute_F:
		return fmt.Sprint(v.F)
	case *zmf.Attribute_S:
		return fmt.Sprintf("%q", v.S)
	case *zmf.Attribute_Ints:
		return fmt.Sprint(v.Ints.GetVal())
	case *zmf.Attribute_Floats:
		return fmt.Sprint(v.Floats.GetVal())
	case *zmf.Attribute_Strings:
		return fmt.Sprint(v.Strings.GetVal())
	}
	return fmt.Sprint(a.GetValue())
}
