package caffe

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"

	caffepb "github.com/zerfoo/zcaffe/internal/caffe"
)

// v1LayerTypes maps the enum types of the deprecated "layers" blocks to the
// modern type tags.
var v1LayerTypes = map[caffepb.V1LayerParameter_LayerType]string{
	caffepb.V1LayerParameter_NONE:                       "",
	caffepb.V1LayerParameter_ABSVAL:                     "AbsVal",
	caffepb.V1LayerParameter_ACCURACY:                   "Accuracy",
	caffepb.V1LayerParameter_ARGMAX:                     "ArgMax",
	caffepb.V1LayerParameter_BNLL:                       "BNLL",
	caffepb.V1LayerParameter_CONCAT:                     "Concat",
	caffepb.V1LayerParameter_CONTRASTIVE_LOSS:           "ContrastiveLoss",
	caffepb.V1LayerParameter_CONVOLUTION:                "Convolution",
	caffepb.V1LayerParameter_DATA:                       "Data",
	caffepb.V1LayerParameter_DECONVOLUTION:              "Deconvolution",
	caffepb.V1LayerParameter_DROPOUT:                    "Dropout",
	caffepb.V1LayerParameter_DUMMY_DATA:                 "DummyData",
	caffepb.V1LayerParameter_EUCLIDEAN_LOSS:             "EuclideanLoss",
	caffepb.V1LayerParameter_ELTWISE:                    "Eltwise",
	caffepb.V1LayerParameter_EXP:                        "Exp",
	caffepb.V1LayerParameter_FLATTEN:                    "Flatten",
	caffepb.V1LayerParameter_HDF5_DATA:                  "HDF5Data",
	caffepb.V1LayerParameter_HDF5_OUTPUT:                "HDF5Output",
	caffepb.V1LayerParameter_HINGE_LOSS:                 "HingeLoss",
	caffepb.V1LayerParameter_IM2COL:                     "Im2col",
	caffepb.V1LayerParameter_IMAGE_DATA:                 "ImageData",
	caffepb.V1LayerParameter_INFOGAIN_LOSS:              "InfogainLoss",
	caffepb.V1LayerParameter_INNER_PRODUCT:              "InnerProduct",
	caffepb.V1LayerParameter_LRN:                        "LRN",
	caffepb.V1LayerParameter_MEMORY_DATA:                "MemoryData",
	caffepb.V1LayerParameter_MULTINOMIAL_LOGISTIC_LOSS:  "MultinomialLogisticLoss",
	caffepb.V1LayerParameter_MVN:                        "MVN",
	caffepb.V1LayerParameter_POOLING:                    "Pooling",
	caffepb.V1LayerParameter_POWER:                      "Power",
	caffepb.V1LayerParameter_RELU:                       "ReLU",
	caffepb.V1LayerParameter_SIGMOID:                    "Sigmoid",
	caffepb.V1LayerParameter_SIGMOID_CROSS_ENTROPY_LOSS: "SigmoidCrossEntropyLoss",
	caffepb.V1LayerParameter_SILENCE:                    "Silence",
	caffepb.V1LayerParameter_SOFTMAX:                    "Softmax",
	caffepb.V1LayerParameter_SOFTMAX_LOSS:               "SoftmaxWithLoss",
	caffepb.V1LayerParameter_SPLIT:                      "Split",
	caffepb.V1LayerParameter_SLICE:                      "Slice",
	caffepb.V1LayerParameter_TANH:                       "TanH",
	caffepb.V1LayerParameter_WINDOW_DATA:                "WindowData",
	caffepb.V1LayerParameter_THRESHOLD:                  "Threshold",
}

// upgradeV1 rewrites a deprecated "layers" block as a LayerParameter. The
// type specific param blocks shared by both forms are carried over.
func upgradeV1(v1 *caffepb.V1LayerParameter) (*caffepb.LayerParameter, error) {
	typ, ok := v1LayerTypes[v1.GetType()]
	if !ok {
		return nil, errors.Errorf("unknown V1 layer type %d", v1.GetType())
	}
	lp := &caffepb.LayerParameter{
		Name:    proto.String(v1.GetName()),
		Type:    proto.String(typ),
		Bottom:  v1.GetBottom(),
		Top:     v1.GetTop(),
		Blobs:   v1.GetBlobs(),
		Include: v1.GetInclude(),
		Exclude: v1.GetExclude(),

		AccuracyParam:        v1.GetAccuracyParam(),
		ArgmaxParam:          v1.GetArgmaxParam(),
		ConcatParam:          v1.GetConcatParam(),
		ContrastiveLossParam: v1.GetContrastiveLossParam(),
		ConvolutionParam:     v1.GetConvolutionParam(),
		DataParam:            v1.GetDataParam(),
		DropoutParam:         v1.GetDropoutParam(),
		DummyDataParam:       v1.GetDummyDataParam(),
		EltwiseParam:         v1.GetEltwiseParam(),
		ExpParam:             v1.GetExpParam(),
		Hdf5DataParam:        v1.GetHdf5DataParam(),
		Hdf5OutputParam:      v1.GetHdf5OutputParam(),
		HingeLossParam:       v1.GetHingeLossParam(),
		ImageDataParam:       v1.GetImageDataParam(),
		InfogainLossParam:    v1.GetInfogainLossParam(),
		InnerProductParam:    v1.GetInnerProductParam(),
		LrnParam:             v1.GetLrnParam(),
		MemoryDataParam:      v1.GetMemoryDataParam(),
		MvnParam:             v1.GetMvnParam(),
		PoolingParam:         v1.GetPoolingParam(),
		PowerParam:           v1.GetPowerParam(),
		ReluParam:            v1.GetReluParam(),
		SigmoidParam:         v1.GetSigmoidParam(),
		SoftmaxParam:         v1.GetSoftmaxParam(),
		SliceParam:           v1.GetSliceParam(),
		TanhParam:            v1.GetTanhParam(),
		ThresholdParam:       v1.GetThresholdParam(),
		WindowDataParam:      v1.GetWindowDataParam(),
		TransformParam:       v1.GetTransformParam(),
		LossParam:            v1.GetLossParam(),
	}
	return lp, nil
}
