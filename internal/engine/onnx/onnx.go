// Package onnx wraps ONNX Runtime setup shared by the scaler and classifier
// artifacts: one-time environment initialization, model inspection and
// session creation.
package onnx

import (
	"encoding/json"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// FeatureNamesKey is the custom metadata key holding the model's input
// column names as a JSON array of strings.
const FeatureNamesKey = "feature_names"

// ortEnv manages global ONNX Runtime initialization (process-wide singleton).
var ortEnv struct {
	once sync.Once
	err  error
}

// Init initializes the ONNX Runtime environment from the shared library at
// libPath. Safe to call multiple times; only the first call has any effect.
func Init(libPath string) error {
	ortEnv.once.Do(func() {
		ort.SetSharedLibraryPath(libPath)
		ortEnv.err = ort.InitializeEnvironment()
	})
	if ortEnv.err != nil {
		return fmt.Errorf("onnx: failed to initialize runtime: %w", ortEnv.err)
	}
	return nil
}

// Tensor describes one model input or output.
type Tensor struct {
	Name       string
	Dimensions []int64
	Float      bool // element type float32
	Int64      bool // element type int64
}

// Info is what a model file reports about itself.
type Info struct {
	Inputs       []Tensor
	Outputs      []Tensor
	FeatureNames []string // nil when the model carries no feature_names metadata
}

// Inspect reads tensor names, shapes and feature-name metadata from the
// model at path. Init must have succeeded first.
func Inspect(path string) (Info, error) {
	inputs, outputs, err := ort.GetInputOutputInfo(path)
	if err != nil {
		return Info{}, fmt.Errorf("onnx: failed to read model info: %w", err)
	}

	info := Info{
		Inputs:  convert(inputs),
		Outputs: convert(outputs),
	}

	names, err := featureNames(path)
	if err != nil {
		return Info{}, err
	}
	info.FeatureNames = names
	return info, nil
}

func convert(in []ort.InputOutputInfo) []Tensor {
	out := make([]Tensor, 0, len(in))
	for _, t := range in {
		if t.OrtValueType != ort.ONNXTypeTensor {
			// Sequences and maps (e.g. an enabled ZipMap) are not usable here.
			out = append(out, Tensor{Name: t.Name})
			continue
		}
		out = append(out, Tensor{
			Name:       t.Name,
			Dimensions: append([]int64(nil), t.Dimensions...),
			Float:      t.DataType == ort.TensorElementDataTypeFloat,
			Int64:      t.DataType == ort.TensorElementDataTypeInt64,
		})
	}
	return out
}

func featureNames(path string) ([]string, error) {
	meta, err := ort.GetModelMetadata(path)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to read model metadata: %w", err)
	}
	defer meta.Destroy()

	raw, ok, err := meta.LookupCustomMetadataMap(FeatureNamesKey)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to read %s metadata: %w", FeatureNamesKey, err)
	}
	if !ok {
		return nil, nil
	}
	return ParseFeatureNames(raw)
}

// ParseFeatureNames decodes the feature_names metadata value, a JSON array
// of strings. An empty value means the model carries no names.
func ParseFeatureNames(raw string) ([]string, error) {
	if raw == "" {
		return nil, nil
	}
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("onnx: %s metadata is not a JSON string array: %w", FeatureNamesKey, err)
	}
	return names, nil
}

// FeatureWidth returns the fixed second dimension of a [batch, features]
// tensor, or an error if the tensor is not 2-D with a static width.
func FeatureWidth(t Tensor) (int64, error) {
	if len(t.Dimensions) != 2 {
		return 0, fmt.Errorf("onnx: tensor %q: expected 2D shape [batch, n], got %v", t.Name, t.Dimensions)
	}
	if t.Dimensions[1] <= 0 {
		return 0, fmt.Errorf("onnx: tensor %q: dynamic width %d not supported", t.Name, t.Dimensions[1])
	}
	return t.Dimensions[1], nil
}

// Find returns the tensor with the given name.
func Find(ts []Tensor, name string) (Tensor, bool) {
	for _, t := range ts {
		if t.Name == name {
			return t, true
		}
	}
	return Tensor{}, false
}

// NewSession creates an inference session bound to the given input and
// output names.
func NewSession(path string, inputs, outputs []string) (*ort.DynamicAdvancedSession, error) {
	opts, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session options: %w", err)
	}
	defer opts.Destroy()
	opts.SetIntraOpNumThreads(1)
	opts.SetInterOpNumThreads(1)

	session, err := ort.NewDynamicAdvancedSession(path, inputs, outputs, opts)
	if err != nil {
		return nil, fmt.Errorf("onnx: failed to create session: %w", err)
	}
	return session, nil
}
