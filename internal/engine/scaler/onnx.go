package scaler

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/hejijunhao/kidneyrisk/internal/engine/onnx"
)

// onnxScaler runs a scaler exported to ONNX: one float input [N, F] and one
// float output [N, F].
type onnxScaler struct {
	session  *ort.DynamicAdvancedSession
	features int64
	names    []string
}

func loadONNX(path string) (*onnxScaler, error) {
	info, err := onnx.Inspect(path)
	if err != nil {
		return nil, fmt.Errorf("scaler: %w", err)
	}
	if len(info.Inputs) != 1 || len(info.Outputs) != 1 {
		return nil, fmt.Errorf("scaler: expected 1 input and 1 output, got %d and %d",
			len(info.Inputs), len(info.Outputs))
	}
	in, out := info.Inputs[0], info.Outputs[0]
	if !in.Float || !out.Float {
		return nil, fmt.Errorf("scaler: expected float tensors for %q and %q", in.Name, out.Name)
	}

	width, err := onnx.FeatureWidth(in)
	if err != nil {
		return nil, fmt.Errorf("scaler: %w", err)
	}
	if outWidth, err := onnx.FeatureWidth(out); err != nil || outWidth != width {
		return nil, fmt.Errorf("scaler: output %q does not match input width %d", out.Name, width)
	}
	if info.FeatureNames != nil && int64(len(info.FeatureNames)) != width {
		return nil, fmt.Errorf("scaler: %d feature names for %d features", len(info.FeatureNames), width)
	}

	session, err := onnx.NewSession(path, []string{in.Name}, []string{out.Name})
	if err != nil {
		return nil, fmt.Errorf("scaler: %w", err)
	}
	return &onnxScaler{session: session, features: width, names: info.FeatureNames}, nil
}

func (s *onnxScaler) Transform(row []float64) ([]float64, error) {
	if err := checkWidth(row, int(s.features)); err != nil {
		return nil, err
	}

	data := make([]float32, len(row))
	for i, v := range row {
		data[i] = float32(v)
	}
	shape := ort.NewShape(1, s.features)

	tIn, err := ort.NewTensor(shape, data)
	if err != nil {
		return nil, fmt.Errorf("scaler: failed to create input tensor: %w", err)
	}
	defer tIn.Destroy()

	tOut, err := ort.NewEmptyTensor[float32](shape)
	if err != nil {
		return nil, fmt.Errorf("scaler: failed to create output tensor: %w", err)
	}
	defer tOut.Destroy()

	if err := s.session.Run([]ort.Value{tIn}, []ort.Value{tOut}); err != nil {
		return nil, fmt.Errorf("scaler: inference failed: %w", err)
	}

	src := tOut.GetData()
	out := make([]float64, len(src))
	for i, v := range src {
		out[i] = float64(v)
	}
	return out, nil
}

func (s *onnxScaler) NumFeatures() int       { return int(s.features) }
func (s *onnxScaler) FeatureNames() []string { return s.names }

func (s *onnxScaler) Close() error {
	return s.session.Destroy()
}
