package classifier

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/hejijunhao/kidneyrisk/internal/engine/onnx"
)

// Output names produced by scikit-learn classifier exports with ZipMap
// disabled.
const (
	labelOutput = "label"
	probsOutput = "probabilities"
)

// onnxClassifier runs a classifier exported to ONNX: one float input [N, F],
// an int64 "label" output [N] and a float "probabilities" output [N, C].
type onnxClassifier struct {
	session  *ort.DynamicAdvancedSession
	features int64
	classes  int64
	names    []string
}

func loadONNX(path string) (*onnxClassifier, error) {
	info, err := onnx.Inspect(path)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	if len(info.Inputs) != 1 {
		return nil, fmt.Errorf("classifier: expected 1 input, got %d", len(info.Inputs))
	}
	in := info.Inputs[0]
	if !in.Float {
		return nil, fmt.Errorf("classifier: input %q is not a float tensor", in.Name)
	}
	features, err := onnx.FeatureWidth(in)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}

	label, ok := onnx.Find(info.Outputs, labelOutput)
	if !ok || !label.Int64 {
		return nil, fmt.Errorf("classifier: model missing int64 output %q", labelOutput)
	}
	probs, ok := onnx.Find(info.Outputs, probsOutput)
	if !ok || !probs.Float {
		return nil, fmt.Errorf("classifier: model missing float output %q (export with zipmap disabled)", probsOutput)
	}
	classes, err := onnx.FeatureWidth(probs)
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	if info.FeatureNames != nil && int64(len(info.FeatureNames)) != features {
		return nil, fmt.Errorf("classifier: %d feature names for %d features", len(info.FeatureNames), features)
	}

	session, err := onnx.NewSession(path, []string{in.Name}, []string{labelOutput, probsOutput})
	if err != nil {
		return nil, fmt.Errorf("classifier: %w", err)
	}
	return &onnxClassifier{
		session:  session,
		features: features,
		classes:  classes,
		names:    info.FeatureNames,
	}, nil
}

func (c *onnxClassifier) Predict(row []float64) (int, []float64, error) {
	if int64(len(row)) != c.features {
		return 0, nil, fmt.Errorf("classifier: expected %d features, got %d", c.features, len(row))
	}

	data := make([]float32, len(row))
	for i, v := range row {
		data[i] = float32(v)
	}

	tIn, err := ort.NewTensor(ort.NewShape(1, c.features), data)
	if err != nil {
		return 0, nil, fmt.Errorf("classifier: failed to create input tensor: %w", err)
	}
	defer tIn.Destroy()

	tLabel, err := ort.NewEmptyTensor[int64](ort.NewShape(1))
	if err != nil {
		return 0, nil, fmt.Errorf("classifier: failed to create label tensor: %w", err)
	}
	defer tLabel.Destroy()

	tProbs, err := ort.NewEmptyTensor[float32](ort.NewShape(1, c.classes))
	if err != nil {
		return 0, nil, fmt.Errorf("classifier: failed to create probabilities tensor: %w", err)
	}
	defer tProbs.Destroy()

	if err := c.session.Run([]ort.Value{tIn}, []ort.Value{tLabel, tProbs}); err != nil {
		return 0, nil, fmt.Errorf("classifier: inference failed: %w", err)
	}

	// Copy data out before tensors are destroyed.
	class := int(tLabel.GetData()[0])
	src := tProbs.GetData()
	probs := make([]float64, len(src))
	for i, p := range src {
		probs[i] = float64(p)
	}
	return class, probs, nil
}

func (c *onnxClassifier) NumFeatures() int       { return int(c.features) }
func (c *onnxClassifier) NumClasses() int        { return int(c.classes) }
func (c *onnxClassifier) FeatureNames() []string { return c.names }

func (c *onnxClassifier) Close() error {
	return c.session.Destroy()
}
