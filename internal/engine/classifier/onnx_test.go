package classifier

import (
	"math"
	"os"
	"testing"

	"github.com/hejijunhao/kidneyrisk/internal/engine/onnx"
)

const (
	testModelPath   = "../../../models/model.onnx"
	testRuntimePath = "../../../models/libonnxruntime.so"
)

func skipIfNoModel(t *testing.T) {
	t.Helper()
	for _, p := range []string{testModelPath, testRuntimePath} {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			t.Skip("model files not found; copy the exported model and ONNX Runtime into models/ first")
		}
	}
}

func TestONNXClassifierPredict(t *testing.T) {
	skipIfNoModel(t)
	if err := onnx.Init(testRuntimePath); err != nil {
		t.Fatalf("failed to initialize runtime: %v", err)
	}

	c, err := Load(testModelPath)
	if err != nil {
		t.Fatalf("failed to load classifier: %v", err)
	}
	defer c.Close()

	if c.NumFeatures() <= 0 || c.NumClasses() <= 0 {
		t.Fatalf("expected positive dimensions, got %d features and %d classes", c.NumFeatures(), c.NumClasses())
	}

	class, probs, err := c.Predict(make([]float64, c.NumFeatures()))
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if class < 0 || class >= c.NumClasses() {
		t.Fatalf("class %d out of range [0, %d)", class, c.NumClasses())
	}
	if len(probs) != c.NumClasses() {
		t.Fatalf("expected %d probabilities, got %d", c.NumClasses(), len(probs))
	}
	var sum float64
	for _, p := range probs {
		sum += p
	}
	if math.Abs(sum-1) > 1e-3 {
		t.Errorf("probabilities sum to %v, want 1", sum)
	}
	t.Logf("zero row: class=%d probs=%v", class, probs)

	if _, _, err := c.Predict(make([]float64, c.NumFeatures()+1)); err == nil {
		t.Error("expected error for wide row")
	}
}
