package classifier

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

const threeClass = `{
	"feature_names": ["a", "b"],
	"classes": [0, 1, 2],
	"coef": [[1, 0], [0, 1], [0, 0]],
	"intercept": [0, 0, 0]
}`

func TestLoadLogistic(t *testing.T) {
	c, err := Load(writeFile(t, "model.json", threeClass))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	defer c.Close()

	if c.NumFeatures() != 2 || c.NumClasses() != 3 {
		t.Fatalf("got %d features / %d classes, want 2 / 3", c.NumFeatures(), c.NumClasses())
	}
	if names := c.FeatureNames(); len(names) != 2 || names[1] != "b" {
		t.Fatalf("FeatureNames() = %v", names)
	}
}

func TestLogisticPredict(t *testing.T) {
	c, err := LoadLogistic(writeFile(t, "model.json", threeClass))
	if err != nil {
		t.Fatalf("LoadLogistic() error: %v", err)
	}

	tests := []struct {
		row  []float64
		want int
	}{
		{[]float64{5, 0}, 0},
		{[]float64{0, 5}, 1},
		{[]float64{-5, -5}, 2},
	}
	for _, tt := range tests {
		class, probs, err := c.Predict(tt.row)
		if err != nil {
			t.Fatalf("Predict(%v) error: %v", tt.row, err)
		}
		if class != tt.want {
			t.Errorf("Predict(%v) class = %d, want %d", tt.row, class, tt.want)
		}
		var sum float64
		for _, p := range probs {
			sum += p
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Errorf("Predict(%v) probabilities sum to %v", tt.row, sum)
		}
	}
}

func TestLogisticPredictReturnsDeclaredClassLabel(t *testing.T) {
	c := &Logistic{
		Classes:   []int{3, 7},
		Coef:      [][]float64{{0}, {1}},
		Intercept: []float64{0, 0},
	}
	class, _, err := c.Predict([]float64{10})
	if err != nil {
		t.Fatalf("Predict() error: %v", err)
	}
	if class != 7 {
		t.Fatalf("class = %d, want 7", class)
	}
}

func TestLogisticWidthMismatch(t *testing.T) {
	c, err := LoadLogistic(writeFile(t, "model.json", threeClass))
	if err != nil {
		t.Fatalf("LoadLogistic() error: %v", err)
	}
	if _, _, err := c.Predict([]float64{1, 2, 3}); err == nil {
		t.Fatal("expected width mismatch error")
	}
}

func TestSoftmaxLargeScores(t *testing.T) {
	probs := softmax([]float64{1000, 1000})
	if math.IsNaN(probs[0]) || math.Abs(probs[0]-0.5) > 1e-12 {
		t.Fatalf("softmax overflowed: %v", probs)
	}
}

func TestLoadLogisticInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"not json", `[`, "parse"},
		{"one class", `{"classes": [0], "coef": [[1]], "intercept": [0]}`, "at least 2"},
		{"coef rows", `{"classes": [0, 1], "coef": [[1]], "intercept": [0, 0]}`, "coef rows"},
		{"ragged", `{"classes": [0, 1], "coef": [[1, 2], [1]], "intercept": [0, 0]}`, "coef row 1"},
		{"empty rows", `{"classes": [0, 1], "coef": [[], []], "intercept": [0, 0]}`, "no features"},
		{"names", `{"feature_names": ["a", "b"], "classes": [0, 1], "coef": [[1], [1]], "intercept": [0, 0]}`, "feature names"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadLogistic(writeFile(t, "model.json", tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error %q does not mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	if _, err := Load("models/bestModel.pkl"); err == nil {
		t.Fatal("expected error for .pkl artifact")
	}
}
