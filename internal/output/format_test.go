package output

import (
	"encoding/json"
	"testing"

	"github.com/hejijunhao/kidneyrisk/internal/model"
	"github.com/hejijunhao/kidneyrisk/internal/present"
)

func baseReport(t *testing.T) present.Report {
	t.Helper()
	r, err := present.Present(model.Prediction{
		Class:         2,
		Probabilities: []float64{0.1, 0.2, 0.5, 0.15, 0.05},
	})
	if err != nil {
		t.Fatalf("Present: %v", err)
	}
	return r
}

func baseVector() model.Vector {
	return model.Vector{
		Columns: []string{"Age", "Hypertension_yes"},
		Values:  []float64{45, 1},
	}
}

func TestFormatResultMinimal(t *testing.T) {
	res := FormatResult("id-1", baseReport(t), baseVector(), Minimal)

	if res.Class != 2 || res.Label != "Moderate Risk" {
		t.Fatalf("got class=%d label=%q", res.Class, res.Label)
	}
	if res.Probabilities != nil {
		t.Fatal("Probabilities should be omitted at Minimal")
	}
	if res.Features != nil {
		t.Fatal("Features should be omitted at Minimal")
	}
}

func TestFormatResultStandard(t *testing.T) {
	res := FormatResult("", baseReport(t), baseVector(), Standard)

	if len(res.Probabilities) != 5 {
		t.Fatalf("expected 5 probabilities, got %d", len(res.Probabilities))
	}
	if res.Probabilities["Moderate Risk"] != 0.5 {
		t.Fatalf("Moderate Risk = %v, want 0.5", res.Probabilities["Moderate Risk"])
	}
	if res.Features != nil {
		t.Fatal("Features should be omitted at Standard")
	}

	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var m map[string]any
	json.Unmarshal(data, &m)
	if _, ok := m["submission_id"]; ok {
		t.Fatal("empty submission_id should be omitted from JSON")
	}
}

func TestFormatResultFull(t *testing.T) {
	res := FormatResult("id-1", baseReport(t), baseVector(), Full)

	if res.Features["Age"] != 45 || res.Features["Hypertension_yes"] != 1 {
		t.Fatalf("unexpected features: %v", res.Features)
	}
	if res.SubmissionID != "id-1" {
		t.Fatalf("SubmissionID = %q", res.SubmissionID)
	}
}

func TestParseVerbosity(t *testing.T) {
	tests := []struct {
		in   string
		want Verbosity
	}{
		{"minimal", Minimal},
		{"standard", Standard},
		{"full", Full},
		{"", Standard},
		{"loud", Standard},
	}
	for _, tt := range tests {
		if got := ParseVerbosity(tt.in); got != tt.want {
			t.Errorf("ParseVerbosity(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
