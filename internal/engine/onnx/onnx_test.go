package onnx

import (
	"reflect"
	"testing"

	ort "github.com/yalue/onnxruntime_go"
)

func TestFeatureWidth(t *testing.T) {
	tests := []struct {
		name    string
		dims    []int64
		want    int64
		wantErr bool
	}{
		{"batch by features", []int64{-1, 39}, 39, false},
		{"fixed batch", []int64{1, 5}, 5, false},
		{"1-D", []int64{-1}, 0, true},
		{"3-D", []int64{1, 2, 3}, 0, true},
		{"dynamic width", []int64{-1, -1}, 0, true},
		{"zero width", []int64{1, 0}, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FeatureWidth(Tensor{Name: "input", Dimensions: tt.dims})
			if (err != nil) != tt.wantErr {
				t.Fatalf("FeatureWidth(%v) error = %v, wantErr %v", tt.dims, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("FeatureWidth(%v) = %d, want %d", tt.dims, got, tt.want)
			}
		})
	}
}

func TestFind(t *testing.T) {
	ts := []Tensor{{Name: "label", Int64: true}, {Name: "probabilities", Float: true}}

	got, ok := Find(ts, "probabilities")
	if !ok || !got.Float {
		t.Fatalf("Find(probabilities) = %+v, %v", got, ok)
	}
	if _, ok := Find(ts, "output_probability"); ok {
		t.Fatal("Find should not match an absent name")
	}
	if _, ok := Find(nil, "label"); ok {
		t.Fatal("Find on empty list should not match")
	}
}

func TestConvert(t *testing.T) {
	dims := ort.NewShape(-1, 5)
	in := []ort.InputOutputInfo{
		{Name: "label", OrtValueType: ort.ONNXTypeTensor, Dimensions: ort.NewShape(-1), DataType: ort.TensorElementDataTypeInt64},
		{Name: "probabilities", OrtValueType: ort.ONNXTypeTensor, Dimensions: dims, DataType: ort.TensorElementDataTypeFloat},
		// An enabled ZipMap yields a sequence of maps instead of a tensor.
		{Name: "output_probability", OrtValueType: ort.ONNXTypeSequence},
	}

	got := convert(in)
	if len(got) != 3 {
		t.Fatalf("expected 3 tensors, got %d", len(got))
	}
	if !got[0].Int64 || got[0].Float {
		t.Errorf("label = %+v, want int64", got[0])
	}
	if !got[1].Float || !reflect.DeepEqual(got[1].Dimensions, []int64{-1, 5}) {
		t.Errorf("probabilities = %+v, want float [-1 5]", got[1])
	}
	zip := got[2]
	if zip.Name != "output_probability" || zip.Float || zip.Int64 || zip.Dimensions != nil {
		t.Errorf("non-tensor output = %+v, want name only", zip)
	}
	if _, err := FeatureWidth(zip); err == nil {
		t.Error("FeatureWidth should reject a non-tensor output")
	}

	// Dimensions must not alias the runtime's shape.
	dims[1] = 7
	if got[1].Dimensions[1] != 5 {
		t.Error("convert should copy dimensions")
	}
}

func TestParseFeatureNames(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{"array", `["Age of the patient","Hypertension (yes/no)_yes"]`, []string{"Age of the patient", "Hypertension (yes/no)_yes"}, false},
		{"empty value", "", nil, false},
		{"empty array", `[]`, []string{}, false},
		{"object", `{"names":["a"]}`, nil, true},
		{"numbers", `[1,2]`, nil, true},
		{"not json", `Age,BMI`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFeatureNames(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFeatureNames(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ParseFeatureNames(%q) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}
