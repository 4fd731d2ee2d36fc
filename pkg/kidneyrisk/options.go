package kidneyrisk

import "github.com/hejijunhao/kidneyrisk/internal/config"

type options struct {
	model config.ModelConfig
}

// Option configures a Predictor.
type Option func(*options)

// WithModelDir sets the directory containing the artifacts.
// Expects: model.onnx, scaler.onnx and libonnxruntime.so.
func WithModelDir(dir string) Option {
	return func(o *options) {
		o.model.Dir = dir
	}
}

// WithModelPaths sets explicit classifier and scaler paths. Each may be an
// .onnx model or a .json parameter file.
func WithModelPaths(classifier, scaler string) Option {
	return func(o *options) {
		o.model.ClassifierPath = classifier
		o.model.ScalerPath = scaler
	}
}

// WithRuntimeLib sets the ONNX Runtime shared library path. Only needed
// when an artifact is an .onnx file outside the model directory layout.
func WithRuntimeLib(path string) Option {
	return func(o *options) {
		o.model.RuntimeLib = path
	}
}

func defaultOptions() options {
	return options{model: config.ModelConfig{Dir: "models"}}
}
