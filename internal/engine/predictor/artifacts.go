package predictor

import (
	"path/filepath"
	"strings"

	"github.com/hejijunhao/kidneyrisk/internal/engine/classifier"
	"github.com/hejijunhao/kidneyrisk/internal/engine/onnx"
	"github.com/hejijunhao/kidneyrisk/internal/engine/scaler"
)

// Artifacts holds the pre-fitted scaler and classifier. It is built once at
// startup by LoadArtifacts and never modified afterwards.
type Artifacts struct {
	Scaler     scaler.Scaler
	Classifier classifier.Classifier
}

// Close releases both artifacts.
func (a Artifacts) Close() error {
	var firstErr error
	if a.Scaler != nil {
		firstErr = a.Scaler.Close()
	}
	if a.Classifier != nil {
		if err := a.Classifier.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Paths locates the artifact files on disk.
type Paths struct {
	Scaler     string
	Classifier string
	// RuntimeLib is the ONNX Runtime shared library, needed only when an
	// artifact is an .onnx file.
	RuntimeLib string
}

// LoadArtifacts loads the scaler and classifier. Every failure is returned
// as a *StartupError.
func LoadArtifacts(p Paths) (Artifacts, error) {
	if isONNX(p.Scaler) || isONNX(p.Classifier) {
		if err := onnx.Init(p.RuntimeLib); err != nil {
			return Artifacts{}, &StartupError{Artifact: p.RuntimeLib, Err: err}
		}
	}

	sc, err := scaler.Load(p.Scaler)
	if err != nil {
		return Artifacts{}, &StartupError{Artifact: p.Scaler, Err: err}
	}

	cls, err := classifier.Load(p.Classifier)
	if err != nil {
		sc.Close()
		return Artifacts{}, &StartupError{Artifact: p.Classifier, Err: err}
	}

	return Artifacts{Scaler: sc, Classifier: cls}, nil
}

func isONNX(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".onnx")
}
