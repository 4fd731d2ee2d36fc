package predictor

import "fmt"

// StartupError reports an artifact that could not be loaded or that is
// inconsistent with its counterpart. It is fatal: the process must not
// serve predictions without both artifacts.
type StartupError struct {
	Artifact string // path or artifact role
	Err      error
}

func (e *StartupError) Error() string {
	return fmt.Sprintf("startup: artifact %s: %v", e.Artifact, e.Err)
}

func (e *StartupError) Unwrap() error { return e.Err }

// InferenceError reports a vector the loaded artifacts cannot score, or an
// artifact output that is not a valid prediction.
type InferenceError struct {
	Reason string
	Err    error
}

func (e *InferenceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("inference: %s: %v", e.Reason, e.Err)
	}
	return "inference: " + e.Reason
}

func (e *InferenceError) Unwrap() error { return e.Err }
