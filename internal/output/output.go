package output

import (
	"context"
)

// Output defines the interface for prediction result destinations.
type Output interface {
	Write(ctx context.Context, result Result) error
	Close() error
}
