// Package analyze requests annotations for an uploaded video from the
// model-invocation collaborator and hands back the raw function calls for
// normalization.
package analyze

import (
	"context"

	"github.com/b08x/video-annotator/internal/annotation"
)

// File identifies a video uploaded to the model provider.
type File struct {
	Name        string
	DisplayName string
	URI         string
	MIMEType    string
}

// Response is one completed analysis request: zero or more function calls,
// plus any direct text the model produced instead of (or alongside) them.
// Zero calls is a valid empty result, not an error.
type Response struct {
	Calls []annotation.FunctionCall
	Text  string
}

// Analyzer uploads media and runs annotation prompts against it.
type Analyzer interface {
	Upload(ctx context.Context, path string) (*File, error)
	Analyze(ctx context.Context, file *File, prompt string) (*Response, error)
	Delete(ctx context.Context, file *File) error
}

// analysis options
type Options struct {
	Model string
}
