package ai

import (
	"context"

	"github.com/bryanwahyu/textlens/internal/domain/analysis"
)

// Analyzer is the opaque provider boundary: input text in, parsed
// four-field payload or tagged error out.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (*analysis.Payload, error)
}
