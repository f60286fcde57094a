package service

import "context"

// TextGenerator is the external language-model contract consumed by the
// pipeline. Implementations fail with *GenerationError; callers must handle
// failure without crashing the run.
type TextGenerator interface {
	Generate(ctx context.Context, systemRole, userPrompt string, temperature float64) (string, error)
}

// Ensure OpenAIClient implements TextGenerator
var _ TextGenerator = (*OpenAIClient)(nil)
