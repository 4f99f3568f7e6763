package core

import "context"

// TextGenerator is any service that can turn a prompt into generated text.
// Implementations call out to an external generative-language-model API.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}
