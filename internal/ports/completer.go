package ports

import "context"

// CompletionOutput is the generated text plus the model that produced it.
type CompletionOutput struct {
	Text  string
	Model string
}

// Completer sends one prompt to an LLM completion endpoint and returns the
// generated text. Implementations make exactly one call per invocation; all
// recovery is initiated by the user resubmitting.
type Completer interface {
	Complete(ctx context.Context, prompt string) (CompletionOutput, error)
}
