package llm

import "context"

// TokenUsage reports prompt and completion token counts for one call.
type TokenUsage struct {
	PromptTokens     int
	CompletionTokens int
}

// ContentResponse contains the generated text and token usage metadata.
type ContentResponse struct {
	Content string
	Usage   TokenUsage
}

// TextGenerator is an interface for generating text from a prompt.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (ContentResponse, error)
}

// Closer is an interface for closing resources.
type Closer interface {
	Close() error
}
