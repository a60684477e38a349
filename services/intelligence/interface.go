package ai

import "context"

// Generator produces raw text for a prompt. GeminiClient is the production implementation.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Completer turns prompts into replies, falling back to canned text when offline.
type Completer interface {
	Complete(ctx context.Context, prompt string) Completion
	Online() bool
}

// ReplyCache stores successful model replies.
type ReplyCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, reply string) error
}
