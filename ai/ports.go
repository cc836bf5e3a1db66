// Package ai answers free text through a hosted language model.
package ai

import "context"

// Backend is a text generation service.
type Backend interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}
