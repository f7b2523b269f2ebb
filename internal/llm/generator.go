// Package llm abstracts the external text-generation capability behind a
// small provider interface so the insight engine can run against Gemini in
// cloud deployments and a local Ollama daemon in development.
package llm

import (
	"context"
	"fmt"

	"github.com/ideaforge/ideaforge/server/internal/config"
)

// Generator produces free-form text for a prompt. Calls carry no local
// timeout or retry; cancellation comes from the request context.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// New selects a provider implementation from configuration.
func New(ctx context.Context, cfg *config.Config) (Generator, error) {
	switch cfg.GenProvider {
	case "gemini":
		return NewGemini(ctx, cfg.GeminiKey, cfg.GenModel)
	case "ollama":
		return NewOllama(cfg.OllamaURL, cfg.GenModel), nil
	default:
		return nil, fmt.Errorf("unsupported GEN_PROVIDER: %s", cfg.GenProvider)
	}
}
