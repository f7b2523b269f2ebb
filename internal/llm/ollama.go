package llm

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Ollama generates text against a local Ollama daemon's /api/generate.
type Ollama struct {
	client *resty.Client
	model  string
}

// NewOllama creates an Ollama-backed generator.
func NewOllama(baseURL, model string) *Ollama {
	return &Ollama{
		client: resty.New().SetBaseURL(baseURL),
		model:  model,
	}
}

// Generate sends a non-streaming generation request.
func (o *Ollama) Generate(ctx context.Context, prompt string) (string, error) {
	var out struct {
		Response string `json:"response"`
		Error    string `json:"error"`
	}
	resp, err := o.client.R().
		SetContext(ctx).
		SetBody(map[string]interface{}{
			"model":  o.model,
			"prompt": prompt,
			"stream": false,
		}).
		SetResult(&out).
		Post("/api/generate")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("ollama generate status %d", resp.StatusCode())
	}
	if out.Error != "" {
		return "", fmt.Errorf("ollama generate error: %s", out.Error)
	}
	return out.Response, nil
}
