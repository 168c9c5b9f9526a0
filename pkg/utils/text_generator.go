package utils

import (
	"context"
	"fmt"
	"strings"
)

// TextGenerator produces free text from a prompt. Implementations make a
// single upstream call per Generate.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	ProviderGemini = "gemini"
	ProviderGenAI  = "genai"
	ProviderOpenAI = "openai"
)

type GeneratorConfig struct {
	Provider   string
	APIKey     string
	Model      string
	GCPProject string
	BaseURL    string
}

// NewTextGenerator picks the client for cfg.Provider. Gemini and OpenAI need
// an API key; genai falls back to Vertex AI credentials when the key is empty.
func NewTextGenerator(cfg GeneratorConfig) (TextGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderGemini, "":
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%w: gemini", ErrMissingCredentials)
		}
		return NewGeminiClient(cfg.APIKey, cfg.Model), nil
	case ProviderGenAI:
		if cfg.APIKey == "" && cfg.GCPProject == "" {
			return nil, fmt.Errorf("%w: genai needs an api key or a gcp project", ErrMissingCredentials)
		}
		return NewGenAIClient(cfg.APIKey, cfg.Model, cfg.GCPProject), nil
	case ProviderOpenAI:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("%w: openai", ErrMissingCredentials)
		}
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("%w: unsupported provider %q", ErrInvalidInput, cfg.Provider)
	}
}
