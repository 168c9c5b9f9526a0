package utils

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

const (
	defaultGenAIModel = "gemini-2.5-flash"
	vertexLocation    = "us-central1"
)

// GenAIClient uses the unified google.golang.org/genai SDK. Without an API key
// it goes through Vertex AI with application default credentials.
type GenAIClient struct {
	apiKey     string
	model      string
	gcpProject string
}

func NewGenAIClient(apiKey, model, gcpProject string) *GenAIClient {
	if model == "" {
		model = defaultGenAIModel
	}
	return &GenAIClient{apiKey: apiKey, model: strings.TrimPrefix(model, "models/"), gcpProject: gcpProject}
}

func (c *GenAIClient) clientConfig() *genai.ClientConfig {
	if c.apiKey != "" {
		return &genai.ClientConfig{
			Backend: genai.BackendGeminiAPI,
			APIKey:  c.apiKey,
		}
	}
	zap.L().Info("using Vertex AI with application default credentials",
		zap.String("project", c.gcpProject), zap.String("location", vertexLocation))
	return &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  c.gcpProject,
		Location: vertexLocation,
	}
}

func (c *GenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, c.clientConfig())
	if err != nil {
		return "", fmt.Errorf("failed to create genai client: %w", err)
	}

	temperature := float32(0.7)
	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}
	resp, err := client.Models.GenerateContent(ctx, c.model, contents, &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: 8192,
	})
	if err != nil {
		return "", fmt.Errorf("genai API call failed: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("empty response from genai")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return "", errors.New("no content in genai response")
	}
	var b strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	if b.Len() == 0 {
		return "", errors.New("empty text in genai response")
	}
	return b.String(), nil
}
