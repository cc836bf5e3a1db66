package ai

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// preferredGeminiModels is tried in order when no model is configured.
var preferredGeminiModels = []string{
	"models/gemini-2.0-flash",
	"models/gemini-1.5-flash",
	"models/gemini-pro",
	"models/gemini-1.0-pro",
}

// GeminiClient generates text with Google's Gemini API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient connects to Gemini. When model is empty the first
// preferred model offered by the API key is used, or else the first model
// that can generate content.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	if model == "" {
		available, err := listGenerativeModels(ctx, client)
		if err != nil {
			return nil, err
		}
		model = pickModel(available, preferredGeminiModels)
		if model == "" {
			return nil, fmt.Errorf("no text generation models available for this API key")
		}
	}

	log.Info().Str("model", model).Msg("AI connected to Gemini")
	return &GeminiClient{client: client, model: model}, nil
}

func listGenerativeModels(ctx context.Context, client *genai.Client) ([]string, error) {
	page, err := client.Models.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list Gemini models: %w", err)
	}

	var names []string
	for _, m := range page.Items {
		if slices.Contains(m.SupportedActions, "generateContent") {
			names = append(names, m.Name)
		}
	}
	return names, nil
}

// pickModel returns the first preference present in available, falling back
// to the first available model.
func pickModel(available, preferences []string) string {
	for _, pref := range preferences {
		if slices.Contains(available, pref) {
			return pref
		}
	}
	if len(available) > 0 {
		return available[0]
	}
	return ""
}

func (c *GeminiClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("Gemini generate failed: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

func (c *GeminiClient) Name() string {
	return "gemini:" + strings.TrimPrefix(c.model, "models/")
}
