package gateway

// #region imports
import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// #endregion

// #region models

// tierModels maps each tier to its Gemini model id.
var tierModels = map[Tier]string{
	TierPro:   "gemini-2.5-pro",
	TierFlash: "gemini-2.5-flash",
}

// #endregion

// #region gemini-generator

// GeminiGenerator implements Generator against the Gemini API.
type GeminiGenerator struct {
	client *genai.Client
	models map[Tier]string
}

// NewGeminiGenerator creates a Gemini-backed generator.
func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &GeminiGenerator{client: client, models: tierModels}, nil
}

// #endregion

// #region generate

// Generate issues one GenerateContent call and maps the usage metadata
// into token counts. Unknown tiers fall back to the flash model.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string, tier Tier, maxTokens int, temperature float32) (Generation, error) {
	model, ok := g.models[tier]
	if !ok {
		model = g.models[TierFlash]
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(temperature),
		MaxOutputTokens: int32(maxTokens),
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), cfg)
	if err != nil {
		return Generation{}, fmt.Errorf("generate content: %w", err)
	}

	out := Generation{Text: resp.Text()}
	if um := resp.UsageMetadata; um != nil {
		out.InputTokens = int(um.PromptTokenCount)
		out.OutputTokens = int(um.CandidatesTokenCount)
	}
	return out, nil
}

// #endregion
