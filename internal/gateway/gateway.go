package gateway

// #region imports
import (
	"context"
	"fmt"
	"log"
	"time"
)

// #endregion

// #region tier

// Tier selects a model quality/cost class. Tier selection is a caller
// decision; the gateway only maps it to a concrete model and price.
type Tier string

const (
	TierPro   Tier = "pro"
	TierFlash Tier = "flash"
)

// #endregion

// #region generator

// Generation is the raw output of one model call.
type Generation struct {
	Text         string
	InputTokens  int
	OutputTokens int
}

// Generator abstracts the external language-model capability so the
// gateway can be tested without a live API.
type Generator interface {
	Generate(ctx context.Context, prompt string, tier Tier, maxTokens int, temperature float32) (Generation, error)
}

// #endregion

// #region pricing

// TierPricing holds USD prices per million tokens for one tier.
type TierPricing struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Pricing maps tiers to their price table. Loaded once, never mutated.
type Pricing map[Tier]TierPricing

// DefaultPricing returns the built-in per-tier price table.
func DefaultPricing() Pricing {
	return Pricing{
		TierPro:   {InputPerMTok: 1.25, OutputPerMTok: 10.00},
		TierFlash: {InputPerMTok: 0.30, OutputPerMTok: 2.50},
	}
}

// Cost computes the monetary cost estimate for one call.
func (p Pricing) Cost(tier Tier, inputTokens, outputTokens int) float64 {
	tp, ok := p[tier]
	if !ok {
		tp = p[TierFlash]
	}
	return float64(inputTokens)/1e6*tp.InputPerMTok + float64(outputTokens)/1e6*tp.OutputPerMTok
}

// #endregion

// #region invocation-result

// InvocationResult is the normalized output of one model call. Ephemeral:
// it exists for the duration of a single call and is never persisted here.
type InvocationResult struct {
	Content      string
	InputTokens  int
	OutputTokens int
	CostEstimate float64
	LatencyMS    int64
}

// #endregion

// #region gateway

// Gateway wraps the external model capability with latency measurement,
// cost computation, and a hard per-call timeout. It never retries
// internally: retry is the caller's decision.
type Gateway struct {
	gen     Generator
	pricing Pricing
	timeout time.Duration
}

// New creates a gateway around a generator.
func New(gen Generator, pricing Pricing, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Gateway{gen: gen, pricing: pricing, timeout: timeout}
}

// #endregion

// #region invoke

// Invoke issues a single model call. Cost and latency are always populated
// on success; on failure the latency is still measured and the error is
// returned unclassified for the caller to interpret.
func (g *Gateway) Invoke(ctx context.Context, prompt string, tier Tier, maxTokens int, temperature float32) (InvocationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	gen, err := g.gen.Generate(ctx, prompt, tier, maxTokens, temperature)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return InvocationResult{LatencyMS: latency}, fmt.Errorf("generate: %w", err)
	}

	result := InvocationResult{
		Content:      gen.Text,
		InputTokens:  gen.InputTokens,
		OutputTokens: gen.OutputTokens,
		CostEstimate: g.pricing.Cost(tier, gen.InputTokens, gen.OutputTokens),
		LatencyMS:    latency,
	}

	log.Printf("[GATEWAY] tier=%s in=%d out=%d cost=$%.6f latency=%dms",
		tier, result.InputTokens, result.OutputTokens, result.CostEstimate, result.LatencyMS)

	return result, nil
}

// #endregion
