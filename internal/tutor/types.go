package tutor

// #region imports
import (
	"context"

	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/faults"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/gateway"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/persona"
)

// #endregion

// #region budget-policy

// BudgetPolicy is the external spend guardrail the engine consults before
// every invocation. Implementations live outside the core (e.g. a monthly
// spend cap backed by the interaction log).
type BudgetPolicy interface {
	CheckBudget(ctx context.Context, userID string) (bool, error)
}

// AllowAll is the default policy: no spend limits.
type AllowAll struct{}

// CheckBudget always allows.
func (AllowAll) CheckBudget(context.Context, string) (bool, error) { return true, nil }

// #endregion

// #region config

// Config is the read-only configuration injected into the engine at
// construction. No globals, no runtime mutation.
type Config struct {
	AssessTier   gateway.Tier
	GuideTier    gateway.Tier
	ValidateTier gateway.Tier
	ChatTier     gateway.Tier

	MaxTokens        int
	Temperature      float32
	MinQualityLength int // advisory quality floor, in characters
}

// DefaultConfig returns the standard tier assignment: cheap tier for
// conversational traffic, pro tier where judgment matters.
func DefaultConfig() Config {
	return Config{
		AssessTier:       gateway.TierFlash,
		GuideTier:        gateway.TierPro,
		ValidateTier:     gateway.TierPro,
		ChatTier:         gateway.TierFlash,
		MaxTokens:        1024,
		Temperature:      0.7,
		MinQualityLength: 40,
	}
}

// #endregion

// #region metadata

// Metadata accompanies every successful operation result.
type Metadata struct {
	ResponseTimeMS int64
	QualityScore   float32
	InputTokens    int
	OutputTokens   int
	CostEstimate   float64
	StepID         int
	StepName       string
	Persona        persona.Type
}

// #endregion

// #region failure

// Failure is the typed degraded outcome of an operation. The facade never
// raises an unhandled fault: every path returns a result or a Failure.
type Failure struct {
	Kind             faults.Kind
	ErrorMessage     string
	FallbackResponse string
	ShouldRetry      bool
}

// #endregion

// #region results

// AssessResult is the typed outcome of AssessUser.
type AssessResult struct {
	Level           string // beginner | intermediate | advanced
	Pace            string // slow | moderate | fast
	Confidence      string // low | medium | high
	RecommendedPath string
	NextAction      string
	Meta            Metadata
}

// GuidanceResult is the typed outcome of ProvideGuidance.
type GuidanceResult struct {
	ResponseType    string // hint | explanation | encouragement | correction | next_step
	Content         string
	HintLevel       int // never exceeds the requested level
	SuggestedAction string
	Meta            Metadata
}

// ValidationResult is the typed outcome of ValidateSolution.
type ValidationResult struct {
	Correct            bool
	PatternRecognized  bool
	EfficiencyScore    int    // 0-100
	UnderstandingLevel string // surface | developing | solid | deep
	Feedback           string
	Suggestions        []string
	TransferLikelihood string // low | medium | high
	Meta               Metadata
}

// ChatResult is the typed outcome of HandleChat.
type ChatResult struct {
	Message          string
	ResponseType     string // answer | redirect | encouragement | check_in
	SuggestedActions []string
	Meta             Metadata
}

// #endregion
