package tutor

// #region imports
import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/budget"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/convo"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/faults"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/gateway"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/prompt"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/script"
)

// #endregion

// #region engine

// Engine is the adaptive tutoring facade: the single entry point composing
// persona resolution, step derivation, prompt assembly, model invocation,
// and failure classification. Stateless per call; safe for unlimited
// concurrent use.
type Engine struct {
	gw     *gateway.Gateway
	policy BudgetPolicy
	cfg    Config
}

// New creates a fully wired engine. A nil policy means no spend limits.
func New(gw *gateway.Gateway, policy BudgetPolicy, cfg Config) *Engine {
	if policy == nil {
		policy = AllowAll{}
	}
	return &Engine{gw: gw, policy: policy, cfg: cfg}
}

// #endregion

// #region budget-fallback

const budgetFallback = "You've reached this month's tutoring budget. Sessions " +
	"resume at the start of the next billing period."

// #endregion

// #region run

// run executes the shared pipeline for one operation: budget check, step
// resolution, prompt assembly, invocation, quality check. On failure the
// returned *Failure carries the classified fallback; no error ever escapes.
func (e *Engine) run(ctx context.Context, kind prompt.Kind, ic convo.InteractionContext, message, solution string, tier gateway.Tier) (gateway.InvocationResult, script.Step, faults.QualityReport, *Failure) {
	step := script.CurrentStep(ic)

	allowed, err := e.policy.CheckBudget(ctx, ic.UserID)
	if err != nil {
		// A broken policy check must not take tutoring down; allow and log.
		log.Printf("[TUTOR] budget check failed for user=%s: %v", ic.UserID, err)
		allowed = true
	}
	if !allowed {
		log.Printf("[TUTOR] budget denied: user=%s kind=%s", ic.UserID, kind)
		return gateway.InvocationResult{}, step, faults.QualityReport{}, &Failure{
			Kind:             faults.KindQuotaExceeded,
			ErrorMessage:     "monthly budget exceeded",
			FallbackResponse: budgetFallback,
			ShouldRetry:      false,
		}
	}

	p := prompt.Build(prompt.Input{
		Kind:     kind,
		Context:  ic,
		Step:     step,
		Message:  message,
		Solution: solution,
	})
	log.Printf("[TUTOR] prompt ready: kind=%s user=%s est_tokens=%d history_tokens=%d",
		kind, ic.UserID, budget.EstimateTokens(p), budget.EstimateHistoryTokens(ic.History))

	result, err := e.gw.Invoke(ctx, p, tier, e.cfg.MaxTokens, e.cfg.Temperature)
	if err != nil {
		class := faults.Classify(err)
		log.Printf("[TUTOR] invoke failed: kind=%s user=%s class=%s retryable=%v err=%v",
			kind, ic.UserID, class.Kind, class.Retryable, err)
		return result, step, faults.QualityReport{}, &Failure{
			Kind:             class.Kind,
			ErrorMessage:     err.Error(),
			FallbackResponse: class.FallbackMessage,
			ShouldRetry:      class.Retryable,
		}
	}

	// Quality is advisory: a weak response is scored, logged, and delivered.
	quality := faults.ValidateQuality(result.Content, e.cfg.MinQualityLength)
	if !quality.IsValid {
		log.Printf("[TUTOR] weak response: kind=%s user=%s score=%.2f issues=%v",
			kind, ic.UserID, quality.Score, quality.Issues)
	}

	return result, step, quality, nil
}

// #endregion

// #region metadata

func (e *Engine) metadata(ic convo.InteractionContext, step script.Step, result gateway.InvocationResult, quality faults.QualityReport, elapsed time.Duration) Metadata {
	return Metadata{
		ResponseTimeMS: elapsed.Milliseconds(),
		QualityScore:   quality.Score,
		InputTokens:    result.InputTokens,
		OutputTokens:   result.OutputTokens,
		CostEstimate:   result.CostEstimate,
		StepID:         step.ID,
		StepName:       step.Name,
		Persona:        ic.Profile.Persona,
	}
}

// #endregion

// #region assess

// AssessUser evaluates the learner's standing from the conversation and
// returns a typed assessment.
func (e *Engine) AssessUser(ctx context.Context, ic convo.InteractionContext) (AssessResult, *Failure) {
	start := time.Now()
	result, step, quality, fail := e.run(ctx, prompt.KindAssess, ic, "", "", e.cfg.AssessTier)
	if fail != nil {
		return AssessResult{}, fail
	}

	text := result.Content
	path := parseField(text, "PATH")
	if path == "" {
		path = "Continue with the current pattern at the present pace."
	}
	next := parseField(text, "NEXT")
	if next == "" {
		next = "Attempt the next problem in this pattern."
	}

	return AssessResult{
		Level:           oneOf(parseField(text, "LEVEL"), []string{"beginner", "intermediate", "advanced"}, "intermediate"),
		Pace:            oneOf(parseField(text, "PACE"), []string{"slow", "moderate", "fast"}, "moderate"),
		Confidence:      oneOf(parseField(text, "CONFIDENCE"), []string{"low", "medium", "high"}, "medium"),
		RecommendedPath: path,
		NextAction:      next,
		Meta:            e.metadata(ic, step, result, quality, time.Since(start)),
	}, nil
}

// #endregion

// #region guidance

// guidanceActions maps a declared response type to the follow-up the UI
// should offer the learner.
var guidanceActions = map[string]string{
	"hint":          "Apply the hint and retry the problem",
	"explanation":   "Re-read the pattern summary, then retry",
	"encouragement": "Take another attempt",
	"correction":    "Fix the identified issue and resubmit",
	"next_step":     "Move on to the suggested step",
}

// ProvideGuidance answers a learner question with hint-level-aware guidance.
// The declared hint level in the result never exceeds the requested level.
func (e *Engine) ProvideGuidance(ctx context.Context, ic convo.InteractionContext, question string) (GuidanceResult, *Failure) {
	start := time.Now()
	result, step, quality, fail := e.run(ctx, prompt.KindGuide, ic, question, "", e.cfg.GuideTier)
	if fail != nil {
		return GuidanceResult{}, fail
	}

	typ, content := stripTypeLine(result.Content)
	typ = oneOf(typ, []string{"hint", "explanation", "encouragement", "correction", "next_step"}, "explanation")
	if content == "" {
		content = result.Content
	}

	return GuidanceResult{
		ResponseType:    typ,
		Content:         content,
		HintLevel:       ic.HintLevel,
		SuggestedAction: guidanceActions[typ],
		Meta:            e.metadata(ic, step, result, quality, time.Since(start)),
	}, nil
}

// #endregion

// #region validate

// ValidateSolution scores a submitted solution against the rubric.
func (e *Engine) ValidateSolution(ctx context.Context, ic convo.InteractionContext, solution string) (ValidationResult, *Failure) {
	start := time.Now()
	result, step, quality, fail := e.run(ctx, prompt.KindValidate, ic, "", solution, e.cfg.ValidateTier)
	if fail != nil {
		return ValidationResult{}, fail
	}

	text := result.Content
	feedback := parseField(text, "FEEDBACK")
	if feedback == "" {
		feedback = text
	}

	return ValidationResult{
		Correct:            parseYes(parseField(text, "CORRECT")),
		PatternRecognized:  parseYes(parseField(text, "PATTERN_RECOGNIZED")),
		EfficiencyScore:    parseScore(parseField(text, "EFFICIENCY"), 50, 0, 100),
		UnderstandingLevel: oneOf(parseField(text, "UNDERSTANDING"), []string{"surface", "developing", "solid", "deep"}, "developing"),
		Feedback:           feedback,
		Suggestions:        splitSuggestions(parseField(text, "SUGGESTIONS")),
		TransferLikelihood: oneOf(parseField(text, "TRANSFER"), []string{"low", "medium", "high"}, "medium"),
		Meta:               e.metadata(ic, step, result, quality, time.Since(start)),
	}, nil
}

// #endregion

// #region chat

// chatActions suggests follow-ups per teaching step.
var chatActions = map[int][]string{
	script.StepConceptIntroduction: {"Ask for an example", "Ask when the pattern applies"},
	script.StepGuidedExample:       {"Ask about a specific line", "Try the next step yourself"},
	script.StepIndependentPractice: {"Submit your attempt", "Request a hint"},
	script.StepHintEscalation:      {"Apply the hint", "Request a deeper hint"},
	script.StepUnderstandingCheck:  {"Explain the pattern back", "Try a transfer problem"},
}

// HandleChat handles free-form tutoring conversation within the current step.
func (e *Engine) HandleChat(ctx context.Context, ic convo.InteractionContext, message string) (ChatResult, *Failure) {
	start := time.Now()
	result, step, quality, fail := e.run(ctx, prompt.KindChat, ic, message, "", e.cfg.ChatTier)
	if fail != nil {
		return ChatResult{}, fail
	}

	typ, content := stripTypeLine(result.Content)
	typ = oneOf(typ, []string{"answer", "redirect", "encouragement", "check_in"}, "answer")
	if content == "" {
		content = result.Content
	}

	return ChatResult{
		Message:          content,
		ResponseType:     typ,
		SuggestedActions: chatActions[step.ID],
		Meta:             e.metadata(ic, step, result, quality, time.Since(start)),
	}, nil
}

// #endregion

// #region health

// HealthCheck issues a minimal invocation and reports whether the model
// capability is reachable.
func (e *Engine) HealthCheck(ctx context.Context) error {
	result, err := e.gw.Invoke(ctx, "Reply with the single word OK.", e.cfg.ChatTier, 8, 0)
	if err != nil {
		return fmt.Errorf("health invocation: %w", err)
	}
	if result.Content == "" {
		return fmt.Errorf("health invocation returned empty content")
	}
	return nil
}

// #endregion
