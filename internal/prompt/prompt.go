package prompt

// #region imports
import (
	"fmt"
	"strings"

	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/budget"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/catalog"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/convo"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/persona"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/script"
)

// #endregion

// #region kind

// Kind identifies the four interaction types.
type Kind string

const (
	KindAssess   Kind = "assess"
	KindGuide    Kind = "guide"
	KindValidate Kind = "validate"
	KindChat     Kind = "chat"
)

// #endregion

// #region input

// Input carries everything the assembler needs for one prompt. The history
// must already be the truncated suffix from the budget package.
type Input struct {
	Kind     Kind
	Context  convo.InteractionContext
	Step     script.Step
	Message  string // chat/guide: the learner's current message or question
	Solution string // validate: the learner's submitted solution
}

// #endregion

// #region preamble

const preamble = "You are an expert algorithm tutor who teaches problem-solving " +
	"patterns for technical interviews. Stay on topic, never solve the problem " +
	"outright, and tailor everything to the learner described below."

// #endregion

// #region build

// Build assembles the instruction payload for one model call. Deterministic:
// identical inputs produce identical text, with no timestamps or random
// ordering in the body.
func Build(in Input) string {
	def := persona.Lookup(in.Context.Profile.Persona)
	style := script.StepExecution(in.Step.ID, def.ID)
	history := budget.Truncate(in.Context.History)

	var b strings.Builder
	b.WriteString(preamble)
	b.WriteString("\n\n")

	// Learner profile
	fmt.Fprintf(&b, "## Learner\nProfile: %s\nTone: %s\n", def.DisplayName, def.ToneDirective)
	fmt.Fprintf(&b, "Explanation depth: %s | Hint frequency: %s | Pace: %s | Examples: %s\n",
		def.Guidance.ExplanationDepth, def.Guidance.HintFrequency,
		def.Guidance.PacePreference, def.Guidance.ExampleCount)

	// Teaching step
	fmt.Fprintf(&b, "\n## Current teaching step\nStep %d: %s\nObjective: %s\nExecution: %s\n",
		in.Step.ID, in.Step.Name, in.Step.Objective, style)

	// Problem context
	fmt.Fprintf(&b, "\n## Context\nPattern: %s\n", catalog.PatternName(in.Context.PatternID))
	if in.Context.ProblemID != "" {
		fmt.Fprintf(&b, "Problem: %s\n", catalog.ProblemName(in.Context.ProblemID))
	}

	// Conversation so far. Each turn is capped individually: history arrives
	// from the caller and a single oversized entry must not inflate the
	// payload past the per-message bound.
	if len(history) > 0 {
		b.WriteString("\n## Conversation so far\n")
		for _, m := range history {
			fmt.Fprintf(&b, "%s: %s\n", m.Role, budget.CapMessage(m.Content))
		}
	}

	switch in.Kind {
	case KindAssess:
		writeAssessSection(&b)
	case KindGuide:
		writeGuideSection(&b, in)
	case KindValidate:
		writeValidateSection(&b, in)
	case KindChat:
		writeChatSection(&b, in)
	}

	return b.String()
}

// #endregion

// #region assess-section

func writeAssessSection(b *strings.Builder) {
	b.WriteString("\n## Task\n")
	b.WriteString("Assess the learner's current standing from the conversation above.\n")
	b.WriteString("Respond with exactly these labeled lines:\n")
	b.WriteString("LEVEL: beginner|intermediate|advanced\n")
	b.WriteString("PACE: slow|moderate|fast\n")
	b.WriteString("CONFIDENCE: low|medium|high\n")
	b.WriteString("PATH: <one-sentence recommended learning path>\n")
	b.WriteString("NEXT: <the single next action the learner should take>\n")
}

// #endregion

// #region guide-section

func writeGuideSection(b *strings.Builder, in Input) {
	b.WriteString("\n## Task\n")
	fmt.Fprintf(b, "The learner asks: %s\n", budget.CapMessage(in.Message))
	// Hint escalation is monotonic: the model may not reveal a deeper hint
	// than the level requested here.
	fmt.Fprintf(b, "Requested hint level: %d (1=gentle nudge, 2=technique, 3=structure). "+
		"Do not reveal anything beyond level %d.\n", in.Context.HintLevel, in.Context.HintLevel)
	fmt.Fprintf(b, "Prior attempts on this problem: %d\n", in.Context.Attempts)
	b.WriteString("Open your reply with one of these labels on its own line: " +
		"TYPE: hint|explanation|encouragement|correction|next_step\n")
	b.WriteString("Then give the guidance itself, matched to the learner's tone directive.\n")
}

// #endregion

// #region validate-section

func writeValidateSection(b *strings.Builder, in Input) {
	b.WriteString("\n## Submitted solution\n")
	b.WriteString(budget.CapSolution(in.Solution))
	b.WriteString("\n\n## Task\n")
	b.WriteString("Evaluate the solution against the pattern being taught.\n")
	b.WriteString("Respond with exactly these labeled lines, then free-form feedback:\n")
	b.WriteString("CORRECT: yes|no\n")
	b.WriteString("PATTERN_RECOGNIZED: yes|no\n")
	b.WriteString("EFFICIENCY: <0-100>\n")
	b.WriteString("UNDERSTANDING: surface|developing|solid|deep\n")
	b.WriteString("TRANSFER: low|medium|high\n")
	b.WriteString("FEEDBACK: <two or three sentences of feedback>\n")
	b.WriteString("SUGGESTIONS: <semicolon-separated concrete improvements>\n")
}

// #endregion

// #region chat-section

func writeChatSection(b *strings.Builder, in Input) {
	b.WriteString("\n## Task\n")
	fmt.Fprintf(b, "The learner says: %s\n", budget.CapMessage(in.Message))
	b.WriteString("Reply as their tutor, staying inside the current teaching step. " +
		"Open your reply with one of these labels on its own line: " +
		"TYPE: answer|redirect|encouragement|check_in\n")
}

// #endregion
