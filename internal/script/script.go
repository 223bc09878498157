package script

// #region imports
import (
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/convo"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/persona"
)

// #endregion

// #region step-ids

// Step identifiers, in script order.
const (
	StepConceptIntroduction = 1
	StepGuidedExample       = 2
	StepIndependentPractice = 3
	StepHintEscalation      = 4
	StepUnderstandingCheck  = 5
)

// terminalHistoryLen forces the understanding check once a conversation
// reaches this many turns, regardless of other signals.
const terminalHistoryLen = 10

// #endregion

// #region step

// Step is one stage of the fixed pedagogical script, shared by all patterns.
type Step struct {
	ID        int
	Name      string
	Objective string
}

// #endregion

// #region steps

// Steps is the ordered teaching script. Static configuration, never mutated.
var Steps = []Step{
	{
		ID:        StepConceptIntroduction,
		Name:      "concept_introduction",
		Objective: "Introduce the pattern's core idea and when it applies.",
	},
	{
		ID:        StepGuidedExample,
		Name:      "guided_example",
		Objective: "Walk through one problem together, narrating each decision.",
	},
	{
		ID:        StepIndependentPractice,
		Name:      "independent_practice",
		Objective: "Let the learner attempt the problem with minimal intervention.",
	},
	{
		ID:        StepHintEscalation,
		Name:      "hint_escalation",
		Objective: "Unblock the learner with progressively deeper hints, never the full answer.",
	},
	{
		ID:        StepUnderstandingCheck,
		Name:      "understanding_check",
		Objective: "Verify the learner can explain the pattern and transfer it to a new problem.",
	},
}

// #endregion

// #region execution-styles

// executionStyles maps step id -> persona -> the style directive injected
// into the prompt. Pure configuration, no model involvement.
var executionStyles = map[int]map[persona.Type]string{
	StepConceptIntroduction: {
		persona.StrugglingLearner: "Introduce the concept slowly with a real-world analogy before any code.",
		persona.BalancedLearner:   "Introduce the concept with a short analogy and a small code sketch.",
		persona.FastLearner:       "State the core insight in two sentences and move on.",
	},
	StepGuidedExample: {
		persona.StrugglingLearner: "Walk through the example line by line, explaining why each line exists.",
		persona.BalancedLearner:   "Walk through the example at a steady pace, pausing at each decision point.",
		persona.FastLearner:       "Sketch the example briefly, highlighting only the non-obvious decisions.",
	},
	StepIndependentPractice: {
		persona.StrugglingLearner: "Offer a scaffold (function signature and first step) before they begin.",
		persona.BalancedLearner:   "Let them attempt it cold; intervene only if they stall.",
		persona.FastLearner:       "Let them attempt it cold with a time expectation; add a constraint twist.",
	},
	StepHintEscalation: {
		persona.StrugglingLearner: "Give generous hints early, each one a concrete next action.",
		persona.BalancedLearner:   "Give measured hints: restate the goal, then nudge toward the technique.",
		persona.FastLearner:       "Give terse hints: name the subproblem, nothing more.",
	},
	StepUnderstandingCheck: {
		persona.StrugglingLearner: "Ask them to explain the pattern back in their own words, gently correcting.",
		persona.BalancedLearner:   "Ask them to explain the pattern and identify one new problem it fits.",
		persona.FastLearner:       "Ask them to explain the invariant and analyze complexity from memory.",
	},
}

// #endregion

// #region current-step

// CurrentStep derives the active teaching step from the interaction context.
// Pure function of history length, hint level, and attempts: the machine is
// stateless and trivially resumable after a process restart.
func CurrentStep(ctx convo.InteractionContext) Step {
	n := len(ctx.History)

	// Long conversations always land on the understanding check.
	if n >= terminalHistoryLen {
		return mustStep(StepUnderstandingCheck)
	}

	// Within the early window, an active hint escalation takes priority
	// over raw turn count once the learner has attempted something.
	if ctx.HintLevel >= 2 && ctx.Attempts >= 1 {
		return mustStep(StepHintEscalation)
	}

	switch {
	case n <= 1:
		return mustStep(StepConceptIntroduction)
	case n <= 3:
		return mustStep(StepGuidedExample)
	case n <= 6:
		return mustStep(StepIndependentPractice)
	default:
		return mustStep(StepHintEscalation)
	}
}

// #endregion

// #region step-execution

// StepExecution returns the persona-specific style directive for a step.
// Unknown steps fall back to the understanding check; unknown personas fall
// back to the balanced learner.
func StepExecution(stepID int, p persona.Type) string {
	styles, ok := executionStyles[stepID]
	if !ok {
		styles = executionStyles[StepUnderstandingCheck]
	}
	if s, ok := styles[p]; ok {
		return s
	}
	return styles[persona.BalancedLearner]
}

// #endregion

// #region helpers

func mustStep(id int) Step {
	for _, s := range Steps {
		if s.ID == id {
			return s
		}
	}
	// Steps is static and complete; unreachable for valid ids.
	return Steps[0]
}

// #endregion
