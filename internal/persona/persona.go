package persona

// #region persona-type

// Type identifies one of the three learner persona tiers.
type Type string

const (
	StrugglingLearner Type = "struggling_learner"
	BalancedLearner   Type = "balanced_learner"
	FastLearner       Type = "fast_learner"
)

// #endregion

// #region guidance-enums

// ExplanationDepth controls how thoroughly concepts are explained.
type ExplanationDepth string

const (
	DepthMinimal  ExplanationDepth = "minimal"
	DepthStandard ExplanationDepth = "standard"
	DepthMaximum  ExplanationDepth = "maximum"
)

// HintFrequency controls how readily hints are offered.
type HintFrequency string

const (
	HintsLow      HintFrequency = "low"
	HintsModerate HintFrequency = "moderate"
	HintsHigh     HintFrequency = "high"
)

// CelebrationStyle controls how progress is acknowledged.
type CelebrationStyle string

const (
	CelebrateChallenge   CelebrationStyle = "challenge_oriented"
	CelebrateAchievement CelebrationStyle = "achievement_focused"
	CelebrateConfidence  CelebrationStyle = "confidence_building"
)

// ExampleCount controls how many worked examples are shown.
type ExampleCount string

const (
	ExamplesMinimal  ExampleCount = "minimal"
	ExamplesStandard ExampleCount = "standard"
	ExamplesMultiple ExampleCount = "multiple"
)

// PacePreference controls how quickly the script advances.
type PacePreference string

const (
	PaceRapid   PacePreference = "rapid"
	PaceSteady  PacePreference = "steady"
	PacePatient PacePreference = "patient"
)

// #endregion

// #region guidance-config

// GuidanceConfig bundles the tuning knobs derived from a persona assignment.
type GuidanceConfig struct {
	ExplanationDepth ExplanationDepth
	HintFrequency    HintFrequency
	CelebrationStyle CelebrationStyle
	ExampleCount     ExampleCount
	PacePreference   PacePreference
}

// #endregion

// #region definition

// Definition is the static record for one persona tier. Never mutated at runtime.
type Definition struct {
	ID              Type
	DisplayName     string
	Characteristics []string
	ToneDirective   string
	Guidance        GuidanceConfig
}

// #endregion

// #region catalog

// Catalog holds the full set of built-in persona definitions.
var Catalog = map[Type]Definition{
	StrugglingLearner: {
		ID:          StrugglingLearner,
		DisplayName: "Foundation Builder",
		Characteristics: []string{
			"new to algorithmic problem solving",
			"benefits from small, concrete steps",
			"needs frequent reassurance",
		},
		ToneDirective: "Be patient and encouraging. Break every idea into small steps, " +
			"define terms before using them, and check understanding often.",
		Guidance: GuidanceConfig{
			ExplanationDepth: DepthMaximum,
			HintFrequency:    HintsHigh,
			CelebrationStyle: CelebrateConfidence,
			ExampleCount:     ExamplesMultiple,
			PacePreference:   PacePatient,
		},
	},
	BalancedLearner: {
		ID:          BalancedLearner,
		DisplayName: "Steady Practitioner",
		Characteristics: []string{
			"has solved some problems before",
			"recognizes familiar patterns with prompting",
			"comfortable with a regular cadence",
		},
		ToneDirective: "Be clear and supportive. Explain the key idea, give one worked " +
			"example, and let the learner try before stepping in.",
		Guidance: GuidanceConfig{
			ExplanationDepth: DepthStandard,
			HintFrequency:    HintsModerate,
			CelebrationStyle: CelebrateAchievement,
			ExampleCount:     ExamplesStandard,
			PacePreference:   PaceSteady,
		},
	},
	FastLearner: {
		ID:          FastLearner,
		DisplayName: "Accelerated Solver",
		Characteristics: []string{
			"extensive prior practice",
			"recognizes patterns quickly",
			"prefers challenge over hand-holding",
		},
		ToneDirective: "Be direct and concise. Skip basics, lead with the core insight, " +
			"and push toward edge cases and complexity analysis.",
		Guidance: GuidanceConfig{
			ExplanationDepth: DepthMinimal,
			HintFrequency:    HintsLow,
			CelebrationStyle: CelebrateChallenge,
			ExampleCount:     ExamplesMinimal,
			PacePreference:   PaceRapid,
		},
	},
}

// #endregion

// #region lookup

// Lookup returns the definition for a persona id. Unknown ids fall back to
// the balanced learner: persona is a tone decision, never a hard failure.
func Lookup(id Type) Definition {
	if def, ok := Catalog[id]; ok {
		return def
	}
	return Catalog[BalancedLearner]
}

// #endregion
