package calibration

// #region imports
import (
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/persona"
)

// #endregion

// #region question-types

// Option is one selectable answer with its point contribution.
type Option struct {
	ID       string
	Text     string
	Weight   int
	FollowUp string
}

// Question is one calibration quiz question. Immutable reference data.
type Question struct {
	ID      string
	Text    string
	Options []Option
}

// #endregion

// #region questions

// Questions is the fixed three-question calibration quiz. Weights are
// non-negative and increase with more advanced answers within a question.
var Questions = []Question{
	{
		ID:   "experience",
		Text: "How many algorithm problems have you solved before?",
		Options: []Option{
			{ID: "none", Text: "None yet", Weight: 0,
				FollowUp: "Perfect starting point — we'll build from zero."},
			{ID: "under_5", Text: "A handful (under 5)", Weight: 2,
				FollowUp: "Good, you've seen the shape of these problems."},
			{ID: "5_to_20", Text: "Between 5 and 20", Weight: 5,
				FollowUp: "Solid base to build pattern recognition on."},
			{ID: "20_plus", Text: "More than 20", Weight: 10,
				FollowUp: "Great — we can focus on speed and depth."},
		},
	},
	{
		ID:   "pattern_recognition",
		Text: "When you read a new problem, can you usually tell which pattern it needs?",
		Options: []Option{
			{ID: "never", Text: "No, they all look different to me", Weight: 0,
				FollowUp: "That's exactly the skill this course teaches."},
			{ID: "sometimes", Text: "Sometimes, for the common ones", Weight: 3,
				FollowUp: "We'll make that recognition reliable."},
			{ID: "often", Text: "Usually, after some thought", Weight: 6,
				FollowUp: "We'll work on making it instant."},
			{ID: "definitely", Text: "Yes, almost immediately", Weight: 10,
				FollowUp: "Then we'll stress-test it on harder variants."},
		},
	},
	{
		ID:   "timeline",
		Text: "When is your next technical interview?",
		Options: []Option{
			{ID: "no_date", Text: "No date yet, just learning", Weight: 0,
				FollowUp: "No pressure — we can take our time."},
			{ID: "few_months", Text: "In a few months", Weight: 1,
				FollowUp: "Plenty of runway for thorough practice."},
			{ID: "this_month", Text: "Within a month", Weight: 3,
				FollowUp: "We'll prioritize the highest-yield patterns."},
			{ID: "this_week", Text: "This week", Weight: 5,
				FollowUp: "Crunch mode — rapid pace, essentials only."},
		},
	},
}

// #endregion

// #region thresholds

// Persona assignment thresholds on the summed calibration score.
const (
	strugglingMax = 8  // score <= 8
	balancedMax   = 20 // 9 <= score <= 20; above is fast_learner
)

// #endregion

// #region result

// Result is the outcome of scoring one calibration quiz.
type Result struct {
	TotalScore int
	Persona    persona.Type
	Responses  map[string]string // question id -> selected option id
	Guidance   persona.GuidanceConfig
}

// #endregion

// #region score

// Score sums the weights of the selected options and maps the total to a
// persona tier. Pure function: no randomness, no hidden state. A question
// with no matching response contributes zero rather than failing the quiz.
func Score(responses map[string]string, questions []Question) Result {
	total := 0
	for _, q := range questions {
		optID, ok := responses[q.ID]
		if !ok {
			continue
		}
		for _, opt := range q.Options {
			if opt.ID == optID {
				total += opt.Weight
				break
			}
		}
	}

	p := personaForScore(total)

	// Copy the responses so the result doesn't alias caller state.
	resp := make(map[string]string, len(responses))
	for k, v := range responses {
		resp[k] = v
	}

	return Result{
		TotalScore: total,
		Persona:    p,
		Responses:  resp,
		Guidance:   persona.Lookup(p).Guidance,
	}
}

// #endregion

// #region persona-for-score

func personaForScore(score int) persona.Type {
	switch {
	case score <= strugglingMax:
		return persona.StrugglingLearner
	case score <= balancedMax:
		return persona.BalancedLearner
	default:
		return persona.FastLearner
	}
}

// #endregion

// #region follow-up

// FollowUp returns the acknowledgement text for a selected option, or ""
// if the question or option is unknown.
func FollowUp(questionID, optionID string) string {
	for _, q := range Questions {
		if q.ID != questionID {
			continue
		}
		for _, opt := range q.Options {
			if opt.ID == optionID {
				return opt.FollowUp
			}
		}
	}
	return ""
}

// #endregion
