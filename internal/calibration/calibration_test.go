package calibration

import (
	"testing"

	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/persona"
)

func TestScore_ThresholdBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  persona.Type
	}{
		{0, persona.StrugglingLearner},
		{8, persona.StrugglingLearner},
		{9, persona.BalancedLearner},
		{20, persona.BalancedLearner},
		{21, persona.FastLearner},
		{25, persona.FastLearner},
	}

	for _, tt := range tests {
		got := personaForScore(tt.score)
		if got != tt.want {
			t.Errorf("score %d: got %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScore_FastLearnerScenario(t *testing.T) {
	responses := map[string]string{
		"experience":          "20_plus",
		"pattern_recognition": "definitely",
		"timeline":            "this_week",
	}

	result := Score(responses, Questions)

	if result.TotalScore != 25 {
		t.Fatalf("expected total 25, got %d", result.TotalScore)
	}
	if result.Persona != persona.FastLearner {
		t.Fatalf("expected fast_learner, got %q", result.Persona)
	}
	if result.Guidance.PacePreference != persona.PaceRapid {
		t.Errorf("expected rapid pace, got %q", result.Guidance.PacePreference)
	}
}

func TestScore_Deterministic(t *testing.T) {
	responses := map[string]string{
		"experience":          "5_to_20",
		"pattern_recognition": "sometimes",
		"timeline":            "this_month",
	}

	first := Score(responses, Questions)
	for i := 0; i < 10; i++ {
		again := Score(responses, Questions)
		if again.TotalScore != first.TotalScore || again.Persona != first.Persona {
			t.Fatalf("run %d: got (%d, %q), want (%d, %q)",
				i, again.TotalScore, again.Persona, first.TotalScore, first.Persona)
		}
	}
}

func TestScore_MissingAnswerContributesZero(t *testing.T) {
	responses := map[string]string{
		"experience": "20_plus",
		// pattern_recognition and timeline missing
	}

	result := Score(responses, Questions)
	if result.TotalScore != 10 {
		t.Fatalf("expected 10, got %d", result.TotalScore)
	}
	if result.Persona != persona.BalancedLearner {
		t.Errorf("expected balanced_learner, got %q", result.Persona)
	}
}

func TestScore_UnknownOptionContributesZero(t *testing.T) {
	responses := map[string]string{
		"experience":          "not_an_option",
		"pattern_recognition": "never",
		"timeline":            "no_date",
	}

	result := Score(responses, Questions)
	if result.TotalScore != 0 {
		t.Fatalf("expected 0, got %d", result.TotalScore)
	}
	if result.Persona != persona.StrugglingLearner {
		t.Errorf("expected struggling_learner, got %q", result.Persona)
	}
}

func TestScore_DoesNotAliasInput(t *testing.T) {
	responses := map[string]string{"experience": "none"}
	result := Score(responses, Questions)

	responses["experience"] = "20_plus"
	if result.Responses["experience"] != "none" {
		t.Error("result responses should be a copy, not an alias")
	}
}

func TestWeightsMonotonic(t *testing.T) {
	for _, q := range Questions {
		prev := -1
		for _, opt := range q.Options {
			if opt.Weight < 0 {
				t.Errorf("%s/%s: negative weight %d", q.ID, opt.ID, opt.Weight)
			}
			if opt.Weight <= prev {
				t.Errorf("%s/%s: weight %d not increasing (prev %d)", q.ID, opt.ID, opt.Weight, prev)
			}
			prev = opt.Weight
		}
	}
}

func TestFollowUp(t *testing.T) {
	if got := FollowUp("experience", "20_plus"); got == "" {
		t.Error("expected follow-up text for known option")
	}
	if got := FollowUp("experience", "bogus"); got != "" {
		t.Errorf("expected empty follow-up for unknown option, got %q", got)
	}
	if got := FollowUp("bogus", "none"); got != "" {
		t.Errorf("expected empty follow-up for unknown question, got %q", got)
	}
}
