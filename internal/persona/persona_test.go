package persona

import "testing"

func TestLookup_KnownPersonas(t *testing.T) {
	for _, id := range []Type{StrugglingLearner, BalancedLearner, FastLearner} {
		def := Lookup(id)
		if def.ID != id {
			t.Errorf("%s: got definition for %q", id, def.ID)
		}
		if def.ToneDirective == "" {
			t.Errorf("%s: empty tone directive", id)
		}
		if len(def.Characteristics) == 0 {
			t.Errorf("%s: no characteristics", id)
		}
	}
}

func TestLookup_UnknownFallsBackToBalanced(t *testing.T) {
	def := Lookup("quantum_learner")
	if def.ID != BalancedLearner {
		t.Fatalf("expected balanced_learner fallback, got %q", def.ID)
	}
}

func TestDescription_Fallback(t *testing.T) {
	if Description("nope") != Description(BalancedLearner) {
		t.Error("unknown persona should get the balanced description")
	}
	if Description(FastLearner) == Description(StrugglingLearner) {
		t.Error("personas should have distinct descriptions")
	}
}

func TestGuidanceBullets(t *testing.T) {
	for _, id := range []Type{StrugglingLearner, BalancedLearner, FastLearner} {
		if len(GuidanceBullets(id)) == 0 {
			t.Errorf("%s: no guidance bullets", id)
		}
	}
	if len(GuidanceBullets("nope")) == 0 {
		t.Error("unknown persona should get balanced bullets, not none")
	}
}

func TestGuidanceConfigs(t *testing.T) {
	if Catalog[FastLearner].Guidance.PacePreference != PaceRapid {
		t.Error("fast learner should have rapid pace")
	}
	if Catalog[StrugglingLearner].Guidance.HintFrequency != HintsHigh {
		t.Error("struggling learner should have high hint frequency")
	}
	if Catalog[BalancedLearner].Guidance.ExplanationDepth != DepthStandard {
		t.Error("balanced learner should have standard depth")
	}
}
