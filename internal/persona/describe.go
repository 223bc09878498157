package persona

// #region descriptions

// descriptions are the learner-facing explanations of each persona assignment.
var descriptions = map[Type]string{
	StrugglingLearner: "You're building foundations. We'll move carefully, explain every " +
		"step, and make sure each concept sticks before moving on.",
	BalancedLearner: "You have a working base. We'll keep a steady rhythm: one clear " +
		"explanation, one worked example, then you take the wheel.",
	FastLearner: "You're moving fast. We'll skip the basics, focus on pattern recognition " +
		"under time pressure, and spend our time on the hard parts.",
}

// #endregion

// #region guidance-bullets

// guidanceBullets summarize, per persona, how the tutor will behave.
var guidanceBullets = map[Type][]string{
	StrugglingLearner: {
		"Detailed explanations with every term defined",
		"Hints offered early and often",
		"Multiple worked examples per concept",
		"Patient pacing with frequent check-ins",
	},
	BalancedLearner: {
		"Standard explanations focused on the key idea",
		"Hints when you ask or get stuck",
		"One worked example, then independent practice",
		"Steady pacing through the script",
	},
	FastLearner: {
		"Minimal explanations, core insight first",
		"Hints only on request",
		"Edge cases and complexity analysis emphasized",
		"Rapid pacing with harder follow-ups",
	},
}

// #endregion

// #region accessors

// Description returns the learner-facing text for a persona assignment.
// Unknown ids fall back to the balanced learner description.
func Description(id Type) string {
	if d, ok := descriptions[id]; ok {
		return d
	}
	return descriptions[BalancedLearner]
}

// GuidanceBullets returns the per-persona behavior summary shown after calibration.
func GuidanceBullets(id Type) []string {
	if b, ok := guidanceBullets[id]; ok {
		return b
	}
	return guidanceBullets[BalancedLearner]
}

// #endregion
