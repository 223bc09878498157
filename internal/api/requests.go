package api

// #region imports
import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/budget"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/convo"
	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/persona"
)

// #endregion

// #region dto

// messageDTO is one history turn on the wire.
type messageDTO struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// interactionRequest is the shared request body for the four operations.
// Required vs. optional fields are enforced in validate(), per operation.
type interactionRequest struct {
	UserID    string       `json:"user_id"`
	PatternID string       `json:"pattern_id"`
	ProblemID string       `json:"problem_id,omitempty"`
	Persona   string       `json:"persona,omitempty"`
	HintLevel int          `json:"hint_level,omitempty"`
	Attempts  int          `json:"attempts,omitempty"`
	History   []messageDTO `json:"history,omitempty"`
	Message   string       `json:"message,omitempty"`
	Solution  string       `json:"solution,omitempty"`
}

// calibrationRequest is the body for scoring a calibration quiz.
type calibrationRequest struct {
	UserID    string            `json:"user_id"`
	PatternID string            `json:"pattern_id"`
	Responses map[string]string `json:"responses"`
}

// #endregion

// #region validation

type validationError struct {
	field  string
	reason string
}

func (e *validationError) Error() string {
	return fmt.Sprintf("%s: %s", e.field, e.reason)
}

// validate enforces the caller-owned input contract: required fields present,
// payloads under their caps. Oversized input is rejected here, never trimmed
// silently past the facade.
func (r *interactionRequest) validate(needsMessage, needsSolution bool) error {
	if r.UserID == "" {
		return &validationError{"user_id", "required"}
	}
	if r.PatternID == "" {
		return &validationError{"pattern_id", "required"}
	}
	if needsMessage {
		if r.Message == "" {
			return &validationError{"message", "required"}
		}
		if utf8.RuneCountInString(r.Message) > budget.MaxMessageChars {
			return &validationError{"message", fmt.Sprintf("exceeds %d characters", budget.MaxMessageChars)}
		}
	}
	if needsSolution {
		if r.Solution == "" {
			return &validationError{"solution", "required"}
		}
		if utf8.RuneCountInString(r.Solution) > budget.MaxSolutionChars {
			return &validationError{"solution", fmt.Sprintf("exceeds %d characters", budget.MaxSolutionChars)}
		}
	}
	if r.HintLevel < 0 || r.HintLevel > 3 {
		return &validationError{"hint_level", "must be between 0 and 3"}
	}
	if r.Attempts < 0 {
		return &validationError{"attempts", "must not be negative"}
	}
	return nil
}

// #endregion

// #region conversion

// toContext builds the engine's interaction envelope. Unknown persona ids
// resolve to the balanced learner via the catalog fallback.
func (r *interactionRequest) toContext() convo.InteractionContext {
	history := make([]convo.Message, 0, len(r.History))
	for _, m := range r.History {
		history = append(history, convo.Message{
			Role:      convo.Role(m.Role),
			Content:   m.Content,
			Timestamp: m.Timestamp,
		})
	}

	p := persona.Lookup(persona.Type(r.Persona))
	return convo.InteractionContext{
		UserID:    r.UserID,
		PatternID: r.PatternID,
		ProblemID: r.ProblemID,
		History:   history,
		HintLevel: r.HintLevel,
		Attempts:  r.Attempts,
		Profile: convo.Profile{
			Persona:  p.ID,
			Guidance: p.Guidance,
		},
	}
}

// #endregion
