package convo

// #region imports
import (
	"time"

	"github.com/danielpatrickdp/pattern-tutor/go-engine/internal/persona"
)

// #endregion

// #region role

// Role identifies the author of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// #endregion

// #region message

// Message is one turn in a conversation. Append-only: the engine never
// mutates or deletes messages, only reads a bounded recent suffix.
type Message struct {
	Role      Role
	Content   string
	Timestamp time.Time
	Metadata  map[string]string
}

// #endregion

// #region profile

// Profile is the learner's persona assignment carried on every interaction.
type Profile struct {
	Persona  persona.Type
	Guidance persona.GuidanceConfig
}

// #endregion

// #region interaction-context

// InteractionContext is the per-call envelope for one tutoring interaction.
// Owned by the caller for the lifetime of one conversation; history is read,
// never written, by the engine.
type InteractionContext struct {
	UserID    string
	PatternID string
	ProblemID string // optional
	History   []Message
	HintLevel int
	Attempts  int
	Profile   Profile
}

// #endregion
