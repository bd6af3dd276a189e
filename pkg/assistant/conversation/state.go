package conversation

import "github.com/google/uuid"

// State names the four conversational phases. They are derived, not stored:
// the pending fields below fully determine the current state.
type State string

const (
	StateIdle                 State = "IDLE"
	StateAwaitingSaveTarget   State = "AWAITING_SAVE_TARGET"
	StateAwaitingRecentChoice State = "AWAITING_RECENT_CHOICE"
	StateAwaitingConfirmation State = "AWAITING_CREATE_CONFIRMATION"
)

// MaxRecentDocs caps the numbered list offered to the user.
const MaxRecentDocs = 5

// DocumentRef is the projection cached for a numeric choice.
type DocumentRef struct {
	Id    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

// Session is the per-session conversation state. Serializable so it can live
// in an in-process cache or Redis. Invariant: AwaitingRecentChoice implies
// RecentDocs is non-empty and PendingNote is set.
type Session struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`

	// PendingNote is the most recent AI-rewritten note awaiting a save decision.
	PendingNote *string `json:"pending_note"`

	// PendingCreateTitle is set while a create-confirmation prompt is open.
	PendingCreateTitle *string `json:"pending_create_title"`

	AwaitingRecentChoice bool          `json:"awaiting_recent_choice"`
	RecentDocs           []DocumentRef `json:"recent_docs"`
}

func NewSession(sessionID, userID string) *Session {
	return &Session{
		ID:     sessionID,
		UserID: userID,
	}
}

func (s *Session) HasPendingNote() bool {
	return s.PendingNote != nil
}

// State reports the current phase from the pending fields.
func (s *Session) State() State {
	switch {
	case s.PendingNote == nil:
		return StateIdle
	case s.AwaitingRecentChoice:
		return StateAwaitingRecentChoice
	case s.PendingCreateTitle != nil:
		return StateAwaitingConfirmation
	default:
		return StateAwaitingSaveTarget
	}
}

// Reset clears all pending state. Use on new conversations, after a
// completed save/create, and on any action failure (fail-safe to Idle).
func (s *Session) Reset() {
	s.PendingNote = nil
	s.PendingCreateTitle = nil
	s.AwaitingRecentChoice = false
	s.RecentDocs = nil
}

// SetPendingNote installs a freshly rewritten note and clears every other
// pending field, moving the session to AwaitingSaveTarget.
func (s *Session) SetPendingNote(note string) {
	s.PendingNote = &note
	s.PendingCreateTitle = nil
	s.AwaitingRecentChoice = false
	s.RecentDocs = nil
}
