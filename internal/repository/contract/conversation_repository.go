package contract

import (
	"context"

	"gorlea-notes-be/pkg/assistant/conversation"
)

// ConversationRepository stores per-session conversation state. Backed by an
// in-process cache or Redis depending on deployment; both expire entries so
// abandoned sessions fall back to a clean Idle state.
type ConversationRepository interface {
	// Get returns (nil, nil) when no state exists for the session.
	Get(ctx context.Context, sessionID string) (*conversation.Session, error)
	Save(ctx context.Context, session *conversation.Session) error
	Delete(ctx context.Context, sessionID string) error
}
