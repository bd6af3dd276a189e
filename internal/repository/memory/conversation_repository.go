package memory

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"

	"gorlea-notes-be/pkg/assistant/conversation"
)

type ConversationRepository struct {
	cache *cache.Cache
}

func NewConversationRepository() *ConversationRepository {
	// Create a cache with a default expiration time of 1 hour, and which
	// purges expired items every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ConversationRepository{
		cache: c,
	}
}

func (r *ConversationRepository) Get(ctx context.Context, sessionID string) (*conversation.Session, error) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(*conversation.Session), nil
	}
	return nil, nil
}

func (r *ConversationRepository) Save(ctx context.Context, session *conversation.Session) error {
	r.cache.Set(session.ID, session, cache.DefaultExpiration)
	return nil
}

func (r *ConversationRepository) Delete(ctx context.Context, sessionID string) error {
	r.cache.Delete(sessionID)
	return nil
}
