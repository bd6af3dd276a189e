// Package resolver implements the append-or-confirm-create save protocol.
// The safety rule lives here: a lookup miss never creates a document, it asks
// for confirmation instead, so a misspelled target can't silently spawn a
// new doc.
package resolver

import (
	"context"

	"github.com/google/uuid"
)

type Action string

const (
	ActionAppended          Action = "appended"
	ActionCreated           Action = "created"
	ActionNeedsConfirmation Action = "needs_confirmation"
)

// Document is the projection the save flow needs.
type Document struct {
	Id    uuid.UUID
	Title string
}

// Store is the narrow document port the resolver and the conversation
// machine drive. Implementations are owner-scoped per call.
type Store interface {
	// FindByTitle matches case-insensitively among non-archived documents.
	// Returns (nil, nil) on no match. Ties on normalized title resolve to
	// the most recently accessed document.
	FindByTitle(ctx context.Context, userID uuid.UUID, title string) (*Document, error)
	// Append concatenates the fragment onto the document with a separator.
	// Fails with a not-found error if the document vanished since lookup.
	Append(ctx context.Context, userID, docID uuid.UUID, fragment string) (*Document, error)
	// Create inserts a new document, applying the blank-title default.
	Create(ctx context.Context, userID uuid.UUID, title, content string) (*Document, error)
	// ListRecent returns non-archived documents, most recently accessed first.
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]Document, error)
}

// Outcome reports what a resolution did (or still needs).
type Outcome struct {
	Action         Action
	Title          string // Appended/Created: the actual document title
	SuggestedTitle string // NeedsConfirmation: the title to confirm, verbatim
}

type Resolver struct {
	store Store
}

func New(store Store) *Resolver {
	return &Resolver{store: store}
}

// ResolveSave appends the note to an existing document matched by title, or
// signals that creating one needs confirmation. It never creates. An empty
// target title is deliberately passed through: the lookup misses and the
// caller gets a confirmation prompt.
func (r *Resolver) ResolveSave(ctx context.Context, userID uuid.UUID, targetTitle, noteContent string) (*Outcome, error) {
	doc, err := r.store.FindByTitle(ctx, userID, targetTitle)
	if err != nil {
		return nil, err
	}

	if doc == nil {
		return &Outcome{
			Action:         ActionNeedsConfirmation,
			SuggestedTitle: targetTitle,
		}, nil
	}

	appended, err := r.store.Append(ctx, userID, doc.Id, noteContent)
	if err != nil {
		return nil, err
	}

	return &Outcome{Action: ActionAppended, Title: appended.Title}, nil
}

// ResolveCreate always creates. Used for explicit create commands and for
// confirmed create prompts.
func (r *Resolver) ResolveCreate(ctx context.Context, userID uuid.UUID, title, noteContent string) (*Outcome, error) {
	doc, err := r.store.Create(ctx, userID, title, noteContent)
	if err != nil {
		return nil, err
	}

	return &Outcome{Action: ActionCreated, Title: doc.Title}, nil
}
