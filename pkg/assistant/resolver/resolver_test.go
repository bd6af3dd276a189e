package resolver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	docs      map[string]Document // keyed by lowered title
	appended  []string
	created   []string
	findErr   error
	appendErr error
	createErr error
}

func newFakeStore(titles ...string) *fakeStore {
	s := &fakeStore{docs: map[string]Document{}}
	for _, title := range titles {
		s.docs[strings.ToLower(title)] = Document{Id: uuid.New(), Title: title}
	}
	return s
}

func (s *fakeStore) FindByTitle(_ context.Context, _ uuid.UUID, title string) (*Document, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	if doc, ok := s.docs[strings.ToLower(title)]; ok {
		return &doc, nil
	}
	return nil, nil
}

func (s *fakeStore) Append(_ context.Context, _ uuid.UUID, docID uuid.UUID, fragment string) (*Document, error) {
	if s.appendErr != nil {
		return nil, s.appendErr
	}
	for _, doc := range s.docs {
		if doc.Id == docID {
			s.appended = append(s.appended, fragment)
			return &doc, nil
		}
	}
	return nil, errors.New("document not found")
}

func (s *fakeStore) Create(_ context.Context, _ uuid.UUID, title, content string) (*Document, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if title == "" {
		title = "Untitled Document"
	}
	doc := Document{Id: uuid.New(), Title: title}
	s.docs[strings.ToLower(title)] = doc
	s.created = append(s.created, title)
	return &doc, nil
}

func (s *fakeStore) ListRecent(_ context.Context, _ uuid.UUID, limit int) ([]Document, error) {
	var out []Document
	for _, doc := range s.docs {
		if len(out) == limit {
			break
		}
		out = append(out, doc)
	}
	return out, nil
}

func TestResolveSaveAppendsOnMatch(t *testing.T) {
	store := newFakeStore("Groceries")
	r := New(store)

	outcome, err := r.ResolveSave(context.Background(), uuid.New(), "groceries", "buy milk")
	require.NoError(t, err)

	assert.Equal(t, ActionAppended, outcome.Action)
	assert.Equal(t, "Groceries", outcome.Title)
	assert.Equal(t, []string{"buy milk"}, store.appended)
	assert.Empty(t, store.created)
}

func TestResolveSaveNeverCreatesOnMiss(t *testing.T) {
	store := newFakeStore("Groceries")
	r := New(store)

	outcome, err := r.ResolveSave(context.Background(), uuid.New(), "Grocieres", "buy milk")
	require.NoError(t, err)

	assert.Equal(t, ActionNeedsConfirmation, outcome.Action)
	assert.Equal(t, "Grocieres", outcome.SuggestedTitle)
	assert.Empty(t, store.created, "a lookup miss must never create a document")
	assert.Empty(t, store.appended)
}

func TestResolveSaveEmptyTitlePassesThrough(t *testing.T) {
	store := newFakeStore("Groceries")
	r := New(store)

	outcome, err := r.ResolveSave(context.Background(), uuid.New(), "", "buy milk")
	require.NoError(t, err)

	assert.Equal(t, ActionNeedsConfirmation, outcome.Action)
	assert.Equal(t, "", outcome.SuggestedTitle)
	assert.Empty(t, store.created)
}

func TestResolveSavePropagatesStoreErrors(t *testing.T) {
	store := newFakeStore("Groceries")
	store.findErr = errors.New("db down")
	r := New(store)

	_, err := r.ResolveSave(context.Background(), uuid.New(), "Groceries", "buy milk")
	assert.Error(t, err)

	store = newFakeStore("Groceries")
	store.appendErr = errors.New("db down")
	r = New(store)

	_, err = r.ResolveSave(context.Background(), uuid.New(), "Groceries", "buy milk")
	assert.Error(t, err)
}

func TestResolveCreateAlwaysCreates(t *testing.T) {
	store := newFakeStore("Groceries")
	r := New(store)

	// Even when a document with the same title exists.
	outcome, err := r.ResolveCreate(context.Background(), uuid.New(), "Groceries", "buy milk")
	require.NoError(t, err)
	assert.Equal(t, ActionCreated, outcome.Action)
	assert.Equal(t, []string{"Groceries"}, store.created)

	outcome, err = r.ResolveCreate(context.Background(), uuid.New(), "", "buy milk")
	require.NoError(t, err)
	assert.Equal(t, "Untitled Document", outcome.Title)
}
