package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorlea-notes-be/internal/constant"
	"gorlea-notes-be/internal/pkg/apperror"
	"gorlea-notes-be/pkg/assistant/resolver"
	"gorlea-notes-be/pkg/rewrite"
)

type fakeRewriter struct {
	err error
}

func (r *fakeRewriter) Rewrite(_ context.Context, note string) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	return "cleaned: " + note, nil
}

type fakeStore struct {
	docs      []resolver.Document
	appended  map[uuid.UUID][]string
	created   []string
	listErr   error
	appendErr error
	createErr error
}

func newStore(titles ...string) *fakeStore {
	s := &fakeStore{appended: map[uuid.UUID][]string{}}
	for _, title := range titles {
		s.docs = append(s.docs, resolver.Document{Id: uuid.New(), Title: title})
	}
	return s
}

func (s *fakeStore) FindByTitle(_ context.Context, _ uuid.UUID, title string) (*resolver.Document, error) {
	needle := strings.ToLower(strings.TrimSpace(title))
	for _, doc := range s.docs {
		if strings.ToLower(doc.Title) == needle && needle != "" {
			found := doc
			return &found, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) Append(_ context.Context, _ uuid.UUID, docID uuid.UUID, fragment string) (*resolver.Document, error) {
	if s.appendErr != nil {
		return nil, s.appendErr
	}
	for _, doc := range s.docs {
		if doc.Id == docID {
			s.appended[docID] = append(s.appended[docID], fragment)
			found := doc
			return &found, nil
		}
	}
	return nil, apperror.NotFound("document not found")
}

func (s *fakeStore) Create(_ context.Context, _ uuid.UUID, title, content string) (*resolver.Document, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if strings.TrimSpace(title) == "" {
		title = "Untitled Document"
	}
	doc := resolver.Document{Id: uuid.New(), Title: title}
	s.docs = append(s.docs, doc)
	s.created = append(s.created, title)
	return &doc, nil
}

func (s *fakeStore) ListRecent(_ context.Context, _ uuid.UUID, limit int) ([]resolver.Document, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	if len(s.docs) <= limit {
		return append([]resolver.Document{}, s.docs...), nil
	}
	return append([]resolver.Document{}, s.docs[:limit]...), nil
}

func newMachine(store *fakeStore, rewriter *fakeRewriter) *Machine {
	return NewMachine(store, rewriter, nil)
}

func TestRewriteThenSaveToExisting(t *testing.T) {
	store := newStore("Groceries")
	m := newMachine(store, &fakeRewriter{})
	sess := NewSession("sess-1", "user-1")
	userID := uuid.New()

	res := m.HandleTurn(context.Background(), userID, sess, "buy milk and eggs")
	require.False(t, res.IsError)
	assert.Equal(t, "cleaned: buy milk and eggs", res.Reply)
	assert.Equal(t, StateAwaitingSaveTarget, sess.State())

	res = m.HandleTurn(context.Background(), userID, sess, "save to groceries")
	require.False(t, res.IsError)
	assert.Equal(t, fmt.Sprintf(constant.MsgSavedTo, "Groceries"), res.Reply)
	assert.Equal(t, StateIdle, sess.State())
	assert.Equal(t, []string{"cleaned: buy milk and eggs"}, store.appended[store.docs[0].Id])
}

func TestSaveMissConfirmThenCreate(t *testing.T) {
	store := newStore("Groceries")
	m := newMachine(store, &fakeRewriter{})
	sess := NewSession("sess-1", "user-1")
	userID := uuid.New()

	m.HandleTurn(context.Background(), userID, sess, "buy milk")

	res := m.HandleTurn(context.Background(), userID, sess, "save to Errands")
	require.False(t, res.IsError)
	assert.Equal(t, fmt.Sprintf(constant.MsgConfirmCreate, "Errands"), res.Reply)
	assert.Equal(t, StateAwaitingConfirmation, sess.State())
	assert.Empty(t, store.created, "confirmation must gate creation")

	res = m.HandleTurn(context.Background(), userID, sess, "yes")
	require.False(t, res.IsError)
	assert.Equal(t, fmt.Sprintf(constant.MsgCreatedDoc, "Errands"), res.Reply)
	assert.Equal(t, StateIdle, sess.State())
	assert.Equal(t, []string{"Errands"}, store.created)
}

func TestExplicitCreateOverridesPendingConfirmation(t *testing.T) {
	store := newStore()
	m := newMachine(store, &fakeRewriter{})
	sess := NewSession("sess-1", "user-1")
	userID := uuid.New()

	m.HandleTurn(context.Background(), userID, sess, "buy milk")
	m.HandleTurn(context.Background(), userID, sess, "save to Errands")
	require.Equal(t, StateAwaitingConfirmation, sess.State())

	res := m.HandleTurn(context.Background(), userID, sess, "create new doc called Chores")
	require.False(t, res.IsError)
	assert.Equal(t, fmt.Sprintf(constant.MsgCreatedDoc, "Chores"), res.Reply)
	assert.Equal(t, []string{"Chores"}, store.created)
	assert.Equal(t, StateIdle, sess.State())
}

func TestRecentListFlow(t *testing.T) {
	store := newStore("Alpha", "Beta", "Gamma")
	m := newMachine(store, &fakeRewriter{})
	sess := NewSession("sess-1", "user-1")
	userID := uuid.New()

	m.HandleTurn(context.Background(), userID, sess, "buy milk")

	res := m.HandleTurn(context.Background(), userID, sess, "show recent docs")
	require.False(t, res.IsError)
	assert.Contains(t, res.Reply, constant.MsgRecentDocsHead)
	assert.Contains(t, res.Reply, "1. Alpha")
	assert.Contains(t, res.Reply, "3. Gamma")
	assert.Equal(t, StateAwaitingRecentChoice, sess.State())
	require.Len(t, sess.RecentDocs, 3)

	// Out-of-range keeps the list on offer.
	res = m.HandleTurn(context.Background(), userID, sess, "4")
	assert.True(t, res.IsError)
	assert.Equal(t, constant.MsgInvalidChoice, res.Reply)
	assert.Equal(t, StateAwaitingRecentChoice, sess.State())

	res = m.HandleTurn(context.Background(), userID, sess, "2")
	require.False(t, res.IsError)
	assert.Equal(t, fmt.Sprintf(constant.MsgSavedTo, "Beta"), res.Reply)
	assert.Equal(t, StateIdle, sess.State())
	assert.Equal(t, []string{"cleaned: buy milk"}, store.appended[store.docs[1].Id])
}

func TestRecentListEmptyKeepsPendingNote(t *testing.T) {
	store := newStore()
	m := newMachine(store, &fakeRewriter{})
	sess := NewSession("sess-1", "user-1")
	userID := uuid.New()

	m.HandleTurn(context.Background(), userID, sess, "buy milk")

	res := m.HandleTurn(context.Background(), userID, sess, "show recent docs")
	require.False(t, res.IsError)
	assert.Equal(t, constant.MsgNoDocumentsYet, res.Reply)
	assert.Equal(t, StateAwaitingSaveTarget, sess.State())
}

func TestActionsWithoutPendingNote(t *testing.T) {
	store := newStore("Groceries")
	m := newMachine(store, &fakeRewriter{})
	userID := uuid.New()

	for _, utterance := range []string{
		"save to Groceries",
		"show recent docs",
		"create new doc called Bar",
	} {
		sess := NewSession("sess-1", "user-1")
		res := m.HandleTurn(context.Background(), userID, sess, utterance)
		assert.True(t, res.IsError, utterance)
		assert.Equal(t, constant.MsgWriteNoteFirst, res.Reply, utterance)
		assert.Equal(t, StateIdle, sess.State(), utterance)
	}
}

func TestRewriteFailureResetsToIdle(t *testing.T) {
	store := newStore("Groceries")
	rw := &fakeRewriter{}
	m := newMachine(store, rw)
	sess := NewSession("sess-1", "user-1")
	userID := uuid.New()

	m.HandleTurn(context.Background(), userID, sess, "buy milk")
	m.HandleTurn(context.Background(), userID, sess, "save to Errands")
	require.Equal(t, StateAwaitingConfirmation, sess.State())

	rw.err = errors.New("upstream exploded")
	res := m.HandleTurn(context.Background(), userID, sess, "some new note")
	assert.True(t, res.IsError)
	assert.Equal(t, constant.MsgRewriteFailed, res.Reply)
	assert.Equal(t, StateIdle, sess.State())
}

func TestRewriteRateLimitDistinctMessage(t *testing.T) {
	store := newStore()
	m := newMachine(store, &fakeRewriter{err: rewrite.ErrRateLimited})
	sess := NewSession("sess-1", "user-1")

	res := m.HandleTurn(context.Background(), uuid.New(), sess, "buy milk")
	assert.True(t, res.IsError)
	assert.Equal(t, constant.MsgRewriteThrottle, res.Reply)
	assert.Equal(t, StateIdle, sess.State())
}

func TestStoreFailureResetsToIdle(t *testing.T) {
	store := newStore("Groceries")
	m := newMachine(store, &fakeRewriter{})
	sess := NewSession("sess-1", "user-1")
	userID := uuid.New()

	m.HandleTurn(context.Background(), userID, sess, "buy milk")

	store.appendErr = apperror.Store("db down", errors.New("connection refused"))
	res := m.HandleTurn(context.Background(), userID, sess, "save to Groceries")
	assert.True(t, res.IsError)
	assert.Equal(t, constant.MsgSaveFailed, res.Reply)
	assert.Equal(t, StateIdle, sess.State())
}

func TestChosenDocumentVanished(t *testing.T) {
	store := newStore("Alpha")
	m := newMachine(store, &fakeRewriter{})
	sess := NewSession("sess-1", "user-1")
	userID := uuid.New()

	m.HandleTurn(context.Background(), userID, sess, "buy milk")
	m.HandleTurn(context.Background(), userID, sess, "show recent docs")
	require.Equal(t, StateAwaitingRecentChoice, sess.State())

	// Document deleted between listing and choosing.
	store.docs = nil
	res := m.HandleTurn(context.Background(), userID, sess, "1")
	assert.True(t, res.IsError)
	assert.Equal(t, constant.MsgDocVanished, res.Reply)
	assert.Equal(t, StateIdle, sess.State())
}

type recordingLogger struct {
	warns  []string
	errors []string
}

func (l *recordingLogger) Warn(_, message string, _ map[string]interface{}) {
	l.warns = append(l.warns, message)
}

func (l *recordingLogger) Error(_, message string, _ map[string]interface{}) {
	l.errors = append(l.errors, message)
}

func TestFailuresReachTheLogger(t *testing.T) {
	store := newStore("Groceries")
	rw := &fakeRewriter{err: errors.New("upstream exploded")}
	logged := &recordingLogger{}
	m := NewMachine(store, rw, logged)
	sess := NewSession("sess-1", "user-1")
	userID := uuid.New()

	m.HandleTurn(context.Background(), userID, sess, "buy milk")
	require.Len(t, logged.errors, 1)
	assert.Equal(t, "rewrite failed", logged.errors[0])

	rw.err = nil
	m.HandleTurn(context.Background(), userID, sess, "buy milk")
	store.appendErr = apperror.Store("db down", errors.New("connection refused"))
	m.HandleTurn(context.Background(), userID, sess, "save to Groceries")
	require.Len(t, logged.errors, 2)
	assert.Equal(t, "save to named document failed", logged.errors[1])
}

func TestEmptySaveTargetAsksForConfirmation(t *testing.T) {
	store := newStore("Groceries")
	m := newMachine(store, &fakeRewriter{})
	sess := NewSession("sess-1", "user-1")
	userID := uuid.New()

	m.HandleTurn(context.Background(), userID, sess, "buy milk")

	res := m.HandleTurn(context.Background(), userID, sess, "save it")
	require.False(t, res.IsError)
	assert.Equal(t, fmt.Sprintf(constant.MsgConfirmCreate, ""), res.Reply)
	assert.Equal(t, StateAwaitingConfirmation, sess.State())

	// Confirming creates with the blank-title default applied by the store.
	res = m.HandleTurn(context.Background(), userID, sess, "yes")
	require.False(t, res.IsError)
	assert.Equal(t, fmt.Sprintf(constant.MsgCreatedDoc, "Untitled Document"), res.Reply)
}
