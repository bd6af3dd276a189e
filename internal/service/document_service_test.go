package service

import (
	"context"
	"testing"
	"time"

	"gorlea-notes-be/internal/entity"
	"gorlea-notes-be/internal/pkg/apperror"
	"gorlea-notes-be/internal/repository/contract"
	"gorlea-notes-be/internal/repository/specification"
	"gorlea-notes-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDocumentRepo holds at most one document; specifications are resolved by
// the real implementation against gorm, so the fake just returns what it has.
type fakeDocumentRepo struct {
	doc     *entity.Document
	updates int
	deletes []uuid.UUID
}

func (r *fakeDocumentRepo) Create(_ context.Context, doc *entity.Document) error {
	r.doc = doc
	return nil
}

func (r *fakeDocumentRepo) Update(_ context.Context, doc *entity.Document) error {
	r.doc = doc
	r.updates++
	return nil
}

func (r *fakeDocumentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.deletes = append(r.deletes, id)
	r.doc = nil
	return nil
}

func (r *fakeDocumentRepo) FindOne(_ context.Context, _ ...specification.Specification) (*entity.Document, error) {
	return r.doc, nil
}

func (r *fakeDocumentRepo) FindAll(_ context.Context, _ ...specification.Specification) ([]*entity.Document, error) {
	if r.doc == nil {
		return nil, nil
	}
	return []*entity.Document{r.doc}, nil
}

func (r *fakeDocumentRepo) Count(_ context.Context, _ ...specification.Specification) (int64, error) {
	if r.doc == nil {
		return 0, nil
	}
	return 1, nil
}

type fakeUnitOfWork struct {
	docs *fakeDocumentRepo
}

func (u *fakeUnitOfWork) Begin(context.Context) error             { return nil }
func (u *fakeUnitOfWork) Commit() error                           { return nil }
func (u *fakeUnitOfWork) Rollback() error                         { return nil }
func (u *fakeUnitOfWork) UserRepository() contract.UserRepository { return nil }

func (u *fakeUnitOfWork) DocumentRepository() contract.DocumentRepository {
	return u.docs
}

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func (f *fakeUowFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return f.uow
}

func newFakeDocumentService(doc *entity.Document) (IDocumentService, *fakeDocumentRepo) {
	repo := &fakeDocumentRepo{doc: doc}
	factory := &fakeUowFactory{uow: &fakeUnitOfWork{docs: repo}}
	return NewDocumentService(factory, nil, nil, nil), repo
}

func ownedDocument(userId uuid.UUID) *entity.Document {
	doc := &entity.Document{
		Id:             uuid.New(),
		UserId:         userId,
		Content:        "notes",
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}
	doc.SetTitle("Groceries")
	return doc
}

func TestArchiveIsIdempotent(t *testing.T) {
	userId := uuid.New()
	doc := ownedDocument(userId)
	svc, repo := newFakeDocumentService(doc)

	require.NoError(t, svc.Archive(context.Background(), userId, doc.Id))
	assert.True(t, repo.doc.IsArchived)
	assert.Equal(t, 1, repo.updates)

	// The second archive is a no-op, not an error and not another write.
	require.NoError(t, svc.Archive(context.Background(), userId, doc.Id))
	assert.True(t, repo.doc.IsArchived)
	assert.Equal(t, 1, repo.updates)
}

func TestArchiveMissingDocument(t *testing.T) {
	svc, _ := newFakeDocumentService(nil)

	err := svc.Archive(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestDeleteMissingDocumentSucceeds(t *testing.T) {
	svc, repo := newFakeDocumentService(nil)

	require.NoError(t, svc.Delete(context.Background(), uuid.New(), uuid.New()))
	assert.Empty(t, repo.deletes)
}

func TestDeleteRemovesDocument(t *testing.T) {
	userId := uuid.New()
	doc := ownedDocument(userId)
	svc, repo := newFakeDocumentService(doc)

	require.NoError(t, svc.Delete(context.Background(), userId, doc.Id))
	require.Len(t, repo.deletes, 1)
	assert.Equal(t, doc.Id, repo.deletes[0])
	assert.Nil(t, repo.doc)
}
