// FILE: internal/service/document_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorlea-notes-be/internal/dto"
	"gorlea-notes-be/internal/entity"
	"gorlea-notes-be/internal/pkg/apperror"
	"gorlea-notes-be/internal/pkg/logger"
	"gorlea-notes-be/internal/repository/specification"
	"gorlea-notes-be/internal/repository/unitofwork"
	"gorlea-notes-be/pkg/events"
	pktNats "gorlea-notes-be/pkg/nats"

	"github.com/google/uuid"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type IDocumentService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateDocumentRequest) (*dto.CreateDocumentResponse, error)
	List(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.ListDocumentItem, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowDocumentResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateDocumentRequest) error
	Archive(ctx context.Context, userId uuid.UUID, id uuid.UUID) error
	Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error

	// Entity-level operations driven by the assistant's save protocol.
	FindByTitle(ctx context.Context, userId uuid.UUID, title string) (*entity.Document, error)
	AppendToDocument(ctx context.Context, userId uuid.UUID, id uuid.UUID, fragment string) (*entity.Document, error)
	CreateFromAssistant(ctx context.Context, userId uuid.UUID, title, content string) (*entity.Document, error)
	ListRecent(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.Document, error)
}

type documentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	eventPublisher   *pktNats.Publisher
	logger           logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	eventPublisher *pktNats.Publisher,
	sysLogger logger.ILogger,
) IDocumentService {
	return &documentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           sysLogger,
	}
}

func (s *documentService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateDocumentRequest) (*dto.CreateDocumentResponse, error) {
	doc, err := s.createDocument(ctx, userId, req.Title, req.Content, "rest")
	if err != nil {
		return nil, err
	}

	return &dto.CreateDocumentResponse{
		Id:    doc.Id,
		Title: doc.Title,
	}, nil
}

func (s *documentService) createDocument(ctx context.Context, userId uuid.UUID, title, content, source string) (*entity.Document, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	now := time.Now()

	doc := entity.Document{
		Id:             uuid.New(),
		UserId:         userId,
		Content:        content,
		CreatedAt:      now,
		LastAccessedAt: now,
	}
	doc.SetTitle(title)

	if err := uow.DocumentRepository().Create(ctx, &doc); err != nil {
		return nil, err
	}

	if err := s.publishPreviewRefresh(ctx, doc.Id); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewDocumentCreatedEvent(
		doc.Id.String(), userId.String(), doc.Title, source,
	))

	return &doc, nil
}

func (s *documentService) List(ctx context.Context, userId uuid.UUID, limit int) ([]*dto.ListDocumentItem, error) {
	if limit > maxListLimit {
		return nil, apperror.InvalidInput(fmt.Sprintf("limit may not exceed %d", maxListLimit))
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NotArchived{},
		specification.OrderBy{Field: "last_accessed_at", Desc: true},
		specification.Limit{N: limit},
	)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ListDocumentItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, &dto.ListDocumentItem{
			Id:           doc.Id,
			Title:        doc.Title,
			Preview:      doc.Preview,
			CreatedAt:    doc.CreatedAt,
			LastOpenedAt: doc.LastAccessedAt,
		})
	}
	return items, nil
}

func (s *documentService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.ShowDocumentResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperror.NotFound("document not found")
	}

	// Opening a document makes it the most recent one.
	doc.LastAccessedAt = time.Now()
	if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
		return nil, err
	}

	return &dto.ShowDocumentResponse{
		Id:           doc.Id,
		Title:        doc.Title,
		Content:      doc.Content,
		CreatedAt:    doc.CreatedAt,
		LastOpenedAt: doc.LastAccessedAt,
		IsArchived:   doc.IsArchived,
	}, nil
}

func (s *documentService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateDocumentRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: req.Id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if doc == nil {
		return apperror.NotFound("document not found")
	}

	if req.Title != nil {
		doc.SetTitle(*req.Title)
	}
	if req.Content != nil {
		doc.Content = *req.Content
	}
	doc.LastAccessedAt = time.Now()

	if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
		return err
	}

	if req.Content != nil {
		if err := s.publishPreviewRefresh(ctx, doc.Id); err != nil {
			return err
		}
	}
	return nil
}

func (s *documentService) Archive(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if doc == nil {
		return apperror.NotFound("document not found")
	}
	if doc.IsArchived {
		// Archiving twice is fine.
		return nil
	}

	doc.IsArchived = true
	return uow.DocumentRepository().Update(ctx, doc)
}

func (s *documentService) Delete(ctx context.Context, userId uuid.UUID, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return err
	}
	if doc == nil {
		// Already gone; deletion is idempotent for callers.
		return nil
	}

	return uow.DocumentRepository().Delete(ctx, doc.Id)
}

func (s *documentService) FindByTitle(ctx context.Context, userId uuid.UUID, title string) (*entity.Document, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	// Normalized titles are not unique, so ties resolve to the most
	// recently accessed document.
	docs, err := uow.DocumentRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NotArchived{},
		specification.ByNormalizedTitle{Title: title},
		specification.OrderBy{Field: "last_accessed_at", Desc: true},
		specification.Limit{N: 1},
	)
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}
	return docs[0], nil
}

func (s *documentService) AppendToDocument(ctx context.Context, userId uuid.UUID, id uuid.UUID, fragment string) (*entity.Document, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := uow.DocumentRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.UserOwnedBy{UserID: userId},
		specification.NotArchived{},
	)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		// Deleted or archived between lookup and save; retryable.
		return nil, apperror.NotFound("document not found")
	}

	doc.AppendContent(fragment)
	doc.LastAccessedAt = time.Now()

	if err := uow.DocumentRepository().Update(ctx, doc); err != nil {
		return nil, err
	}

	if err := s.publishPreviewRefresh(ctx, doc.Id); err != nil {
		return nil, err
	}

	s.publishEvent(ctx, events.NewNoteSavedEvent(
		doc.Id.String(), userId.String(), doc.Title,
	))

	return doc, nil
}

func (s *documentService) CreateFromAssistant(ctx context.Context, userId uuid.UUID, title, content string) (*entity.Document, error) {
	return s.createDocument(ctx, userId, title, content, "assistant")
}

func (s *documentService) ListRecent(ctx context.Context, userId uuid.UUID, limit int) ([]*entity.Document, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.DocumentRepository().FindAll(ctx,
		specification.UserOwnedBy{UserID: userId},
		specification.NotArchived{},
		specification.OrderBy{Field: "last_accessed_at", Desc: true},
		specification.Limit{N: limit},
	)
}

func (s *documentService) publishPreviewRefresh(ctx context.Context, docId uuid.UUID) error {
	payload := dto.RefreshPreviewMessage{
		DocumentId: docId,
	}
	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, payloadJson)
}

func (s *documentService) publishEvent(ctx context.Context, evt events.Event) {
	if s.eventPublisher == nil {
		return
	}
	// Notifications are auxiliary; log and move on when the bus is down.
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("document_service", "failed to publish event", map[string]interface{}{
			"event_type": evt.EventType(),
			"error":      err.Error(),
		})
	}
}
