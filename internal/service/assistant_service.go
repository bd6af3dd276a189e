// FILE: internal/service/assistant_service.go
package service

import (
	"context"
	"errors"

	"gorlea-notes-be/internal/dto"
	"gorlea-notes-be/internal/pkg/apperror"
	"gorlea-notes-be/internal/pkg/logger"
	"gorlea-notes-be/internal/repository/contract"
	"gorlea-notes-be/pkg/assistant/conversation"
	"gorlea-notes-be/pkg/assistant/resolver"
	"gorlea-notes-be/pkg/rewrite"

	"github.com/google/uuid"
)

type IAssistantService interface {
	Rewrite(ctx context.Context, userId uuid.UUID, req *dto.RewriteRequest) (*dto.RewriteResponse, error)
	SaveNote(ctx context.Context, userId uuid.UUID, req *dto.SaveNoteRequest) (*dto.SaveNoteResponse, error)
	CreateNote(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error)
	Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatTurnRequest) (*dto.ChatTurnResponse, error)
	Reset(ctx context.Context, userId uuid.UUID, req *dto.ResetConversationRequest) error
}

type assistantService struct {
	rewriter         rewrite.Provider
	resolver         *resolver.Resolver
	machine          *conversation.Machine
	conversationRepo contract.ConversationRepository
}

func NewAssistantService(
	rewriter rewrite.Provider,
	documentService IDocumentService,
	conversationRepo contract.ConversationRepository,
	sysLogger logger.ILogger,
) IAssistantService {
	store := &assistantStore{documents: documentService}
	return &assistantService{
		rewriter:         rewriter,
		resolver:         resolver.New(store),
		machine:          conversation.NewMachine(store, rewriter, sysLogger),
		conversationRepo: conversationRepo,
	}
}

func (s *assistantService) Rewrite(ctx context.Context, userId uuid.UUID, req *dto.RewriteRequest) (*dto.RewriteResponse, error) {
	cleaned, err := s.rewriter.Rewrite(ctx, req.Note)
	if err != nil {
		if errors.Is(err, rewrite.ErrRateLimited) {
			return nil, apperror.RateLimited("rewrite provider is throttling requests")
		}
		return nil, apperror.UpstreamRewrite("failed to rewrite note", err)
	}

	return &dto.RewriteResponse{Cleaned: cleaned}, nil
}

func (s *assistantService) SaveNote(ctx context.Context, userId uuid.UUID, req *dto.SaveNoteRequest) (*dto.SaveNoteResponse, error) {
	outcome, err := s.resolver.ResolveSave(ctx, userId, req.DocName, req.Content)
	if err != nil {
		return nil, err
	}

	if outcome.Action == resolver.ActionNeedsConfirmation {
		return &dto.SaveNoteResponse{
			NeedsConfirmation: true,
			SuggestedTitle:    outcome.SuggestedTitle,
		}, nil
	}

	return &dto.SaveNoteResponse{
		Title:  outcome.Title,
		Action: string(outcome.Action),
	}, nil
}

func (s *assistantService) CreateNote(ctx context.Context, userId uuid.UUID, req *dto.CreateNoteRequest) (*dto.CreateNoteResponse, error) {
	outcome, err := s.resolver.ResolveCreate(ctx, userId, req.Title, req.Content)
	if err != nil {
		return nil, err
	}

	return &dto.CreateNoteResponse{
		Title:  outcome.Title,
		Action: string(outcome.Action),
	}, nil
}

func (s *assistantService) Chat(ctx context.Context, userId uuid.UUID, req *dto.ChatTurnRequest) (*dto.ChatTurnResponse, error) {
	sessionKey := sessionKeyFor(userId, req.SessionId)

	sess, err := s.conversationRepo.Get(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		sess = conversation.NewSession(sessionKey, userId.String())
	}

	result := s.machine.HandleTurn(ctx, userId, sess, req.Message)

	if err := s.conversationRepo.Save(ctx, sess); err != nil {
		return nil, err
	}

	return &dto.ChatTurnResponse{
		Reply:   result.Reply,
		IsError: result.IsError,
		State:   string(sess.State()),
	}, nil
}

func (s *assistantService) Reset(ctx context.Context, userId uuid.UUID, req *dto.ResetConversationRequest) error {
	return s.conversationRepo.Delete(ctx, sessionKeyFor(userId, req.SessionId))
}

// sessionKeyFor scopes conversation state per user so a guessed session id
// never reads another user's pending note.
func sessionKeyFor(userId uuid.UUID, sessionId string) string {
	return userId.String() + ":" + sessionId
}

// assistantStore adapts the document service to the narrow port the save
// protocol drives.
type assistantStore struct {
	documents IDocumentService
}

var _ resolver.Store = &assistantStore{}

func (a *assistantStore) FindByTitle(ctx context.Context, userID uuid.UUID, title string) (*resolver.Document, error) {
	doc, err := a.documents.FindByTitle(ctx, userID, title)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	return &resolver.Document{Id: doc.Id, Title: doc.Title}, nil
}

func (a *assistantStore) Append(ctx context.Context, userID, docID uuid.UUID, fragment string) (*resolver.Document, error) {
	doc, err := a.documents.AppendToDocument(ctx, userID, docID, fragment)
	if err != nil {
		return nil, err
	}
	return &resolver.Document{Id: doc.Id, Title: doc.Title}, nil
}

func (a *assistantStore) Create(ctx context.Context, userID uuid.UUID, title, content string) (*resolver.Document, error) {
	doc, err := a.documents.CreateFromAssistant(ctx, userID, title, content)
	if err != nil {
		return nil, err
	}
	return &resolver.Document{Id: doc.Id, Title: doc.Title}, nil
}

func (a *assistantStore) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]resolver.Document, error) {
	docs, err := a.documents.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	out := make([]resolver.Document, 0, len(docs))
	for _, doc := range docs {
		out = append(out, resolver.Document{Id: doc.Id, Title: doc.Title})
	}
	return out, nil
}
