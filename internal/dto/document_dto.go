package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDocumentRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type CreateDocumentResponse struct {
	Id    uuid.UUID `json:"id"`
	Title string    `json:"title"`
}

type ListDocumentItem struct {
	Id           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Preview      string    `json:"preview"`
	CreatedAt    time.Time `json:"created_at"`
	LastOpenedAt time.Time `json:"last_opened_at"`
}

type ShowDocumentResponse struct {
	Id           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	LastOpenedAt time.Time `json:"last_opened_at"`
	IsArchived   bool      `json:"is_archived"`
}

type UpdateDocumentRequest struct {
	Id      uuid.UUID
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type RefreshPreviewMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
}
