package events

import "time"

const (
	EventTypeDocumentCreated = "DOCUMENT_CREATED"
	EventTypeNoteSaved       = "NOTE_SAVED"
)

// NewDocumentCreatedEvent fires whenever a document comes into existence,
// whether through the REST endpoint or the assistant's confirmed create.
func NewDocumentCreatedEvent(documentID, userID, title, source string) Event {
	return BaseEvent{
		Type: EventTypeDocumentCreated,
		Data: map[string]interface{}{
			"document_id": documentID,
			"user_id":     userID,
			"title":       title,
			"source":      source,
		},
		OccurredAt: time.Now(),
	}
}

// NewNoteSavedEvent fires when the assistant appends a note to a document.
func NewNoteSavedEvent(documentID, userID, title string) Event {
	return BaseEvent{
		Type: EventTypeNoteSaved,
		Data: map[string]interface{}{
			"document_id": documentID,
			"user_id":     userID,
			"title":       title,
		},
		OccurredAt: time.Now(),
	}
}
