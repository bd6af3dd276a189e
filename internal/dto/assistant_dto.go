package dto

type RewriteRequest struct {
	Note string `json:"note" validate:"required"`
}

type RewriteResponse struct {
	Cleaned string `json:"cleaned"`
}

type SaveNoteRequest struct {
	DocName string `json:"doc_name"`
	Content string `json:"content" validate:"required"`
}

// SaveNoteResponse carries either a completed append or a create-confirmation
// request; NeedsConfirmation and Title/Action are mutually exclusive.
type SaveNoteResponse struct {
	Title             string `json:"title,omitempty"`
	Action            string `json:"action,omitempty"`
	NeedsConfirmation bool   `json:"needs_confirmation,omitempty"`
	SuggestedTitle    string `json:"suggested_title,omitempty"`
}

type CreateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content" validate:"required"`
}

type CreateNoteResponse struct {
	Title  string `json:"title"`
	Action string `json:"action"`
}

type ChatTurnRequest struct {
	SessionId string `json:"session_id" validate:"required"`
	Message   string `json:"message" validate:"required"`
}

type ChatTurnResponse struct {
	Reply   string `json:"reply"`
	IsError bool   `json:"is_error,omitempty"`
	State   string `json:"state"`
}

type ResetConversationRequest struct {
	SessionId string `json:"session_id" validate:"required"`
}
