// Package intent turns a raw chat utterance into exactly one tagged intent,
// evaluated against a fixed priority order. The ordering is load-bearing: a
// bare "yes" while a create prompt is open must confirm the create, and an
// explicit create command must win over everything else.
package intent

import "errors"

type Kind string

const (
	KindExplicitCreate Kind = "explicit_create"
	KindNumericChoice  Kind = "numeric_choice"
	KindConfirmCreate  Kind = "confirm_create"
	KindShowRecent     Kind = "show_recent"
	KindSaveToNamed    Kind = "save_to_named"
	KindRewrite        Kind = "rewrite"
)

// Intent is the single classification result for an utterance.
type Intent struct {
	Kind  Kind
	Title string // ExplicitCreate, SaveToNamed: extracted target title
	Index int    // NumericChoice: zero-based position in the recent list
	Text  string // Rewrite: the full utterance to rewrite
}

// Context is the slice of conversation state the classifier consults. The
// caller derives it from the session so this package stays free of storage
// concerns.
type Context struct {
	HasPendingNote       bool
	HasPendingCreate     bool
	AwaitingRecentChoice bool
	RecentCount          int
}

// ErrNoPendingNote is returned when a save/create/list intent matched but
// there is no rewritten note to act on.
var ErrNoPendingNote = errors.New("no pending note to save")

// ErrInvalidChoice is returned when a numeric choice matched the digit rule
// but points past the cached recent list.
var ErrInvalidChoice = errors.New("numeric choice out of range")
