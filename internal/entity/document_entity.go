package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultDocumentTitle is applied whenever a client supplies a blank title.
const DefaultDocumentTitle = "Untitled Document"

// AppendSeparator is inserted between existing content and an appended note.
const AppendSeparator = "<hr>"

type Document struct {
	Id              uuid.UUID
	UserId          uuid.UUID
	Title           string
	TitleNormalized string
	Content         string
	Preview         string
	CreatedAt       time.Time
	LastAccessedAt  time.Time
	IsArchived      bool
}

// SetTitle applies the blank-title default and keeps TitleNormalized in sync.
// All title writes must go through here so titleNormalized == lower(title)
// holds after every create and update.
func (d *Document) SetTitle(title string) {
	d.Title = NormalizeTitle(title)
	d.TitleNormalized = strings.ToLower(d.Title)
}

// AppendContent concatenates a fragment onto the stored content with the
// visual separator. An empty document gets the fragment without a separator.
func (d *Document) AppendContent(fragment string) {
	if strings.TrimSpace(d.Content) == "" {
		d.Content = fragment
		return
	}
	d.Content = d.Content + AppendSeparator + fragment
}

// NormalizeTitle trims whitespace and falls back to the default title.
func NormalizeTitle(title string) string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return DefaultDocumentTitle
	}
	return trimmed
}
