package specification

import (
	"strings"

	"gorm.io/gorm"
)

// NotArchived filters out soft-deleted documents
type NotArchived struct{}

func (s NotArchived) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_archived = ?", false)
}

// ByNormalizedTitle matches a title case-insensitively via the stored
// title_normalized column. Callers pass the raw title; lowering happens here
// so the lookup always hits the index.
type ByNormalizedTitle struct {
	Title string
}

func (s ByNormalizedTitle) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title_normalized = ?", strings.ToLower(strings.TrimSpace(s.Title)))
}
