package model

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(255);not null"`
	TitleNormalized string    `gorm:"type:varchar(255);not null;index"`
	Content         string    `gorm:"type:text"`
	Preview         string    `gorm:"type:varchar(280)"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	LastAccessedAt  time.Time `gorm:"index"`
	IsArchived      bool      `gorm:"not null;default:false;index"`
}

func (Document) TableName() string {
	return "documents"
}
