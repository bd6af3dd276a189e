package mapper

import (
	"gorlea-notes-be/internal/entity"
	"gorlea-notes-be/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}

	return &entity.Document{
		Id:              d.Id,
		UserId:          d.UserId,
		Title:           d.Title,
		TitleNormalized: d.TitleNormalized,
		Content:         d.Content,
		Preview:         d.Preview,
		CreatedAt:       d.CreatedAt,
		LastAccessedAt:  d.LastAccessedAt,
		IsArchived:      d.IsArchived,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}

	return &model.Document{
		Id:              d.Id,
		UserId:          d.UserId,
		Title:           d.Title,
		TitleNormalized: d.TitleNormalized,
		Content:         d.Content,
		Preview:         d.Preview,
		CreatedAt:       d.CreatedAt,
		LastAccessedAt:  d.LastAccessedAt,
		IsArchived:      d.IsArchived,
	}
}

func (m *DocumentMapper) ToEntities(docs []*model.Document) []*entity.Document {
	entities := make([]*entity.Document, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}
