package store

import (
	"context"

	"gorm.io/gorm"

	"newsline/models"
)

type commentStore struct {
	db *gorm.DB
}

// NewCommentStore creates a gorm backed CommentStore.
func NewCommentStore(db *gorm.DB) CommentStore {
	return &commentStore{db: db}
}

func (s *commentStore) Create(ctx context.Context, comment *models.Comment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *commentStore) ForNews(ctx context.Context, newsID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("news_id = ?", newsID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}
