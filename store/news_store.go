package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"newsline/models"
)

type newsStore struct {
	db *gorm.DB
}

// NewNewsStore creates a gorm backed NewsStore.
func NewNewsStore(db *gorm.DB) NewsStore {
	return &newsStore{db: db}
}

func (s *newsStore) Create(ctx context.Context, article *models.News) error {
	return s.db.WithContext(ctx).Create(article).Error
}

func (s *newsStore) List(ctx context.Context) ([]models.News, error) {
	var articles []models.News
	err := s.db.WithContext(ctx).
		Preload("Author").
		Order("published_date DESC, id DESC").
		Find(&articles).Error
	if err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *newsStore) ByID(ctx context.Context, id uint) (*models.News, error) {
	var article models.News
	err := s.db.WithContext(ctx).Preload("Author").First(&article, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *newsStore) OwnedByID(ctx context.Context, id, authorID uint) (*models.News, error) {
	var article models.News
	err := s.db.WithContext(ctx).
		Where("id = ? AND author_id = ?", id, authorID).
		First(&article).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (s *newsStore) Save(ctx context.Context, article *models.News) error {
	return s.db.WithContext(ctx).Save(article).Error
}

// Delete removes the article and its comments in one transaction. The comment
// delete is explicit so the cascade holds even when the schema was migrated
// without foreign key constraints.
func (s *newsStore) Delete(ctx context.Context, article *models.News) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("news_id = ?", article.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(article).Error
	})
}
