package store

import (
	"context"

	"gorm.io/gorm"

	"newsline/models"
)

// UserStore defines the persistence operations for user accounts.
// Lookup methods return (nil, nil) when no row matches.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	ByID(ctx context.Context, id uint) (*models.User, error)
	ByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// NewsStore defines the persistence operations for news articles.
type NewsStore interface {
	Create(ctx context.Context, article *models.News) error
	// List returns every article, newest first; articles sharing a
	// published_date are ordered by descending id.
	List(ctx context.Context) ([]models.News, error)
	ByID(ctx context.Context, id uint) (*models.News, error)
	// OwnedByID resolves an article only when it belongs to authorID, so a
	// foreign article behaves exactly like a missing one.
	OwnedByID(ctx context.Context, id, authorID uint) (*models.News, error)
	Save(ctx context.Context, article *models.News) error
	// Delete removes the article together with its comments.
	Delete(ctx context.Context, article *models.News) error
}

// CommentStore defines the persistence operations for comments.
type CommentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	ForNews(ctx context.Context, newsID uint) ([]models.Comment, error)
}

// Stores bundles all store interfaces handed to the controllers.
type Stores struct {
	Users    UserStore
	News     NewsStore
	Comments CommentStore
}

// New creates all stores backed by the given database connection.
func New(db *gorm.DB) *Stores {
	return &Stores{
		Users:    NewUserStore(db),
		News:     NewNewsStore(db),
		Comments: NewCommentStore(db),
	}
}
