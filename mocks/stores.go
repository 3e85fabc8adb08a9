// Package mocks provides in-memory store fakes for handler tests. The fakes
// mirror the persistence semantics the gorm stores provide: ids are assigned
// on create, timestamps are stamped, lookups return (nil, nil) on a miss and
// deleting an article removes its comments.
package mocks

import (
	"context"
	"sort"
	"sync"
	"time"

	"newsline/models"
	"newsline/store"
)

// FakeStores bundles the three fakes behind the store interfaces.
type FakeStores struct {
	Users    *FakeUserStore
	News     *FakeNewsStore
	Comments *FakeCommentStore
}

// Stores exposes the fakes behind the production interface bundle.
func (f *FakeStores) Stores() *store.Stores {
	return &store.Stores{Users: f.Users, News: f.News, Comments: f.Comments}
}

// NewFakeStores creates an empty set of fakes sharing one lock.
func NewFakeStores() *FakeStores {
	mu := &sync.Mutex{}
	news := &FakeNewsStore{mu: mu}
	return &FakeStores{
		Users:    &FakeUserStore{mu: mu},
		News:     news,
		Comments: &FakeCommentStore{mu: mu, news: news},
	}
}

// FakeUserStore is an in-memory UserStore.
type FakeUserStore struct {
	mu     *sync.Mutex
	nextID uint
	users  []models.User

	// CreateErr, when set, is returned by Create.
	CreateErr error
}

func (f *FakeUserStore) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return f.CreateErr
	}
	f.nextID++
	user.ID = f.nextID
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	f.users = append(f.users, *user)
	return nil
}

func (f *FakeUserStore) ByID(_ context.Context, id uint) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].ID == id {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *FakeUserStore) ByUsername(_ context.Context, username string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.users {
		if f.users[i].Username == username {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *FakeUserStore) UsernameExists(ctx context.Context, username string) (bool, error) {
	u, err := f.ByUsername(ctx, username)
	return u != nil, err
}

// Count returns the number of stored users.
func (f *FakeUserStore) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.users)
}

// FakeNewsStore is an in-memory NewsStore.
type FakeNewsStore struct {
	mu       *sync.Mutex
	nextID   uint
	articles []models.News
	comments []models.Comment
}

func (f *FakeNewsStore) Create(_ context.Context, article *models.News) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	article.ID = f.nextID
	if article.PublishedDate.IsZero() {
		article.PublishedDate = time.Now()
	}
	f.articles = append(f.articles, *article)
	return nil
}

func (f *FakeNewsStore) List(_ context.Context) ([]models.News, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.News, len(f.articles))
	copy(out, f.articles)
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].PublishedDate.Equal(out[j].PublishedDate) {
			return out[i].PublishedDate.After(out[j].PublishedDate)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f *FakeNewsStore) ByID(_ context.Context, id uint) (*models.News, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.byIDLocked(id), nil
}

func (f *FakeNewsStore) OwnedByID(_ context.Context, id, authorID uint) (*models.News, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a := f.byIDLocked(id)
	if a == nil || a.AuthorID != authorID {
		return nil, nil
	}
	return a, nil
}

func (f *FakeNewsStore) Save(_ context.Context, article *models.News) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.articles {
		if f.articles[i].ID == article.ID {
			f.articles[i] = *article
			return nil
		}
	}
	f.articles = append(f.articles, *article)
	return nil
}

func (f *FakeNewsStore) Delete(_ context.Context, article *models.News) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.articles[:0]
	for i := range f.articles {
		if f.articles[i].ID != article.ID {
			kept = append(kept, f.articles[i])
		}
	}
	f.articles = kept

	remaining := f.comments[:0]
	for i := range f.comments {
		if f.comments[i].NewsID != article.ID {
			remaining = append(remaining, f.comments[i])
		}
	}
	f.comments = remaining
	return nil
}

func (f *FakeNewsStore) byIDLocked(id uint) *models.News {
	for i := range f.articles {
		if f.articles[i].ID == id {
			a := f.articles[i]
			return &a
		}
	}
	return nil
}

// Seed inserts an article directly, bypassing Create side effects.
func (f *FakeNewsStore) Seed(article models.News) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if article.ID > f.nextID {
		f.nextID = article.ID
	}
	f.articles = append(f.articles, article)
}

// Count returns the number of stored articles.
func (f *FakeNewsStore) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.articles)
}

// FakeCommentStore is an in-memory CommentStore. Comments live on the news
// fake so article deletion can cascade over them.
type FakeCommentStore struct {
	mu     *sync.Mutex
	nextID uint
	news   *FakeNewsStore
}

func (f *FakeCommentStore) Create(_ context.Context, comment *models.Comment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	comment.ID = f.nextID
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	f.news.comments = append(f.news.comments, *comment)
	return nil
}

func (f *FakeCommentStore) ForNews(_ context.Context, newsID uint) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Comment
	for i := range f.news.comments {
		if f.news.comments[i].NewsID == newsID {
			out = append(out, f.news.comments[i])
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// CountForNews returns how many comments an article has.
func (f *FakeCommentStore) CountForNews(newsID uint) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for i := range f.news.comments {
		if f.news.comments[i].NewsID == newsID {
			n++
		}
	}
	return n
}
