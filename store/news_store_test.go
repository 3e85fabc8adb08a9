package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"newsline/models"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return gdb, mock
}

func TestNewsListOrdersNewestFirst(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewNewsStore(gdb)

	published := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM `news` ORDER BY published_date DESC, id DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "author_id", "published_date"}).
			AddRow(2, "second", "body", 1, published.Add(time.Hour)).
			AddRow(1, "first", "body", 1, published))
	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE `users`.`id` ").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "alice"))

	articles, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, uint(2), articles[0].ID)
	assert.Equal(t, "alice", articles[0].Author.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsByIDMissing(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewNewsStore(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `news` WHERE `news`.`id` = (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "author_id", "published_date"}))

	article, err := s.ByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, article)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsOwnedByIDFiltersAuthor(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewNewsStore(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `news` WHERE id = (.+) AND author_id = (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "author_id", "published_date"}))

	article, err := s.OwnedByID(context.Background(), 1, 99)
	require.NoError(t, err)
	assert.Nil(t, article)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsOwnedByIDFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewNewsStore(gdb)

	published := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM `news` WHERE id = (.+) AND author_id = (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "content", "author_id", "published_date"}).
			AddRow(1, "mine", "body", 7, published))

	article, err := s.OwnedByID(context.Background(), 1, 7)
	require.NoError(t, err)
	require.NotNil(t, article)
	assert.Equal(t, uint(7), article.AuthorID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewsDeleteCascadesComments(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewNewsStore(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `comments` WHERE news_id = (.+)").
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM `news` WHERE `news`.`id` = (.+)").
		WithArgs(5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := s.Delete(context.Background(), &models.News{ID: 5})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
