package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsline/models"
)

func TestUserByUsernameFound(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewUserStore(gdb)

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE username = (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at", "updated_at"}).
			AddRow(3, "alice", "$2a$10$hash", now, now))

	user, err := s.ByUsername(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(3), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserByUsernameMissing(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewUserStore(gdb)

	mock.ExpectQuery("SELECT (.+) FROM `users` WHERE username = (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash", "created_at", "updated_at"}))

	user, err := s.ByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUsernameExists(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewUserStore(gdb)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `users` WHERE username = (.+)").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := s.UsernameExists(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserCreate(t *testing.T) {
	gdb, mock := newMockDB(t)
	s := NewUserStore(gdb)

	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))

	user := models.User{Username: "alice", PasswordHash: "$2a$10$hash"}
	err := s.Create(context.Background(), &user)
	require.NoError(t, err)
	assert.Equal(t, uint(1), user.ID)
	assert.False(t, user.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}
