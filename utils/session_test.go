package utils

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// The secret must be in place before the config singleton loads.
	os.Setenv("SESSION_SECRET", "unit-test-secret")
	os.Exit(m.Run())
}

func TestSessionRoundTrip(t *testing.T) {
	token, err := IssueSession(42, "alice", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseSession(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.ID)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestParseSessionRejectsTampering(t *testing.T) {
	token, err := IssueSession(1, "alice", time.Hour)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	parts[2] = "forgedsignature"

	_, err = ParseSession(strings.Join(parts, "."))
	assert.Error(t, err)
}

func TestParseSessionRejectsGarbage(t *testing.T) {
	_, err := ParseSession("not-a-token")
	assert.Error(t, err)
}

func TestSessionRevocation(t *testing.T) {
	token, err := IssueSession(7, "bob", time.Hour)
	require.NoError(t, err)
	claims, err := ParseSession(token)
	require.NoError(t, err)

	assert.False(t, IsSessionRevoked(claims.ID))
	RevokeSession(claims.ID, claims.ExpiresAt.Time)
	assert.True(t, IsSessionRevoked(claims.ID))
}

func TestRevocationExpiresWithSession(t *testing.T) {
	RevokeSession("stale-session-id", time.Now().Add(-time.Minute))
	assert.False(t, IsSessionRevoked("stale-session-id"))
}
