package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"newsline/config"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "newsline_session"

// SessionClaims identifies an authenticated browser session. The jti
// (RegisteredClaims.ID) is the handle used for revocation on logout.
type SessionClaims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// IssueSession signs a session token for the given user identity.
func IssueSession(userID uint, username string, duration time.Duration) (string, error) {
	cfg := config.Get()

	claims := SessionClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(duration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.SessionSecret))
}

// ParseSession validates a session token and returns its claims.
func ParseSession(tokenStr string) (*SessionClaims, error) {
	cfg := config.Get()
	parsed, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.SessionSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid session claims")
	}

	return claims, nil
}
