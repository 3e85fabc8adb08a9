package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"newsline/utils"
)

const (
	// ContextUserIDKey is the key used to store the authenticated user ID in Gin context.
	ContextUserIDKey = "user_id"
	// ContextUsernameKey stores the username inside Gin context.
	ContextUsernameKey = "username"
)

// LoginRequired ensures the request carries a valid session cookie. Anything
// else is redirected to the login page, never rendered as an error.
func LoginRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, err := ctx.Cookie(utils.SessionCookieName)
		if err != nil || token == "" {
			redirectToLogin(ctx)
			return
		}

		claims, err := utils.ParseSession(token)
		if err != nil {
			redirectToLogin(ctx)
			return
		}

		if claims.ID != "" && utils.IsSessionRevoked(claims.ID) {
			redirectToLogin(ctx)
			return
		}

		ctx.Set(ContextUserIDKey, claims.UserID)
		ctx.Set(ContextUsernameKey, claims.Username)
		ctx.Next()
	}
}

func redirectToLogin(ctx *gin.Context) {
	ctx.Redirect(http.StatusFound, "/login/")
	ctx.Abort()
}

// CurrentUserID returns the authenticated user's id from the request context.
func CurrentUserID(ctx *gin.Context) (uint, bool) {
	value, exists := ctx.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := value.(uint)
	return id, ok
}

// CurrentUsername returns the authenticated user's name from the request context.
func CurrentUsername(ctx *gin.Context) string {
	value, exists := ctx.Get(ContextUsernameKey)
	if !exists {
		return ""
	}
	name, _ := value.(string)
	return name
}
