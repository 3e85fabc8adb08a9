package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"newsline/config"
	"newsline/models"
	"newsline/store"
	"newsline/utils"
)

// AccountController handles registration, login, logout and the home page.
// Credential hashing and session issuance live in utils; this controller only
// orchestrates the form flows around them.
type AccountController struct {
	stores *store.Stores
}

// NewAccountController creates an AccountController.
func NewAccountController(stores *store.Stores) *AccountController {
	return &AccountController{stores: stores}
}

// Home renders the static landing page. No auth, no data access.
func (a *AccountController) Home(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "home.html", gin.H{})
}

// RegisterForm renders an empty registration form.
func (a *AccountController) RegisterForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "register.html", gin.H{
		"Errors":   map[string]string{},
		"Username": "",
	})
}

// Register validates the submitted form and creates a user. Success redirects
// to the login page; any validation failure re-renders the form with field
// errors and leaves no trace in the database.
func (a *AccountController) Register(ctx *gin.Context) {
	var form struct {
		Username string `form:"username"`
		Password string `form:"password"`
		Confirm  string `form:"password_confirm"`
	}
	_ = ctx.ShouldBind(&form)

	form.Username = strings.TrimSpace(form.Username)
	errs := map[string]string{}

	if form.Username == "" {
		errs["username"] = "username is required"
	} else if l := len([]rune(form.Username)); l < 3 || l > 64 {
		errs["username"] = "username must be 3-64 characters"
	} else if !validUsername(form.Username) {
		errs["username"] = "username may only contain letters, digits, '-' and '_'"
	}

	if len(form.Password) < 6 {
		errs["password"] = "password must be at least 6 characters"
	} else if form.Password != form.Confirm {
		errs["password_confirm"] = "the two password fields do not match"
	}

	if len(errs) == 0 {
		exists, err := a.stores.Users.UsernameExists(ctx.Request.Context(), form.Username)
		if err != nil {
			utils.Sugar.Errorf("username lookup failed: %v", err)
			errs["username"] = "registration is temporarily unavailable"
		} else if exists {
			errs["username"] = "a user with that username already exists"
		}
	}

	if len(errs) > 0 {
		ctx.HTML(http.StatusOK, "register.html", gin.H{
			"Errors":   errs,
			"Username": form.Username,
		})
		return
	}

	hash, err := utils.HashPassword(form.Password)
	if err != nil {
		utils.Sugar.Errorf("password hashing failed: %v", err)
		ctx.HTML(http.StatusOK, "register.html", gin.H{
			"Errors":   map[string]string{"username": "registration is temporarily unavailable"},
			"Username": form.Username,
		})
		return
	}

	user := models.User{Username: form.Username, PasswordHash: hash}
	if err := a.stores.Users.Create(ctx.Request.Context(), &user); err != nil {
		utils.Sugar.Errorf("user create failed: %v", err)
		ctx.HTML(http.StatusOK, "register.html", gin.H{
			"Errors":   map[string]string{"username": "a user with that username already exists"},
			"Username": form.Username,
		})
		return
	}

	ctx.Redirect(http.StatusFound, "/login/")
}

// LoginForm renders an empty login form.
func (a *AccountController) LoginForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "login.html", gin.H{
		"Error":    "",
		"Username": "",
	})
}

// Login verifies credentials and establishes a session cookie. The failure
// message is deliberately identical for unknown usernames and wrong
// passwords so the response never reveals whether an account exists.
func (a *AccountController) Login(ctx *gin.Context) {
	var form struct {
		Username string `form:"username"`
		Password string `form:"password"`
	}
	_ = ctx.ShouldBind(&form)
	form.Username = strings.TrimSpace(form.Username)

	user, err := a.stores.Users.ByUsername(ctx.Request.Context(), form.Username)
	if err != nil {
		utils.Sugar.Errorf("user lookup failed: %v", err)
	}
	if err != nil || user == nil || !utils.CheckPassword(user.PasswordHash, form.Password) {
		ctx.HTML(http.StatusOK, "login.html", gin.H{
			"Error":    "invalid username or password",
			"Username": form.Username,
		})
		return
	}

	cfg := config.Get()
	ttl := time.Duration(cfg.SessionTTLHours) * time.Hour
	token, err := utils.IssueSession(user.ID, user.Username, ttl)
	if err != nil {
		utils.Sugar.Errorf("session issue failed: %v", err)
		ctx.HTML(http.StatusOK, "login.html", gin.H{
			"Error":    "login is temporarily unavailable",
			"Username": form.Username,
		})
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(utils.SessionCookieName, token, int(ttl.Seconds()), "/", "", cfg.CookieSecure, true)
	ctx.Redirect(http.StatusFound, "/")
}

// Logout revokes the current session, if any, and always redirects home.
// Logging out an anonymous session is a no-op that still redirects.
func (a *AccountController) Logout(ctx *gin.Context) {
	if token, err := ctx.Cookie(utils.SessionCookieName); err == nil && token != "" {
		if claims, err := utils.ParseSession(token); err == nil && claims.ID != "" {
			expiresAt := time.Now().Add(time.Duration(config.Get().SessionTTLHours) * time.Hour)
			if claims.ExpiresAt != nil {
				expiresAt = claims.ExpiresAt.Time
			}
			utils.RevokeSession(claims.ID, expiresAt)
		}
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(utils.SessionCookieName, "", -1, "/", "", config.Get().CookieSecure, true)
	ctx.Redirect(http.StatusFound, "/")
}

// validUsername allows letters, digits, '-' and '_'.
func validUsername(s string) bool {
	for _, r := range s {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '-' || r == '_' {
			continue
		}
		return false
	}
	return true
}
