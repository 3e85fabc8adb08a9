package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"newsline/middleware"
	"newsline/models"
	"newsline/store"
	"newsline/utils"
)

// NewsController manages the article and comment endpoints. Every handler
// runs behind the session guard; ownership checks are done per handler.
type NewsController struct {
	stores *store.Stores
}

// NewNewsController creates a NewsController.
func NewNewsController(stores *store.Stores) *NewsController {
	return &NewsController{stores: stores}
}

// List shows every article, newest first. No pagination, no filtering and no
// ownership restriction: each authenticated user sees all articles.
func (n *NewsController) List(ctx *gin.Context) {
	articles, err := n.stores.News.List(ctx.Request.Context())
	if err != nil {
		utils.Sugar.Errorf("news list failed: %v", err)
		ctx.String(http.StatusInternalServerError, "failed to load articles")
		return
	}

	ctx.HTML(http.StatusOK, "news_list.html", gin.H{
		"Articles": articles,
		"Username": middleware.CurrentUsername(ctx),
	})
}

// CreateForm renders an empty article form.
func (n *NewsController) CreateForm(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "news_form.html", gin.H{
		"Action":   "/news/create/",
		"Errors":   map[string]string{},
		"Title":    "",
		"Content":  "",
		"Username": middleware.CurrentUsername(ctx),
	})
}

// Create persists a new article. The author is always the requesting user and
// the published date is stamped at creation; neither is ever client input.
func (n *NewsController) Create(ctx *gin.Context) {
	title, content, errs := bindArticleForm(ctx)
	if len(errs) > 0 {
		ctx.HTML(http.StatusOK, "news_form.html", gin.H{
			"Action":   "/news/create/",
			"Errors":   errs,
			"Title":    title,
			"Content":  content,
			"Username": middleware.CurrentUsername(ctx),
		})
		return
	}

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.Redirect(http.StatusFound, "/login/")
		return
	}

	article := models.News{
		Title:    title,
		Content:  content,
		AuthorID: userID,
	}
	if err := n.stores.News.Create(ctx.Request.Context(), &article); err != nil {
		utils.Sugar.Errorf("news create failed: %v", err)
		ctx.String(http.StatusInternalServerError, "failed to create article")
		return
	}

	ctx.Redirect(http.StatusFound, "/news/")
}

// UpdateForm renders the edit form for one of the requester's own articles.
// An article owned by someone else resolves to not-found, the same response
// as a missing id, so existence of foreign articles never leaks.
func (n *NewsController) UpdateForm(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		notFound(ctx)
		return
	}
	userID, _ := middleware.CurrentUserID(ctx)

	article, err := n.stores.News.OwnedByID(ctx.Request.Context(), id, userID)
	if err != nil {
		utils.Sugar.Errorf("news lookup failed: %v", err)
		ctx.String(http.StatusInternalServerError, "failed to load article")
		return
	}
	if article == nil {
		notFound(ctx)
		return
	}

	ctx.HTML(http.StatusOK, "news_form.html", gin.H{
		"Action":   fmt.Sprintf("/news/%d/update/", article.ID),
		"Errors":   map[string]string{},
		"Title":    article.Title,
		"Content":  article.Content,
		"Username": middleware.CurrentUsername(ctx),
	})
}

// Update saves title and content of one of the requester's own articles.
// Author and published date are not reachable through this endpoint.
func (n *NewsController) Update(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		notFound(ctx)
		return
	}
	userID, _ := middleware.CurrentUserID(ctx)

	article, err := n.stores.News.OwnedByID(ctx.Request.Context(), id, userID)
	if err != nil {
		utils.Sugar.Errorf("news lookup failed: %v", err)
		ctx.String(http.StatusInternalServerError, "failed to load article")
		return
	}
	if article == nil {
		notFound(ctx)
		return
	}

	title, content, errs := bindArticleForm(ctx)
	if len(errs) > 0 {
		ctx.HTML(http.StatusOK, "news_form.html", gin.H{
			"Action":   fmt.Sprintf("/news/%d/update/", article.ID),
			"Errors":   errs,
			"Title":    title,
			"Content":  content,
			"Username": middleware.CurrentUsername(ctx),
		})
		return
	}

	article.Title = title
	article.Content = content
	if err := n.stores.News.Save(ctx.Request.Context(), article); err != nil {
		utils.Sugar.Errorf("news update failed: %v", err)
		ctx.String(http.StatusInternalServerError, "failed to update article")
		return
	}

	ctx.Redirect(http.StatusFound, "/news/")
}

// Delete removes an article and its comments, then redirects to the list.
// Two source behaviors are preserved on purpose: GET deletes immediately with
// no confirmation step, and there is no ownership filter, so any
// authenticated user can delete any article by id.
func (n *NewsController) Delete(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		notFound(ctx)
		return
	}

	article, err := n.stores.News.ByID(ctx.Request.Context(), id)
	if err != nil {
		utils.Sugar.Errorf("news lookup failed: %v", err)
		ctx.String(http.StatusInternalServerError, "failed to load article")
		return
	}
	if article == nil {
		notFound(ctx)
		return
	}

	if err := n.stores.News.Delete(ctx.Request.Context(), article); err != nil {
		utils.Sugar.Errorf("news delete failed: %v", err)
		ctx.String(http.StatusInternalServerError, "failed to delete article")
		return
	}

	ctx.Redirect(http.StatusFound, "/news/")
}

// Detail shows a single article with its comments to any authenticated user.
func (n *NewsController) Detail(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		notFound(ctx)
		return
	}

	article, err := n.stores.News.ByID(ctx.Request.Context(), id)
	if err != nil {
		utils.Sugar.Errorf("news lookup failed: %v", err)
		ctx.String(http.StatusInternalServerError, "failed to load article")
		return
	}
	if article == nil {
		notFound(ctx)
		return
	}

	n.renderDetail(ctx, article, "")
}

// CreateComment attaches a comment by the requesting user to an article.
func (n *NewsController) CreateComment(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		notFound(ctx)
		return
	}

	article, err := n.stores.News.ByID(ctx.Request.Context(), id)
	if err != nil {
		utils.Sugar.Errorf("news lookup failed: %v", err)
		ctx.String(http.StatusInternalServerError, "failed to load article")
		return
	}
	if article == nil {
		notFound(ctx)
		return
	}

	content := utils.Sanitize(strings.TrimSpace(ctx.PostForm("content")))
	if content == "" {
		n.renderDetail(ctx, article, "comment cannot be empty")
		return
	}

	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.Redirect(http.StatusFound, "/login/")
		return
	}

	comment := models.Comment{
		NewsID:  article.ID,
		UserID:  userID,
		Content: content,
	}
	if err := n.stores.Comments.Create(ctx.Request.Context(), &comment); err != nil {
		utils.Sugar.Errorf("comment create failed: %v", err)
		ctx.String(http.StatusInternalServerError, "failed to create comment")
		return
	}

	ctx.Redirect(http.StatusFound, fmt.Sprintf("/news/%d/", article.ID))
}

func (n *NewsController) renderDetail(ctx *gin.Context, article *models.News, commentError string) {
	comments, err := n.stores.Comments.ForNews(ctx.Request.Context(), article.ID)
	if err != nil {
		utils.Sugar.Errorf("comments load failed: %v", err)
		ctx.String(http.StatusInternalServerError, "failed to load comments")
		return
	}

	ctx.HTML(http.StatusOK, "news_detail.html", gin.H{
		"Article":      article,
		"Comments":     comments,
		"CommentError": commentError,
		"Username":     middleware.CurrentUsername(ctx),
	})
}

// bindArticleForm reads and sanitizes the shared title/content form.
func bindArticleForm(ctx *gin.Context) (title, content string, errs map[string]string) {
	errs = map[string]string{}
	title = utils.Sanitize(strings.TrimSpace(ctx.PostForm("title")))
	content = utils.Sanitize(ctx.PostForm("content"))

	if title == "" {
		errs["title"] = "title is required"
	} else if len([]rune(title)) > 255 {
		errs["title"] = "title must be at most 255 characters"
	}
	if strings.TrimSpace(content) == "" {
		errs["content"] = "content is required"
	}
	return title, content, errs
}

func parseID(ctx *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(ctx.Param("id"))
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func notFound(ctx *gin.Context) {
	ctx.HTML(http.StatusNotFound, "not_found.html", gin.H{})
}
