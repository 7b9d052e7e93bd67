package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-platform/internal/domain"
	"content-platform/internal/middleware"
	"content-platform/internal/service"
)

// ArticleHandler handles article listing, lifecycle and moderation requests.
type ArticleHandler struct {
	articles service.ArticleServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articles service.ArticleServiceInterface) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

// BulkDeleteRequest is the body of DELETE /api/admin/articles.
type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

// Create handles POST /api/news/newpost
func (h *ArticleHandler) Create(c *gin.Context) {
	var in domain.ArticleInput
	if !bindJSON(c, &in) {
		return
	}
	a, err := h.articles.Create(c.Request.Context(), middleware.GetPrincipal(c), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

// Latest handles GET /api/news/latest
func (h *ArticleHandler) Latest(c *gin.Context) {
	list, err := h.articles.Latest(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": list})
}

// ByCategory handles GET /api/news/category/:category
func (h *ArticleHandler) ByCategory(c *gin.Context) {
	h.listPage(c, func(page domain.Page) (*service.ArticlePage, error) {
		return h.articles.ByCategory(c.Request.Context(), c.Param(paramCategory), page)
	})
}

// ByUsername handles GET /api/articles/:username
func (h *ArticleHandler) ByUsername(c *gin.Context) {
	h.listPage(c, func(page domain.Page) (*service.ArticlePage, error) {
		return h.articles.ByUsername(c.Request.Context(), c.Param(paramUsername), page)
	})
}

// Search handles GET /api/news/search/:query
func (h *ArticleHandler) Search(c *gin.Context) {
	h.listPage(c, func(page domain.Page) (*service.ArticlePage, error) {
		return h.articles.Search(c.Request.Context(), c.Param(paramQuery), page)
	})
}

// SubscribedFeed handles GET /api/news/feed/subscribed
func (h *ArticleHandler) SubscribedFeed(c *gin.Context) {
	h.listPage(c, func(page domain.Page) (*service.ArticlePage, error) {
		return h.articles.SubscribedFeed(c.Request.Context(), middleware.GetPrincipal(c), page)
	})
}

// Saved handles GET /api/news/saved
func (h *ArticleHandler) Saved(c *gin.Context) {
	h.listPage(c, func(page domain.Page) (*service.ArticlePage, error) {
		return h.articles.Saved(c.Request.Context(), middleware.GetPrincipal(c), page)
	})
}

// MyOngoing handles GET /api/news/mine/ongoing
func (h *ArticleHandler) MyOngoing(c *gin.Context) {
	list, err := h.articles.MyOngoing(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": list})
}

// ListForModeration handles GET /api/admin/articles?status=
func (h *ArticleHandler) ListForModeration(c *gin.Context) {
	h.listPage(c, func(page domain.Page) (*service.ArticlePage, error) {
		return h.articles.ListForModeration(c.Request.Context(), middleware.GetPrincipal(c), c.Query(queryStatus), page)
	})
}

// View handles GET /api/news/:id and counts the view.
func (h *ArticleHandler) View(c *gin.Context) {
	a, err := h.articles.View(c.Request.Context(), c.Param(paramID), middleware.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Rating handles GET /api/post/rating/:id
func (h *ArticleHandler) Rating(c *gin.Context) {
	breakdown, err := h.articles.RatingBreakdown(c.Request.Context(), c.Param(paramID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}

// Delete handles DELETE /api/news/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	a, err := h.articles.SoftDelete(c.Request.Context(), middleware.GetPrincipal(c), c.Param(paramID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "article deleted", "id": a.ID, "deletedAt": a.DeletedAt})
}

// BulkDelete handles DELETE /api/admin/articles
func (h *ArticleHandler) BulkDelete(c *gin.Context) {
	var req BulkDeleteRequest
	if !bindJSON(c, &req) {
		return
	}
	n, err := h.articles.BulkSoftDelete(c.Request.Context(), middleware.GetPrincipal(c), req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": n})
}

// Approve handles PATCH /api/admin/articles/:id/approve
func (h *ArticleHandler) Approve(c *gin.Context) {
	a, err := h.articles.Approve(c.Request.Context(), middleware.GetPrincipal(c), c.Param(paramID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// Reject handles PATCH /api/admin/articles/:id/reject
func (h *ArticleHandler) Reject(c *gin.Context) {
	a, err := h.articles.Reject(c.Request.Context(), middleware.GetPrincipal(c), c.Param(paramID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

// ToggleSave handles POST /api/news/:id/save
func (h *ArticleHandler) ToggleSave(c *gin.Context) {
	saved, err := h.articles.ToggleSave(c.Request.Context(), middleware.GetPrincipal(c), c.Param(paramID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"saved": saved})
}

func (h *ArticleHandler) listPage(c *gin.Context, fetch func(domain.Page) (*service.ArticlePage, error)) {
	page, err := pageFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	result, err := fetch(page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
