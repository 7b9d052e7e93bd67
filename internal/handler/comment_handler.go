package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-platform/internal/middleware"
	"content-platform/internal/service"
)

// CommentHandler handles article comment requests.
type CommentHandler struct {
	comments service.CommentServiceInterface
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments service.CommentServiceInterface) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// CommentRequest is the body for adding or editing a comment.
type CommentRequest struct {
	Text string `json:"text"`
}

// List handles GET /api/news/:id/comments
func (h *CommentHandler) List(c *gin.Context) {
	views, err := h.comments.List(c.Request.Context(), middleware.GetPrincipal(c), c.Param(paramID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"comments": views})
}

// Add handles POST /api/news/:id/comments
func (h *CommentHandler) Add(c *gin.Context) {
	var req CommentRequest
	if !bindJSON(c, &req) {
		return
	}
	comment, err := h.comments.Add(c.Request.Context(), middleware.GetPrincipal(c), c.Param(paramID), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// Edit handles PATCH /api/news/:id/comments/:commentId
func (h *CommentHandler) Edit(c *gin.Context) {
	var req CommentRequest
	if !bindJSON(c, &req) {
		return
	}
	comment, err := h.comments.Edit(c.Request.Context(), middleware.GetPrincipal(c),
		c.Param(paramID), c.Param(paramCommentID), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comment)
}

// Delete handles DELETE /api/news/:id/comments/:commentId
func (h *CommentHandler) Delete(c *gin.Context) {
	err := h.comments.Delete(c.Request.Context(), middleware.GetPrincipal(c), c.Param(paramID), c.Param(paramCommentID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
