package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"content-platform/internal/domain"
	"content-platform/internal/middleware"
	"content-platform/internal/service"
)

// VoteHandler handles voting requests.
type VoteHandler struct {
	votes service.VoteServiceInterface
}

// NewVoteHandler creates a new VoteHandler.
func NewVoteHandler(votes service.VoteServiceInterface) *VoteHandler {
	return &VoteHandler{votes: votes}
}

// Upvote handles POST /api/news/:id/upvote
func (h *VoteHandler) Upvote(c *gin.Context) {
	h.respond(c, h.votes.Upvote)
}

// Downvote handles POST /api/news/:id/downvote
func (h *VoteHandler) Downvote(c *gin.Context) {
	h.respond(c, h.votes.Downvote)
}

// Status handles GET /api/news/:id/like-status. Anonymous callers get counts only.
func (h *VoteHandler) Status(c *gin.Context) {
	h.respond(c, h.votes.Status)
}

func (h *VoteHandler) respond(c *gin.Context, op func(context.Context, *domain.Principal, string) (*service.VoteResult, error)) {
	result, err := op(c.Request.Context(), middleware.GetPrincipal(c), c.Param(paramID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
