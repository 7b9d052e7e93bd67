package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-platform/internal/middleware"
	"content-platform/internal/service"
)

// SubscriptionHandler handles the subscription graph endpoints.
type SubscriptionHandler struct {
	subscriptions service.SubscriptionServiceInterface
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptions service.SubscriptionServiceInterface) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions}
}

// Toggle handles POST /api/users/:user/subscribe where :user is the target id.
func (h *SubscriptionHandler) Toggle(c *gin.Context) {
	subscribed, err := h.subscriptions.Toggle(c.Request.Context(), middleware.GetPrincipal(c).Ref(), c.Param(paramUser))
	if err != nil {
		respondError(c, err)
		return
	}
	message := "unsubscribed"
	if subscribed {
		message = "subscribed"
	}
	c.JSON(http.StatusOK, gin.H{"subscribed": subscribed, "message": message})
}

// Status handles GET /api/users/:user/subscription-status
func (h *SubscriptionHandler) Status(c *gin.Context) {
	subscribed, err := h.subscriptions.Status(c.Request.Context(), middleware.GetPrincipal(c).Ref(), c.Param(paramUser))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribed": subscribed})
}

// Subscribers handles GET /api/users/:user/subscribers where :user is a username.
func (h *SubscriptionHandler) Subscribers(c *gin.Context) {
	list, err := h.subscriptions.ListSubscribers(c.Request.Context(), c.Param(paramUser))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscribers": list, "count": len(list)})
}

// Subscriptions handles GET /api/users/:user/subscriptions
func (h *SubscriptionHandler) Subscriptions(c *gin.Context) {
	list, err := h.subscriptions.ListSubscriptions(c.Request.Context(), c.Param(paramUser))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subscriptions": list, "count": len(list)})
}
