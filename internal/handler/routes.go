package handler

import (
	"github.com/gin-gonic/gin"

	"content-platform/internal/middleware"
)

// Handlers groups every API handler for route registration.
type Handlers struct {
	Identity      *IdentityHandler
	Subscriptions *SubscriptionHandler
	Articles      *ArticleHandler
	Votes         *VoteHandler
	Comments      *CommentHandler
	Reports       *ReportHandler
}

// RegisterRoutes mounts the /api routes on router. The principal must already
// be resolved by middleware.Authenticate.
func RegisterRoutes(router gin.IRouter, h Handlers) {
	auth := middleware.RequireAuth()
	api := router.Group("/api")

	api.POST("/signup", h.Identity.Signup)
	api.POST("/auth", h.Identity.Authenticate)
	api.POST("/auth/external", h.Identity.AuthenticateExternal)
	api.GET("/userprofile", h.Identity.GetProfile)
	api.PATCH("/userprofile", auth, h.Identity.UpdateProfile)
	api.GET("/userprofile/overview", auth, h.Identity.Overview)
	api.GET("/user/rating/:username", h.Identity.Badge)

	users := api.Group("/users")
	{
		users.GET("/search/:query", h.Identity.SearchUsers)
		users.POST("/:user/subscribe", auth, h.Subscriptions.Toggle)
		users.GET("/:user/subscription-status", auth, h.Subscriptions.Status)
		users.GET("/:user/subscribers", h.Subscriptions.Subscribers)
		users.GET("/:user/subscriptions", h.Subscriptions.Subscriptions)
	}

	api.GET("/articles/:username", h.Articles.ByUsername)
	api.GET("/post/rating/:id", h.Articles.Rating)

	news := api.Group("/news")
	{
		news.GET("/latest", h.Articles.Latest)
		news.GET("/category/:category", h.Articles.ByCategory)
		news.GET("/search/:query", h.Articles.Search)
		news.GET("/feed/subscribed", auth, h.Articles.SubscribedFeed)
		news.GET("/saved", auth, h.Articles.Saved)
		news.GET("/mine/ongoing", auth, h.Articles.MyOngoing)
		news.POST("/newpost", auth, h.Articles.Create)

		news.GET("/:id", h.Articles.View)
		news.DELETE("/:id", auth, h.Articles.Delete)
		news.POST("/:id/save", auth, h.Articles.ToggleSave)
		news.POST("/:id/upvote", auth, h.Votes.Upvote)
		news.POST("/:id/downvote", auth, h.Votes.Downvote)
		news.GET("/:id/like-status", h.Votes.Status)
		news.POST("/:id/report", auth, h.Reports.Submit)

		news.GET("/:id/comments", h.Comments.List)
		news.POST("/:id/comments", auth, h.Comments.Add)
		news.PATCH("/:id/comments/:commentId", auth, h.Comments.Edit)
		news.DELETE("/:id/comments/:commentId", auth, h.Comments.Delete)
	}

	admin := api.Group("/admin", middleware.RequireAdmin())
	{
		admin.GET("/articles", h.Articles.ListForModeration)
		admin.DELETE("/articles", h.Articles.BulkDelete)
		admin.PATCH("/articles/:id/approve", h.Articles.Approve)
		admin.PATCH("/articles/:id/reject", h.Articles.Reject)

		admin.GET("/reports", h.Reports.List)
		admin.GET("/reports/counts", h.Reports.Counts)
		admin.GET("/reports/article/:id", h.Reports.ListByArticle)
		admin.PATCH("/reports/:id", h.Reports.UpdateStatus)

		admin.DELETE("/users/:id", h.Identity.DeleteUser)
	}
}
