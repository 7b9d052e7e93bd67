package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"content-platform/internal/domain"
	"content-platform/internal/middleware"
	"content-platform/internal/service"
)

// ReportHandler handles reader reports and the admin moderation queue.
type ReportHandler struct {
	reports service.ReportServiceInterface
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reports service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Submit handles POST /api/news/:id/report
func (h *ReportHandler) Submit(c *gin.Context) {
	var in domain.ReportInput
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.reports.Submit(c.Request.Context(), middleware.GetPrincipal(c), c.Param(paramID), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, r)
}

// UpdateStatus handles PATCH /api/admin/reports/:id
func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	var in domain.ReportReview
	if !bindJSON(c, &in) {
		return
	}
	r, err := h.reports.UpdateStatus(c.Request.Context(), middleware.GetPrincipal(c), c.Param(paramID), &in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// List handles GET /api/admin/reports?status=&page=&limit=
func (h *ReportHandler) List(c *gin.Context) {
	page, err := pageFromQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	result, err := h.reports.List(c.Request.Context(), middleware.GetPrincipal(c), c.Query(queryStatus), page)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListByArticle handles GET /api/admin/reports/article/:id
func (h *ReportHandler) ListByArticle(c *gin.Context) {
	list, err := h.reports.ListByArticle(c.Request.Context(), middleware.GetPrincipal(c), c.Param(paramID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": list})
}

// Counts handles GET /api/admin/reports/counts
func (h *ReportHandler) Counts(c *gin.Context) {
	counts, err := h.reports.Counts(c.Request.Context(), middleware.GetPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}
