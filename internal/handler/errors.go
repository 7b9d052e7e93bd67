package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"content-platform/internal/domain"
	"content-platform/internal/logger"
	"content-platform/internal/middleware"
	"content-platform/internal/validator"
)

// statusFor maps a domain error kind to its HTTP status.
func statusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation, domain.KindInvalidOperation, domain.KindInvalidState:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindForbidden:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

// respondError writes err as a JSON error body. Internal failures are logged
// with the request id and reported with a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(domain.KindOf(err))
	if status == http.StatusInternalServerError {
		logger.WithRequestID(middleware.GetRequestID(c)).ErrorContext(c.Request.Context(), "request failed",
			"method", c.Request.Method, "route", c.FullPath(), "error", err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}

	body := gin.H{"error": errorMessage(err)}
	if fields := validator.FieldErrors(err); len(fields) > 0 {
		body["fields"] = fields
	}
	c.JSON(status, body)
}

func errorMessage(err error) string {
	var de *domain.Error
	if errors.As(err, &de) && de.Message != "" {
		return de.Message
	}
	return err.Error()
}

// bindJSON decodes the request body into dst, answering 400 on malformed input.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}
