package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"content-platform/internal/domain"
)

// pageFromQuery reads the page and limit query parameters. Missing values are
// left zero so the service applies its defaults and bounds.
func pageFromQuery(c *gin.Context) (domain.Page, error) {
	var page domain.Page
	var err error
	if page.Number, err = intQuery(c, queryPage); err != nil {
		return page, err
	}
	if page.Size, err = intQuery(c, queryLimit); err != nil {
		return page, err
	}
	return page, nil
}

func intQuery(c *gin.Context, name string) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.Validationf("%s must be a non-negative integer", name)
	}
	return n, nil
}
