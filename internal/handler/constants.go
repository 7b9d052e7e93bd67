package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// Query and path parameter names shared by several handlers.
const (
	paramID        = "id"
	paramUser      = "user"
	paramUsername  = "username"
	paramCommentID = "commentId"
	paramQuery     = "query"
	paramCategory  = "category"

	queryPage     = "page"
	queryLimit    = "limit"
	queryStatus   = "status"
	queryUsername = "username"
)
