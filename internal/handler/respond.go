package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// pagination is the envelope block returned by every listing endpoint.
// HasMore means more records exist past the current page.
type pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

func paged(total int64, limit, offset int) pagination {
	return pagination{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: total > int64(offset)+int64(limit),
	}
}

func respondData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func respondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data, "message": message})
}

func respondUpdated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "message": message})
}

func respondList(c *gin.Context, data interface{}, p pagination) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "pagination": p})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

func respondValidation(c *gin.Context, details []string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error":   "Validation error",
		"details": details,
	})
}
