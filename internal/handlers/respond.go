package handlers

import (
	"github.com/gin-gonic/gin"

	"jobboard-api/internal/apperrors"
	"jobboard-api/internal/dtos"
)

// respondError translates a service error into the JSON envelope. The
// underlying cause only appears for internal errors, where apperrors sets
// it.
func respondError(c *gin.Context, appErr *apperrors.Error) {
	detail := ""
	if appErr.Err != nil {
		detail = appErr.Err.Error()
	}
	c.JSON(appErr.Status, dtos.Fail(appErr.Message, detail))
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
