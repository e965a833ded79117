package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ralph-xpert-backend/internal/delivery/http/response"
	"ralph-xpert-backend/pkg/apperror"
	"ralph-xpert-backend/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			response.Error(c, appErr.Code, appErr.Message)
			return
		}

		// Never leak internal error details to clients; log them
		// server-side and answer with the generic French message.
		logger.Log.Error("unhandled request error", "error", err, "path", c.Request.URL.Path)
		response.Error(c, http.StatusInternalServerError, "Erreur serveur")
	}
}
