package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "github.com/juninatt/trader-journal/internal/errors"
	"github.com/juninatt/trader-journal/internal/logger"
)

// RespondWithError writes the JSON error body for err. AppErrors keep their
// code and message; anything else is logged and reported as INTERNAL_ERROR.
func RespondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		logger.Named("http").Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", c.GetString(requestIDKey),
		)
		appErr = apperrors.ErrInternalServer
	} else if appErr.Internal != nil {
		logger.Named("http").Errorw("app error",
			"code", appErr.Code,
			"message", appErr.Message,
			"internal", appErr.Internal.Error(),
			"path", c.Request.URL.Path,
			"request_id", c.GetString(requestIDKey),
		)
	}

	c.JSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}

// ErrorHandler renders the last error attached with c.Error once the chain
// has run, unless a response was already written.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		RespondWithError(c, c.Errors.Last().Err)
	}
}

// NoRoute answers unknown paths with the NOT_FOUND error body.
func NoRoute() gin.HandlerFunc {
	return func(c *gin.Context) {
		RespondWithError(c, apperrors.WithMessage(apperrors.ErrNotFound, "No route for "+c.Request.Method+" "+c.Request.URL.Path))
	}
}
