package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/jdifek/fitziz-adminka/internal/common/errors"
)

// ErrorHandler перехватывает паники обработчиков и возвращает клиенту
// типизированную ошибку вместо пустого 500.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error().
			Str("request_id", c.GetString("request_id")).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("panic", fmt.Sprintf("%v", recovered)).
			Str("stack", string(debug.Stack())).
			Msg("panic recovered")

		appErr := apperrors.New(apperrors.ErrCodeInternal, "internal server error")
		c.AbortWithStatusJSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message})
	})
}

// AbortWithError завершает запрос ошибкой. AppError определяет статус
// и текст сам, прочие ошибки отдаются как internal без деталей.
func AbortWithError(c *gin.Context, err error) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		c.AbortWithStatusJSON(appErr.HTTPStatus(), gin.H{"error": appErr.Message})
		return
	}
	log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("path", c.Request.URL.Path).
		Msg("unhandled error")
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
