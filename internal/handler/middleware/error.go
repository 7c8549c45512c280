package middleware

import (
	"log/slog"
	"net/http"

	"resort-engine/internal/handler/httperr"
	"resort-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	resp.Error.Kind = string(errs.KindInternal)
	return resp
}

// ErrorHandler renders errors a handler recorded without writing a response.
// Public errors carry their response in Meta; any other error is classified
// by its domain category.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		if last := c.Errors.Last(); last != nil {
			if resp, ok := last.Meta.(httperr.Response); ok && last.IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
			httperr.AbortWithDomainError(c, last.Err)
			return
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Writer.WriteHeaderNow()
			return
		}
		resp := internalError()
		c.JSON(resp.Status, resp)
	}
}

func CustomRecovery(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorContext(c.Request.Context(), "recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c))

				resp := internalError()
				c.AbortWithStatusJSON(resp.Status, resp)
			}
		}()
		c.Next()
	}
}
