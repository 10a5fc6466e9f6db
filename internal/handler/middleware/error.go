package middleware

import (
	"log/slog"
	"net/http"

	"appointment-engine/internal/handler/httperr"
	"appointment-engine/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const (
	internalErrorMessage = "Internal server error"
	stackLines           = 12
)

// ErrorHandler writes the response a handler recorded through httperr when
// it did not write one itself, and turns silent failures into a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if !err.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := err.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}

		if last := c.Errors.Last(); last != nil {
			slog.Error("handler failed without a response",
				"request_id", GetRequestID(c),
				"path", c.FullPath(),
				"error", last.Err.Error(),
				"stack", errs.StackLines(last.Err, stackLines),
			)
		}
		c.JSON(http.StatusInternalServerError, internalError())
	}
}

// CustomRecovery converts a panic into the standard error envelope. It must
// be registered before every other middleware.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"panic", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = internalErrorMessage
	resp.Error.Kind = "InternalError"
	return resp
}
