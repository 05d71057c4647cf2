package middleware

import (
	"bytes"
	"io"
	"time"

	"github.com/leadflowbr/leadflow_end/utils"

	"github.com/gin-gonic/gin"
)

// bodyLogWriter captures the response body while writing it through.
type bodyLogWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

// Write implements ResponseWriter.
func (w bodyLogWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Logger request/response logging middleware
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		headers := make(map[string]string)
		for k, v := range c.Request.Header {
			if len(v) > 0 {
				headers[k] = v[0]
			}
		}

		var requestBody []byte
		if c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		blw := &bodyLogWriter{
			ResponseWriter: c.Writer,
			body:           bytes.NewBufferString(""),
		}
		c.Writer = blw

		utils.LogApiRequest(
			method,
			path,
			c.Request.URL.Query(),
			string(requestBody),
			headers,
		)

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		utils.LogApiResponse(
			method,
			path,
			statusCode,
			duration,
			blw.body.String(),
		)
	}
}

// Recovery panic recovery middleware
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.Logger.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("handler panicked")

		c.AbortWithStatusJSON(500, gin.H{
			"success": false,
			"error":   "internal server error",
		})
	})
}
