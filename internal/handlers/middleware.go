package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"
)

// requestIDMiddleware keeps the caller's X-Request-ID (or mints one) and
// echoes it on the response.
func (h *Handler) requestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

// logInfo logs with the request id attached; a nil logger is allowed in tests.
func (h *Handler) logInfo(c *gin.Context, msg string, kv ...interface{}) {
	if h.log == nil {
		return
	}
	fields := append([]interface{}{"request_id", c.GetString(requestIDKey), "path", c.FullPath()}, kv...)
	h.log.Infow(msg, fields...)
}
