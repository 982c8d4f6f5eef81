package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key holding the request id. Handlers read
// it back when correlating error logs with responses.
const RequestIDKey = "request_id"

// RequestID tags every request with an id, honoring a client-supplied
// X-Request-ID header and minting one otherwise. The id is echoed on the
// response so clients can quote it when reporting a failure.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// Logger writes one line per request once the handler chain completes.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		id, _ := c.Get(RequestIDKey)
		log.Printf("middleware.Logger: [%v] %s %s -> %d in %s",
			id,
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
		)
	}
}

// Recovery turns handler panics into 500 responses instead of dropping
// the connection.
func Recovery() gin.HandlerFunc {
	return gin.Recovery()
}
