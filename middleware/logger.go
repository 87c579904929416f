package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger registra método, ruta, IP del cliente, status y latencia de
// cada request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Printf("%s %s %s %d %s",
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start))
	}
}
