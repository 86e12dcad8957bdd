package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware keeps the surface open for the browser clients: any origin,
// preflight always answered with 200.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "authorization, content-type, x-client-info, apikey")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
