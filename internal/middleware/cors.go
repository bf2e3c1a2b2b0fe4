// Package middleware holds the Gin middleware the server installs ahead
// of its routes: CORS and request-correlation IDs. Both replace the
// teacher's hand-rolled equivalents (cmd/main.go's inline CORS closure)
// with the ecosystem libraries the rest of this corpus reaches for.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORS builds a permissive CORS middleware suitable for a JSON API with
// no cookie-based auth, replacing the teacher's manual header-setting
// closure with rs/cors's documented handler wrapping.
func CORS() gin.HandlerFunc {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
	})

	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		if ctx.Request.Method == "OPTIONS" {
			ctx.AbortWithStatus(204)
			return
		}
		ctx.Next()
	}
}
