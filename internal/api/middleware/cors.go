package middleware

import (
	"net/http"

	"collab-backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

// CORS applies the configured cross-origin policy. Preflight requests are answered here.
func CORS(cfg *config.Config) gin.HandlerFunc {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "Accept", RequestIDHeader},
		ExposedHeaders:   []string{"Location", RequestIDHeader},
		AllowCredentials: !allowsAny(origins),
		MaxAge:           600,
	})

	return func(ctx *gin.Context) {
		c.HandlerFunc(ctx.Writer, ctx.Request)
		if ctx.Request.Method == http.MethodOptions && ctx.GetHeader("Access-Control-Request-Method") != "" {
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

func allowsAny(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
