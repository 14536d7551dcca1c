package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// requireAuth guards admin-only routes with the bearer token issued by
// the login endpoint.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if err := s.auth.Verify(c.Request.Context(), token); err != nil {
			respondError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}
