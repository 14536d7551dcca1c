package server

import (
	"errors"
	"net/http"

	"github.com/codewithdark-git/khanana/pkg/auth"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.BindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := s.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		s.logger.Error("Login failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	respondData(c, http.StatusOK, gin.H{"token": token})
}

func (s *Server) logout(c *gin.Context) {
	token := bearerToken(c.GetHeader("Authorization"))
	if token != "" {
		if err := s.auth.Logout(c.Request.Context(), token); err != nil {
			s.logger.Warn("Logout failed", zap.Error(err))
		}
	}
	respondMessage(c, http.StatusOK, nil, "Logged out")
}
