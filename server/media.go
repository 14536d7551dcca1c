package server

import (
	"errors"
	"net/http"

	"github.com/codewithdark-git/khanana/pkg/models"
	"github.com/codewithdark-git/khanana/pkg/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) listMedia(c *gin.Context) {
	media, err := s.stores.Media.List(c.Request.Context())
	if err != nil {
		s.logger.Error("Failed to list media", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch media")
		return
	}
	respondData(c, http.StatusOK, media)
}

type addMediaRequest struct {
	URL  string `json:"url"`
	Name string `json:"name"`
}

func (s *Server) addMedia(c *gin.Context) {
	var req addMediaRequest
	if err := c.BindJSON(&req); err != nil || req.URL == "" {
		respondError(c, http.StatusBadRequest, "URL required")
		return
	}

	media := &models.Media{URL: req.URL, Name: req.Name}
	if err := s.stores.Media.Add(c.Request.Context(), media); err != nil {
		s.logger.Error("Failed to save media", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to save media")
		return
	}

	s.auditAction("add_media", media.ID, map[string]interface{}{"url": media.URL})

	respondData(c, http.StatusOK, media)
}

func (s *Server) deleteMedia(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		respondError(c, http.StatusBadRequest, "ID required")
		return
	}

	if err := s.stores.Media.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Media not found")
			return
		}
		s.logger.Error("Failed to delete media", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete media")
		return
	}

	s.auditAction("delete_media", id, nil)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (s *Server) getSettings(c *gin.Context) {
	ctx := c.Request.Context()

	if s.cache != nil {
		if settings, err := s.cache.GetCachedSettings(ctx); err == nil {
			respondData(c, http.StatusOK, settings)
			return
		}
	}

	settings, err := s.stores.Settings.Get(ctx)
	if err != nil {
		s.logger.Error("Failed to get settings", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch settings")
		return
	}

	if s.cache != nil {
		if err := s.cache.CacheSettings(ctx, settings); err != nil {
			s.logger.Warn("Failed to cache settings", zap.Error(err))
		}
	}

	respondData(c, http.StatusOK, settings)
}

type updateSettingsRequest struct {
	HeroImage  string `json:"heroImage"`
	AboutImage string `json:"aboutImage"`
}

func (s *Server) updateSettings(c *gin.Context) {
	var req updateSettingsRequest
	if err := c.BindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	settings, err := s.stores.Settings.Update(c.Request.Context(), req.HeroImage, req.AboutImage)
	if err != nil {
		s.logger.Error("Failed to update settings", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to update settings")
		return
	}

	if s.cache != nil {
		if err := s.cache.InvalidateSettings(c.Request.Context()); err != nil {
			s.logger.Warn("Failed to invalidate settings cache", zap.Error(err))
		}
	}

	s.auditAction("update_settings", settings.ID, nil)

	respondData(c, http.StatusOK, settings)
}
