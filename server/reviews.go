package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/codewithdark-git/khanana/pkg/models"
	"github.com/codewithdark-git/khanana/pkg/repository"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func (s *Server) listReviews(c *gin.Context) {
	reviews, err := s.stores.Reviews.List(c.Request.Context())
	if err != nil {
		s.logger.Error("Failed to list reviews", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch reviews")
		return
	}
	respondData(c, http.StatusOK, reviews)
}

type createReviewRequest struct {
	Name     string `json:"name"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	Photo    string `json:"photo"`
	Location string `json:"location"`
}

// createReview takes a storefront visitor submission. Visitor reviews
// always start unverified; only an admin can mark them trustworthy.
func (s *Server) createReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.BindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Name) == "" || req.Rating < 1 || req.Rating > 5 {
		respondError(c, http.StatusBadRequest, "Name and a rating between 1 and 5 are required")
		return
	}

	review := &models.Review{
		Name:     req.Name,
		Rating:   req.Rating,
		Text:     req.Text,
		Photo:    req.Photo,
		Location: req.Location,
		Date:     time.Now(),
		Verified: false,
	}
	if err := s.stores.Reviews.Create(c.Request.Context(), review); err != nil {
		s.logger.Error("Failed to create review", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to submit review")
		return
	}

	respondMessage(c, http.StatusOK, review, "Review submitted successfully")
}

type updateReviewRequest struct {
	Verified bool `json:"verified"`
}

func (s *Server) updateReview(c *gin.Context) {
	var req updateReviewRequest
	if err := c.BindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	review, err := s.stores.Reviews.SetVerified(c.Request.Context(), c.Param("id"), req.Verified)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Review not found")
			return
		}
		s.logger.Error("Failed to update review", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to update review")
		return
	}

	s.auditAction("update_review", review.ID, map[string]interface{}{"verified": req.Verified})

	respondMessage(c, http.StatusOK, review, "Review updated successfully")
}

func (s *Server) deleteReview(c *gin.Context) {
	id := c.Param("id")
	if err := s.stores.Reviews.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Review not found")
			return
		}
		s.logger.Error("Failed to delete review", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete review")
		return
	}

	s.auditAction("delete_review", id, nil)

	c.JSON(http.StatusOK, gin.H{"success": true, "id": id, "message": "Review deleted successfully"})
}
