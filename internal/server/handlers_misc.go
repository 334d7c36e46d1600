package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/pathwise/internal/apperr"
)

func (s *Server) handleAchievementsSummary(c *gin.Context) {
	sum, err := s.achievements.BuildSummary(c.Request.Context(), currentUser(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

func (s *Server) handleAchievementsDetail(c *gin.Context) {
	det, err := s.achievements.BuildDetail(c.Request.Context(), currentUser(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, det)
}

func (s *Server) handleWhatsNext(c *gin.Context) {
	sug, err := s.achievements.WhatsNext(c.Request.Context(), currentUser(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sug)
}

func (s *Server) handleFeedback(c *gin.Context) {
	var req struct {
		Kind    string `json:"kind"`
		ItemID  string `json:"itemId"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apperr.Validation("body", "invalid JSON"))
		return
	}

	ev, err := s.feedback.Record(c.Request.Context(), currentUser(c), req.Kind, req.ItemID, req.Rating, req.Comment)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": ev.ID.String()})
}
