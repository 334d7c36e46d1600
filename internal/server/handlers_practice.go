package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/pathwise/internal/apperr"
)

func (s *Server) handlePracticeQuestion(c *gin.Context) {
	var req struct {
		Skill      string `json:"skill"`
		Difficulty string `json:"difficulty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apperr.Validation("body", "invalid JSON"))
		return
	}

	q, err := s.practice.Question(c.Request.Context(), req.Skill, req.Difficulty)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":           q.ID.String(),
		"title":        q.Title,
		"description":  q.Description,
		"examples":     q.Examples,
		"constraints":  q.Constraints,
		"defaultStdin": q.DefaultStdin,
	})
}

func (s *Server) handlePracticeSubmit(c *gin.Context) {
	var req struct {
		Skill      string `json:"skill"`
		Difficulty string `json:"difficulty"`
		Language   string `json:"language"`
		Code       string `json:"code"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apperr.Validation("body", "invalid JSON"))
		return
	}

	attempt, err := s.practice.SubmitByTopic(c.Request.Context(), currentUser(c),
		req.Skill, req.Difficulty, req.Language, req.Code)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":              attempt.ID.String(),
		"overallStatus":   attempt.OverallStatus,
		"summaryFeedback": attempt.SummaryFeedback,
		"scores":          attempt.Scores,
	})
}

func (s *Server) handlePracticeHistory(c *gin.Context) {
	attempts, err := s.practice.History(c.Request.Context(), currentUser(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}
