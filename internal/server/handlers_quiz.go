package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/store"
)

func (s *Server) handleGenerateQuiz(c *gin.Context) {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apperr.Validation("body", "invalid JSON"))
		return
	}

	pub, err := s.quizzes.Generate(c.Request.Context(), req.Title, req.Description)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pub)
}

type stepRefReq struct {
	Stage int `json:"stage"`
	Step  int `json:"step"`
}

func (s *Server) handleSubmitQuiz(c *gin.Context) {
	var req struct {
		QuizID  string     `json:"quizId"`
		Domain  string     `json:"domain"`
		Target  stepRefReq `json:"target"`
		Answers []string   `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apperr.Validation("body", "invalid JSON"))
		return
	}
	quizID, err := uuid.Parse(req.QuizID)
	if err != nil {
		s.writeError(c, apperr.Validation("quizId", "must be a valid id"))
		return
	}

	res, err := s.quizzes.Submit(c.Request.Context(), currentUser(c), quizID, req.Domain,
		store.StepRef{Stage: req.Target.Stage, Step: req.Target.Step}, req.Answers)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"score":   res.Score,
		"passed":  res.Passed,
		"detail":  res.Detail,
		"roadmap": viewRoadmap(res.Roadmap),
	})
}

func (s *Server) handleQuizEligibility(c *gin.Context) {
	var req struct {
		Domain string     `json:"domain"`
		Target stepRefReq `json:"target"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apperr.Validation("body", "invalid JSON"))
		return
	}

	el, err := s.quizzes.CheckEligibility(c.Request.Context(), currentUser(c), req.Domain,
		store.StepRef{Stage: req.Target.Stage, Step: req.Target.Step})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, el)
}
