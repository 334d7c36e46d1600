package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/store"
)

type analysisView struct {
	ID              string   `json:"id"`
	Domain          string   `json:"domain"`
	AcquiredSkills  []string `json:"acquiredSkills"`
	MissingSkills   []string `json:"missingSkills"`
	Recommendations []string `json:"recommendations"`
	Date            string   `json:"date"`
}

func viewAnalysis(a *store.SkillGapAnalysis) analysisView {
	return analysisView{
		ID:              a.ID.String(),
		Domain:          a.Domain,
		AcquiredSkills:  a.AcquiredSkills,
		MissingSkills:   a.MissingSkills,
		Recommendations: a.Recommendations,
		Date:            a.Timestamp.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *Server) handleAnalyze(c *gin.Context) {
	var req struct {
		Domain string   `json:"domain"`
		Skills []string `json:"skills"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apperr.Validation("body", "invalid JSON"))
		return
	}

	a, err := s.skillgap.Analyze(c.Request.Context(), currentUser(c), req.Domain, req.Skills)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewAnalysis(a))
}

func (s *Server) handleAnalysisHistory(c *gin.Context) {
	domain := c.Query("domain")
	if domain == "" {
		s.writeError(c, apperr.Validation("domain", "query parameter is required"))
		return
	}

	points, err := s.skillgap.History(c.Request.Context(), currentUser(c), domain)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": points})
}

func (s *Server) handleLatestAnalysis(c *gin.Context) {
	domain := c.Query("domain")
	if domain == "" {
		s.writeError(c, apperr.Validation("domain", "query parameter is required"))
		return
	}

	a, err := s.skillgap.Latest(c.Request.Context(), currentUser(c), domain)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewAnalysis(a))
}
