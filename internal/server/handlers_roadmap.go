package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/pathwise/internal/apperr"
	"github.com/abhisek/pathwise/internal/roadmap"
	"github.com/abhisek/pathwise/internal/store"
)

type stepView struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	ResourceType   string     `json:"resourceType"`
	StudyLink      string     `json:"studyLink,omitempty"`
	GlobalPosition int        `json:"globalPosition"`
	Unlocked       bool       `json:"unlocked"`
	Completed      bool       `json:"completed"`
	TestScore      *int       `json:"testScore,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

type stageView struct {
	Title string     `json:"title"`
	Steps []stepView `json:"steps"`
}

type roadmapView struct {
	ID             string      `json:"id"`
	Domain         string      `json:"domain"`
	Version        int         `json:"version"`
	CompletedSteps int         `json:"completedSteps"`
	TotalSteps     int         `json:"totalSteps"`
	Stages         []stageView `json:"stages"`
}

func viewRoadmap(rm *store.Roadmap) roadmapView {
	completed, total := roadmap.Progress(rm.Stages)
	v := roadmapView{
		ID:             rm.ID.String(),
		Domain:         rm.Domain,
		Version:        rm.Version,
		CompletedSteps: completed,
		TotalSteps:     total,
	}
	pos := 0
	for _, stage := range rm.Stages {
		sv := stageView{Title: stage.Title}
		for _, step := range stage.Steps {
			sv.Steps = append(sv.Steps, stepView{
				Title:          step.Title,
				Description:    step.Description,
				ResourceType:   step.ResourceType,
				StudyLink:      step.StudyLink,
				GlobalPosition: pos,
				Unlocked:       step.Unlocked,
				Completed:      step.Completed,
				TestScore:      step.TestScore,
				CompletedAt:    step.CompletedAt,
			})
			pos++
		}
		v.Stages = append(v.Stages, sv)
	}
	return v
}

func (s *Server) handleGetRoadmap(c *gin.Context) {
	domain := c.Query("domain")
	if domain == "" {
		s.writeError(c, apperr.Validation("domain", "query parameter is required"))
		return
	}

	rm, err := s.roadmaps.Get(c.Request.Context(), currentUser(c), domain)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewRoadmap(rm))
}

func (s *Server) handleGenerateRoadmap(c *gin.Context) {
	var req struct {
		Domain string `json:"domain"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.writeError(c, apperr.Validation("body", "invalid JSON"))
		return
	}

	rm, err := s.roadmaps.GenerateOrRefresh(c.Request.Context(), currentUser(c), req.Domain)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, viewRoadmap(rm))
}

func (s *Server) handleLastDomain(c *gin.Context) {
	domain, err := s.roadmaps.LastDomain(c.Request.Context(), currentUser(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"domain": domain})
}
