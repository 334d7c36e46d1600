// Package server exposes the engine over HTTP. Handlers stay thin:
// bind, call the service, map the error. All domain rules live in the
// services.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/abhisek/pathwise/internal/achievements"
	"github.com/abhisek/pathwise/internal/auth"
	"github.com/abhisek/pathwise/internal/feedback"
	"github.com/abhisek/pathwise/internal/logger"
	"github.com/abhisek/pathwise/internal/practice"
	"github.com/abhisek/pathwise/internal/quiz"
	"github.com/abhisek/pathwise/internal/roadmap"
	"github.com/abhisek/pathwise/internal/skillgap"
)

// Config wires the services into the router.
type Config struct {
	Auth         *auth.Service
	Tokens       *auth.TokenIssuer
	Roadmaps     *roadmap.Service
	Quizzes      *quiz.Service
	SkillGap     *skillgap.Service
	Practice     *practice.Service
	Achievements *achievements.Service
	Feedback     *feedback.Service
	CORSOrigins  []string
	Log          *logger.Logger
}

// Server holds the handlers' dependencies.
type Server struct {
	auth         *auth.Service
	tokens       *auth.TokenIssuer
	roadmaps     *roadmap.Service
	quizzes      *quiz.Service
	skillgap     *skillgap.Service
	practice     *practice.Service
	achievements *achievements.Service
	feedback     *feedback.Service
	log          *logger.Logger
}

// NewRouter builds the HTTP router. Register and login are public,
// everything else under /api requires a bearer token.
func NewRouter(cfg Config) *gin.Engine {
	s := &Server{
		auth:         cfg.Auth,
		tokens:       cfg.Tokens,
		roadmaps:     cfg.Roadmaps,
		quizzes:      cfg.Quizzes,
		skillgap:     cfg.SkillGap,
		practice:     cfg.Practice,
		achievements: cfg.Achievements,
		feedback:     cfg.Feedback,
		log:          cfg.Log,
	}

	router := gin.New()
	router.Use(gin.Recovery())

	if len(cfg.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Authorization", "Content-Type"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api")
	api.POST("/register", s.handleRegister)
	api.POST("/login", s.handleLogin)

	protected := api.Group("/")
	protected.Use(s.requireAuth())

	protected.GET("/roadmap", s.handleGetRoadmap)
	protected.POST("/roadmap/generate", s.handleGenerateRoadmap)
	protected.GET("/roadmap/last-domain", s.handleLastDomain)

	protected.POST("/quiz/generate", s.handleGenerateQuiz)
	protected.POST("/quiz/submit", s.handleSubmitQuiz)
	protected.POST("/quiz/eligibility", s.handleQuizEligibility)

	protected.POST("/skill-gap/analyze", s.handleAnalyze)
	protected.GET("/skill-gap/history", s.handleAnalysisHistory)
	protected.GET("/skill-gap/latest", s.handleLatestAnalysis)

	protected.POST("/practice/question", s.handlePracticeQuestion)
	protected.POST("/practice/submit", s.handlePracticeSubmit)
	protected.GET("/practice/history", s.handlePracticeHistory)

	protected.GET("/achievements/summary", s.handleAchievementsSummary)
	protected.GET("/achievements/detail", s.handleAchievementsDetail)
	protected.GET("/whats-next", s.handleWhatsNext)

	protected.POST("/feedback", s.handleFeedback)

	return router
}
