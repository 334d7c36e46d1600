package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/abhisek/pathwise/internal/achievements"
	"github.com/abhisek/pathwise/internal/auth"
	"github.com/abhisek/pathwise/internal/config"
	"github.com/abhisek/pathwise/internal/feedback"
	"github.com/abhisek/pathwise/internal/generator"
	"github.com/abhisek/pathwise/internal/llm"
	"github.com/abhisek/pathwise/internal/logger"
	"github.com/abhisek/pathwise/internal/practice"
	"github.com/abhisek/pathwise/internal/quiz"
	"github.com/abhisek/pathwise/internal/roadmap"
	"github.com/abhisek/pathwise/internal/server"
	"github.com/abhisek/pathwise/internal/skillgap"
	"github.com/abhisek/pathwise/internal/store"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

// runServe opens the store, builds the service graph, and serves HTTP
// until interrupted.
func runServe(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// --db flag wins, then PATHWISE_DB, then the per-user default path.
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if dbPath == "" {
		if dbPath, err = store.DefaultDBPath(); err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
	} else if err := store.EnsureDir(dbPath); err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	// PATHWISE_* settings win; otherwise probe the vendors' own key
	// variables.
	llmCfg := llm.ConfigFromEnv()
	if err := llmCfg.Validate(); err != nil {
		discovered, ok := llm.DiscoverConfig()
		if !ok {
			return errors.New("no LLM provider configured, set PATHWISE_LLM_PROVIDER or an API key")
		}
		llmCfg = discovered
	}
	provider, err := llm.NewProvider(ctx, llmCfg, st.EventRepo())
	if err != nil {
		return fmt.Errorf("init LLM provider: %w", err)
	}

	gen := generator.New(provider, generator.DefaultConfig())
	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	roadmaps := roadmap.NewService(st.RoadmapRepo(), st.UserRepo(), gen, log)

	router := server.NewRouter(server.Config{
		Auth:         auth.NewService(st.UserRepo(), tokens, log),
		Tokens:       tokens,
		Roadmaps:     roadmaps,
		Quizzes:      quiz.NewService(st.QuizRepo(), roadmaps, gen, gen, log),
		SkillGap:     skillgap.NewService(st.AnalysisRepo(), st.UserRepo(), gen, log),
		Practice:     practice.NewService(st.PracticeRepo(), gen, log),
		Achievements: achievements.NewService(st.RoadmapRepo(), st.AnalysisRepo(), st.QuizRepo(), st.PracticeRepo(), st.UserRepo(), log),
		Feedback:     feedback.NewService(st.FeedbackRepo(), log),
		CORSOrigins:  cfg.CORSOrigins,
		Log:          log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Addr, "db", dbPath, "model", provider.ModelID())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
