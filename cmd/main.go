package main

import (
	"context"
	"net/http"
	"time"

	"github.com/dnkhanh/hireflow/config"
	"github.com/dnkhanh/hireflow/database"
	_ "github.com/dnkhanh/hireflow/docs" // Swagger docs - auto-generated
	adminctrl "github.com/dnkhanh/hireflow/internal/controller/admin"
	candidatectrl "github.com/dnkhanh/hireflow/internal/controller/candidate"
	"github.com/dnkhanh/hireflow/internal/logger"
	"github.com/dnkhanh/hireflow/internal/model"
	"github.com/dnkhanh/hireflow/internal/repository"
	"github.com/dnkhanh/hireflow/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Adaptive Interview API
// @version 1.0
// @description Structured, adaptive interviews: spine questions per job, AI-scored answers, bounded follow-up probes, and hire-recommendation summaries.
// @contact.name API Support
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,
			repository.NewStore,
		),

		// Interview core
		fx.Provide(
			service.NewQuestionSequencer,
			service.NewFollowupPolicy,
			NewCollaborators, // ScoringOracle + FollowupGenerator + Summarizer
			service.NewInterviewFlowService,
			service.NewProctoringService,
			service.NewAdminJobService,
		),

		// API controllers
		fx.Provide(
			adminctrl.NewAdminJobController,
			candidatectrl.NewInterviewController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(MigrateAndSeed),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

// NewCollaborators wires the three LLM collaborators. Without a Gemini key
// the deterministic rule-based engine takes their place, so the service stays
// functional in development.
func NewCollaborators(cfg *config.Config) (service.ScoringOracle, service.FollowupGenerator, service.Summarizer, error) {
	if cfg.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set, using the rule-based oracle")
		oracle := service.NewRuleBasedOracle()
		return oracle, oracle, oracle, nil
	}
	gemini, err := service.NewGeminiLLMService(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	return gemini, gemini, gemini, nil
}

func NewGinEngine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger UI at /swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages the server
// lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminJobCtrl *adminctrl.AdminJobController,
	interviewCtrl *candidatectrl.InterviewController,
) {
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/jobs", adminJobCtrl.CreateJob)
		adminAPIGroup.GET("/jobs", adminJobCtrl.ListJobs)
		adminAPIGroup.GET("/jobs/:job_id", adminJobCtrl.GetJob)
		adminAPIGroup.GET("/jobs/:job_id/interviews", adminJobCtrl.ListInterviews)
		adminAPIGroup.POST("/interviews", adminJobCtrl.CreateInterview)
		adminAPIGroup.GET("/interviews/:interview_id", adminJobCtrl.GetInterviewDetail)
	}

	candidateAPIGroup := router.Group("/api/v1")
	{
		candidateAPIGroup.POST("/interviews/start/:invite_token", interviewCtrl.StartInterview)
		candidateAPIGroup.POST("/interviews/:interview_id/answer", interviewCtrl.SubmitAnswer)
		candidateAPIGroup.POST("/interviews/:interview_id/complete", interviewCtrl.CompleteInterview)
		candidateAPIGroup.GET("/interviews/:interview_id/summary", interviewCtrl.GetInterviewSummary)
		candidateAPIGroup.POST("/interviews/:interview_id/proctoring/events", interviewCtrl.SubmitProctoringEvents)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Adaptive Interview API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func MigrateAndSeed(db *gorm.DB, cfg *config.Config) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Job{},
		&model.JobQuestion{},
		&model.Interview{},
		&model.Answer{},
		&model.ProctoringEvent{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed")

	if err := database.SeedJobs(db, cfg.SeedFile); err != nil {
		log.Error().Err(err).Str("file", cfg.SeedFile).Msg("Job seeding failed")
		return err
	}
	return nil
}
