package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"campusvoice/backend/internal/api/handler"
	"campusvoice/backend/internal/api/middleware"
	"campusvoice/backend/internal/config"
	"campusvoice/backend/internal/hub"
	"campusvoice/backend/internal/lifecycle"
	"campusvoice/backend/internal/models"
	"campusvoice/backend/internal/notifier"
	"campusvoice/backend/internal/storage"
	"campusvoice/backend/internal/survey"
	"campusvoice/backend/internal/thread"
	"campusvoice/backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupDependencies(cfg *config.Config) (*gorm.DB, *redis.Client) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatalf("failed to connect PostgreSQL: %v", err)
	}

	err = db.AutoMigrate(
		&models.Profile{},
		&models.AdminRole{},
		&models.Complaint{},
		&models.Response{},
		&models.SatisfactionSurvey{},
	)
	if err != nil {
		logger.Fatalf("failed to run migrations: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisEnabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			logger.Warnf("redis unreachable, realtime fan-out limited to this instance: %v", err)
			rdb = nil
			cfg.RedisEnabled = false
		}
	}

	logger.Infof("database connected, migrations complete")
	return db, rdb
}

func main() {
	if err := godotenv.Load(); err != nil {
		logger.Warnf("no .env file loaded: %v", err)
	}

	cfg := config.Load()
	logger.Init(cfg.LogLevel)
	logger.Infof("starting CampusVoice backend")

	db, rdb := setupDependencies(cfg)
	s := storage.NewStorageService(db, rdb)

	// Realtime hub
	hubSvc := hub.NewManagerService(s)
	go hubSvc.Run()

	// Notification pipeline: deliverer behind a queue, drained by the
	// asynq worker when Redis is available.
	mailer := notifier.NewMailer(cfg)
	telegram := notifier.NewTelegramAlerter(cfg)
	deliverer := notifier.NewDeliverer(s, mailer, telegram, cfg.AppOrigin)
	queue := notifier.NewQueue(cfg, deliverer.Deliver)
	defer queue.Close()

	var worker *notifier.Worker
	if _, async := queue.(*notifier.AsyncQueue); async {
		worker = notifier.NewWorker(cfg, deliverer)
		if worker != nil {
			if err := worker.Start(); err != nil {
				logger.Fatalf("failed to start notification worker: %v", err)
			}
			defer worker.Stop()
		}
	}

	dispatcher := notifier.NewService(queue)

	// Domain services
	surveySvc := survey.NewService(s, dispatcher)
	lifecycleSvc := lifecycle.NewService(s, dispatcher, surveySvc)
	threadSvc := thread.NewService(s, dispatcher)

	h := handler.NewHandler(lifecycleSvc, threadSvc, surveySvc, s, hubSvc, cfg)

	r := gin.New()
	r.Use(logger.GinLogger(), logger.GinRecovery())
	registerRoutes(r, h, s, cfg)

	server := &http.Server{
		Addr:           cfg.ServerAddr,
		Handler:        r,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("listening on %s", cfg.ServerAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Infof("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("shutdown error: %v", err)
	}
}

func registerRoutes(r *gin.Engine, h *handler.Handler, s storage.Storage, cfg *config.Config) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authed := middleware.AuthRequired(cfg.JWTSecret)
	admin := middleware.AdminRequired(s)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/signup", h.Signup)
		auth.POST("/signin", h.Signin)
		auth.POST("/password-reset", h.PasswordResetRequest)
		auth.GET("/me", authed, h.Me)

		// Public survey page: the token is the credential.
		api.GET("/survey", h.GetSurvey)
		api.POST("/survey", h.SubmitSurvey)

		api.POST("/complaints", authed, h.CreateComplaint)
		api.GET("/complaints", authed, h.ListComplaints)
		api.GET("/complaints/export", authed, admin, h.ExportComplaints)
		api.GET("/complaints/:id", authed, h.GetComplaint)
		api.PATCH("/complaints/:id", authed, h.UpdateComplaint)
		api.POST("/complaints/:id/responses", authed, h.PostResponse)
		api.GET("/complaints/:id/responses", authed, h.ListResponses)

		api.GET("/profile", authed, h.GetProfile)
		api.PATCH("/profile", authed, h.UpdateProfile)

		api.GET("/surveys", authed, admin, h.ListSurveys)
		api.GET("/surveys/export", authed, admin, h.ExportSurveys)
	}

	r.GET("/ws", authed, h.ServeWebSocket)
}
