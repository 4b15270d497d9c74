package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/portfolio-studio/backend/internal/api"
	"github.com/portfolio-studio/backend/internal/api/handlers"
	"github.com/portfolio-studio/backend/internal/auth"
	"github.com/portfolio-studio/backend/internal/mailer"
	"github.com/portfolio-studio/backend/internal/repository"
	"github.com/portfolio-studio/backend/internal/services"
	"github.com/portfolio-studio/backend/internal/storage"
	"github.com/portfolio-studio/backend/pkg/config"
	"github.com/portfolio-studio/backend/pkg/database"
	"github.com/portfolio-studio/backend/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("starting portfolio backend",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}
	log.Info("database ready")

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	experienceRepo := repository.NewExperienceRepository(db)
	educationRepo := repository.NewEducationRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	socialRepo := repository.NewSocialLinkRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	resumeRepo := repository.NewResumeRepository(db)

	issuer := auth.NewIssuer(
		[]byte(cfg.JWTAccessSecret),
		[]byte(cfg.JWTRefreshSecret),
		cfg.AccessTokenTTL,
		cfg.RefreshTokenTTL,
	)

	var mail mailer.Mailer
	if cfg.MailConfigured() {
		mail = mailer.NewSMTP(cfg)
	} else {
		log.Warn("smtp not configured, outbound mail disabled")
		mail = mailer.NewNop(log)
	}

	var uploadHandler *handlers.UploadHandler
	if cfg.S3Configured() {
		store, err := storage.NewS3Uploader(ctx, cfg)
		if err != nil {
			log.Fatal("object storage init failed", zap.Error(err))
		}
		uploadHandler = handlers.NewUploadHandler(store)
	} else {
		log.Warn("object storage not configured, media uploads disabled")
		uploadHandler = handlers.NewUploadHandler(storage.Disabled{})
	}

	resumeSvc := services.NewResumeService(resumeRepo, cfg.ResumeDir, log)

	router := api.NewRouter(api.Dependencies{
		Issuer:            issuer,
		AllowedOrigins:    cfg.AllowedOrigins,
		AuthHandler:       handlers.NewAuthHandler(userRepo, issuer, cfg.RefreshTokenTTL, cfg.AppEnv == "production"),
		ProfileHandler:    handlers.NewProfileHandler(profileRepo),
		SkillHandler:      handlers.NewSkillHandler(skillRepo),
		ExperienceHandler: handlers.NewExperienceHandler(experienceRepo),
		EducationHandler:  handlers.NewEducationHandler(educationRepo),
		ProjectHandler:    handlers.NewProjectHandler(projectRepo),
		SocialHandler:     handlers.NewSocialHandler(socialRepo),
		MessageHandler:    handlers.NewMessageHandler(messageRepo, userRepo, mail, cfg.ContactEmail, log),
		ResumeHandler:     handlers.NewResumeHandler(resumeSvc),
		UploadHandler:     uploadHandler,
		AdminHandler:      handlers.NewAdminHandler(projectRepo, messageRepo, resumeRepo),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
