package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"eventportal/config"
	_ "eventportal/docs"
	"eventportal/internal/adapters/auth"
	"eventportal/internal/adapters/email"
	delivery "eventportal/internal/delivery/http"
	"eventportal/internal/delivery/http/controllers"
	"eventportal/internal/delivery/http/middleware"
	"eventportal/internal/repository/postgres"
	"eventportal/internal/services"
)

const bcryptCost = 10

// @title Event Portal API
// @version 1.0
// @description Role-based event management portal with public guest registration.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.PingContext(ctx); err != nil {
		cancel()
		logger.Error("ping database", "err", err)
		os.Exit(1)
	}
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		cancel()
		logger.Error("ensure schema", "err", err)
		os.Exit(1)
	}
	cancel()

	accountRepo := postgres.NewAccountRepository(db)
	roleRepo := postgres.NewRoleRepository(db)
	eventRepo := postgres.NewEventRepository(db)
	guestRepo := postgres.NewGuestRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)

	hasher := auth.NewBcryptHasher(bcryptCost)
	tokenCodec := auth.NewJWTCodec(cfg.JWTSecret)

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.SESRegion,
			AccessKeyID:     cfg.Email.SESAccessKeyID,
			SecretAccessKey: cfg.Email.SESSecretAccessKey,
		},
	})
	if err != nil {
		logger.Error("create mailer", "err", err)
		os.Exit(1)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	seeder := services.NewSeeder(accountRepo, roleRepo, hasher, cfg.AdminEmail, cfg.AdminName, cfg.AdminPassword)
	if err := seeder.Seed(seedCtx); err != nil {
		seedCancel()
		logger.Error("seed roles and admin account", "err", err)
		os.Exit(1)
	}
	seedCancel()

	authService := services.NewAuthService(accountRepo, roleRepo, sessionRepo, hasher, tokenCodec, emailService, cfg.SessionExpiry, cfg.RememberExpiry)
	eventService := services.NewEventService(eventRepo, guestRepo)
	guestService := services.NewGuestService(eventRepo, guestRepo, emailService)
	adminService := services.NewAdminService(accountRepo, roleRepo, eventRepo, guestRepo, hasher, emailService)

	authController := controllers.NewAuthController(logger, authService)
	eventController := controllers.NewEventController(logger, eventService)
	adminController := controllers.NewAdminController(logger, adminService)
	guestController := controllers.NewGuestController(logger, guestService)

	mux := delivery.NewRouter(logger, tokenCodec, sessionRepo, authController, eventController, adminController, guestController)

	var handler http.Handler = mux
	handler = middleware.LoggingMiddleware(logger, handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = middleware.RequestID(handler)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "environment", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
}
