package main

import (
	"context"
	"encoding/base64"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/iamdanusabu/laundryapp/internal/config"
	"github.com/iamdanusabu/laundryapp/internal/db"
	"github.com/iamdanusabu/laundryapp/internal/handler"
	"github.com/iamdanusabu/laundryapp/internal/repository"
	"github.com/iamdanusabu/laundryapp/internal/server"
	"github.com/iamdanusabu/laundryapp/internal/service"
	"google.golang.org/api/option"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.MigrateOnStart {
		if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
			logger.Error("failed to run migrations", "err", err)
			os.Exit(1)
		}
	}

	pg, err := db.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to connect database", "err", err)
		os.Exit(1)
	}
	defer pg.Close()

	// Firebase Auth (optional)
	var firebaseAuth *auth.Client
	if cfg.FirebaseProjectID != "" {
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, firebaseOptions(cfg)...)
		if err != nil {
			logger.Error("failed to init firebase app", "err", err)
			os.Exit(1)
		}
		client, err := app.Auth(ctx)
		if err != nil {
			logger.Error("failed to init firebase auth", "err", err)
			os.Exit(1)
		}
		firebaseAuth = client
	}

	// repositories
	userRepo := repository.UserRepository{DB: pg}
	storeRepo := repository.StoreRepository{DB: pg}
	customerRepo := repository.CustomerRepository{DB: pg}
	statusRepo := repository.StatusRepository{DB: pg}
	txRepo := repository.TransactionRepository{DB: pg}

	if err := statusRepo.SeedDefaults(ctx); err != nil {
		logger.Error("failed to seed statuses", "err", err)
		os.Exit(1)
	}

	// services
	authSvc := service.AuthService{Config: cfg, Users: userRepo, Stores: storeRepo, Logger: logger, FirebaseAuth: firebaseAuth}

	// handlers
	healthHandler := handler.HealthHandler{DB: pg}
	authHandler := handler.AuthHandler{Service: &authSvc}
	publicHandler := handler.PublicStatusHandler{Repo: txRepo}
	statusHandler := handler.StatusHandler{Repo: statusRepo}
	customerHandler := handler.CustomerHandler{Repo: customerRepo}
	transactionHandler := handler.TransactionHandler{Repo: txRepo, Statuses: statusRepo, Policy: service.AnyTransition(), Location: time.Local}
	dashboardHandler := handler.DashboardHandler{Repo: txRepo, Location: time.Local}

	router := server.NewRouter(cfg, logger, healthHandler, authHandler, publicHandler, statusHandler, customerHandler, transactionHandler, dashboardHandler)

	if err := server.Start(ctx, cfg, router, logger); err != nil {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

func firebaseOptions(cfg config.Config) []option.ClientOption {
	if cfg.FirebaseCredFile == "" {
		return nil
	}

	cred := cfg.FirebaseCredFile
	// Allow inline JSON or base64-encoded JSON in env to avoid writing a file.
	if strings.HasPrefix(strings.TrimSpace(cred), "{") {
		return []option.ClientOption{option.WithCredentialsJSON([]byte(cred))}
	}
	if decoded, err := base64.StdEncoding.DecodeString(cred); err == nil && strings.HasPrefix(strings.TrimSpace(string(decoded)), "{") {
		return []option.ClientOption{option.WithCredentialsJSON(decoded)}
	}

	return []option.ClientOption{option.WithCredentialsFile(cred)}
}
