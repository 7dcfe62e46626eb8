package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"networth/configs"
	"networth/internal/database"
	delivery "networth/internal/delivery/http"
	"networth/internal/domain"
	"networth/internal/infra"
	"networth/internal/middleware"
	"networth/internal/repository"
	"networth/internal/usecase"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := configs.Load()

	// Initialize context
	ctx := context.Background()

	// Initialize database
	db, err := infra.NewDatabase(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewAuthTokenRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	bankAccountRepo := repository.NewBankAccountRepository(db)
	etfRepo := repository.NewEtfRepository(db)
	etfTransactionRepo := repository.NewEtfTransactionRepository(db)
	superannuationRepo := repository.NewSuperannuationRepository(db)

	// Initialize user service
	userService := usecase.NewUserService(userRepo, tokenRepo, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	// Ensure the bootstrap superuser when configured
	ensureSuperuser(ctx, userService, cfg)

	// Start the expired-token sweeper
	sweeper := infra.NewTokenSweeper(tokenRepo)
	if err := sweeper.Start(); err != nil {
		log.Fatalf("Failed to start token sweeper: %v", err)
	}
	defer sweeper.Stop()

	// Initialize HTTP server
	e := echo.New()
	e.HideBanner = true

	auth := middleware.NewAuthenticator(cfg.Auth.JWTSecret, userRepo, tokenRepo)

	delivery.SetupRoutes(e, &delivery.RouterConfig{
		Auth:                  auth,
		AuthHandler:           delivery.NewAuthHandler(userService),
		AccountHandler:        delivery.NewAccountHandler(accountRepo),
		BankAccountHandler:    delivery.NewBankAccountHandler(bankAccountRepo),
		EtfHandler:            delivery.NewEtfHandler(etfRepo, etfTransactionRepo),
		EtfTransactionHandler: delivery.NewEtfTransactionHandler(etfRepo, etfTransactionRepo),
		SuperannuationHandler: delivery.NewSuperannuationHandler(superannuationRepo),
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Networth API starting on %s", addr)
	log.Printf("Environment: %s", cfg.Server.Env)

	// Run server in goroutine
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}

// ensureSuperuser creates the configured admin user if it does not exist yet
func ensureSuperuser(ctx context.Context, users *usecase.UserService, cfg *configs.Config) {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		return
	}

	user, err := users.CreateSuperuser(ctx, cfg.Admin.Email, cfg.Admin.Password, usecase.FlagOverrides{})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrDuplicate) {
			log.Printf("Superuser %s already exists", cfg.Admin.Email)
			return
		}
		log.Printf("WARNING: Failed to create superuser: %v", err)
		return
	}

	log.Printf("Created superuser %s", user.Email)
}
