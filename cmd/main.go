package main

import (
	"context"
	"log"
	"time"

	"github.com/DusanVelimirovic/corelayer-identity/config"
	"github.com/DusanVelimirovic/corelayer-identity/db"
	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/domain"
	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/handler"
	repo "github.com/DusanVelimirovic/corelayer-identity/internal/auth/repository/postgres"
	"github.com/DusanVelimirovic/corelayer-identity/internal/auth/service"
	"github.com/DusanVelimirovic/corelayer-identity/internal/email"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
	})

	userRepo := repo.NewUserRepository(pool)
	auditRepo := repo.NewAuditRepository(pool)
	tokenRepo := repo.NewTwoFactorTokenRepository(pool)
	deviceRepo := repo.NewTrustedDeviceRepository(pool)
	resetRepo := repo.NewPasswordResetRepository(pool)
	permRepo := repo.NewPermissionRepository(pool)

	var sender domain.EmailSender
	if cfg.EmailProvider == "sendgrid" {
		sender = email.NewSendGridSender(cfg.SendGridAPIKey, cfg.SenderEmail, cfg.SenderName)
	} else {
		sender = email.NewConsoleSender()
	}

	sessions := service.NewSessionService(cfg.SessionSecret, cfg.SessionTTLMin, cfg.PersistentSessionTTLMin, rdb)
	verifier := service.NewCredentialVerifier(userRepo, cfg.LockoutMaxFailures,
		time.Duration(cfg.LockoutMin)*time.Minute)
	authService := service.NewAuthService(verifier, userRepo, auditRepo, tokenRepo,
		deviceRepo, permRepo, sender, sessions, cfg)
	resetService := service.NewPasswordResetService(userRepo, resetRepo, auditRepo, sender,
		time.Duration(cfg.ResetTokenTTLMin)*time.Minute)
	cleanupService := service.NewTwoFactorCleanupService(tokenRepo)

	go cleanupService.Run(ctx, time.Duration(cfg.CleanupIntervalMin)*time.Minute)

	authHandler := handler.NewAuthHandler(authService, resetService, cleanupService, sessions)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
