package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/Royal-dudy99/SwiftBooks18/config"
	"github.com/Royal-dudy99/SwiftBooks18/db"
	authdomain "github.com/Royal-dudy99/SwiftBooks18/internal/auth/domain"
	authhandler "github.com/Royal-dudy99/SwiftBooks18/internal/auth/handler"
	authmemory "github.com/Royal-dudy99/SwiftBooks18/internal/auth/repository/memory"
	authpg "github.com/Royal-dudy99/SwiftBooks18/internal/auth/repository/postgres"
	authservice "github.com/Royal-dudy99/SwiftBooks18/internal/auth/service"
	ledgerdomain "github.com/Royal-dudy99/SwiftBooks18/internal/ledger/domain"
	ledgerhandler "github.com/Royal-dudy99/SwiftBooks18/internal/ledger/handler"
	ledgermemory "github.com/Royal-dudy99/SwiftBooks18/internal/ledger/repository/memory"
	ledgerpg "github.com/Royal-dudy99/SwiftBooks18/internal/ledger/repository/postgres"
	ledgerservice "github.com/Royal-dudy99/SwiftBooks18/internal/ledger/service"
	applog "github.com/Royal-dudy99/SwiftBooks18/internal/log"
	"github.com/Royal-dudy99/SwiftBooks18/internal/mailer"
	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.Load()

	level := slog.LevelInfo
	if cfg.Env == "development" {
		level = slog.LevelDebug
	}
	logger := applog.New(applog.Config{Level: level})

	var (
		userRepo        authdomain.UserRepository
		resetStore      authdomain.ResetTokenStore
		transactionRepo ledgerdomain.TransactionRepository
	)

	if cfg.DBURL != "" {
		pool, err := db.NewPostgresPool(context.Background(), cfg.DBURL)
		if err != nil {
			logger.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		userRepo = authpg.NewUserRepository(pool)
		resetStore = authpg.NewResetTokenStore(pool)
		transactionRepo = ledgerpg.NewTransactionRepository(pool)
		logger.Info("using postgres backend")
	} else {
		userRepo = authmemory.NewUserRepository()
		resetStore = authmemory.NewResetTokenStore()
		transactionRepo = ledgermemory.NewTransactionRepository()
		logger.Info("using in-memory backend")
	}

	var mail authdomain.Mailer
	if cfg.SMTPAddr != "" {
		mail = mailer.NewSMTPMailer(cfg.SMTPAddr, cfg.SMTPFrom)
	} else {
		mail = mailer.NewLogMailer(logger)
	}

	tokenService := authservice.NewTokenService(cfg.TokenSecret, cfg.TokenExpiryMin)
	userService := authservice.NewUserService(userRepo, resetStore, mail, transactionRepo, tokenService, cfg, logger)
	ledgerService := ledgerservice.NewLedgerService(transactionRepo)
	analyticsService := ledgerservice.NewAnalyticsService(transactionRepo)

	authHandler := authhandler.NewAuthHandler(userService)
	transactionHandler := ledgerhandler.NewTransactionHandler(ledgerService, analyticsService)
	authRequired := authhandler.AuthRequired(tokenService)

	app := fiber.New()
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	authhandler.RegisterRoutes(app, authHandler, authRequired)
	ledgerhandler.RegisterRoutes(app, transactionHandler, authRequired)

	logger.Info("listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
