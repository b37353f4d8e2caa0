package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vtc-booking/internal/config"
	router "vtc-booking/internal/http"
	"vtc-booking/internal/http/handlers"
	"vtc-booking/internal/repositories"
	"vtc-booking/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()

	db, err := config.OpenDB(cfg)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()

	if err := config.InitSchema(db); err != nil {
		logger.Fatal("schema initialization failed", zap.Error(err))
	}

	bookingSvc := services.BookingService{
		Repo:     repositories.BookingRepo{DB: db},
		Notifier: services.NewMailer(cfg),
		Log:      logger,
	}
	authSvc := services.AuthService{
		Repo:   repositories.AdminRepo{DB: db},
		Secret: []byte(cfg.JWTSecret),
	}
	docsSvc := services.DocsService{Bookings: bookingSvc}

	handler := handlers.NewHandler(bookingSvc, authSvc, docsSvc, logger)
	r := router.NewRouter(cfg, handler, authSvc, db, logger)

	srv := &http.Server{
		Addr:              cfg.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", cfg.AppAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown failed", zap.Error(err))
	}

	logger.Info("server stopped")
}

func newLogger(cfg config.Config) *zap.Logger {
	var zcfg zap.Config
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	logger, err := zcfg.Build()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	return logger
}
