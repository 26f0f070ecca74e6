package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"invoicepilot/internal/config"
	"invoicepilot/internal/infrastructure/logger"
	"invoicepilot/internal/infrastructure/mysql"
	"invoicepilot/internal/infrastructure/smtp"
	"invoicepilot/internal/invoice"
	"invoicepilot/internal/notification"
	"invoicepilot/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.App.Name)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(context.Background(), cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	var transport notification.Transport
	if cfg.Mail.Enabled() {
		transport = smtp.NewTransport(cfg.Mail)
		zapLogger.Info("smtp delivery enabled", zap.String("host", cfg.Mail.Host), zap.Int("port", cfg.Mail.Port))
	} else {
		transport = notification.NewLogTransport(zapLogger)
		zapLogger.Warn("SMTP_HOST not set; emails will be logged instead of sent")
	}

	invoiceCtrl := invoice.NewModule(db, cfg, transport, zapLogger)

	router := server.NewRouter(invoiceCtrl, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
