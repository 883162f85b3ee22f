package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/chessrank/internal/api"
	"github.com/vytor/chessrank/internal/config"
	"github.com/vytor/chessrank/internal/db"
	"github.com/vytor/chessrank/internal/logger"
	"github.com/vytor/chessrank/internal/repository/sqlite"
	"github.com/vytor/chessrank/internal/services"
)

func main() {
	cfg := config.Load()

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("ChessRank Server Starting")
	log.Info("===========================================")
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("max_upload_bytes=%d", cfg.MaxUploadBytes)
	log.Debug("template_dir=%s", cfg.TemplateDir)
	log.Debug("static_dir=%s", cfg.StaticDir)

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open session database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing session database")
		database.Close()
	}()

	log.Debug("loading templates")
	tmpl, err := api.LoadTemplates(cfg.TemplateDir)
	if err != nil {
		log.Error("failed to load templates: %v", err)
		os.Exit(1)
	}
	log.Debug("templates loaded successfully")

	sessionRepo := sqlite.NewSessionRepository(database.DB)
	datasetRepo := sqlite.NewDatasetRepository(database.DB)

	srv := &api.Server{
		SessionService:     services.NewSessionService(sessionRepo, datasetRepo),
		ImportService:      services.NewImportService(sessionRepo, datasetRepo),
		LeaderboardService: services.NewLeaderboardService(sessionRepo, datasetRepo),
		Templates:          tmpl,
		MaxUploadBytes:     cfg.MaxUploadBytes,
		StaticDir:          cfg.StaticDir,
	}

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("ChessRank Server Stopped")
	log.Info("===========================================")
}
