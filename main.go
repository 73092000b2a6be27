package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/msomdec/medical-image-vault/internal/config"
	"github.com/msomdec/medical-image-vault/internal/handler"
	"github.com/msomdec/medical-image-vault/internal/service"
	"github.com/msomdec/medical-image-vault/internal/storage"
)

func main() {
	// A .env file is optional; real environment variables win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Error("failed to load .env", "error", err)
		os.Exit(1)
	}

	cfg, err := config.New()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.Log.SlogLevel()
	logOpts := &slog.HandlerOptions{Level: level}
	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	}
	if cfg.Log.File != "" {
		rotator := &lumberjack.Logger{
			Filename:   cfg.Log.File,
			MaxSize:    cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAgeDays,
		}
		defer rotator.Close()
		handlers = append(handlers, slog.NewJSONHandler(rotator, logOpts))
	}
	slog.SetDefault(slog.New(slog.NewMultiHandler(handlers...)))

	root := cfg.Storage.DataDir
	if root == "" {
		root, err = storage.DefaultRoot()
		if err != nil {
			slog.Error("failed to resolve data directory", "error", err)
			os.Exit(1)
		}
	}

	st, err := storage.Open(context.Background(), root)
	if err != nil {
		slog.Error("failed to open storage", "root", root, "error", err)
		os.Exit(1)
	}
	defer st.Close()
	slog.Info("storage ready", "root", st.Paths.Root())

	imageService := service.NewImageService(st.Images(), st.Files, st)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, imageService, st, cfg.HTTP.MaxUploadBytes)

	var h http.Handler = handler.SecurityHeaders(mux)
	h = handler.Observe(h)
	h = middleware.Recoverer(h)
	h = middleware.RealIP(h)
	h = middleware.RequestID(h)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
