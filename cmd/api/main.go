package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nikhilbhutani/aphasiarelay/internal/aiclient"
	"github.com/nikhilbhutani/aphasiarelay/internal/api"
	"github.com/nikhilbhutani/aphasiarelay/internal/config"
	"github.com/nikhilbhutani/aphasiarelay/internal/logging"
	"github.com/nikhilbhutani/aphasiarelay/internal/tempstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(logging.New(cfg.Log, os.Stdout))

	// A missing credential is not fatal: handlers answer with a
	// configuration error until restart.
	client, err := aiclient.New(cfg.OpenAI)
	if err != nil {
		slog.Error("OpenAI client not initialized", "error", err)
	} else {
		slog.Info("OpenAI client initialized",
			"chat_model", cfg.OpenAI.ChatModel,
			"stt_model", cfg.OpenAI.STTModel,
		)
	}

	store := tempstore.New(cfg.Upload.TempDir)

	router := api.NewRouter(cfg, client, store)
	handler := router.Setup()

	// No WriteTimeout: upstream calls are not bounded by the relay.
	srv := &http.Server{
		Addr:        cfg.Addr(),
		Handler:     handler,
		ReadTimeout: 60 * time.Second,
		IdleTimeout: 120 * time.Second,
	}

	go func() {
		slog.Info("starting API server", "addr", cfg.Addr(), "upload_dir", store.Dir())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
	}
	slog.Info("server stopped")
}
