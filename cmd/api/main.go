package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/zhouzirui/medmind/backend/internal/config"
	"github.com/zhouzirui/medmind/backend/internal/handler"
	"github.com/zhouzirui/medmind/backend/internal/model/persona"
	"github.com/zhouzirui/medmind/backend/internal/service/ai"
	"github.com/zhouzirui/medmind/backend/internal/service/chat"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	medmind, err := persona.MedMind()
	if err != nil {
		log.Fatalf("failed to load persona: %v", err)
	}

	// Initialize generation provider
	var generator ai.Generator
	if cfg.AI.HasCredential() {
		generator, err = ai.NewGenerator(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize %s generator: %v", cfg.AI.Provider, err)
			log.Println("chat replies will fall back until the provider is reachable")
		} else {
			log.Printf("[ai] %s generator initialized, model=%s", cfg.AI.Provider, cfg.AI.Model)
		}
	} else {
		log.Printf("warning: %s is not set; chat will ask the operator to configure it", cfg.AI.CredentialEnv)
	}
	if cfg.AI.Timeout == 0 {
		log.Println("[ai] no generation timeout configured")
	}

	chatService := chat.NewService(ai.NewPromptBuilder(medmind), generator, cfg.AI)
	router := handler.NewRouter(cfg, chatService)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("[server] MedMind backend listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
