package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/bryanwahyu/textlens/internal/application"
	appanalyses "github.com/bryanwahyu/textlens/internal/application/analyses"
	"github.com/bryanwahyu/textlens/internal/config"
	infraai "github.com/bryanwahyu/textlens/internal/infra/ai"
	"github.com/bryanwahyu/textlens/internal/infra/httpserver"
	"github.com/bryanwahyu/textlens/internal/infra/store"
)

func main() {
	// .env is optional; deployments usually set the environment directly
	_ = godotenv.Load()

	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	// init AI provider client
	analyzer, err := infraai.NewAnalyzer(cfg)
	if err != nil {
		log.Fatalf("ai init error: %v", err)
	}

	// init store (process-lifetime, rebuilt empty on restart)
	repo := store.NewMemory()

	// init service
	svc := &appanalyses.Service{
		Repo:     repo,
		Analyzer: analyzer,
		Clock:    application.SystemClock{},
	}

	// init router
	mux := chi.NewRouter()
	mux.Mount("/", httpserver.NewRouter(svc, cfg.Server.CORSOrigins))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
