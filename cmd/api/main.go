package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dmagallanes2/coldcallingassistant/internal/audio"
	"github.com/dmagallanes2/coldcallingassistant/internal/config"
	"github.com/dmagallanes2/coldcallingassistant/internal/export"
	"github.com/dmagallanes2/coldcallingassistant/internal/httpapi"
	"github.com/dmagallanes2/coldcallingassistant/internal/session"
	"github.com/dmagallanes2/coldcallingassistant/pkg/logger"
)

func main() {
	// Root context that cancels on shutdown
	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional .env for local runs; real env always wins.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.App.Env)
	slog.SetDefault(log)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	loc, err := cfg.Location()
	if err != nil {
		log.Error("timezone load failed", "tz", cfg.App.Timezone, "err", err)
		os.Exit(1)
	}

	store, err := audio.OpenDiskStore(cfg.Audio.Dir)
	if err != nil {
		log.Error("audio store init failed", "dir", cfg.Audio.Dir, "err", err)
		os.Exit(1)
	}

	sessions := session.NewManager(loc, audio.Ordering(cfg.Audio.Sort), cfg.Session.TTL)
	go sessions.Sweep(rootCtx, 10*time.Minute, log)

	h := httpapi.Handlers{
		Sessions: sessions,
		Exporter: export.New(export.ColumnSet(cfg.Export.CSVColumns)),
		Store:    store,
		Loc:      loc,
	}

	// Gin router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.Middleware(log))

	registerRoutes(r, h)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", srv.Addr, "env", cfg.App.Env, "tz", cfg.App.Timezone)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "err", err)
			stop()
		}
	}()

	<-rootCtx.Done()
	log.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "err", err)
	}
}
