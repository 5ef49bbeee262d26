package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"woz/internal/animator"
	"woz/internal/catalog"
	"woz/internal/commons"
	"woz/internal/config"
	"woz/internal/infrastructure/logger"
	"woz/internal/infrastructure/random"
	"woz/internal/live"
	"woz/internal/product"
	"woz/internal/scheduler"
	"woz/internal/server"
	"woz/internal/session"
)

func main() {
	configFile := flag.String("config", "", "optional config file; environment variables override it")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.Encoding)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	vocab, err := commons.LoadVocabulary(cfg.Catalog.VocabularyFile)
	if err != nil {
		zapLogger.Fatal("loading vocabulary", zap.Error(err))
	}

	rng := random.New(cfg.Catalog.Seed)
	products, err := catalog.Generate(cfg.Catalog.Size, vocab, rng)
	if err != nil {
		zapLogger.Fatal("generating catalog", zap.Error(err))
	}
	store := catalog.NewStore(products)
	zapLogger.Info("catalog generated",
		zap.Int("products", store.Len()),
		zap.Int("providers", len(store.Providers())),
	)

	productCtrl := product.NewModule(store, zapLogger)
	sessionCtrl, sessions, err := session.NewModule(store, rng, cfg, zapLogger)
	if err != nil {
		zapLogger.Fatal("creating session module", zap.Error(err))
	}

	hub := live.NewHub(zapLogger)
	anim := animator.New(store, rng, animator.MultiDisplay{sessions, hub}, animatorConfig(cfg.Animator), zapLogger)
	liveCtrl := live.NewController(hub, anim, store, zapLogger)

	janitor := scheduler.NewGroup(zapLogger)
	janitor.Every("session-sweep", cfg.Session.SweepInterval, func(context.Context) {
		sessions.Sweep(cfg.Session.IdleTimeout)
	})

	router := server.NewRouter(productCtrl, sessionCtrl, liveCtrl, zapLogger)
	srv := server.New(cfg.Server.Port, router, zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	anim.Start(ctx)
	janitor.Start(ctx)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zapLogger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("server shutdown failed", zap.Error(err))
	}
	anim.Stop()
	janitor.Stop()
	hub.Close()
	sessions.CloseAll()

	zapLogger.Info("server stopped gracefully")
}

func animatorConfig(c config.AnimatorConfig) animator.Config {
	return animator.Config{
		ProductInterval:   c.ProductInterval,
		AggregateInterval: c.AggregateInterval,
		RegionInterval:    c.RegionInterval,
		MaxProductStep:    c.MaxProductStep,
		FlipProbability:   c.FlipProbability,
		AggregateMaxStep:  c.AggregateMaxStep,
		AggregateStart:    c.AggregateStart,
		RegionMaxStep:     c.RegionMaxStep,
	}
}
