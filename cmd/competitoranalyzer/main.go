package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"competitoranalyzer/internal/api/v1/handler"
	"competitoranalyzer/internal/api/v1/middleware"
	"competitoranalyzer/internal/api/v1/router"
	"competitoranalyzer/internal/cache"
	"competitoranalyzer/internal/config"
	"competitoranalyzer/internal/debug"
	"competitoranalyzer/internal/feedback"
	"competitoranalyzer/internal/fetcher"
	"competitoranalyzer/internal/log"
	"competitoranalyzer/internal/service"
	"competitoranalyzer/internal/util"
)

func init() {
	log.InitLogger(false)
	config.LoadEnv()
	if config.AppConfig.IsDev {
		log.InitLogger(true)
	}
}

func main() {
	defer log.Sync()
	cfg := config.AppConfig

	store, err := feedback.Open(cfg.FeedbackFile)
	if err != nil {
		log.Logger.Fatal("Failed to open feedback store", zap.String("path", cfg.FeedbackFile), zap.Error(err))
	}

	analyzer := service.NewAnalyzer(
		fetcher.New(cfg.FetchTimeout, cfg.MaxPageBytes),
		cache.New(cfg.CacheTTL),
		service.Options{
			CompareConcurrency: cfg.CompareConcurrency,
			MaxCompareURLs:     cfg.MaxCompareURLs,
		},
	)

	trustedProxies, err := util.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		log.Logger.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, trustedProxies)
	defer limiter.Stop()

	server := &http.Server{
		Addr: ":" + cfg.Port,
		Handler: router.New(handler.New(analyzer, store), router.Options{
			BasicAuthUser: cfg.BasicAuthUser,
			BasicAuthPass: cfg.BasicAuthPass,
			Limiter:       limiter,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	metricsServer := &http.Server{
		Addr:              ":" + cfg.MetricsPort,
		Handler:           router.NewMetricsRouter(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Logger.Info("Server started", zap.String("addr", server.Addr), zap.String("base_path", router.BasePath))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// pprof only in dev
	var pprofServer *http.Server
	if cfg.IsDev {
		pprofServer = debug.StartPprof(cfg.PprofHost)
	}

	go func() {
		log.Logger.Info("Metrics server started", zap.String("addr", metricsServer.Addr))
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Logger.Fatal("Metrics server failed", zap.Error(err))
		}
	}()

	<-stop
	log.Logger.Info("Shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.FetchTimeout+5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := metricsServer.Shutdown(ctx); err != nil {
		log.Logger.Error("Metrics server forced to shutdown", zap.Error(err))
	}
	if pprofServer != nil {
		_ = pprofServer.Shutdown(ctx)
	}
	log.Logger.Info("Server exited successfully")
}
