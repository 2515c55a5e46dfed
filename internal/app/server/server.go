package server

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"staffpay/internal/db"
	"staffpay/internal/domain/payroll"
	"staffpay/internal/domain/roster"
	"staffpay/internal/domain/settings"
	"staffpay/internal/platform/config"
	"staffpay/internal/platform/metrics"
	payrollhandler "staffpay/internal/transport/http/handlers/payroll"
	reportshandler "staffpay/internal/transport/http/handlers/reports"
	rosterhandler "staffpay/internal/transport/http/handlers/roster"
	settingshandler "staffpay/internal/transport/http/handlers/settings"
	"staffpay/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	rosterStore := roster.NewStore(pool)
	payrollStore := payroll.NewStore(pool)
	settingsStore := settings.NewStore(pool)
	payrollService := payroll.NewService(payrollStore, rosterStore)

	if cfg.MetricsEnabled {
		metrics.Init()
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders)
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics)
	}

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Handle("/metrics", promhttp.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		rosterhandler.NewHandler(rosterStore).RegisterRoutes(r)
		payrollhandler.NewHandler(payrollStore, payrollService).RegisterRoutes(r)
		reportshandler.NewHandler(payrollService, rosterStore, settingsStore).RegisterRoutes(r)
		settingshandler.NewHandler(settingsStore).RegisterRoutes(r)
	})

	log.Printf("staffpay server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
