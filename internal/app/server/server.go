package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adminrec/internal/domain/attendance"
	"adminrec/internal/domain/auth"
	"adminrec/internal/domain/directory"
	"adminrec/internal/domain/payroll"
	"adminrec/internal/domain/reports"
	"adminrec/internal/domain/requests"
	"adminrec/internal/platform/config"
	"adminrec/internal/platform/db"
	"adminrec/internal/platform/metrics"
	"adminrec/internal/transport/http/api"
	attendancehandler "adminrec/internal/transport/http/handlers/attendance"
	authhandler "adminrec/internal/transport/http/handlers/auth"
	directoryhandler "adminrec/internal/transport/http/handlers/directory"
	reportshandler "adminrec/internal/transport/http/handlers/reports"
	requestshandler "adminrec/internal/transport/http/handlers/requests"
	salarieshandler "adminrec/internal/transport/http/handlers/salaries"
	"adminrec/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	DB      *pgxpool.Pool
	Router  http.Handler
	Metrics *metrics.Collector
}

// New wires stores, services and routes onto one handler. It does not touch
// the network, so tests can drive the router directly.
func New(cfg config.Config, pool *pgxpool.Pool) *App {
	collector := metrics.New()

	directoryStore := directory.NewStore(pool)
	attendanceStore := attendance.NewStore(pool)
	attendanceService := attendance.NewService(attendanceStore, directoryStore, time.Local)
	requestsService := requests.NewService(requests.NewStore(pool), directoryStore)
	payrollService := payroll.NewService(payroll.NewStore(pool), directoryStore, attendanceStore)
	reportsService := reports.NewService(directoryStore, attendanceStore)
	authService := auth.NewService(auth.NewStore(pool), cfg.JWTSecret, cfg.TokenTTL)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	if cfg.MetricsEnabled {
		router.Use(middleware.Metrics(collector))
	}
	router.Use(middleware.Auth(cfg.JWTSecret))
	// after Auth so the limiter and the guard key on the DNI, not the IP
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.NewInflightGuard().Middleware)

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

	router.Route("/api", func(r chi.Router) {
		authhandler.NewHandler(authService).RegisterRoutes(r)
		directoryhandler.NewHandler(directoryStore).RegisterRoutes(r)
		attendancehandler.NewHandler(attendanceService).RegisterRoutes(r)
		requestshandler.NewHandler(requestsService).RegisterRoutes(r)
		salarieshandler.NewHandler(directoryStore, attendanceStore, payrollService).RegisterRoutes(r)
		reportshandler.NewHandler(reportsService).RegisterRoutes(r)

		r.With(middleware.RequirePermission(auth.PermGenerateReports)).
			Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
				api.WriteJSON(w, http.StatusOK, collector.Snapshot())
			})
	})

	return &App{Config: cfg, DB: pool, Router: router, Metrics: collector}
}

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			slog.Error("migrations failed", "err", err)
			os.Exit(1)
		}
	}

	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			slog.Error("seed failed", "err", err)
			os.Exit(1)
		}
	}

	app := New(cfg, pool)
	slog.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, app.Router); err != nil {
		slog.Error("server failed", "err", err)
		os.Exit(1)
	}
}
