package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"rrhh/internal/domain/asistencia"
	"rrhh/internal/domain/auth"
	"rrhh/internal/domain/empleados"
	"rrhh/internal/domain/finiquito"
	"rrhh/internal/domain/licencias"
	"rrhh/internal/domain/vacaciones"
	"rrhh/internal/platform/config"
	"rrhh/internal/platform/db"
	"rrhh/internal/platform/indicadores"
	"rrhh/internal/platform/jobs"
	"rrhh/internal/platform/metrics"
	"rrhh/internal/transport/http/api"
	asistenciahandler "rrhh/internal/transport/http/handlers/asistencia"
	authhandler "rrhh/internal/transport/http/handlers/auth"
	empleadoshandler "rrhh/internal/transport/http/handlers/empleados"
	finiquitohandler "rrhh/internal/transport/http/handlers/finiquito"
	licenciashandler "rrhh/internal/transport/http/handlers/licencias"
	payrollhandler "rrhh/internal/transport/http/handlers/payroll"
	vacacioneshandler "rrhh/internal/transport/http/handlers/vacaciones"
	"rrhh/internal/transport/http/middleware"
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
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	indicators := indicadores.New(cfg.IndicadoresURL, cfg.FallbackUFValue, cfg.FallbackUTMValue)
	indicators.Start(ctx, cfg.IndicadoresRefresh)

	balanceStore := vacaciones.NewStore(pool)
	jobService := jobs.New(pool, balanceStore)
	jobService.Start(ctx, cfg.AccrualInterval)

	authStore := auth.NewStore(pool)
	collector := metrics.New()

	finiquitoService := finiquito.NewService(
		finiquito.NewStore(pool),
		indicators,
		finiquito.Defaults{
			BaseSalary:  cfg.DefaultBaseSalary,
			Mobility:    cfg.DefaultMobility,
			MinimumWage: cfg.MinimumWage,
		},
		cfg.DocumentDir,
		cfg.VacationDebounce,
	)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.JWTSecret))
	router.Use(middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute))
	router.Use(middleware.SensitiveMutationRateLimit(cfg.RateLimitPerMinute, time.Minute))

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
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, collector.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(authStore, cfg.JWTSecret)
		r.Post("/auth/login", authHandler.HandleLogin)
		r.Post("/auth/logout", authHandler.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)

			r.Get("/auth/me", authHandler.HandleMe)

			authhandler.NewAdminHandler(authStore).RegisterRoutes(r)
			empleadoshandler.NewHandler(empleados.NewStore(pool), authStore).RegisterRoutes(r)
			finiquitohandler.NewHandler(finiquitoService, authStore, collector).RegisterRoutes(r)
			vacacioneshandler.NewHandler(balanceStore, authStore).RegisterRoutes(r)
			licenciashandler.NewHandler(licencias.NewStore(pool), authStore).RegisterRoutes(r)
			asistenciahandler.NewHandler(asistencia.NewStore(pool), authStore).RegisterRoutes(r)
			payrollhandler.NewHandler(indicators, authStore).RegisterRoutes(r)
		})
	})

	router.Mount("/", spaHandler{staticPath: cfg.FrontendDir, indexPath: "index.html"})

	slog.Info("rrhh server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}

type spaHandler struct {
	staticPath string
	indexPath  string
}

func (h spaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.staticPath, r.URL.Path)
	_, err := os.Stat(path)
	if err == nil {
		http.FileServer(http.Dir(h.staticPath)).ServeHTTP(w, r)
		return
	}

	if os.IsNotExist(err) {
		http.ServeFile(w, r, filepath.Join(h.staticPath, h.indexPath))
		return
	}

	http.NotFound(w, r)
}
