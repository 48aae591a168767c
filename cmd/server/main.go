package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/borsibaar/barpos/internal/config"
	"github.com/borsibaar/barpos/internal/database"
	"github.com/borsibaar/barpos/internal/handlers"
	"github.com/borsibaar/barpos/internal/repository"
	"github.com/borsibaar/barpos/internal/services"
	"github.com/borsibaar/barpos/internal/telemetry"
	"github.com/borsibaar/barpos/internal/worker"
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	telemetry.SetupLogger(cfg.Logging.Format, cfg.Logging.Level)
	gin.SetMode(cfg.Server.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	// Run migrations and seed roles
	if err := database.MigrateDatabase(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Setup session store with Redis
	store, err := redisStore.NewStore(
		cfg.Redis.PoolSize,
		"tcp",
		cfg.Redis.GetAddress(),
		"",
		cfg.Redis.Password,
		[]byte(cfg.Session.Secret),
	)
	if err != nil {
		slog.Error("failed to create redis session store", "error", err)
		os.Exit(1)
	}
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.Session.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})

	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("failed to get database handle", "error", err)
		os.Exit(1)
	}

	// Sessions use the redistore pool. This client only backs the readiness probe.
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddress(),
		Password: cfg.Redis.Password,
		PoolSize: 1,
	})
	defer rdb.Close()

	repos := repository.NewRepositories(db)
	router := handlers.NewRouter(repos, store, cfg.Session.Name,
		handlers.ReadinessCheck{Name: "database", Ping: sqlDB.PingContext},
		handlers.ReadinessCheck{Name: "redis", Ping: func(ctx context.Context) error {
			return rdb.Ping(ctx).Err()
		}},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	decayJob := worker.NewPriceDecayJob(services.NewPricingService(repos), cfg.Pricing.DecayInterval)
	go decayJob.Start(ctx)

	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")
	decayJob.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	sqlDB.Close()
	slog.Info("server exited")
}
