package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	authhandler "museum/internal/auth/handler"
	authmetrics "museum/internal/auth/metrics"
	authservice "museum/internal/auth/service"
	userstore "museum/internal/auth/store/user"
	cataloghandler "museum/internal/catalog/handler"
	catalogservice "museum/internal/catalog/service"
	catalogstore "museum/internal/catalog/store"
	jwttoken "museum/internal/jwt_token"
	"museum/internal/payment/gateway"
	paymenthandler "museum/internal/payment/handler"
	paymentmetrics "museum/internal/payment/metrics"
	"museum/internal/payment/reconcile"
	paymentservice "museum/internal/payment/service"
	paymentstore "museum/internal/payment/store"
	"museum/internal/platform/config"
	"museum/internal/platform/events"
	"museum/internal/platform/httpserver"
	"museum/internal/platform/logger"
	"museum/internal/platform/mailer"
	"museum/internal/platform/metrics"
	"museum/internal/platform/postgres"
	"museum/internal/platform/redis"
	ratelimitmetrics "museum/internal/ratelimit/metrics"
	ratelimitmw "museum/internal/ratelimit/middleware"
	ratelimitservice "museum/internal/ratelimit/service"
	ratelimitstore "museum/internal/ratelimit/store"
	traininghandler "museum/internal/training/handler"
	trainingmetrics "museum/internal/training/metrics"
	trainingservice "museum/internal/training/service"
	trainingstore "museum/internal/training/store"
	httptransport "museum/internal/transport/http"
	auditpublisher "museum/pkg/platform/audit/publisher"
	auditstore "museum/pkg/platform/audit/store/postgres"
	authmw "museum/pkg/platform/middleware/auth"
	"museum/pkg/platform/middleware/metadata"
)

const (
	tokenIssuer     = "isinri-museum"
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 15 * time.Second
	auditBufferSize = 1024
)

// main wires the stores, services and handlers, then runs the HTTP server
// and the payment reconciler until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	startCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	db, err := postgres.Open(startCtx, cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.Migrate(startCtx, db); err != nil {
		return err
	}

	rdb, err := redis.New(startCtx, cfg.Redis)
	if err != nil {
		return err
	}
	if rdb != nil {
		defer rdb.Close()
	}

	publisher, err := events.New(startCtx, cfg.Kafka, events.WithLogger(log))
	if err != nil {
		return err
	}
	defer publisher.Close()

	transport, err := mailer.NewTransport(cfg.Mail, log)
	if err != nil {
		return err
	}
	mail, err := mailer.New(transport, mailer.WithLogger(log), mailer.WithOTPTTL(cfg.Auth.OTPTTL))
	if err != nil {
		return err
	}

	auditor := auditpublisher.NewPublisher(auditstore.New(db),
		auditpublisher.WithAsyncBuffer(auditBufferSize),
		auditpublisher.WithLogger(log),
	)
	defer auditor.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	jwt := jwttoken.NewJWTService(cfg.Auth.JWTSecret, tokenIssuer)
	sessions := jwttoken.NewSessionValidator(jwt)
	cookie := authmw.Cookie{Domain: cfg.Auth.CookieDomain, Production: cfg.Server.Production(), MaxAge: cfg.Auth.TokenTTL}

	auth, err := authservice.New(userstore.NewPostgres(db), mail, jwt,
		authservice.WithLogger(log),
		authservice.WithAuditor(auditor),
		authservice.WithMetrics(authmetrics.New(reg)),
		authservice.WithSessionTTL(cfg.Auth.TokenTTL),
		authservice.WithOTPTTL(cfg.Auth.OTPTTL),
	)
	if err != nil {
		return err
	}

	catalog, err := catalogservice.New(catalogstore.NewPostgres(db), catalogservice.WithLogger(log))
	if err != nil {
		return err
	}

	training, err := trainingservice.New(trainingstore.NewPostgres(db), mail,
		trainingservice.WithLogger(log),
		trainingservice.WithMetrics(trainingmetrics.New(reg)),
	)
	if err != nil {
		return err
	}

	payStore := paymentstore.NewPostgres(db)
	paystack := gateway.New(cfg.Paystack.SecretKey,
		gateway.WithBaseURL(cfg.Paystack.BaseURL),
		gateway.WithHTTPClient(&http.Client{Timeout: cfg.Paystack.Timeout}),
	)
	payments, err := paymentservice.New(payStore, paystack, cfg.Paystack.SecretKey,
		paymentservice.WithLogger(log),
		paymentservice.WithMetrics(paymentmetrics.New(reg)),
		paymentservice.WithPublisher(publisher),
		paymentservice.WithAuditor(auditor),
		paymentservice.WithCallbackURLs(cfg.Paystack.DonationCallbackURL, cfg.Paystack.PaymentCallbackURL()),
	)
	if err != nil {
		return err
	}
	reconciler, err := reconcile.New(payStore, paystack, payments, cfg.Reconcile, reconcile.WithLogger(log))
	if err != nil {
		return err
	}

	limiterStore, memStore := rateLimitStore(rdb)
	limiter, err := ratelimitservice.New(limiterStore, cfg.RateLimit,
		ratelimitservice.WithLogger(log),
		ratelimitservice.WithMetrics(ratelimitmetrics.New(reg)),
	)
	if err != nil {
		return err
	}
	gate := ratelimitmw.New(limiter, log, ratelimitmw.WithDisabled(cfg.RateLimit.Disabled))

	clientIP, err := metadata.NewResolver(cfg.Server.TrustedProxies)
	if err != nil {
		return err
	}

	router := httptransport.NewRouter(httptransport.Deps{
		Logger:         log,
		Metrics:        metrics.New(reg),
		Gatherer:       reg,
		RateLimit:      gate.Gate,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		ClientIP:       clientIP,
		Production:     cfg.Server.Production(),
		Checks:         healthChecks(db, rdb),
		Modules: []httptransport.Module{
			authhandler.New(auth, sessions, cookie, log),
			cataloghandler.New(catalog, log),
			paymenthandler.New(payments, log),
			traininghandler.New(training, log),
		},
	})
	srv := httpserver.New(cfg.Server, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting museum api", "addr", cfg.Server.Addr, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return reconciler.Run(gctx)
	})
	if memStore != nil {
		g.Go(func() error {
			sweepRateLimits(gctx, memStore, cfg.RateLimit.Window)
			return nil
		})
	}
	return g.Wait()
}

// rateLimitStore shares counters through Redis when it is configured. The
// in-memory store is returned separately so main can sweep it.
func rateLimitStore(rdb *redis.Client) (ratelimitservice.Store, *ratelimitstore.MemoryStore) {
	if rdb != nil {
		return ratelimitstore.NewRedisStore(rdb.Client), nil
	}
	mem := ratelimitstore.NewMemoryStore()
	return mem, mem
}

func sweepRateLimits(ctx context.Context, mem *ratelimitstore.MemoryStore, window time.Duration) {
	if window <= 0 {
		return
	}
	ticker := time.NewTicker(window)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			mem.Sweep(now, window)
		}
	}
}

func healthChecks(db *sql.DB, rdb *redis.Client) map[string]httptransport.HealthCheck {
	checks := map[string]httptransport.HealthCheck{"postgres": db.PingContext}
	if rdb != nil {
		checks["redis"] = rdb.Health
	}
	return checks
}
