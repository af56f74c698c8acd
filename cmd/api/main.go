package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/atharvaaa699/mishika/internal/adapters/cache"
	"github.com/atharvaaa699/mishika/internal/adapters/database"
	"github.com/atharvaaa699/mishika/internal/api/handlers"
	"github.com/atharvaaa699/mishika/internal/api/middleware"
	"github.com/atharvaaa699/mishika/internal/api/routes"
	"github.com/atharvaaa699/mishika/internal/application/services"
	"github.com/atharvaaa699/mishika/internal/domain/providers"
	"github.com/atharvaaa699/mishika/internal/infrastructure/clients/postgres"
	"github.com/atharvaaa699/mishika/internal/infrastructure/clients/redis"
	"github.com/atharvaaa699/mishika/internal/infrastructure/observability"
	"github.com/atharvaaa699/mishika/pkg/config"
	"github.com/rs/zerolog/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Env)

	log.Info().
		Str("service", cfg.OTEL.ServiceName).
		Str("version", cfg.OTEL.ServiceVersion).
		Str("env", cfg.Env).
		Msg("Starting concierge API")

	// Cancelled on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(ctx, cfg.OTEL.ServiceName, cfg.OTEL.ServiceVersion, cfg.OTEL.Endpoint)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to set up OpenTelemetry")
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(shutdownCtx); err != nil {
					log.Error().Err(err).Msg("Error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized successfully")
		}
	}

	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to initialize metrics")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	log.Info().Msg("PostgreSQL client initialized successfully")

	// Redis only backs the rate limiter; without it each instance counts alone
	var rateLimitStore providers.RateLimitStore
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("Redis unavailable, rate limiting per instance")
		rateLimitStore = cache.NewMemoryRateLimitStore()
	} else {
		defer redisClient.Close()
		rateLimitStore = cache.NewRedisRateLimitStore(redisClient)
		log.Info().Msg("Redis client initialized successfully")
	}

	// Adapters
	bookingAdapter := database.NewBookingAdapter(pgClient)
	serviceAdapter := database.NewServiceAdapter(pgClient)
	profileAdapter := database.NewProfileAdapter(pgClient)

	// Services
	recommendationService := services.NewRecommendationService(
		bookingAdapter,
		serviceAdapter,
		profileAdapter,
		services.NewRecommendationScorer(services.DefaultScoringWeights()),
		services.RecommendationOptions{
			TopN:          cfg.Recommendation.TopN,
			PeerLimit:     cfg.Recommendation.PeerLimit,
			ParallelReads: cfg.Recommendation.ParallelReads,
		},
	)
	recommendationService.SetMetrics(metrics)

	trendingService := services.NewTrendingService(
		bookingAdapter,
		cfg.Recommendation.TrendingLimit,
		cfg.Recommendation.TrendingWindow(),
	)

	conciergeService := services.NewConciergeService(bookingAdapter, serviceAdapter, profileAdapter)

	trustedProxies, err := middleware.ParseTrustedProxies(cfg.RateLimit.TrustedProxies)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid TRUSTED_PROXIES")
	}

	// Handlers
	catalogHandler := handlers.NewCatalogHandler(recommendationService, trendingService)
	memberHandler := handlers.NewMemberHandler(recommendationService)
	conciergeHandler := handlers.NewConciergeHandler(conciergeService)

	router := routes.NewRouter(
		catalogHandler,
		memberHandler,
		conciergeHandler,
		middleware.RateLimitMiddleware(rateLimitStore, "members", cfg.RateLimit.RequestsPerMinute, time.Minute, trustedProxies),
		cfg.CORS.AllowedOrigins,
		metrics,
	)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router.SetupRoutes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("address", serverAddr).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during server shutdown")
	}

	log.Info().Msg("Server stopped")
}
