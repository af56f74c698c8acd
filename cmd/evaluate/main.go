package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/atharvaaa699/mishika/internal/adapters/database"
	"github.com/atharvaaa699/mishika/internal/application/services"
	"github.com/atharvaaa699/mishika/internal/evaluation"
	"github.com/atharvaaa699/mishika/internal/infrastructure/clients/postgres"
	"github.com/atharvaaa699/mishika/internal/infrastructure/observability"
	"github.com/atharvaaa699/mishika/pkg/config"
	"github.com/rs/zerolog/log"
)

func main() {
	casesPath := flag.String("cases", "config/golden_cases.json", "path to the golden case set")
	k := flag.Int("k", 0, "cut-off rank for Recall/MRR/HitRate (defaults to RECOMMENDATION_TOP_N)")
	minRecall := flag.Float64("min-recall", 0, "fail when average recall@k is below this")
	minMRR := flag.Float64("min-mrr", 0, "fail when average MRR@k is below this")
	minHitRate := flag.Float64("min-hit-rate", 0, "fail when hit rate@k is below this")
	maxLatency := flag.Duration("max-latency", 0, "fail when average latency is above this")
	maxFailed := flag.Float64("max-failed-rate", 0, "fail when the share of erroring cases is above this")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Logs go to stderr so stdout carries only the JSON summary
	observability.InitLoggerWithWriter(os.Stderr, cfg.OTEL.ServiceName+"-evaluate", cfg.Env)

	if *k <= 0 {
		*k = cfg.Recommendation.TopN
	}

	cases, err := evaluation.LoadGoldenCases(*casesPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load golden cases")
	}
	if err := evaluation.ValidateGoldenCases(cases); err != nil {
		log.Fatal().Err(err).Msg("Invalid golden cases")
	}

	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer pgClient.Close()

	recommendationService := services.NewRecommendationService(
		database.NewBookingAdapter(pgClient),
		database.NewServiceAdapter(pgClient),
		database.NewProfileAdapter(pgClient),
		services.NewRecommendationScorer(services.DefaultScoringWeights()),
		services.RecommendationOptions{
			TopN:          max(cfg.Recommendation.TopN, *k),
			PeerLimit:     cfg.Recommendation.PeerLimit,
			ParallelReads: cfg.Recommendation.ParallelReads,
		},
	)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	runner := evaluation.NewRunner(recommendationService, *k)
	summary, err := runner.Run(ctx, cases)
	if err != nil {
		log.Fatal().Err(err).Msg("Evaluation failed")
	}

	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode summary")
	}
	fmt.Println(string(out))

	guardrails := evaluation.NewGuardrails(evaluation.GuardrailConfig{
		MinRecall:     *minRecall,
		MinMRR:        *minMRR,
		MinHitRate:    *minHitRate,
		MaxAvgLatency: *maxLatency,
		MaxFailedRate: *maxFailed,
	})
	if violations := guardrails.Check(summary); len(violations) > 0 {
		for _, v := range violations {
			log.Error().Str("run_id", summary.RunID).Msg(v)
		}
		pgClient.Close()
		os.Exit(1)
	}
}
