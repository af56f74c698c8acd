package evaluation

import (
	"fmt"
	"time"
)

// GuardrailConfig sets the minimum quality a run must reach. Zero values
// disable the corresponding check.
type GuardrailConfig struct {
	MinRecall     float64
	MinMRR        float64
	MinHitRate    float64
	MaxAvgLatency time.Duration
	MaxFailedRate float64
}

type Guardrails struct {
	config GuardrailConfig
}

func NewGuardrails(config GuardrailConfig) *Guardrails {
	return &Guardrails{config: config}
}

// Check returns one message per breached threshold.
func (g *Guardrails) Check(s *EvalSummary) []string {
	var violations []string

	if g.config.MinRecall > 0 && s.AvgRecall < g.config.MinRecall {
		violations = append(violations, fmt.Sprintf("recall@%d %.3f below %.3f", s.K, s.AvgRecall, g.config.MinRecall))
	}
	if g.config.MinMRR > 0 && s.AvgMRR < g.config.MinMRR {
		violations = append(violations, fmt.Sprintf("mrr@%d %.3f below %.3f", s.K, s.AvgMRR, g.config.MinMRR))
	}
	if g.config.MinHitRate > 0 && s.HitRate < g.config.MinHitRate {
		violations = append(violations, fmt.Sprintf("hit rate@%d %.3f below %.3f", s.K, s.HitRate, g.config.MinHitRate))
	}
	if g.config.MaxAvgLatency > 0 && s.AvgLatency > g.config.MaxAvgLatency {
		violations = append(violations, fmt.Sprintf("average latency %s above %s", s.AvgLatency, g.config.MaxAvgLatency))
	}
	if g.config.MaxFailedRate > 0 && s.TotalCases > 0 {
		if rate := float64(s.FailedCases) / float64(s.TotalCases); rate > g.config.MaxFailedRate {
			violations = append(violations, fmt.Sprintf("failed case rate %.3f above %.3f", rate, g.config.MaxFailedRate))
		}
	}

	return violations
}
