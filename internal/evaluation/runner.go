package evaluation

import (
	"context"
	"time"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
	"github.com/atharvaaa699/mishika/internal/infrastructure/observability"
	"github.com/google/uuid"
)

// RecommendationProvider produces ranked recommendations for a member.
type RecommendationProvider interface {
	GenerateRecommendations(ctx context.Context, userID string) ([]entities.ScoredService, error)
}

// Runner runs evaluation across a set of golden cases.
type Runner struct {
	provider RecommendationProvider
	k        int
}

func NewRunner(provider RecommendationProvider, k int) *Runner {
	return &Runner{provider: provider, k: k}
}

// Run evaluates every case. A case whose recommendations fail is recorded
// with its error and left out of the averages.
func (r *Runner) Run(ctx context.Context, cases []GoldenCase) (*EvalSummary, error) {
	summary := &EvalSummary{
		RunID:      uuid.NewString(),
		K:          r.k,
		TotalCases: len(cases),
		BySegment:  make(map[entities.MembershipTier]*SegmentSummary),
		Results:    make([]EvalResult, 0, len(cases)),
	}

	logger := observability.LoggerFromContext(ctx)

	for _, gc := range cases {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		start := time.Now()
		scored, err := r.provider.GenerateRecommendations(ctx, gc.UserID)
		duration := time.Since(start)

		result := EvalResult{
			CaseID:  gc.ID,
			UserID:  gc.UserID,
			Segment: gc.Segment,
			Latency: duration,
		}

		if err != nil {
			logger.Warn().Err(err).Str("case_id", gc.ID).Msg("Recommendation failed for golden case")
			result.Error = err.Error()
			summary.FailedCases++
			summary.Results = append(summary.Results, result)
			continue
		}

		result.RetrievedIDs = make([]string, 0, len(scored))
		for _, s := range scored {
			if s.Service != nil {
				result.RetrievedIDs = append(result.RetrievedIDs, s.Service.ID)
			}
		}

		result.Recall = RecallAtK(gc.ExpectedServiceIDs, result.RetrievedIDs, r.k)
		result.MRR = MRRAtK(gc.ExpectedServiceIDs, result.RetrievedIDs, r.k)
		result.Hit = HitAtK(gc.ExpectedServiceIDs, result.RetrievedIDs, r.k)

		summary.Results = append(summary.Results, result)
		r.updateSummary(summary, result)
	}

	r.finalizeSummary(summary)
	return summary, nil
}

func (r *Runner) updateSummary(s *EvalSummary, res EvalResult) {
	s.AvgRecall += res.Recall
	s.AvgMRR += res.MRR
	s.AvgLatency += res.Latency
	if res.Hit {
		s.HitRate++
	}

	if _, ok := s.BySegment[res.Segment]; !ok {
		s.BySegment[res.Segment] = &SegmentSummary{}
	}
	seg := s.BySegment[res.Segment]
	seg.Count++
	seg.AvgRecall += res.Recall
	seg.AvgMRR += res.MRR
	if res.Hit {
		seg.HitRate++
	}
}

func (r *Runner) finalizeSummary(s *EvalSummary) {
	if scored := s.TotalCases - s.FailedCases; scored > 0 {
		n := float64(scored)
		s.AvgRecall /= n
		s.AvgMRR /= n
		s.HitRate /= n
		s.AvgLatency /= time.Duration(scored)
	}

	for _, seg := range s.BySegment {
		if seg.Count > 0 {
			n := float64(seg.Count)
			seg.AvgRecall /= n
			seg.AvgMRR /= n
			seg.HitRate /= n
		}
	}
}
