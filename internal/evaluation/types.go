package evaluation

import (
	"time"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
)

// Difficulty labels how hard a golden case is to satisfy.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"   // member with a long, focused history
	DifficultyMedium Difficulty = "medium" // mixed history or few peers
	DifficultyHard   Difficulty = "hard"   // cold start or unusual taste
)

// IsValid checks if the difficulty value is one of the defined constants.
func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// GoldenCase is a member together with the services a concierge judged
// they should be offered.
type GoldenCase struct {
	ID                 string                  `json:"id"`
	UserID             string                  `json:"user_id"`
	Segment            entities.MembershipTier `json:"segment"`
	ExpectedServiceIDs []string                `json:"expected_service_ids"`
	Difficulty         Difficulty              `json:"difficulty"`
}

// EvalResult holds the evaluation outcome for a single case.
type EvalResult struct {
	CaseID       string                  `json:"case_id"`
	UserID       string                  `json:"user_id"`
	Segment      entities.MembershipTier `json:"segment"`
	Recall       float64                 `json:"recall"`
	MRR          float64                 `json:"mrr"`
	Hit          bool                    `json:"hit"`
	RetrievedIDs []string                `json:"retrieved_ids"`
	Latency      time.Duration           `json:"latency_ns"`
	Error        string                  `json:"error,omitempty"`
}

// EvalSummary holds aggregate metrics across all golden cases. Averages
// cover the cases that produced recommendations.
type EvalSummary struct {
	RunID       string                                       `json:"run_id"`
	K           int                                          `json:"k"`
	TotalCases  int                                          `json:"total_cases"`
	FailedCases int                                          `json:"failed_cases"`
	AvgRecall   float64                                      `json:"avg_recall_at_k"`
	AvgMRR      float64                                      `json:"avg_mrr_at_k"`
	HitRate     float64                                      `json:"hit_rate_at_k"`
	AvgLatency  time.Duration                                `json:"avg_latency_ns"`
	BySegment   map[entities.MembershipTier]*SegmentSummary `json:"by_segment"`
	Results     []EvalResult                                 `json:"results,omitempty"`
}

// SegmentSummary holds metrics grouped by membership tier.
type SegmentSummary struct {
	Count     int     `json:"count"`
	AvgRecall float64 `json:"avg_recall_at_k"`
	AvgMRR    float64 `json:"avg_mrr_at_k"`
	HitRate   float64 `json:"hit_rate_at_k"`
}
