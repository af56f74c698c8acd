package entities

// ScoreBreakdown holds each weighted term that contributed to a score
type ScoreBreakdown struct {
	BookedPenalty   float64 `json:"booked_penalty"`
	Category        float64 `json:"category"`
	Price           float64 `json:"price"`
	Peer            float64 `json:"peer"`
	FeaturedBonus   float64 `json:"featured_bonus"`
	MembershipBonus float64 `json:"membership_bonus"`
}

// Total sums the weighted terms
func (b ScoreBreakdown) Total() float64 {
	return b.BookedPenalty + b.Category + b.Price + b.Peer + b.FeaturedBonus + b.MembershipBonus
}

// ScoredService pairs a catalog service with its recommendation score.
// Scores are an uncapped weighted sum and may fall outside [0,1].
type ScoredService struct {
	Service   *Service       `json:"service"`
	Score     float64        `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
}

// PeerAffinity is another member who booked services in common with the
// requesting member, with the number of overlapping booking rows.
type PeerAffinity struct {
	UserID       string `json:"user_id"`
	OverlapCount int    `json:"overlap_count"`
}
