package services

import (
	"math"
	"sort"

	"github.com/atharvaaa699/mishika/internal/domain/entities"
)

// neutralAffinity is used when there is no signal to compare against
const neutralAffinity = 0.5

// ScoringWeights sets how much each signal contributes to a service's score
type ScoringWeights struct {
	BookedPenalty   float64
	Category        float64
	Price           float64
	Peer            float64
	FeaturedBonus   float64
	MembershipBonus float64
}

// DefaultScoringWeights returns the production weights
func DefaultScoringWeights() ScoringWeights {
	return ScoringWeights{
		BookedPenalty:   -0.5,
		Category:        0.3,
		Price:           0.2,
		Peer:            0.3,
		FeaturedBonus:   0.1,
		MembershipBonus: 0.1,
	}
}

// RecommendationSignals are the per-member inputs the scorer combines
type RecommendationSignals struct {
	History      []*entities.Booking
	Profile      *entities.Profile
	PeerCount    int
	PeerServices []*entities.Service
}

// RecommendationScorer ranks catalog services for one member
type RecommendationScorer struct {
	weights ScoringWeights
}

// NewRecommendationScorer creates a scorer with the given weights
func NewRecommendationScorer(weights ScoringWeights) *RecommendationScorer {
	return &RecommendationScorer{weights: weights}
}

// memberTaste is the history summary every catalog entry is compared with
type memberTaste struct {
	booked         map[string]struct{}
	categoryCounts map[string]int
	categoryTotal  int
	avgSpend       float64
	hasSpend       bool
	peerCounts     map[string]int
	peerDivisor    float64
	member         bool
}

func newMemberTaste(signals RecommendationSignals) memberTaste {
	taste := memberTaste{
		booked:         make(map[string]struct{}, len(signals.History)),
		categoryCounts: make(map[string]int),
		peerCounts:     make(map[string]int, len(signals.PeerServices)),
		peerDivisor:    math.Max(1, float64(signals.PeerCount)),
		member:         signals.Profile.IsMember(),
	}

	var spend float64
	var paid int
	for _, booking := range signals.History {
		taste.booked[booking.ServiceID] = struct{}{}

		if booking.Service != nil && booking.Service.Category != "" {
			taste.categoryCounts[booking.Service.Category]++
			taste.categoryTotal++
		}

		if booking.TotalAmount > 0 {
			spend += booking.TotalAmount
			paid++
		}
	}
	if paid > 0 {
		taste.avgSpend = spend / float64(paid)
		taste.hasSpend = true
	}

	for _, service := range signals.PeerServices {
		if service != nil {
			taste.peerCounts[service.ID]++
		}
	}

	return taste
}

// Score scores every catalog service and returns them best first.
// Ties keep catalog order.
func (s *RecommendationScorer) Score(catalog []*entities.Service, signals RecommendationSignals) []entities.ScoredService {
	taste := newMemberTaste(signals)

	scored := make([]entities.ScoredService, 0, len(catalog))
	for _, service := range catalog {
		if service == nil {
			continue
		}
		breakdown := s.breakdown(service, taste)
		scored = append(scored, entities.ScoredService{
			Service:   service,
			Score:     breakdown.Total(),
			Breakdown: breakdown,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return scored
}

func (s *RecommendationScorer) breakdown(service *entities.Service, taste memberTaste) entities.ScoreBreakdown {
	var b entities.ScoreBreakdown

	if _, ok := taste.booked[service.ID]; ok {
		b.BookedPenalty = s.weights.BookedPenalty
	}

	b.Category = s.weights.Category * categoryAffinity(service, taste)
	b.Price = s.weights.Price * priceAffinity(service, taste)
	b.Peer = s.weights.Peer * float64(taste.peerCounts[service.ID]) / taste.peerDivisor

	if service.Featured {
		b.FeaturedBonus = s.weights.FeaturedBonus
	}
	if taste.member {
		b.MembershipBonus = s.weights.MembershipBonus
	}

	return b
}

// categoryAffinity is the share of the member's categorised bookings that
// fall in the service's category
func categoryAffinity(service *entities.Service, taste memberTaste) float64 {
	if taste.categoryTotal == 0 {
		return neutralAffinity
	}
	return float64(taste.categoryCounts[service.Category]) / float64(taste.categoryTotal)
}

// priceAffinity is 1 when the service costs what the member usually spends
// and falls towards 0 as the two diverge
func priceAffinity(service *entities.Service, taste memberTaste) float64 {
	if !service.HasPrice() || !taste.hasSpend {
		return neutralAffinity
	}
	return priceSimilarity(*service.Price, taste.avgSpend)
}

func priceSimilarity(price, avgSpend float64) float64 {
	denominator := math.Max(price, avgSpend)
	if denominator == 0 {
		return neutralAffinity
	}
	return 1 - math.Abs(price-avgSpend)/denominator
}
