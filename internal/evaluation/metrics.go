package evaluation

func relevantSet(relevant []string) map[string]struct{} {
	set := make(map[string]struct{}, len(relevant))
	for _, r := range relevant {
		set[r] = struct{}{}
	}
	return set
}

func topK(retrieved []string, k int) []string {
	if k < len(retrieved) {
		return retrieved[:k]
	}
	return retrieved
}

// RecallAtK computes Recall@K: the fraction of distinct relevant items found
// in the top-K retrieved results. Returns 0.0 if relevant is empty.
func RecallAtK(relevant, retrieved []string, k int) float64 {
	want := relevantSet(relevant)
	if len(want) == 0 {
		return 0.0
	}

	found := make(map[string]struct{}, len(want))
	for _, r := range topK(retrieved, k) {
		if _, ok := want[r]; ok {
			found[r] = struct{}{}
		}
	}

	return float64(len(found)) / float64(len(want))
}

// MRRAtK computes Mean Reciprocal Rank at K: the reciprocal of the rank of the first relevant item
// in the top-K retrieved results. Returns 0.0 if no relevant item is found in top-K.
func MRRAtK(relevant, retrieved []string, k int) float64 {
	want := relevantSet(relevant)
	for i, r := range topK(retrieved, k) {
		if _, ok := want[r]; ok {
			return 1.0 / float64(i+1)
		}
	}
	return 0.0
}

// HitAtK reports whether any relevant item appears in the top-K results.
func HitAtK(relevant, retrieved []string, k int) bool {
	return MRRAtK(relevant, retrieved, k) > 0
}
