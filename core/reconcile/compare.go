package reconcile

// Comparison splits two decks into shared and unique cards.
type Comparison struct {
	// Common holds min(a, b) for cards present in both decks.
	Common []CardQuantity `json:"common"`

	// UniqueToA holds cards only in a, plus a's excess over the common count.
	UniqueToA []CardQuantity `json:"unique_to_a"`

	// UniqueToB holds cards only in b, plus b's excess over the common count.
	UniqueToB []CardQuantity `json:"unique_to_b"`

	// Summary provides aggregate counts.
	Summary ComparisonSummary `json:"summary"`
}

// ComparisonSummary provides totals and unique counts per bucket.
type ComparisonSummary struct {
	CommonTotal     int `json:"common_total"`
	CommonUnique    int `json:"common_unique"`
	UniqueToATotal  int `json:"unique_to_a_total"`
	UniqueToAUnique int `json:"unique_to_a_unique"`
	UniqueToBTotal  int `json:"unique_to_b_total"`
	UniqueToBUnique int `json:"unique_to_b_unique"`
}

// Compare classifies every card in the union of a and b.
func Compare(a, b QuantityMap) *Comparison {
	union := make(map[string]struct{}, len(a)+len(b))
	for name := range a {
		union[name] = struct{}{}
	}
	for name := range b {
		union[name] = struct{}{}
	}

	common := make(QuantityMap)
	onlyA := make(QuantityMap)
	onlyB := make(QuantityMap)

	for name := range union {
		qa, qb := a.Get(name), b.Get(name)
		switch {
		case qa > 0 && qb > 0:
			shared := min(qa, qb)
			common[name] = shared
			if qa > shared {
				onlyA[name] = qa - shared
			}
			if qb > shared {
				onlyB[name] = qb - shared
			}
		case qa > 0:
			onlyA[name] = qa
		case qb > 0:
			onlyB[name] = qb
		}
	}

	cmp := &Comparison{
		Common:    sortedBucket(common),
		UniqueToA: sortedBucket(onlyA),
		UniqueToB: sortedBucket(onlyB),
	}
	cmp.Summary = ComparisonSummary{
		CommonTotal:     bucketTotal(cmp.Common),
		CommonUnique:    len(cmp.Common),
		UniqueToATotal:  bucketTotal(cmp.UniqueToA),
		UniqueToAUnique: len(cmp.UniqueToA),
		UniqueToBTotal:  bucketTotal(cmp.UniqueToB),
		UniqueToBUnique: len(cmp.UniqueToB),
	}
	return cmp
}
