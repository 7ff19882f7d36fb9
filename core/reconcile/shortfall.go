package reconcile

import "sort"

// BorrowableCard is a missing card other decks could lend.
type BorrowableCard struct {
	// Name is the card name.
	Name string `json:"name"`

	// Quantity is the sum of capped contributions across Sources.
	Quantity int `json:"quantity"`

	// Sources lists each lending deck with min(held, missing), in index order.
	Sources []DeckQuantity `json:"sources"`
}

// DeckContribution groups the cards one other deck could lend.
type DeckContribution struct {
	Deck  string         `json:"deck"`
	Cards []CardQuantity `json:"cards"`
	Total int            `json:"total"`
}

// MissingReport is the shortfall analysis of a single deck.
type MissingReport struct {
	// Deck is the name of the checked deck.
	Deck string `json:"deck"`

	// Satisfied holds what the pool covers: the full requirement for cards
	// with enough copies and the partial count for cards with some.
	Satisfied []CardQuantity `json:"satisfied"`

	// PartiallyOwned holds the pool count of cards that fall short.
	PartiallyOwned []CardQuantity `json:"partially_owned"`

	// StillMissing holds what neither the pool nor other decks can supply.
	StillMissing []CardQuantity `json:"still_missing"`

	// Borrowable holds missing cards other decks could cover, non-reserving.
	Borrowable []BorrowableCard `json:"borrowable"`

	// ByDeck regroups Borrowable by lending deck.
	ByDeck []DeckContribution `json:"by_deck"`

	// Summary provides aggregate counts.
	Summary MissingSummary `json:"summary"`
}

// MissingSummary provides totals and unique counts per bucket.
type MissingSummary struct {
	DeckTotal          int `json:"deck_total"`
	SatisfiedTotal     int `json:"satisfied_total"`
	SatisfiedUnique    int `json:"satisfied_unique"`
	StillMissingTotal  int `json:"still_missing_total"`
	StillMissingUnique int `json:"still_missing_unique"`
	BorrowableTotal    int `json:"borrowable_total"`
	BorrowableUnique   int `json:"borrowable_unique"`
}

// ResolveShortfall checks deck against the available pool and the decks in index.
//
// For every card the deck needs beyond what the pool holds, each other deck
// contributes min(held, missing) toward a borrowable estimate. Contributions
// are not reserved, so one deck's copies can count toward several shortfalls
// and the estimate may exceed what a reallocation delivers. The deck itself is
// excluded from the lenders by name.
func ResolveShortfall(deck Deck, available QuantityMap, index DemandIndex) *MissingReport {
	satisfied := make(QuantityMap)
	partial := make(QuantityMap)
	stillMissing := make(QuantityMap)
	borrowable := make(map[string]BorrowableCard)
	byDeck := make(map[string]QuantityMap)

	for _, card := range deck.Cards.Names() {
		need := deck.Cards[card]
		if need <= 0 {
			continue
		}
		have := available.Get(card)

		if have >= need {
			satisfied[card] = need
			continue
		}

		missing := need - have
		potential := 0
		var sources []DeckQuantity
		for _, holder := range index.Others(card, deck.Name) {
			if holder.Quantity <= 0 {
				continue
			}
			share := min(holder.Quantity, missing)
			potential += share
			sources = append(sources, DeckQuantity{Deck: holder.Deck, Quantity: share})

			if byDeck[holder.Deck] == nil {
				byDeck[holder.Deck] = make(QuantityMap)
			}
			byDeck[holder.Deck][card] = share
		}

		if left := missing - potential; left > 0 {
			stillMissing[card] = left
		}
		if potential > 0 {
			borrowable[card] = BorrowableCard{Name: card, Quantity: potential, Sources: sources}
		}
		if have > 0 {
			satisfied[card] = have
			partial[card] = have
		}
	}

	report := &MissingReport{
		Deck:           deck.Name,
		Satisfied:      sortedBucket(satisfied),
		PartiallyOwned: sortedBucket(partial),
		StillMissing:   sortedBucket(stillMissing),
		Borrowable:     sortedBorrowable(borrowable),
		ByDeck:         sortedContributions(byDeck),
	}

	report.Summary = MissingSummary{
		DeckTotal:          deck.Cards.Total(),
		SatisfiedTotal:     bucketTotal(report.Satisfied),
		SatisfiedUnique:    len(report.Satisfied),
		StillMissingTotal:  bucketTotal(report.StillMissing),
		StillMissingUnique: len(report.StillMissing),
		BorrowableUnique:   len(report.Borrowable),
	}
	for _, b := range report.Borrowable {
		report.Summary.BorrowableTotal += b.Quantity
	}

	return report
}

func sortedBorrowable(m map[string]BorrowableCard) []BorrowableCard {
	out := make([]BorrowableCard, 0, len(m))
	for _, b := range m {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

func sortedContributions(m map[string]QuantityMap) []DeckContribution {
	out := make([]DeckContribution, 0, len(m))
	for name, cards := range m {
		bucket := sortedBucket(cards)
		out = append(out, DeckContribution{Deck: name, Cards: bucket, Total: bucketTotal(bucket)})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Deck < out[j].Deck
	})
	return out
}
