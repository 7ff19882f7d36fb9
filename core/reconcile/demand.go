package reconcile

import "sort"

// DemandIndex maps a card name to every deck that requires it, in deck input order.
type DemandIndex map[string][]DeckQuantity

// Others returns the holders of card excluding the deck named exclude.
// An empty exclude keeps every holder.
func (idx DemandIndex) Others(card, exclude string) []DeckQuantity {
	holders := idx[card]
	out := make([]DeckQuantity, 0, len(holders))
	for _, h := range holders {
		if exclude != "" && h.Deck == exclude {
			continue
		}
		out = append(out, h)
	}
	return out
}

// Demand is the aggregated requirement of a deck set.
type Demand struct {
	// Index lists, per card, the decks that need it and how many.
	Index DemandIndex

	// Total is the per-card sum across all decks.
	Total QuantityMap
}

// AggregateDemand builds the demand index and total demand for decks.
// Cards inside a deck are visited in name order so Index is deterministic.
func AggregateDemand(decks []Deck) *Demand {
	demand := &Demand{
		Index: make(DemandIndex),
		Total: make(QuantityMap),
	}

	for _, deck := range decks {
		for _, card := range deck.Cards.Names() {
			qty := deck.Cards[card]
			if qty <= 0 {
				continue
			}
			demand.Index[card] = append(demand.Index[card], DeckQuantity{Deck: deck.Name, Quantity: qty})
			demand.Total.Add(card, qty)
		}
	}

	return demand
}

// InventoryWarning flags a card a deck needs more of than the inventory holds.
type InventoryWarning struct {
	Deck     string `json:"deck"`
	Card     string `json:"card"`
	Required int    `json:"required"`
	Have     int    `json:"have"`
}

// CheckInventory compares each deck on its own against the full inventory.
// Decks do not deplete a shared pool here: two decks each needing the only
// copy of a card produce no warning. Warnings keep deck order, cards sorted
// by name within a deck.
func CheckInventory(inventory QuantityMap, decks []Deck) []InventoryWarning {
	var warnings []InventoryWarning
	for _, deck := range decks {
		for _, card := range deck.Cards.Names() {
			required := deck.Cards[card]
			have := inventory.Get(card)
			if have < required {
				warnings = append(warnings, InventoryWarning{
					Deck:     deck.Name,
					Card:     card,
					Required: required,
					Have:     have,
				})
			}
		}
	}
	return warnings
}

// WarningsByDeck groups warnings per deck, deck names sorted.
func WarningsByDeck(warnings []InventoryWarning) ([]string, map[string][]InventoryWarning) {
	grouped := make(map[string][]InventoryWarning)
	for _, w := range warnings {
		grouped[w.Deck] = append(grouped[w.Deck], w)
	}
	decks := make([]string, 0, len(grouped))
	for name := range grouped {
		decks = append(decks, name)
	}
	sort.Strings(decks)
	return decks, grouped
}
