package reconcile

import "sort"

// QuantityMap maps a card name to the number of copies.
// Names are case and punctuation sensitive. A normalized map holds no entry
// with a quantity of zero or less.
type QuantityMap map[string]int

// Get returns the quantity for name, or zero when absent.
func (m QuantityMap) Get(name string) int {
	return m[name]
}

// Add increases the quantity of name by qty, creating the entry if needed.
func (m QuantityMap) Add(name string, qty int) {
	m[name] += qty
}

// Total returns the sum of all quantities.
func (m QuantityMap) Total() int {
	total := 0
	for _, qty := range m {
		total += qty
	}
	return total
}

// Names returns the card names sorted ascending.
func (m QuantityMap) Names() []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the map.
func (m QuantityMap) Clone() QuantityMap {
	out := make(QuantityMap, len(m))
	for name, qty := range m {
		out[name] = qty
	}
	return out
}

// Normalize drops every entry whose quantity is zero or negative.
func (m QuantityMap) Normalize() QuantityMap {
	for name, qty := range m {
		if qty <= 0 {
			delete(m, name)
		}
	}
	return m
}

// Deck is a named list of required cards.
// Decks are read-only inputs; nothing in this package mutates Cards.
type Deck struct {
	// Name identifies the deck in the collection configuration.
	Name string `json:"name"`

	// Cards holds the quantity required for each card.
	Cards QuantityMap `json:"cards"`
}

// CardQuantity is a single card line in a report bucket.
type CardQuantity struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// DeckQuantity records how many copies of a card one deck holds.
type DeckQuantity struct {
	Deck     string `json:"deck"`
	Quantity int    `json:"quantity"`
}

// sortedBucket converts a map into a name-sorted slice, skipping empty entries.
func sortedBucket(m QuantityMap) []CardQuantity {
	out := make([]CardQuantity, 0, len(m))
	for _, name := range m.Names() {
		if m[name] <= 0 {
			continue
		}
		out = append(out, CardQuantity{Name: name, Quantity: m[name]})
	}
	return out
}

// bucketTotal sums the quantities of a bucket.
func bucketTotal(cards []CardQuantity) int {
	total := 0
	for _, c := range cards {
		total += c.Quantity
	}
	return total
}
