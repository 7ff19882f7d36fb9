package reconcile

// LibraryPlan is the outcome of a full library reconciliation.
type LibraryPlan struct {
	// Inventory is everything owned, purchases included.
	Inventory QuantityMap

	// Demand holds the per-card deck index and total demand.
	Demand *Demand

	// Warnings lists cards a deck needs more of than the inventory holds.
	Warnings []InventoryWarning

	// Available is the inventory left after every deck has taken its cards.
	Available QuantityMap

	// Summary provides aggregate counts.
	Summary LibrarySummary
}

// LibrarySummary provides aggregate statistics for a library plan.
type LibrarySummary struct {
	Decks           int `json:"decks"`
	InventoryTotal  int `json:"inventory_total"`
	InventoryUnique int `json:"inventory_unique"`
	DemandTotal     int `json:"demand_total"`
	AvailableTotal  int `json:"available_total"`
	AvailableUnique int `json:"available_unique"`
	Warnings        int `json:"warnings"`
}

// ReconcileLibrary runs demand aggregation, the inventory check and the
// availability calculation over an already merged inventory.
func ReconcileLibrary(inventory QuantityMap, decks []Deck) *LibraryPlan {
	demand := AggregateDemand(decks)
	warnings := CheckInventory(inventory, decks)
	available := Availability(inventory, demand.Total)

	return &LibraryPlan{
		Inventory: inventory,
		Demand:    demand,
		Warnings:  warnings,
		Available: available,
		Summary: LibrarySummary{
			Decks:           len(decks),
			InventoryTotal:  inventory.Total(),
			InventoryUnique: len(inventory),
			DemandTotal:     demand.Total.Total(),
			AvailableTotal:  available.Total(),
			AvailableUnique: len(available),
			Warnings:        len(warnings),
		},
	}
}
