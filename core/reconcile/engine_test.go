package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildInventory_MergeOrder tests that merging is commutative and associative.
func TestBuildInventory_MergeOrder(t *testing.T) {
	owned := QuantityMap{"Sol Ring": 1, "Forest": 10}
	purchased := QuantityMap{"Sol Ring": 2, "Arcane Signet": 1}
	extra := QuantityMap{"Forest": 3}

	expected := QuantityMap{"Sol Ring": 3, "Forest": 13, "Arcane Signet": 1}

	assert.Equal(t, expected, BuildInventory(owned, purchased, extra))
	assert.Equal(t, expected, BuildInventory(extra, purchased, owned))
	assert.Equal(t, expected, BuildInventory(BuildInventory(owned, purchased), extra))
	assert.Equal(t, expected, BuildInventory(owned, BuildInventory(purchased, extra)))

	// Inputs are not mutated
	assert.Equal(t, QuantityMap{"Sol Ring": 1, "Forest": 10}, owned)
}

func TestBuildInventory_Empty(t *testing.T) {
	assert.Empty(t, BuildInventory())
	assert.Empty(t, BuildInventory(QuantityMap{}, nil))
	assert.Equal(t, QuantityMap{"Island": 2}, BuildInventory(nil, QuantityMap{"Island": 2}))
}

func TestAggregateDemand(t *testing.T) {
	decks := []Deck{
		{Name: "Atraxa", Cards: QuantityMap{"Sol Ring": 1, "Forest": 4}},
		{Name: "Krenko", Cards: QuantityMap{"Sol Ring": 1, "Mountain": 30}},
	}

	demand := AggregateDemand(decks)

	assert.Equal(t, QuantityMap{"Sol Ring": 2, "Forest": 4, "Mountain": 30}, demand.Total)
	assert.Equal(t, []DeckQuantity{{Deck: "Atraxa", Quantity: 1}, {Deck: "Krenko", Quantity: 1}}, demand.Index["Sol Ring"])
	assert.Equal(t, []DeckQuantity{{Deck: "Atraxa", Quantity: 4}}, demand.Index["Forest"])

	assert.Equal(t, []DeckQuantity{{Deck: "Krenko", Quantity: 1}}, demand.Index.Others("Sol Ring", "Atraxa"))
	assert.Len(t, demand.Index.Others("Sol Ring", ""), 2)
	assert.Empty(t, demand.Index.Others("Unknown Card", ""))
}

// TestCheckInventory_IndependentDecks tests that each deck is checked against
// the whole inventory rather than a depleting pool.
func TestCheckInventory_IndependentDecks(t *testing.T) {
	inventory := QuantityMap{"Sol Ring": 1, "Forest": 2}
	decks := []Deck{
		{Name: "B Deck", Cards: QuantityMap{"Sol Ring": 1, "Forest": 3}},
		{Name: "A Deck", Cards: QuantityMap{"Sol Ring": 1, "Mana Crypt": 1}},
	}

	warnings := CheckInventory(inventory, decks)

	require.Len(t, warnings, 2)
	assert.Equal(t, InventoryWarning{Deck: "B Deck", Card: "Forest", Required: 3, Have: 2}, warnings[0])
	assert.Equal(t, InventoryWarning{Deck: "A Deck", Card: "Mana Crypt", Required: 1, Have: 0}, warnings[1])

	names, grouped := WarningsByDeck(warnings)
	assert.Equal(t, []string{"A Deck", "B Deck"}, names)
	assert.Len(t, grouped["B Deck"], 1)
}

func TestAvailability(t *testing.T) {
	tests := []struct {
		name      string
		inventory QuantityMap
		demand    QuantityMap
		expected  QuantityMap
	}{
		{
			name:      "Exact use drops entry",
			inventory: QuantityMap{"Sol Ring": 1},
			demand:    QuantityMap{"Sol Ring": 1},
			expected:  QuantityMap{},
		},
		{
			name:      "Over demand clips at zero",
			inventory: QuantityMap{"Forest": 2, "Island": 5},
			demand:    QuantityMap{"Forest": 7, "Island": 1},
			expected:  QuantityMap{"Island": 4},
		},
		{
			name:      "Demand for unowned card ignored",
			inventory: QuantityMap{"Plains": 1},
			demand:    QuantityMap{"Swamp": 3},
			expected:  QuantityMap{"Plains": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			available := Availability(tt.inventory, tt.demand)
			assert.Equal(t, tt.expected, available)
			for name, qty := range available {
				assert.Positive(t, qty, name)
			}
		})
	}
}

func TestLibraryOrder_SnowBasicsLast(t *testing.T) {
	pool := QuantityMap{
		"Forest":                1,
		"Snow-Covered Forest":   2,
		"Aether Vial":           1,
		"Snow-Covered Island":   1,
		"Snow-Covered Mountain": 0,
		"Zur the Enchanter":     1,
	}

	var names []string
	for _, c := range LibraryOrder(pool) {
		names = append(names, c.Name)
	}

	assert.Equal(t, []string{
		"Aether Vial",
		"Forest",
		"Zur the Enchanter",
		"Snow-Covered Forest",
		"Snow-Covered Island",
	}, names)
}

// TestReconcileLibrary_SingleDeck tests the full pipeline on a tiny collection.
func TestReconcileLibrary_SingleDeck(t *testing.T) {
	inventory := BuildInventory(QuantityMap{"Sol Ring": 1}, nil)
	plan := ReconcileLibrary(inventory, []Deck{{Name: "Deck", Cards: QuantityMap{"Sol Ring": 1}}})

	assert.Empty(t, plan.Available)
	assert.Empty(t, plan.Warnings)
	assert.Equal(t, LibrarySummary{
		Decks:           1,
		InventoryTotal:  1,
		InventoryUnique: 1,
		DemandTotal:     1,
	}, plan.Summary)
}

func TestReconcileLibrary_Warnings(t *testing.T) {
	inventory := BuildInventory(QuantityMap{"Forest": 3}, QuantityMap{"Island": 1})
	decks := []Deck{
		{Name: "Green", Cards: QuantityMap{"Forest": 2}},
		{Name: "Blue", Cards: QuantityMap{"Island": 2}},
	}

	plan := ReconcileLibrary(inventory, decks)

	assert.Equal(t, QuantityMap{"Forest": 1}, plan.Available)
	require.Len(t, plan.Warnings, 1)
	assert.Equal(t, "Blue", plan.Warnings[0].Deck)
	assert.Equal(t, 1, plan.Summary.Warnings)
	assert.Equal(t, 4, plan.Summary.DemandTotal)
}
