package reconcile

// BuildInventory merges any number of quantity maps into a single inventory.
// Quantities are summed on name collision, so the result does not depend on
// argument order. Inputs are left untouched.
func BuildInventory(sources ...QuantityMap) QuantityMap {
	inventory := make(QuantityMap)
	for _, src := range sources {
		for name, qty := range src {
			inventory.Add(name, qty)
		}
	}
	return inventory.Normalize()
}
