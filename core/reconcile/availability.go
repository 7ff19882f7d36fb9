package reconcile

import "sort"

// SnowCoveredBasics sort after every other name in persisted library lists.
var SnowCoveredBasics = map[string]struct{}{
	"Snow-Covered Forest":   {},
	"Snow-Covered Island":   {},
	"Snow-Covered Mountain": {},
	"Snow-Covered Plains":   {},
	"Snow-Covered Swamp":    {},
}

// IsSnowCoveredBasic reports whether name is one of the five snow basics.
func IsSnowCoveredBasic(name string) bool {
	_, ok := SnowCoveredBasics[name]
	return ok
}

// LibraryLess orders names ascending with the snow basics grouped last.
func LibraryLess(a, b string) bool {
	sa, sb := IsSnowCoveredBasic(a), IsSnowCoveredBasic(b)
	if sa != sb {
		return sb
	}
	return a < b
}

// Availability returns inventory minus total demand, clipped at zero.
// Only cards present in the inventory are considered, and cards left with
// nothing are omitted.
func Availability(inventory, totalDemand QuantityMap) QuantityMap {
	available := make(QuantityMap)
	for name, qty := range inventory {
		if left := qty - totalDemand.Get(name); left > 0 {
			available[name] = left
		}
	}
	return available
}

// LibraryOrder returns the entries of m sorted with LibraryLess.
func LibraryOrder(m QuantityMap) []CardQuantity {
	out := sortedBucket(m)
	sort.SliceStable(out, func(i, j int) bool {
		return LibraryLess(out[i].Name, out[j].Name)
	})
	return out
}
