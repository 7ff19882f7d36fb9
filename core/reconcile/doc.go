// Package reconcile provides the quantity-aware set algebra that reconciles a
// card collection across four inputs: the owned library, the purchase queue,
// the built decks, and the cards still free to assign.
//
// Every function in this package works on in-memory QuantityMaps and returns
// fresh values. Nothing here reads or writes files; callers load the lists,
// pass them through the pipeline, and persist what comes out.
//
// # Pipeline
//
// A library refresh runs the components in order:
//
// 1. Inventory: BuildInventory merges owned and purchased quantities.
//
// 2. Demand: AggregateDemand indexes which decks use each card and sums the
//    total demand across all decks. CheckInventory reports, per deck, cards the
//    deck alone needs more of than the whole inventory holds.
//
// 3. Availability: Availability subtracts total demand from the inventory and
//    keeps only positive remainders. This is the pool persisted to disk.
//
// ReconcileLibrary bundles the three steps into a single LibraryPlan.
//
// # Deck checks
//
// ResolveShortfall compares one deck against the available pool and estimates
// how much of each shortfall other decks could lend. The estimate does not
// reserve cards: each other deck's full quantity counts toward every missing
// card independently, so the borrowable figure may overstate what one
// reallocation could actually deliver.
//
// Compare splits two decks into common and unique buckets.
//
// # Usage Example
//
//	inventory := reconcile.BuildInventory(owned, purchased)
//	plan := reconcile.ReconcileLibrary(inventory, decks)
//	for _, w := range plan.Warnings {
//	    fmt.Println(w.Deck, w.Card, w.Required, w.Have)
//	}
//
//	report := reconcile.ResolveShortfall(target, plan.Available, plan.Demand.Index)
package reconcile
