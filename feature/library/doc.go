// Package library implements the card library refresh.
//
// A refresh pulls every configured deck and the owned-cards binder from the
// remote source, folds in the local purchase log, and recomputes the pool of
// cards not assigned to any deck.
//
// # Safety
//
// All remote data is fetched before anything is written. A failed or empty
// fetch aborts the run and leaves every existing list untouched, so a remote
// outage never replaces good data with an empty file.
//
// # Outputs
//
//   - one list per deck, at the file named in the collection
//   - owned cards: the raw binder snapshot
//   - purchased formatted: the purchase log summed by name
//   - available cards: inventory minus all deck demand, snow basics last
package library
