// Package missing checks a single deck against the available pool.
//
// The deck is read from a list file or fetched by Moxfield id. Cards the pool
// cannot cover are looked up in the other configured decks, and the report
// says how many copies each of those decks could lend. Lending estimates are
// not reserved across cards or decks.
package missing
