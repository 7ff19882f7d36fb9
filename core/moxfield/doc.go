// Package moxfield fetches deck lists and trade binders from the Moxfield API.
//
// Requests are paced by a token bucket limiter and retried with exponential
// backoff on network errors, HTTP 429 and 5xx responses. Other statuses fail
// immediately with a *StatusError.
//
// Deck lists come back in the order the rest of the tool expects: commanders
// first at quantity 1, then the mainboard sorted by its "<qty> <name>" line.
// Binder contents are aggregated across all pages and ordered with the
// snow-covered basics last.
package moxfield
