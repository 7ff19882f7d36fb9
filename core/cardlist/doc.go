// Package cardlist reads and writes "<quantity> <name>" card lists.
//
// A list file is UTF-8 text with one entry per line. The quantity is a
// positive integer and the name is everything after the first space, so
// names may contain spaces of their own. Malformed lines fail the whole read
// with a *ParseError; nothing is silently skipped except blank lines.
//
// # Stores
//
// Lists are persisted through a Store:
//
//   - FileStore keeps lists as files under a root directory.
//   - ObjectStore keeps lists as objects in a bucket (see core/storage).
//
// Both report a missing list with an error matching ErrNotExist.
package cardlist
