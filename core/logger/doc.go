// Package logger provides a structured logging facility based on Zap.
//
// Logs are written to stderr so command reports on stdout stay clean.
//
// # Run IDs
//
// Every command invocation is tagged with a run id. WithRunID attaches it to
// a logger so all entries produced by one update or check can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithRunID(log, uuid.NewString())
//	log.Info("Updated available cards", zap.Int("unique", 120))
package logger
