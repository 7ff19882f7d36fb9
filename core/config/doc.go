// Package config provides configuration management for mtg-utils.
//
// Two layers are handled here:
//
//   - Config: application settings loaded by Viper from environment variables
//     and an optional .env file, with defaults taken from struct tags.
//   - Collection: the JSON collection file (config.json) naming the binder,
//     the built decks and the purchase log. A default file is written on
//     first use.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Log: logging level and format
//   - Library: storage backend and file names of the persisted lists
//   - Moxfield: API base URL, timeout and binder page size
//   - Storage: S3/MinIO credentials and bucket settings
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	col, created, err := config.LoadCollection("config.json")
package config
