// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so card lists can live in an S3 compatible
// bucket instead of the local card_library directory. Both AWS S3 and
// self-hosted MinIO instances are supported.
//
// # Client Interface
//
// The Client interface abstracts the underlying provider, making it easy to
// mock storage interactions in unit tests (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: verify or create the target bucket.
//   - PutObject: upload a card list.
//   - GetObject: stream a card list back.
//   - StatObject: check whether a card list exists.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
