// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a narrow read-only interface: the feed only checks
// bucket access, lists section documents and downloads them. This abstraction supports both
// AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - ReadObject: Downloads a whole object, mapping missing keys to ErrNotFound.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	data, err := storage.ReadObject(ctx, client, "feed", "sections/1.json")
package storage
