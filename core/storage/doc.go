// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the Client interface so the catalog can read
// campaign code sheets and archive plan reports on AWS S3 or self-hosted MinIO alike.
// The interface keeps storage interactions mockable (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists / MakeBucket: bucket checks, combined by EnsureBucket.
//   - PutObject: uploads plan reports.
//   - GetObject: streams a campaign sheet.
//   - ListObjects: lists objects under a prefix, used by LatestObject.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	name, err := storage.LatestObject(ctx, client, cfg.Storage.Bucket, "campaign/", ".xlsx")
package storage
