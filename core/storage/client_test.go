package storage_test

import (
	"context"
	"testing"
	"time"

	"catalog-manager/core/storage"
	"catalog-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "catalog").Return(true, nil)

		require.NoError(t, storage.EnsureBucket(ctx, m, "catalog", ""))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "catalog").Return(false, nil)
		m.On("MakeBucket", ctx, "catalog", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		require.NoError(t, storage.EnsureBucket(ctx, m, "catalog", "eu-west-1"))
		m.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "catalog").Return(false, assert.AnError)

		err := storage.EnsureBucket(ctx, m, "catalog", "")
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestLatestObject(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	ch := make(chan minio.ObjectInfo, 4)
	ch <- minio.ObjectInfo{Key: "campaign/old.xlsx", LastModified: now.Add(-time.Hour)}
	ch <- minio.ObjectInfo{Key: "campaign/notes.txt", LastModified: now.Add(time.Hour)}
	ch <- minio.ObjectInfo{Key: "campaign/NEW.XLSX", LastModified: now}
	ch <- minio.ObjectInfo{Key: "campaign/older.xlsx", LastModified: now.Add(-2 * time.Hour)}
	close(ch)

	m := new(mocks.Client)
	m.On("ListObjects", mock.Anything, "catalog", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	name, err := storage.LatestObject(ctx, m, "catalog", "campaign/", ".xlsx")
	require.NoError(t, err)
	assert.Equal(t, "campaign/NEW.XLSX", name)
}

func TestLatestObject_ListError(t *testing.T) {
	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Err: assert.AnError}
	ch <- minio.ObjectInfo{Key: "campaign/late.xlsx"}
	close(ch)

	var listCtx context.Context
	m := new(mocks.Client)
	m.On("ListObjects", mock.Anything, "catalog", mock.Anything).
		Run(func(args mock.Arguments) { listCtx = args.Get(0).(context.Context) }).
		Return((<-chan minio.ObjectInfo)(ch))

	name, err := storage.LatestObject(context.Background(), m, "catalog", "campaign/", ".xlsx")
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, name)
	require.NotNil(t, listCtx)
	assert.ErrorIs(t, listCtx.Err(), context.Canceled, "listing is cancelled on return")
}
