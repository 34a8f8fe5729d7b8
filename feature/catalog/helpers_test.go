package catalog

import "github.com/minio/minio-go/v7"

func minioUploadInfo() minio.UploadInfo {
	return minio.UploadInfo{Bucket: "catalog"}
}
