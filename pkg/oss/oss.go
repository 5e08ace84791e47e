package oss

import (
	"context"
	"fmt"
	"path/filepath"

	"VideoTube.com/config"
	"VideoTube.com/pkg/constants"
	"VideoTube.com/pkg/utils"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
)

// Store uploads local files into object storage and hands back durable URLs.
// Video uploads also report the probed duration, per the asset-store contract.
type Store struct{}

func NewStore() *Store { return &Store{} }

func ensureBucket(ctx context.Context, bucket string) error {
	exists, err := minioClient.BucketExists(ctx, bucket)
	if err != nil {
		return errors.WithMessage(err, "check bucket error")
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return errors.WithMessage(err, "create bucket error")
		}
	}
	return nil
}

func publicURL(bucket, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", config.ConfigInfo.Minio.PublicURL, bucket, objectName)
}

// UploadVideo probes the file's duration and stores it under the video id.
func (s *Store) UploadVideo(ctx context.Context, localPath string, videoId int64) (url string, duration float64, err error) {
	duration, err = utils.ProbeDuration(localPath)
	if err != nil {
		return "", 0, err
	}
	if err := ensureBucket(ctx, constants.VideoBucket); err != nil {
		return "", 0, err
	}
	objectName := fmt.Sprintf("video/%d/video%s", videoId, filepath.Ext(localPath))
	if _, err := minioClient.FPutObject(ctx, constants.VideoBucket, objectName, localPath,
		minio.PutObjectOptions{ContentType: "video/mp4"}); err != nil {
		return "", 0, errors.WithMessage(err, "Failed to upload video")
	}
	return publicURL(constants.VideoBucket, objectName), duration, nil
}

// UploadImage stores a thumbnail or cover image under the video id.
func (s *Store) UploadImage(ctx context.Context, localPath string, videoId int64) (string, error) {
	if err := ensureBucket(ctx, constants.ImageBucket); err != nil {
		return "", err
	}
	objectName := fmt.Sprintf("cover/%d/cover%s", videoId, filepath.Ext(localPath))
	if _, err := minioClient.FPutObject(ctx, constants.ImageBucket, objectName, localPath,
		minio.PutObjectOptions{}); err != nil {
		return "", errors.WithMessage(err, "Failed to upload image")
	}
	return publicURL(constants.ImageBucket, objectName), nil
}
