package oss

import (
	"VideoTube.com/config"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

var minioClient *minio.Client

func Init() {
	c := config.ConfigInfo.Minio
	var err error
	minioClient, err = minio.New(c.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(c.AccessKey, c.SecretKey, ""),
		Secure: c.UseSSL,
	})
	if err != nil {
		logrus.Fatalf("Failed to init minio client: %v", err)
	}
	logrus.Info("minio client ready")
}
