package oss

import (
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"vidtube.com/config"
)

var defaultClient *Client

// Init connects the media host client from config.
func Init() error {
	cfg := config.ConfigInfo.Minio
	mc, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		hlog.Errorf("failed to create minio client: %v", err)
		return err
	}
	defaultClient = &Client{
		mc:          mc,
		videoBucket: cfg.VideoBucket,
		imageBucket: cfg.ImageBucket,
		baseURL:     cfg.PublicBaseURL,
	}
	hlog.Infof("media host connected: %s", cfg.Endpoint)
	return nil
}

// Default returns the process-wide media host client.
func Default() *Client {
	return defaultClient
}
