package oss

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"vidtube.com/pkg/utils"
)

// Kind selects the bucket a remote object lives in.
type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
)

// Client is the adapter over the external media host. Uploads return public
// URLs; video uploads also report the probed duration, mirroring the
// upload(file) -> {url, duration} collaborator contract.
type Client struct {
	mc          *minio.Client
	videoBucket string
	imageBucket string
	baseURL     string
}

func (c *Client) ensureBucket(ctx context.Context, bucket string) error {
	exists, err := c.mc.BucketExists(ctx, bucket)
	if err != nil {
		return errors.WithMessage(err, "check bucket failed")
	}
	if !exists {
		if err := c.mc.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return errors.WithMessage(err, "create bucket failed")
		}
	}
	return nil
}

func (c *Client) UploadVideo(ctx context.Context, localPath, name string) (string, float64, error) {
	duration, err := utils.ProbeDuration(localPath)
	if err != nil {
		return "", 0, err
	}
	if err := c.ensureBucket(ctx, c.videoBucket); err != nil {
		return "", 0, err
	}
	objectName := name + "/video.mp4"
	_, err = c.mc.FPutObject(ctx, c.videoBucket, objectName, localPath,
		minio.PutObjectOptions{ContentType: "video/mp4"})
	if err != nil {
		return "", 0, errors.WithMessage(err, "video upload failed")
	}
	return c.objectURL(c.videoBucket, objectName), duration, nil
}

func (c *Client) UploadImage(ctx context.Context, localPath, name, contentType string) (string, error) {
	if err := c.ensureBucket(ctx, c.imageBucket); err != nil {
		return "", err
	}
	objectName := name + suffixFor(contentType)
	_, err := c.mc.FPutObject(ctx, c.imageBucket, objectName, localPath,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.WithMessage(err, "image upload failed")
	}
	return c.objectURL(c.imageBucket, objectName), nil
}

// Delete removes a previously uploaded object by its public URL.
func (c *Client) Delete(ctx context.Context, rawURL string, kind Kind) error {
	bucket := c.imageBucket
	if kind == KindVideo {
		bucket = c.videoBucket
	}
	objectName, err := c.objectName(bucket, rawURL)
	if err != nil {
		return err
	}
	return c.mc.RemoveObject(ctx, bucket, objectName, minio.RemoveObjectOptions{})
}

func (c *Client) objectURL(bucket, objectName string) string {
	return fmt.Sprintf("%s/%s/%s", c.baseURL, bucket, objectName)
}

func (c *Client) objectName(bucket, rawURL string) (string, error) {
	prefix := fmt.Sprintf("%s/%s/", c.baseURL, bucket)
	if !strings.HasPrefix(rawURL, prefix) {
		return "", errors.Errorf("url %q does not belong to bucket %s", rawURL, bucket)
	}
	return strings.TrimPrefix(rawURL, prefix), nil
}

func suffixFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}
