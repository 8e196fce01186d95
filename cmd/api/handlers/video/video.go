package video

import (
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"

	"vidtube.com/cmd/api/handlers"
	"vidtube.com/cmd/video/service"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/jwt"
	"vidtube.com/pkg/utils"
)

// List serves the public feed with filter, sort and pagination knobs.
func List(ctx context.Context, c *app.RequestContext) {
	var req service.ListRequest
	if err := c.BindQuery(&req); err != nil {
		handlers.SendResponse(c, errno.ParamErr.WithMessage("invalid query parameters"), nil)
		return
	}
	page, err := service.NewVideoListService(ctx).ListVideos(&req)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, page)
}

// Visit returns one video and counts the view.
func Visit(ctx context.Context, c *app.RequestContext) {
	detail, err := service.NewVideoListService(ctx).VideoVisit(c.Param("video_id"))
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, detail)
}

// stage copies one multipart part to a temp file and reports its declared
// content type. The caller owns the file's lifetime. An absent part is not
// an error, it returns empty values and the service rejects the request; a
// present part that cannot be staged is.
func stage(c *app.RequestContext, field string) (path, mime string, err error) {
	fh, ferr := c.FormFile(field)
	if ferr != nil {
		return "", "", nil
	}
	path, err = saveTemp(fh)
	if err != nil {
		return "", "", err
	}
	return path, fh.Header.Get("Content-Type"), nil
}

func saveTemp(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst := filepath.Join(os.TempDir(), utils.NewObjectID()+filepath.Ext(fh.Filename))
	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		os.Remove(dst)
		return "", err
	}
	return dst, nil
}

func cleanup(paths ...string) {
	for _, path := range paths {
		if path == "" {
			continue
		}
		if err := os.Remove(path); err != nil {
			hlog.Warnf("failed to remove staged upload %s: %v", path, err)
		}
	}
}

// Publish accepts a multipart form with title, description, videoFile and
// thumbnail parts. Staged files are removed when the request finishes,
// whatever the outcome.
func Publish(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	req := &service.PublishRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	req.VideoPath, req.VideoMIME, err = stage(c, "videoFile")
	if err == nil {
		req.ThumbnailPath, req.ThumbnailMIME, err = stage(c, "thumbnail")
	}
	defer cleanup(req.VideoPath, req.ThumbnailPath)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to stage upload: %v", err)
		handlers.SendResponse(c, errno.ServiceErr.WithMessage("failed to stage upload"), nil)
		return
	}

	video, err := service.NewVideoPublishService(ctx).Publish(actorID, req)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, video)
}

// Update patches title and description; a thumbnail part swaps the image.
func Update(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	req := &service.UpdateRequest{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	req.ThumbnailPath, req.ThumbnailMIME, err = stage(c, "thumbnail")
	defer cleanup(req.ThumbnailPath)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to stage upload: %v", err)
		handlers.SendResponse(c, errno.ServiceErr.WithMessage("failed to stage upload"), nil)
		return
	}

	video, err := service.NewVideoPublishService(ctx).UpdateVideo(actorID, c.Param("video_id"), req)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, video)
}

// Delete removes an owned video and its media objects.
func Delete(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	if err := service.NewVideoPublishService(ctx).DeleteVideo(actorID, c.Param("video_id")); err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, nil)
}

// TogglePublish flips the publish flag on an owned video.
func TogglePublish(ctx context.Context, c *app.RequestContext) {
	actorID, err := jwt.ActorID(ctx, c)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	video, err := service.NewVideoPublishService(ctx).TogglePublish(actorID, c.Param("video_id"))
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, video)
}
