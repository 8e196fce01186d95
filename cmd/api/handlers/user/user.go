package user

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"

	"vidtube.com/cmd/api/handlers"
	"vidtube.com/cmd/user/service"
	"vidtube.com/pkg/errno"
)

// Register creates an account from a JSON payload.
func Register(ctx context.Context, c *app.RequestContext) {
	var req service.RegisterRequest
	if err := c.BindJSON(&req); err != nil {
		handlers.SendResponse(c, errno.ParamErr.WithMessage("invalid request body"), nil)
		return
	}
	profile, err := service.NewUserService(ctx).Register(&req)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, profile)
}

// GetProfile returns a user's public profile.
func GetProfile(ctx context.Context, c *app.RequestContext) {
	userID := c.Param("user_id")
	profile, err := service.NewUserService(ctx).GetProfile(userID)
	if err != nil {
		handlers.SendResponse(c, err, nil)
		return
	}
	handlers.SendResponse(c, nil, profile)
}
