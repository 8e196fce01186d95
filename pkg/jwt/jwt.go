package jwt

import (
	"context"

	"github.com/cloudwego/hertz/pkg/app"
	hjwt "github.com/hertz-contrib/jwt"

	"vidtube.com/pkg/constants"
	"vidtube.com/pkg/errno"
	"vidtube.com/pkg/utils"
)

// AuthMiddleware verifies bearer credentials minted by the external identity
// service; this process never issues tokens itself.
var AuthMiddleware *hjwt.HertzJWTMiddleware

// UnauthorizedFunc writes the error envelope for rejected credentials.
// Injected from the handler layer to keep this package transport-agnostic.
type UnauthorizedFunc func(ctx context.Context, c *app.RequestContext, code int, message string)

func Init(secret, realm string, unauthorized UnauthorizedFunc) error {
	mw, err := hjwt.New(&hjwt.HertzJWTMiddleware{
		Realm:         realm,
		Key:           []byte(secret),
		IdentityKey:   constants.IdentityKey,
		TokenLookup:   "header: Authorization, cookie: accessToken",
		TokenHeadName: "Bearer",
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := hjwt.ExtractClaims(ctx, c)
			return claims[constants.IdentityKey]
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			unauthorized(ctx, c, code, message)
		},
	})
	if err != nil {
		return err
	}
	AuthMiddleware = mw
	return nil
}

// ActorID resolves the authenticated caller's id from the request context.
func ActorID(_ context.Context, c *app.RequestContext) (string, error) {
	v, ok := c.Get(constants.IdentityKey)
	if !ok {
		return "", errno.AuthorizationFailedErr
	}
	id, ok := v.(string)
	if !ok || !utils.IsValidID(id) {
		return "", errno.AuthorizationFailedErr
	}
	return id, nil
}
