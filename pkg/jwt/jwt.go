package jwt

import (
	"context"
	"time"

	"VideoTube.com/config"
	"VideoTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	hertzjwt "github.com/hertz-contrib/jwt"
)

const IdentityKey = "user_id"

// AuthMiddleware only validates tokens and resolves the actor id; issuing
// tokens belongs to the identity subsystem, not this service.
var AuthMiddleware *hertzjwt.HertzJWTMiddleware

func Init() {
	var err error
	AuthMiddleware, err = hertzjwt.New(&hertzjwt.HertzJWTMiddleware{
		Realm:       "videotube",
		Key:         []byte(config.ConfigInfo.Jwt.Secret),
		Timeout:     24 * time.Hour,
		IdentityKey: IdentityKey,
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := hertzjwt.ExtractClaims(ctx, c)
			id, _ := claims[IdentityKey].(float64)
			return int64(id)
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(code, map[string]interface{}{
				"code":    errno.TokenInvailedErrCode,
				"message": message,
			})
		},
	})
	if err != nil {
		panic(err)
	}
}

// CurrentUserID resolves the calling actor id placed by the auth middleware.
// The id is trusted as authentic; credentials are never re-validated here.
func CurrentUserID(ctx context.Context, c *app.RequestContext) (int64, error) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return 0, errno.TokenInvailedErr
	}
	id, ok := v.(int64)
	if !ok || id <= 0 {
		return 0, errno.TokenInvailedErr
	}
	return id, nil
}
