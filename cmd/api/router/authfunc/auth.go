package authfunc

import (
	"VideoTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
)

// Auth returns the middleware chain applied to every route that mutates
// state or reads actor-scoped data.
func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		jwt.AuthMiddleware.MiddlewareFunc(),
	)
}
