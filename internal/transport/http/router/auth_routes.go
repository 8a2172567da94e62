package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"vacation-api/internal/core/auth"
	"vacation-api/internal/service"
	"vacation-api/internal/transport/http/ez"
	mdw "vacation-api/internal/transport/http/middleware"
)

type authModule struct {
	svc        *service.AuthService
	loginRPS   rate.Limit
	loginBurst int
}

func (authModule) Priority() int { return 10 }

type loginIn struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenOut struct {
	Token string `json:"token"`
}

func (m authModule) Mount(e ez.EZ) {
	var pre []gin.HandlerFunc
	if m.loginRPS > 0 {
		pre = append(pre, mdw.RateLimitPerIP(m.loginRPS, m.loginBurst))
	}

	ez.RegisterAction(e, ez.Action[loginIn, tokenOut]{
		Method: http.MethodPost,
		Path:   "/auth/login",
		Binder: ez.BindJSON,
		Pre:    pre,
		Handler: func(c *gin.Context, _ auth.Principal, in *loginIn) (tokenOut, error) {
			tok, err := m.svc.Login(c.Request.Context(), in.Email, in.Password)
			return tokenOut{Token: tok}, err
		},
	})

	ez.RegisterAction(e, ez.Action[struct{}, tokenOut]{
		Method: http.MethodPost,
		Path:   "/auth/renew",
		Binder: ez.BindNone,
		Auth:   true,
		Handler: func(_ *gin.Context, p auth.Principal, _ *struct{}) (tokenOut, error) {
			tok, err := m.svc.Renew(p)
			return tokenOut{Token: tok}, err
		},
	})
}
