package middleware

import (
	"github.com/gin-gonic/gin"

	"vacation-api/internal/core/auth"
	resp "vacation-api/internal/transport/http/response"
)

const KeyPrincipal = "principal"

// Authenticate 要求合法 Bearer 凭证，principal 写入上下文
func Authenticate(g *auth.Guard) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := g.RequirePrincipal(c.Request.Header)
		if err != nil {
			abortErr(c, err)
			return
		}
		c.Set(KeyPrincipal, p)
		c.Next()
	}
}

// RequireRole 凭证无效 401，角色不符 403
func RequireRole(g *auth.Guard, r auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := g.RequireRole(c.Request.Header, r)
		if err != nil {
			abortErr(c, err)
			return
		}
		c.Set(KeyPrincipal, p)
		c.Next()
	}
}

func PrincipalFrom(c *gin.Context) (auth.Principal, bool) {
	v, ok := c.Get(KeyPrincipal)
	if !ok {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}

func abortErr(c *gin.Context, err error) {
	status, body := resp.FromError(err)
	c.AbortWithStatusJSON(status, body)
}
