package ez

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vacation-api/internal/core/apperror"
	"vacation-api/internal/core/auth"
	mdw "vacation-api/internal/transport/http/middleware"
	resp "vacation-api/internal/transport/http/response"
)

// 绑定方式
type Binder string

const (
	BindJSON  Binder = "json"  // 从 JSON 绑定
	BindQuery Binder = "query" // 从 URL ?a=b 绑定
	BindNone  Binder = "none"  // 不绑定，自己从 c.Param 取
)

var ErrInvalidID = apperror.New(apperror.KindInvalid, "Invalid id")

type EZ struct {
	g      *gin.RouterGroup
	guard  *auth.Guard
	logger *zap.Logger
}

func New(g *gin.RouterGroup, guard *auth.Guard, l *zap.Logger) EZ {
	if l == nil {
		l = zap.L()
	}
	return EZ{g: g, guard: guard, logger: l.Named("http.action")}
}

// Action I 入参，O 出参
type Action[I any, O any] struct {
	Method string // GET | POST | PUT | DELETE
	Path   string
	Binder Binder
	Auth   bool      // 是否要求登录
	Role   auth.Role // 限定角色，非空时隐含 Auth
	Status int       // 成功时的 HTTP 状态，默认 200
	Pre    []gin.HandlerFunc
	// p 仅在 Auth / Role 生效时有值
	Handler func(c *gin.Context, p auth.Principal, in *I) (O, error)
}

func RegisterAction[I any, O any](e EZ, a Action[I, O]) {
	h := func(c *gin.Context) {
		p, _ := mdw.PrincipalFrom(c)

		var in I
		var bindErr error
		switch a.Binder {
		case BindJSON:
			bindErr = c.ShouldBindJSON(&in)
		case BindQuery:
			bindErr = c.ShouldBindQuery(&in)
		}
		if bindErr != nil {
			if mdw.IsBodyTooLarge(bindErr) {
				resp.Abort(c, resp.CodeTooLarge, "request body too large")
				return
			}
			resp.Abort(c, resp.CodeBadRequest, bindErr.Error())
			return
		}

		out, err := a.Handler(c, p, &in)
		if err != nil {
			if apperror.KindOf(err) == apperror.KindInternal {
				e.logger.Error("action failed",
					zap.String("rid", c.GetString(mdw.KeyRequestID)),
					zap.String("route", a.Method+" "+c.FullPath()),
					zap.Error(err),
				)
				_ = c.Error(err)
			}
			status, body := resp.FromError(err)
			c.AbortWithStatusJSON(status, body)
			return
		}
		resp.Success(c, a.Status, out)
	}

	chain := append([]gin.HandlerFunc{}, a.Pre...)
	switch {
	case a.Role != "":
		chain = append(chain, mdw.RequireRole(e.guard, a.Role))
	case a.Auth:
		chain = append(chain, mdw.Authenticate(e.guard))
	}
	chain = append(chain, h)

	method := a.Method
	if method == "" {
		method = http.MethodPost
	}
	e.g.Handle(method, a.Path, chain...)
}

func ParamID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}
