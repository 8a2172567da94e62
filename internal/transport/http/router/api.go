package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"vacation-api/internal/core/auth"
	"vacation-api/internal/core/server"
	"vacation-api/internal/service"
	"vacation-api/internal/transport/http/ez"
	mdw "vacation-api/internal/transport/http/middleware"
)

type Options struct {
	CORSOrigins    []string
	RPS            float64
	Burst          int
	LoginRPS       float64
	LoginBurst     int
	MaxConcurrency int64
	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

type Deps struct {
	Logger    *zap.Logger
	Guard     *auth.Guard
	Auth      *service.AuthService
	Users     *service.UserService
	Vacations *service.VacationService
	Options   Options
}

func (o Options) withDefaults() Options {
	if o.RPS <= 0 {
		o.RPS, o.Burst = 200, 400
	}
	if o.MaxConcurrency <= 0 {
		o.MaxConcurrency = 300
	}
	if o.RequestTimeout <= 0 {
		o.RequestTimeout = 10 * time.Second
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = 1 << 20
	}
	return o
}

func NewAPIEngine(d Deps) *gin.Engine {
	o := d.Options.withDefaults()
	r := server.NewRouter(o.CORSOrigins)

	r.Use(
		mdw.RequestID(),
		mdw.Recovery(d.Logger),
		mdw.AccessLog(d.Logger),
		mdw.Metrics(),
		mdw.RateLimit(rate.Limit(o.RPS), o.Burst),
		mdw.ConcurrencyLimit(o.MaxConcurrency),
		mdw.MaxBodyBytes(o.MaxBodyBytes),
		mdw.Timeout(o.RequestTimeout),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(mdw.MetricsHandler()))

	api := r.Group("/api/v1")

	var reg Registry
	reg.Register(
		authModule{svc: d.Auth, loginRPS: rate.Limit(o.LoginRPS), loginBurst: o.LoginBurst},
		vacationModule{svc: d.Vacations},
		userModule{svc: d.Users},
	)
	reg.MountAll(ez.New(api, d.Guard, d.Logger))

	return r
}
