package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vacation-api/internal/core/auth"
	"vacation-api/internal/core/cache"
	"vacation-api/internal/core/config"
	"vacation-api/internal/core/database"
	"vacation-api/internal/core/logger"
	"vacation-api/internal/core/server"
	"vacation-api/internal/repo"
	"vacation-api/internal/service"
	"vacation-api/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad(os.Getenv("CONFIG_PATH"))
	log, cleanup := newLogger(cfg)
	defer cleanup()
	zap.ReplaceGlobals(log)

	// 数据库（失败会直接 Fatal）
	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := repo.AutoMigrate(db); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	// 缓存可选
	var c *cache.Cache
	if cfg.Redis.Enabled() {
		c = cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer c.Close()
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := c.Ping(pingCtx); err != nil {
			log.Warn("redis unreachable, reads fall back to db", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		cancel()
	}

	codec, err := auth.NewCodec(auth.Options{
		Secret:    []byte(cfg.JWT.Secret),
		Algorithm: cfg.JWT.Algorithm,
		TTL:       cfg.JWT.TTL(),
	})
	if err != nil {
		log.Fatal("jwt codec", zap.Error(err))
	}

	userRepo := repo.NewUserRepo(db)
	vacationRepo := repo.NewVacationRepo(db)

	r := router.NewAPIEngine(router.Deps{
		Logger:    log,
		Guard:     auth.NewGuard(codec),
		Auth:      service.NewAuthService(userRepo, codec, log),
		Users:     service.NewUserService(userRepo, vacationRepo, c, time.Duration(cfg.Redis.UserTTLSec)*time.Second, log),
		Vacations: service.NewVacationService(vacationRepo, log),
		Options: router.Options{
			CORSOrigins:    cfg.App.CORSOrigins,
			RPS:            cfg.App.RateLimitRPS,
			Burst:          cfg.App.RateLimitBurst,
			LoginRPS:       cfg.App.LoginRPS,
			LoginBurst:     cfg.App.LoginBurst,
			MaxConcurrency: cfg.App.MaxConcurrency,
			RequestTimeout: time.Duration(cfg.App.RequestTimeoutSec) * time.Second,
			MaxBodyBytes:   cfg.App.MaxBodyBytes,
		},
	})

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
		log,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("vacation api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("vacation api start FAILED", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("vacation api stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, func()) {
	return logger.New(logger.Options{
		Level:       cfg.Log.Level,
		JSON:        cfg.Log.JSON,
		AddCaller:   true,
		Development: !cfg.Log.JSON,
		Rotate: logger.FileRotate{
			Enable:     cfg.Log.Rotate.Enable,
			Filename:   cfg.Log.Rotate.Filename,
			MaxSizeMB:  cfg.Log.Rotate.MaxSizeMB,
			MaxBackups: cfg.Log.Rotate.MaxBackups,
			MaxAgeDays: cfg.Log.Rotate.MaxAgeDays,
			Compress:   cfg.Log.Rotate.Compress,
		},
	})
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Host:               cfg.DB.Host,
		Port:               cfg.DB.Port,
		Database:           cfg.DB.Database,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		Charset:            cfg.DB.Charset,
		SSLMode:            cfg.DB.SSLMode,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	}, l)
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
