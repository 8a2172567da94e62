// admin 初始化数据库并写入默认的 manager / employee 账号，已存在的跳过
package main

import (
	"context"
	"errors"
	"os"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"vacation-api/internal/core/auth"
	"vacation-api/internal/core/config"
	"vacation-api/internal/core/database"
	"vacation-api/internal/core/logger"
	"vacation-api/internal/domain"
	"vacation-api/internal/repo"
	"vacation-api/internal/service"
)

var seeds = []domain.UserInput{
	{Email: "manager@example.com", Password: "managerpass123", Name: "Manager User", EmployeeCode: "1000001", Role: auth.RoleManager},
	{Email: "employee@example.com", Password: "employeepass123", Name: "Employee User", EmployeeCode: "1000002", Role: auth.RoleEmployee},
}

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(logger.Options{Level: cfg.Log.Level, JSON: cfg.Log.JSON, AddCaller: true})
	defer cleanup()

	db := mustOpenDB(cfg, log)
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal("automigrate failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	created, err := seed(ctx, service.NewUserService(repo.NewUserRepo(db), repo.NewVacationRepo(db), nil, 0, log), seeds, log)
	if err != nil {
		log.Fatal("seed failed", zap.Error(err))
	}
	log.Info("seed done", zap.Int("created", created), zap.Int("total", len(seeds)))
}

func seed(ctx context.Context, users *service.UserService, in []domain.UserInput, l *zap.Logger) (int, error) {
	n := 0
	for _, u := range in {
		_, err := users.Create(ctx, u)
		switch {
		case errors.Is(err, domain.ErrDuplicateUser):
			l.Info("seed user exists, skipped", zap.String("email", u.Email))
		case err != nil:
			return n, err
		default:
			n++
			l.Info("seed user created", zap.String("email", u.Email), zap.String("role", u.Role.String()))
		}
	}
	return n, nil
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
