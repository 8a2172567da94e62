package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"vacation-api/internal/core/cache"
	"vacation-api/internal/domain"
	"vacation-api/pkg/utils"
)

type UserService struct {
	users     domain.UserRepository
	vacations domain.VacationRepository
	cache     *cache.Cache // nil 表示不启用缓存
	ttl       time.Duration
	logger    *zap.Logger
}

func NewUserService(users domain.UserRepository, vacations domain.VacationRepository, c *cache.Cache, ttl time.Duration, logger ...*zap.Logger) *UserService {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &UserService{users: users, vacations: vacations, cache: c, ttl: ttl, logger: l}
}

func userKey(id int64) string { return fmt.Sprintf("user:%d", id) }

func (s *UserService) Create(ctx context.Context, in domain.UserInput) (*domain.User, error) {
	in = in.Normalize()
	if err := in.Validate(true); err != nil {
		s.logger.Warn("create user validation failed", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Email:        in.Email,
		Name:         in.Name,
		EmployeeCode: in.EmployeeCode,
		Role:         in.Role,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		s.logger.Warn("create user failed", zap.String("email", in.Email), zap.Error(err))
		return nil, err
	}
	s.logger.Info("user created", zap.Int64("user_id", u.ID), zap.String("role", u.Role.String()))
	return u, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	if s.cache == nil {
		return s.users.FindByID(ctx, id)
	}
	return cache.GetOrLoadJSON(s.cache, ctx, userKey(id), s.ttl, func(ctx context.Context) (*domain.User, error) {
		u, err := s.users.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = ""
		return u, nil
	})
}

func (s *UserService) ListVacations(ctx context.Context, id int64) ([]domain.VacationRequest, error) {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.vacations.ListByOwner(ctx, id)
}

// Update 空字段保持原值；员工编号不可修改
func (s *UserService) Update(ctx context.Context, id int64, in domain.UserInput) (*domain.User, error) {
	cur, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Email == "" {
		in.Email = cur.Email
	}
	if in.Name == "" {
		in.Name = cur.Name
	}
	if in.Role == "" {
		in.Role = cur.Role
	}
	in.EmployeeCode = cur.EmployeeCode
	in = in.Normalize()
	if err := in.Validate(false); err != nil {
		s.logger.Warn("update user validation failed", zap.Int64("user_id", id), zap.Error(err))
		return nil, err
	}

	next := &domain.User{ID: id, Email: in.Email, Name: in.Name, Role: in.Role}
	if in.Password != "" {
		if next.PasswordHash, err = utils.HashPassword(in.Password); err != nil {
			return nil, err
		}
	}
	if err := s.users.Update(ctx, next); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	s.logger.Info("user updated", zap.Int64("user_id", id))
	return s.users.FindByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, actorID, id int64) error {
	if actorID == id {
		return domain.ErrSelfDeletion
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.logger.Info("user deleted", zap.Int64("user_id", id), zap.Int64("actor_id", actorID))
	return nil
}

func (s *UserService) invalidate(ctx context.Context, id int64) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, userKey(id)); err != nil {
		s.logger.Warn("user cache invalidate failed", zap.Int64("user_id", id), zap.Error(err))
	}
}
