package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"vacation-api/internal/core/auth"
	"vacation-api/internal/domain"
	"vacation-api/pkg/utils"
)

type AuthService struct {
	users  domain.UserRepository
	codec  *auth.Codec
	logger *zap.Logger
}

func NewAuthService(users domain.UserRepository, codec *auth.Codec, logger ...*zap.Logger) *AuthService {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &AuthService{users: users, codec: codec, logger: l}
}

// Login 未知邮箱与密码错误返回同一个错误
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		s.logger.Warn("login unknown email", zap.String("email", email))
		return "", domain.ErrInvalidCredential
	}
	if err != nil {
		s.logger.Error("login lookup failed", zap.Error(err))
		return "", err
	}
	if u.PasswordHash == "" || !utils.CheckPassword(password, u.PasswordHash) {
		s.logger.Warn("login bad password", zap.Int64("user_id", u.ID))
		return "", domain.ErrInvalidCredential
	}

	token, err := s.codec.Issue(u.Principal())
	if err != nil {
		return "", err
	}
	s.logger.Info("login success", zap.Int64("user_id", u.ID))
	return token, nil
}

func (s *AuthService) Renew(p auth.Principal) (string, error) {
	return s.codec.Issue(auth.Principal{ID: p.ID, Name: p.Name, Email: p.Email, Role: p.Role})
}
