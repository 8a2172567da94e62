package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vacation-api/internal/core/auth"
	"vacation-api/internal/domain"
	"vacation-api/internal/feature/user"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if isDupKey(err) {
			return domain.ErrDuplicateUser
		}
		return err
	}
	*u = *fromUserModel(&m)
	return nil
}

func (r *UserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *UserRepo) first(ctx context.Context, query string, arg any) (*domain.User, error) {
	var m user.UserModel
	err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return fromUserModel(&m), nil
}

func (r *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	var ms []user.UserModel
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "name"}}).
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(ms))
	for i := range ms {
		out = append(out, *fromUserModel(&ms[i]))
	}
	return out, nil
}

func (r *UserRepo) Update(ctx context.Context, u *domain.User) error {
	cols := map[string]any{"email": u.Email, "name": u.Name, "role": string(u.Role)}
	if u.PasswordHash != "" {
		cols["password"] = u.PasswordHash
	}
	res := r.db.WithContext(ctx).Model(&user.UserModel{}).Where("id = ?", u.ID).Updates(cols)
	if res.Error != nil {
		if isDupKey(res.Error) {
			return domain.ErrDuplicateUser
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&user.UserModel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func toUserModel(u *domain.User) user.UserModel {
	return user.UserModel{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		EmployeeCode: u.EmployeeCode,
		Role:         string(u.Role),
	}
}

func fromUserModel(m *user.UserModel) *domain.User {
	return &domain.User{
		ID:           m.ID,
		Email:        m.Email,
		Name:         m.Name,
		EmployeeCode: m.EmployeeCode,
		Role:         auth.Role(m.Role),
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func isDupKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// 未开启 TranslateError 的驱动只能靠消息判断
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation")
}
