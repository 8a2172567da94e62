package domain

import (
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"vacation-api/internal/core/auth"
)

const MinPasswordLen = 8

var (
	employeeCodeRe = regexp.MustCompile(`^\d{7}$`)
	validate       = validator.New()
)

type User struct {
	ID           int64
	Email        string
	Name         string
	EmployeeCode string
	Role         auth.Role
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserInput 创建/更新时的明文输入；Password 为空表示不修改
type UserInput struct {
	Email        string
	Password     string
	Name         string
	EmployeeCode string
	Role         auth.Role
}

// Normalize 去除首尾空白，角色缺省为 employee
func (in UserInput) Normalize() UserInput {
	in.Email = strings.TrimSpace(in.Email)
	in.Name = strings.TrimSpace(in.Name)
	in.EmployeeCode = strings.TrimSpace(in.EmployeeCode)
	if in.Role == "" {
		in.Role = auth.RoleEmployee
	}
	return in
}

// Validate passwordRequired 为 true 时（创建）密码必填
func (in UserInput) Validate(passwordRequired bool) error {
	if validate.Var(in.Email, "required,email") != nil {
		return ErrInvalidEmail
	}
	if (passwordRequired || in.Password != "") && len(in.Password) < MinPasswordLen {
		return ErrPasswordTooShort
	}
	if in.Name == "" {
		return ErrEmptyName
	}
	if !employeeCodeRe.MatchString(in.EmployeeCode) {
		return ErrEmployeeCode
	}
	if !in.Role.Valid() {
		return ErrInvalidRole
	}
	return nil
}

func (u *User) Principal() auth.Principal {
	return auth.Principal{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
