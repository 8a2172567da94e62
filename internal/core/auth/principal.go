package auth

import (
	"fmt"
	"time"
)

// Role 两个平级角色，不做继承
type Role string

const (
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// ParseRole 未知取值直接报错，不回退到 employee
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleManager, RoleEmployee:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

func (r Role) Valid() bool { return r == RoleManager || r == RoleEmployee }

func (r Role) String() string { return string(r) }

// Principal 由凭证解码得到的身份，只在当前请求内有效
type Principal struct {
	ID        int64
	Name      string
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

func HasRole(p Principal, r Role) bool { return p.Role == r }
