package domain

import "context"

// UserRepository 用户持久化。查不到返回 ErrUserNotFound，唯一键冲突返回 ErrDuplicateUser
type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]User, error)
	// Update 只写 email/name/role，PasswordHash 非空时一并更新；员工编号不变
	Update(ctx context.Context, u *User) error
	// Delete 级联删除该用户的休假申请
	Delete(ctx context.Context, id int64) error
}

// VacationRepository 休假申请持久化。
// UpdateStatusIf / DeleteIfStatus 是带前置条件的原子写，返回受影响行数；
// 0 行即前置条件不成立（不存在或已被处理），调用方不得重试。
type VacationRepository interface {
	FindByID(ctx context.Context, id int64) (*VacationRequest, error)
	Insert(ctx context.Context, v *VacationRequest) error
	UpdateStatusIf(ctx context.Context, id int64, expected, next Status, authorizerID int64) (int64, error)
	DeleteIfStatus(ctx context.Context, id int64, expected Status) (int64, error)
	// ListByStatus 结果带 User 快照，按 from 升序
	ListByStatus(ctx context.Context, status Status) ([]VacationRequest, error)
	// ListByOwner 按 from 降序
	ListByOwner(ctx context.Context, userID int64) ([]VacationRequest, error)
}
