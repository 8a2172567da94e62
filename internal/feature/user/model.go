package user

import "time"

// UserModel users 表。硬删除，依赖外键级联清理 vacations
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"uniqueIndex;size:191;not null"`
	PasswordHash string `gorm:"column:password;size:255;not null"`
	Name         string `gorm:"size:255;not null"`
	EmployeeCode string `gorm:"uniqueIndex;size:7;not null"`
	Role         string `gorm:"size:16;not null;default:employee"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string { return "users" }
