package vacation

import (
	"time"

	"vacation-api/internal/feature/user"
)

type VacationModel struct {
	ID     int64           `gorm:"primaryKey;autoIncrement"`
	UserID int64           `gorm:"not null;index"`
	User   *user.UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	From   time.Time `gorm:"column:from;type:date;not null"`
	To     time.Time `gorm:"column:to;type:date;not null"`
	Reason string    `gorm:"size:255;not null"`
	Status string    `gorm:"size:16;not null;default:pending;index"`

	AuthorizedBy *int64          `gorm:"index"`
	Authorizer   *user.UserModel `gorm:"foreignKey:AuthorizedBy;constraint:OnDelete:SET NULL"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (VacationModel) TableName() string { return "vacations" }
